// Package app coordinates registry operations between transports and storage.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mergington/activities/internal/services/activities/domain"
	"github.com/mergington/activities/internal/services/activities/storage"
	"github.com/mergington/activities/internal/telemetry"
	"go.opentelemetry.io/otel/trace"
)

// Service executes activity registry operations over an injected store.
type Service struct {
	store   storage.ActivityStore
	journal *telemetry.Emitter
}

// New creates a Service over the given store. The journal emitter is
// optional; nil disables journaling.
func New(store storage.ActivityStore, journal *telemetry.Emitter) (*Service, error) {
	if store == nil {
		return nil, errors.New("activity store is required")
	}
	return &Service{store: store, journal: journal}, nil
}

// List returns every activity in the registry.
func (s *Service) List(ctx context.Context) ([]domain.Activity, error) {
	if s == nil || s.store == nil {
		return nil, errors.New("activities service is not configured")
	}
	return s.store.List(ctx)
}

// Signup enrolls email in the named activity.
func (s *Service) Signup(ctx context.Context, activity, email string) error {
	if s == nil || s.store == nil {
		return errors.New("activities service is not configured")
	}
	activity = domain.NormalizeName(activity)
	if activity == "" {
		return domain.ErrEmptyName
	}
	email = domain.NormalizeEmail(email)
	if email == "" {
		return domain.ErrEmptyEmail
	}
	if err := s.store.Enroll(ctx, activity, email); err != nil {
		return err
	}
	s.emit(ctx, telemetry.EventSignup, activity, email)
	return nil
}

// Unregister removes email from the named activity.
func (s *Service) Unregister(ctx context.Context, activity, email string) error {
	if s == nil || s.store == nil {
		return errors.New("activities service is not configured")
	}
	activity = domain.NormalizeName(activity)
	if activity == "" {
		return domain.ErrEmptyName
	}
	email = domain.NormalizeEmail(email)
	if email == "" {
		return domain.ErrEmptyEmail
	}
	if err := s.store.Withdraw(ctx, activity, email); err != nil {
		return err
	}
	s.emit(ctx, telemetry.EventUnregister, activity, email)
	return nil
}

// emit journals a successful mutation. Journal failures are logged and never
// surfaced to the caller.
func (s *Service) emit(ctx context.Context, eventName, activity, email string) {
	if s.journal == nil {
		return
	}
	evt := storage.JournalEvent{
		EventName: eventName,
		Activity:  activity,
		Email:     email,
	}
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		evt.TraceID = sc.TraceID().String()
		evt.SpanID = sc.SpanID().String()
	}
	if err := s.journal.Emit(ctx, evt); err != nil {
		log.Printf("journal emit %s: %v", eventName, err)
	}
}

// SeedDefaultCatalog loads the school's default catalog into store.
func SeedDefaultCatalog(ctx context.Context, store storage.ActivityStore) error {
	if store == nil {
		return errors.New("activity store is required")
	}
	for _, activity := range domain.DefaultCatalog() {
		if err := store.Put(ctx, activity); err != nil {
			return fmt.Errorf("seed %s: %w", activity.Name, err)
		}
	}
	return nil
}
