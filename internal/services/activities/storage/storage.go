// Package storage defines persistence contracts for the activities registry.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/mergington/activities/internal/services/activities/domain"
)

var (
	// ErrNotFound indicates a requested activity is missing from the registry.
	ErrNotFound = errors.New("activity not found")
	// ErrParticipantNotFound indicates the activity exists but the email is
	// not on its roster.
	ErrParticipantNotFound = errors.New("participant not found")
	// ErrAlreadyEnrolled indicates the email is already on the roster.
	ErrAlreadyEnrolled = errors.New("participant already enrolled")
)

// ActivityStore persists activity records and their signup rosters.
//
// Enroll and Withdraw are single operations rather than read-modify-write
// sequences so implementations can make them atomic.
type ActivityStore interface {
	Put(ctx context.Context, activity domain.Activity) error
	Get(ctx context.Context, name string) (domain.Activity, error)
	List(ctx context.Context) ([]domain.Activity, error)
	Enroll(ctx context.Context, name, email string) error
	Withdraw(ctx context.Context, name, email string) error
}

// JournalEvent records one registry mutation for operational review.
type JournalEvent struct {
	Timestamp time.Time
	EventName string
	Activity  string
	Email     string
	TraceID   string
	SpanID    string
}

// JournalStore persists append-only registry journal events.
type JournalStore interface {
	AppendJournalEvent(ctx context.Context, evt JournalEvent) error
	ListJournalEvents(ctx context.Context) ([]JournalEvent, error)
}
