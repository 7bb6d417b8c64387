// Package telemetry records registry mutations as an operational journal.
//
// Journal events are in-product records used to review signup activity.
// Distributed tracing is handled separately by internal/platform/otel.
package telemetry

import (
	"context"
	"time"

	"github.com/mergington/activities/internal/services/activities/storage"
)

// Canonical journal event names.
const (
	// EventSignup captures a successful activity signup.
	EventSignup = "activity.signup"
	// EventUnregister captures a successful participant removal.
	EventUnregister = "activity.unregister"
)

// Emitter records registry journal events.
type Emitter struct {
	store storage.JournalStore
	clock func() time.Time
}

// NewEmitter creates a new journal emitter.
func NewEmitter(store storage.JournalStore) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit records a journal event. It is a no-op when the store is nil.
func (e *Emitter) Emit(ctx context.Context, evt storage.JournalEvent) error {
	if e == nil || e.store == nil {
		return nil
	}
	if evt.Timestamp.IsZero() {
		if e.clock == nil {
			evt.Timestamp = time.Now().UTC()
		} else {
			evt.Timestamp = e.clock().UTC()
		}
	}
	return e.store.AppendJournalEvent(ctx, evt)
}
