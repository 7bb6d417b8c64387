// Package memory provides the in-memory activity registry.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/mergington/activities/internal/services/activities/domain"
	"github.com/mergington/activities/internal/services/activities/storage"
)

// ErrEventNameRequired indicates a journal event missing its name.
var ErrEventNameRequired = errors.New("event name is required")

// Memory stores activities and journal events in process memory.
//
// A single mutex guards every operation so enroll and withdraw stay atomic
// under concurrent callers. State lives for the life of the process only.
type Memory struct {
	mu         sync.Mutex
	activities map[string]domain.Activity
	journal    []storage.JournalEvent
}

// New creates an empty in-memory registry.
func New() *Memory {
	return &Memory{
		activities: make(map[string]domain.Activity),
	}
}

// Put stores an activity record, replacing any record with the same name.
func (m *Memory) Put(ctx context.Context, activity domain.Activity) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if m == nil {
		return errors.New("activity store is required")
	}
	activity.Name = domain.NormalizeName(activity.Name)
	if err := activity.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.activities[activity.Name] = activity.Clone()
	return nil
}

// Get retrieves an activity by name.
func (m *Memory) Get(ctx context.Context, name string) (domain.Activity, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return domain.Activity{}, err
		}
	}
	if m == nil {
		return domain.Activity{}, errors.New("activity store is required")
	}
	name = domain.NormalizeName(name)
	if name == "" {
		return domain.Activity{}, domain.ErrEmptyName
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	activity, ok := m.activities[name]
	if !ok {
		return domain.Activity{}, storage.ErrNotFound
	}
	return activity.Clone(), nil
}

// List returns every activity sorted by name.
func (m *Memory) List(ctx context.Context) ([]domain.Activity, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if m == nil {
		return nil, errors.New("activity store is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.activities))
	for name := range m.activities {
		names = append(names, name)
	}
	sort.Strings(names)

	listed := make([]domain.Activity, 0, len(names))
	for _, name := range names {
		listed = append(listed, m.activities[name].Clone())
	}
	return listed, nil
}

// Enroll appends email to the activity roster.
//
// The roster keeps signup order and rejects duplicates. Capacity is advisory:
// enrolling past MaxParticipants succeeds.
func (m *Memory) Enroll(ctx context.Context, name, email string) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if m == nil {
		return errors.New("activity store is required")
	}
	name = domain.NormalizeName(name)
	if name == "" {
		return domain.ErrEmptyName
	}
	email = domain.NormalizeEmail(email)
	if email == "" {
		return domain.ErrEmptyEmail
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	activity, ok := m.activities[name]
	if !ok {
		return storage.ErrNotFound
	}
	if activity.HasParticipant(email) {
		return storage.ErrAlreadyEnrolled
	}
	activity.Participants = append(activity.Participants, email)
	m.activities[name] = activity
	return nil
}

// Withdraw removes email from the activity roster, preserving the order of
// the remaining participants.
func (m *Memory) Withdraw(ctx context.Context, name, email string) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if m == nil {
		return errors.New("activity store is required")
	}
	name = domain.NormalizeName(name)
	if name == "" {
		return domain.ErrEmptyName
	}
	email = domain.NormalizeEmail(email)
	if email == "" {
		return domain.ErrEmptyEmail
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	activity, ok := m.activities[name]
	if !ok {
		return storage.ErrNotFound
	}
	index := -1
	for i, participant := range activity.Participants {
		if participant == email {
			index = i
			break
		}
	}
	if index < 0 {
		return storage.ErrParticipantNotFound
	}
	activity.Participants = append(activity.Participants[:index], activity.Participants[index+1:]...)
	m.activities[name] = activity
	return nil
}

// AppendJournalEvent records a registry mutation event.
func (m *Memory) AppendJournalEvent(ctx context.Context, evt storage.JournalEvent) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if m == nil {
		return errors.New("journal store is required")
	}
	if evt.EventName == "" {
		return ErrEventNameRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.journal = append(m.journal, evt)
	return nil
}

// ListJournalEvents returns recorded events in append order.
func (m *Memory) ListJournalEvents(ctx context.Context) ([]storage.JournalEvent, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if m == nil {
		return nil, errors.New("journal store is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	listed := make([]storage.JournalEvent, len(m.journal))
	copy(listed, m.journal)
	return listed, nil
}
