// Package domain describes extracurricular activities and the rules that
// keep the signup roster consistent.
package domain

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyName indicates a missing activity name.
	ErrEmptyName = errors.New("activity name is required")
	// ErrEmptyEmail indicates a missing student email.
	ErrEmptyEmail = errors.New("email is required")
	// ErrNegativeCapacity indicates an activity with a negative participant limit.
	ErrNegativeCapacity = errors.New("max participants cannot be negative")
	// ErrDuplicateParticipant indicates a roster carrying the same email twice.
	ErrDuplicateParticipant = errors.New("participant emails must be unique")
)

// Activity is one extracurricular offering and its signup roster.
//
// Participants is ordered by signup time and never carries duplicates.
// MaxParticipants is advisory capacity information surfaced to clients;
// signups are not rejected when the roster grows past it.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// NormalizeName trims surrounding whitespace from an activity name.
// Names are otherwise exact registry keys.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// NormalizeEmail trims surrounding whitespace from a student email.
// Emails are opaque identifiers; no format or case rules apply.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// Validate reports whether the activity record satisfies roster rules.
func (a Activity) Validate() error {
	if NormalizeName(a.Name) == "" {
		return ErrEmptyName
	}
	if a.MaxParticipants < 0 {
		return ErrNegativeCapacity
	}
	seen := make(map[string]struct{}, len(a.Participants))
	for _, email := range a.Participants {
		if NormalizeEmail(email) == "" {
			return ErrEmptyEmail
		}
		if _, ok := seen[email]; ok {
			return ErrDuplicateParticipant
		}
		seen[email] = struct{}{}
	}
	return nil
}

// HasParticipant reports whether email is already on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, participant := range a.Participants {
		if participant == email {
			return true
		}
	}
	return false
}

// Clone returns a copy whose roster does not share backing storage with the
// receiver.
func (a Activity) Clone() Activity {
	cloned := a
	if a.Participants != nil {
		cloned.Participants = make([]string, len(a.Participants))
		copy(cloned.Participants, a.Participants)
	}
	return cloned
}
