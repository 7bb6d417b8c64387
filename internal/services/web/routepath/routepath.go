// Package routepath stores canonical HTTP paths for the web service.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root   = "/"
	Health = "/up"

	StaticPrefix = "/static/"
	StaticIndex  = "/static/index.html"

	Activities       = "/activities"
	ActivitiesPrefix = "/activities/"

	// ActivityNameParam names the path wildcard carrying the activity name.
	ActivityNameParam = "name"

	// ActivitySignupPattern matches signup requests for one activity.
	ActivitySignupPattern = ActivitiesPrefix + "{" + ActivityNameParam + "}/signup"
	// ActivityParticipantsPattern matches roster removals for one activity.
	ActivityParticipantsPattern = ActivitiesPrefix + "{" + ActivityNameParam + "}/participants"
)

// ActivitySignup returns the signup route for an activity name.
func ActivitySignup(name string) string {
	return ActivitiesPrefix + escapeSegment(name) + "/signup"
}

// ActivityParticipants returns the roster route for an activity name.
func ActivityParticipants(name string) string {
	return ActivitiesPrefix + escapeSegment(name) + "/participants"
}

// escapeSegment escapes a single path segment, keeping slashes inert.
func escapeSegment(segment string) string {
	return url.PathEscape(strings.TrimSpace(segment))
}
