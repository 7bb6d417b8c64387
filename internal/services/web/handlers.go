package web

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/mergington/activities/internal/services/activities/domain"
	"github.com/mergington/activities/internal/services/activities/storage"
	apperrors "github.com/mergington/activities/internal/services/web/platform/errors"
	"github.com/mergington/activities/internal/services/web/platform/httpx"
	"github.com/mergington/activities/internal/services/web/routepath"
)

type handler struct {
	activities ActivityService
}

func registerRoutes(mux *http.ServeMux, h handler) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Activities, h.handleActivitiesIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.ActivitySignupPattern, h.handleSignup)
	mux.HandleFunc(http.MethodDelete+" "+routepath.ActivityParticipantsPattern, h.handleUnregister)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, handleHealth)
	mux.HandleFunc(routepath.Root, handleRoot)
}

// activityResource is the wire shape for one activity in the index payload.
type activityResource struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// handleActivitiesIndex returns every activity keyed by name.
func (h handler) handleActivitiesIndex(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activities.List(httpx.RequestContext(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	payload := make(map[string]activityResource, len(activities))
	for _, activity := range activities {
		participants := activity.Participants
		if participants == nil {
			participants = []string{}
		}
		payload[activity.Name] = activityResource{
			Description:     activity.Description,
			Schedule:        activity.Schedule,
			MaxParticipants: activity.MaxParticipants,
			Participants:    participants,
		}
	}
	_ = httpx.WriteJSON(w, http.StatusOK, payload)
}

// handleSignup adds a student to one activity roster.
func (h handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue(routepath.ActivityNameParam)
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, "email is required")
		return
	}

	if err := h.activities.Signup(httpx.RequestContext(r), name, email); err != nil {
		writeError(w, r, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Signed up " + email + " for " + domain.NormalizeName(name),
	})
}

// handleUnregister removes a student from one activity roster.
func (h handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue(routepath.ActivityNameParam)
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, "email is required")
		return
	}

	if err := h.activities.Unregister(httpx.RequestContext(r), name, email); err != nil {
		writeError(w, r, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Unregistered " + email + " from " + domain.NormalizeName(name),
	})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleRoot redirects the bare domain to the static signup page.
func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	http.Redirect(w, r, routepath.StaticIndex, http.StatusTemporaryRedirect)
}

// translateError converts registry failures into typed web errors.
func translateError(err error) apperrors.Error {
	var appErr apperrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperrors.Error{Kind: apperrors.KindNotFound, Message: "Activity not found"}
	case errors.Is(err, storage.ErrParticipantNotFound):
		return apperrors.Error{Kind: apperrors.KindNotFound, Message: "Participant not found"}
	case errors.Is(err, storage.ErrAlreadyEnrolled):
		return apperrors.Error{Kind: apperrors.KindInvalidInput, Message: "Student is already signed up"}
	case errors.Is(err, domain.ErrEmptyName):
		return apperrors.Error{Kind: apperrors.KindInvalidInput, Message: "activity name is required"}
	case errors.Is(err, domain.ErrEmptyEmail):
		return apperrors.Error{Kind: apperrors.KindInvalidInput, Message: "email is required"}
	default:
		return apperrors.Error{Kind: apperrors.KindUnknown, Message: "internal error"}
	}
}

// writeError renders the API error envelope for a registry failure.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := translateError(err)
	if appErr.Kind == apperrors.KindUnknown {
		method := "-"
		path := "-"
		if r != nil {
			method = r.Method
			path = r.URL.Path
		}
		log.Printf("activities api %s %s: %v", method, path, err)
	}
	_ = httpx.WriteJSONError(w, apperrors.HTTPStatus(appErr), appErr.Message)
}
