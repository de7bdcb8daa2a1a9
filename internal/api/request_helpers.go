package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/api/shared"
	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// getUserIDFromContext extracts the authenticated user's UUID from the
// request context. The user ID is placed there by the authentication
// middleware; a protected handler reached without one is a wiring bug.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required")
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format")
	}

	return id, nil
}

// decodeBody decodes the JSON request body into v and writes the error
// response itself on failure. Type mismatches (e.g. a string where a
// boolean is expected) are reported with field detail; anything else
// is a generic bad-request.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := shared.DecodeJSON(r, v)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		shared.RespondWithFieldErrors(w, r, http.StatusBadRequest, "Validation error",
			map[string]string{typeErr.Field: "must be a " + typeErr.Type.String()})
		return false
	}

	shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
	return false
}

// requireOwner extracts the authenticated owner id, rejecting the
// request if it is absent.
func requireOwner(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	ownerID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Access denied: missing token")
		return uuid.Nil, false
	}
	return ownerID, true
}
