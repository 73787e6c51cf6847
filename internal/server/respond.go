package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arshjul/yearwheel/internal/repository"
	"github.com/arshjul/yearwheel/internal/service"
)

// Error envelope codes.
const (
	codeNotFound      = "NOT_FOUND"
	codeUnauthorized  = "UNAUTHORIZED"
	codeBadRequest    = "BAD_REQUEST"
	codeExpired       = "EXPIRED"
	codeInternalError = "INTERNAL_ERROR"
)

type errorEnvelope struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, map[string]errorEnvelope{"error": {Code: code, Detail: detail}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeServiceError maps domain errors onto the envelope.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "resource not found")
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
	case errors.Is(err, service.ErrShareExpired):
		writeError(w, http.StatusGone, codeExpired, "share link has expired")
	case errors.Is(err, service.ErrShareRevoked):
		writeError(w, http.StatusGone, codeExpired, "share link has been revoked")
	case errors.Is(err, service.ErrShareKeyWrong):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "share key mismatch")
	case errors.Is(err, service.ErrShareNotDueYet):
		writeError(w, http.StatusConflict, codeBadRequest, "share is not due for renewal")
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, err.Error())
	}
}
