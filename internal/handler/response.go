package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zerobudget/backend/internal/apperror"
	"github.com/zerobudget/backend/internal/repository"
	"github.com/zerobudget/backend/pkg/datetime"
)

// ErrorResponse represents a JSON error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// respondJSON writes a JSON response with the given status code.
// It sets the Content-Type header to application/json.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondError writes a JSON error response with the given status code and message.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service-layer error onto an HTTP response.
// AppErrors carry their own status and message; repository sentinels map
// to 404; everything else is a 500 with a generic body.
func respondServiceError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		respondJSON(w, appErr.StatusCode, ErrorResponse{Error: appErr.Message, Field: appErr.Field})
		return
	}

	switch {
	case errors.Is(err, repository.ErrFixedExpenseNotFound),
		errors.Is(err, repository.ErrCategoryNotFound),
		errors.Is(err, repository.ErrExpenseNotFound),
		errors.Is(err, repository.ErrArchiveNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// monthFromQuery reads the optional month query parameter. The zero value
// with ok=false means the caller should fall back to the current month.
func monthFromQuery(r *http.Request) (datetime.MonthKey, bool, error) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return "", false, nil
	}
	month, err := datetime.ParseMonth(raw)
	if err != nil {
		return "", false, err
	}
	return month, true, nil
}
