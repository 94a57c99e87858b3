package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zerobudget/backend/pkg/datetime"
)

type ArchiveHandler struct {
	service ArchiveServiceInterface
}

func NewArchiveHandler(service ArchiveServiceInterface) *ArchiveHandler {
	return &ArchiveHandler{service: service}
}

type closeMonthRequest struct {
	Month *datetime.MonthKey `json:"month,omitempty"`
}

// CloseMonth archives a month and purges its live expenses. Without a
// body, or with an empty one, the current month is closed.
func (h *ArchiveHandler) CloseMonth(w http.ResponseWriter, r *http.Request) {
	var req closeMonthRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	archive, err := h.service.CloseMonth(r.Context(), req.Month)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, archive)
}

func (h *ArchiveHandler) Get(w http.ResponseWriter, r *http.Request) {
	month, err := datetime.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid month, expected YYYY-MM")
		return
	}

	archive, err := h.service.Get(r.Context(), month)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, archive)
}

func (h *ArchiveHandler) List(w http.ResponseWriter, r *http.Request) {
	archives, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, archives)
}

func (h *ArchiveHandler) Delete(w http.ResponseWriter, r *http.Request) {
	month, err := datetime.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid month, expected YYYY-MM")
		return
	}

	if err := h.service.Delete(r.Context(), month); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
