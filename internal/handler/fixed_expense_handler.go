package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zerobudget/backend/internal/service"
)

type FixedExpenseHandler struct {
	service FixedExpenseServiceInterface
}

func NewFixedExpenseHandler(service FixedExpenseServiceInterface) *FixedExpenseHandler {
	return &FixedExpenseHandler{service: service}
}

func (h *FixedExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateFixedExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expense, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, expense)
}

func (h *FixedExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	expense, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, expense)
}

func (h *FixedExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, expenses)
}

func (h *FixedExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateFixedExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expense, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, expense)
}

func (h *FixedExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
