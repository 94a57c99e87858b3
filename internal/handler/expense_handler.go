package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zerobudget/backend/internal/service"
)

type ExpenseHandler struct {
	service         ExpenseServiceInterface
	settingsService SettingsServiceInterface
}

func NewExpenseHandler(service ExpenseServiceInterface, settingsService SettingsServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{service: service, settingsService: settingsService}
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateExpenseInput
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

func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	expense, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, expense)
}

// List returns the expenses of the month named in the query, the current
// month when the query is absent, or every month with all=true.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("all") == "true" {
		expenses, err := h.service.List(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, expenses)
		return
	}

	month, ok, err := monthFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid month, expected YYYY-MM")
		return
	}
	if !ok {
		settings, err := h.settingsService.Get(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		month = settings.CurrentMonth
	}

	expenses, err := h.service.ListByMonth(r.Context(), month)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateExpenseInput
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

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
