package handler

import (
	"encoding/json"
	"net/http"

	"github.com/zerobudget/backend/internal/service"
)

type SettingsHandler struct {
	service SettingsServiceInterface
}

func NewSettingsHandler(service SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get returns the settings singleton, creating it with defaults on first access.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, settings)
}

// Update patches the monthly income and display currency.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateSettingsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := h.service.Update(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, settings)
}
