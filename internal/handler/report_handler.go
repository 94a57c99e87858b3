package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zerobudget/backend/pkg/datetime"
)

type ReportHandler struct {
	service         ReportServiceInterface
	settingsService SettingsServiceInterface
}

func NewReportHandler(service ReportServiceInterface, settingsService SettingsServiceInterface) *ReportHandler {
	return &ReportHandler{service: service, settingsService: settingsService}
}

// resolveMonth picks the month from the query, falling back to the
// current month from settings.
func (h *ReportHandler) resolveMonth(w http.ResponseWriter, r *http.Request) (datetime.MonthKey, bool) {
	month, ok, err := monthFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid month, expected YYYY-MM")
		return "", false
	}
	if ok {
		return month, true
	}

	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return "", false
	}
	return settings.CurrentMonth, true
}

func (h *ReportHandler) Overview(w http.ResponseWriter, r *http.Request) {
	month, ok := h.resolveMonth(w, r)
	if !ok {
		return
	}

	overview, err := h.service.Overview(r.Context(), month)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, overview)
}

func (h *ReportHandler) Categories(w http.ResponseWriter, r *http.Request) {
	month, ok := h.resolveMonth(w, r)
	if !ok {
		return
	}

	categories, err := h.service.CategoriesWithSpending(r.Context(), month)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, categories)
}

func (h *ReportHandler) Category(w http.ResponseWriter, r *http.Request) {
	month, ok := h.resolveMonth(w, r)
	if !ok {
		return
	}

	category, err := h.service.CategorySpending(r.Context(), chi.URLParam(r, "id"), month)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, category)
}

func (h *ReportHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	month, ok := h.resolveMonth(w, r)
	if !ok {
		return
	}

	slices, err := h.service.Distribution(r.Context(), month)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, slices)
}

func (h *ReportHandler) BudgetVsActual(w http.ResponseWriter, r *http.Request) {
	month, ok := h.resolveMonth(w, r)
	if !ok {
		return
	}

	comparison, err := h.service.BudgetVsActual(r.Context(), month)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, comparison)
}
