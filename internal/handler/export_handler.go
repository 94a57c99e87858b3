package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zerobudget/backend/internal/model"
	"github.com/zerobudget/backend/pkg/datetime"
)

// ExportHandler serves backup export/import and file downloads.
type ExportHandler struct {
	service         ExportServiceInterface
	settingsService SettingsServiceInterface
}

func NewExportHandler(service ExportServiceInterface, settingsService SettingsServiceInterface) *ExportHandler {
	return &ExportHandler{service: service, settingsService: settingsService}
}

// ExportBackup streams the complete store as a JSON backup document.
func (h *ExportHandler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	backup, err := h.service.ExportBackup(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	filename := fmt.Sprintf("zerobudget-backup-%s.json", backup.ExportedAt.Format("2006-01-02"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	respondJSON(w, http.StatusOK, backup)
}

// ImportBackup replaces the whole store with the posted backup document.
func (h *ExportHandler) ImportBackup(w http.ResponseWriter, r *http.Request) {
	var backup model.Backup
	if err := json.NewDecoder(r.Body).Decode(&backup); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.ImportBackup(r.Context(), &backup); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}

// ExportExpensesCSV streams one month's expenses as a CSV download.
func (h *ExportHandler) ExportExpensesCSV(w http.ResponseWriter, r *http.Request) {
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

	data, err := h.service.ExportExpensesCSV(r.Context(), month)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("expenses-%s.csv", month)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ExportArchivePDF streams a closed month's report as a PDF download.
func (h *ExportHandler) ExportArchivePDF(w http.ResponseWriter, r *http.Request) {
	month, err := datetime.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid month, expected YYYY-MM")
		return
	}

	data, err := h.service.ExportArchivePDF(r.Context(), month)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("report-%s.pdf", month)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
