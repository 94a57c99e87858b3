package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerobudget/backend/internal/handler"
	"github.com/zerobudget/backend/internal/repository"
	"github.com/zerobudget/backend/internal/service"
	"github.com/zerobudget/backend/internal/storage"
)

// newTestRouter wires the full stack against a fresh SQLite file under
// t.TempDir() and returns the assembled router.
func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "zerobudget-test.db")
	db, err := storage.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	settingsRepo := repository.NewSettingsRepository(db)
	fixedExpenseRepo := repository.NewFixedExpenseRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	archiveRepo := repository.NewArchiveRepository(db)
	backupRepo := repository.NewBackupRepository(db)

	settingsService := service.NewSettingsService(settingsRepo)
	fixedExpenseService := service.NewFixedExpenseService(fixedExpenseRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	expenseService := service.NewExpenseService(expenseRepo, categoryRepo)
	reportService := service.NewReportService(settingsRepo, fixedExpenseRepo, categoryRepo, expenseRepo)
	archiveService := service.NewArchiveService(archiveRepo, settingsRepo, fixedExpenseRepo, categoryRepo, expenseRepo)
	exportService := service.NewExportService(backupRepo, categoryRepo, expenseRepo, archiveRepo)

	settingsHandler := handler.NewSettingsHandler(settingsService)
	fixedExpenseHandler := handler.NewFixedExpenseHandler(fixedExpenseService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	expenseHandler := handler.NewExpenseHandler(expenseService, settingsService)
	reportHandler := handler.NewReportHandler(reportService, settingsService)
	archiveHandler := handler.NewArchiveHandler(archiveService)
	exportHandler := handler.NewExportHandler(exportService, settingsService)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/api/settings", settingsHandler.Get)
	r.Put("/api/settings", settingsHandler.Update)

	r.Get("/api/fixed-expenses", fixedExpenseHandler.List)
	r.Post("/api/fixed-expenses", fixedExpenseHandler.Create)
	r.Get("/api/fixed-expenses/{id}", fixedExpenseHandler.Get)
	r.Put("/api/fixed-expenses/{id}", fixedExpenseHandler.Update)
	r.Delete("/api/fixed-expenses/{id}", fixedExpenseHandler.Delete)

	r.Get("/api/categories", categoryHandler.List)
	r.Post("/api/categories", categoryHandler.Create)
	r.Get("/api/categories/{id}", categoryHandler.Get)
	r.Put("/api/categories/{id}", categoryHandler.Update)
	r.Delete("/api/categories/{id}", categoryHandler.Delete)

	r.Get("/api/expenses", expenseHandler.List)
	r.Post("/api/expenses", expenseHandler.Create)
	r.Get("/api/expenses/export/csv", exportHandler.ExportExpensesCSV)
	r.Get("/api/expenses/{id}", expenseHandler.Get)
	r.Put("/api/expenses/{id}", expenseHandler.Update)
	r.Delete("/api/expenses/{id}", expenseHandler.Delete)

	r.Get("/api/reports/overview", reportHandler.Overview)
	r.Get("/api/reports/categories", reportHandler.Categories)
	r.Get("/api/reports/categories/{id}", reportHandler.Category)
	r.Get("/api/reports/distribution", reportHandler.Distribution)
	r.Get("/api/reports/budget-vs-actual", reportHandler.BudgetVsActual)

	r.Get("/api/archives", archiveHandler.List)
	r.Post("/api/archives/close", archiveHandler.CloseMonth)
	r.Get("/api/archives/{month}", archiveHandler.Get)
	r.Delete("/api/archives/{month}", archiveHandler.Delete)
	r.Get("/api/archives/{month}/export/pdf", exportHandler.ExportArchivePDF)

	r.Get("/api/export", exportHandler.ExportBackup)
	r.Post("/api/import", exportHandler.ImportBackup)

	return r
}

func doJSON(t *testing.T, r chi.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestAPI_SettingsBootstrapAndUpdate(t *testing.T) {
	r := newTestRouter(t)

	// First read bootstraps the singleton with defaults.
	w := doJSON(t, r, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var settings map[string]interface{}
	decodeBody(t, w, &settings)
	assert.Equal(t, "main", settings["id"])
	assert.Equal(t, "USD", settings["currency"])
	assert.NotEmpty(t, settings["currentMonth"])

	w = doJSON(t, r, http.MethodPut, "/api/settings", map[string]interface{}{
		"monthlyIncome": "5000",
		"currency":      "EUR",
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &settings)
	assert.Equal(t, "EUR", settings["currency"])

	// Unsupported currency is rejected.
	w = doJSON(t, r, http.MethodPut, "/api/settings", map[string]interface{}{"currency": "XYZ"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_CategoryAndExpenseFlow(t *testing.T) {
	r := newTestRouter(t)

	// Current month comes from the bootstrapped settings.
	var settings map[string]interface{}
	w := doJSON(t, r, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &settings)
	month := settings["currentMonth"].(string)

	// Create a category; color should be assigned from the palette.
	w = doJSON(t, r, http.MethodPost, "/api/categories", map[string]interface{}{
		"name":        "Groceries",
		"budgetLimit": "400",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var category map[string]interface{}
	decodeBody(t, w, &category)
	categoryID := category["id"].(string)
	assert.NotEmpty(t, category["color"])

	// Record an expense in the current month.
	w = doJSON(t, r, http.MethodPost, "/api/expenses", map[string]interface{}{
		"categoryId":  categoryID,
		"description": "weekly shop",
		"amount":      "62.50",
		"date":        month + "-10",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var expense map[string]interface{}
	decodeBody(t, w, &expense)
	assert.Equal(t, month, expense["month"])
	expenseID := expense["id"].(string)

	// Expense for an unknown category is rejected.
	w = doJSON(t, r, http.MethodPost, "/api/expenses", map[string]interface{}{
		"categoryId": "nope",
		"amount":     "5",
		"date":       month + "-11",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Default listing shows the current month's expense.
	w = doJSON(t, r, http.MethodGet, "/api/expenses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var expenses []map[string]interface{}
	decodeBody(t, w, &expenses)
	require.Len(t, expenses, 1)

	// Moving the date to another month moves the expense out of view.
	w = doJSON(t, r, http.MethodPut, "/api/expenses/"+expenseID, map[string]interface{}{
		"date": "2000-01-05",
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &expense)
	assert.Equal(t, "2000-01", expense["month"])

	w = doJSON(t, r, http.MethodGet, "/api/expenses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &expenses)
	assert.Len(t, expenses, 0)

	w = doJSON(t, r, http.MethodGet, "/api/expenses?month=2000-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &expenses)
	assert.Len(t, expenses, 1)

	// Deleting the category cascades to its expenses.
	w = doJSON(t, r, http.MethodDelete, "/api/categories/"+categoryID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/expenses?all=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &expenses)
	assert.Len(t, expenses, 0)
}

func TestAPI_ReportsReflectLedger(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/settings", map[string]interface{}{
		"monthlyIncome": "5000",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var settings map[string]interface{}
	decodeBody(t, w, &settings)
	month := settings["currentMonth"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/fixed-expenses", map[string]interface{}{
		"name":   "Rent",
		"amount": "1500",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/categories", map[string]interface{}{
		"name":        "Groceries",
		"budgetLimit": "400",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var category map[string]interface{}
	decodeBody(t, w, &category)

	w = doJSON(t, r, http.MethodPost, "/api/expenses", map[string]interface{}{
		"categoryId": category["id"],
		"amount":     "300",
		"date":       month + "-05",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/reports/overview", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var overview map[string]interface{}
	decodeBody(t, w, &overview)
	assert.Equal(t, "3500", fmt.Sprint(overview["availableForBudget"]))
	assert.Equal(t, "300", fmt.Sprint(overview["totalSpent"]))
	assert.Equal(t, "3200", fmt.Sprint(overview["realAvailable"]))

	w = doJSON(t, r, http.MethodGet, "/api/reports/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cats []map[string]interface{}
	decodeBody(t, w, &cats)
	require.Len(t, cats, 1)
	assert.Equal(t, "300", fmt.Sprint(cats[0]["spent"]))
	assert.InDelta(t, 75.0, cats[0]["percentage"].(float64), 0.01)

	w = doJSON(t, r, http.MethodGet, "/api/expenses/export/csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Groceries")
}

func TestAPI_MonthCloseLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/settings", map[string]interface{}{
		"monthlyIncome": "5000",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var settings map[string]interface{}
	decodeBody(t, w, &settings)
	month := settings["currentMonth"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/categories", map[string]interface{}{
		"name":        "Groceries",
		"budgetLimit": "400",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var category map[string]interface{}
	decodeBody(t, w, &category)

	w = doJSON(t, r, http.MethodPost, "/api/expenses", map[string]interface{}{
		"categoryId": category["id"],
		"amount":     "120",
		"date":       month + "-03",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Close the current month.
	w = doJSON(t, r, http.MethodPost, "/api/archives/close", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var archive map[string]interface{}
	decodeBody(t, w, &archive)
	assert.Equal(t, month, archive["month"])
	assert.Equal(t, month, archive["id"])

	// The current month advanced and the closed month's expenses are purged.
	w = doJSON(t, r, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &settings)
	assert.NotEqual(t, month, settings["currentMonth"])

	w = doJSON(t, r, http.MethodGet, "/api/expenses?month="+month, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var expenses []map[string]interface{}
	decodeBody(t, w, &expenses)
	assert.Len(t, expenses, 0)

	// Closing the same month again conflicts.
	w = doJSON(t, r, http.MethodPost, "/api/archives/close", map[string]interface{}{"month": month})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Archive is retrievable and exports as PDF.
	w = doJSON(t, r, http.MethodGet, "/api/archives/"+month, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/archives/"+month+"/export/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	// Deleting the archive frees the month.
	w = doJSON(t, r, http.MethodDelete, "/api/archives/"+month, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/archives/"+month, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_BackupRoundTrip(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/settings", map[string]interface{}{
		"monthlyIncome": "5000",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var settings map[string]interface{}
	decodeBody(t, w, &settings)
	month := settings["currentMonth"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/categories", map[string]interface{}{
		"name":        "Groceries",
		"budgetLimit": "400",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var category map[string]interface{}
	decodeBody(t, w, &category)

	w = doJSON(t, r, http.MethodPost, "/api/expenses", map[string]interface{}{
		"categoryId": category["id"],
		"amount":     "42",
		"date":       month + "-07",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Export the full store.
	w = doJSON(t, r, http.MethodGet, "/api/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "zerobudget-backup-")
	backupDoc := w.Body.Bytes()

	// Wipe by importing into a fresh instance.
	r2 := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/import", bytes.NewReader(backupDoc))
	req.Header.Set("Content-Type", "application/json")
	w2 := httptest.NewRecorder()
	r2.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code)

	// The restored instance serves the same data.
	w2res := doJSON(t, r2, http.MethodGet, "/api/expenses?month="+month, nil)
	require.Equal(t, http.StatusOK, w2res.Code)
	var expenses []map[string]interface{}
	decodeBody(t, w2res, &expenses)
	require.Len(t, expenses, 1)
	assert.Equal(t, "42", fmt.Sprint(expenses[0]["amount"]))

	// A corrupt document is rejected without touching the store.
	w2res = doJSON(t, r2, http.MethodPost, "/api/import", map[string]interface{}{"version": 99})
	assert.Equal(t, http.StatusBadRequest, w2res.Code)

	// So is a well-versioned document missing its data section.
	w2res = doJSON(t, r2, http.MethodPost, "/api/import", map[string]interface{}{"version": 1})
	assert.Equal(t, http.StatusBadRequest, w2res.Code)

	w2res = doJSON(t, r2, http.MethodGet, "/api/expenses?month="+month, nil)
	require.Equal(t, http.StatusOK, w2res.Code)
	decodeBody(t, w2res, &expenses)
	assert.Len(t, expenses, 1)
}
