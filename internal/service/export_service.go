package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sync"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/zerobudget/backend/internal/apperror"
	"github.com/zerobudget/backend/internal/model"
	"github.com/zerobudget/backend/pkg/currency"
	"github.com/zerobudget/backend/pkg/datetime"
)

// BackupRepoInterface defines the contract for whole-store export/import.
type BackupRepoInterface interface {
	Snapshot(ctx context.Context) (*model.BackupData, error)
	ReplaceAll(ctx context.Context, data *model.BackupData) error
}

// ExportService handles backup export/import and file exports (CSV, PDF).
// Imports are serialized: a restore replaces the whole store, so two
// cannot interleave.
type ExportService struct {
	backupRepo   BackupRepoInterface
	categoryRepo CategoryRepoForReport
	expenseRepo  ExpenseRepoForReport
	archiveRepo  ArchiveRepoInterface

	importMu sync.Mutex
}

// NewExportService creates a new ExportService with the given repositories.
func NewExportService(
	backupRepo BackupRepoInterface,
	categoryRepo CategoryRepoForReport,
	expenseRepo ExpenseRepoForReport,
	archiveRepo ArchiveRepoInterface,
) *ExportService {
	return &ExportService{
		backupRepo:   backupRepo,
		categoryRepo: categoryRepo,
		expenseRepo:  expenseRepo,
		archiveRepo:  archiveRepo,
	}
}

// ExportBackup captures the complete store contents as a backup document.
func (s *ExportService) ExportBackup(ctx context.Context) (*model.Backup, error) {
	data, err := s.backupRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshotting store for export: %w", err)
	}
	return &model.Backup{
		Version:    model.BackupVersion,
		ExportedAt: time.Now().UTC(),
		AppName:    model.AppName,
		Data:       data,
	}, nil
}

// ImportBackup validates a backup document and replaces the entire store
// with its contents. Nothing changes when validation fails.
func (s *ExportService) ImportBackup(ctx context.Context, backup *model.Backup) error {
	s.importMu.Lock()
	defer s.importMu.Unlock()

	if err := validateBackup(backup); err != nil {
		return err
	}

	if err := s.backupRepo.ReplaceAll(ctx, backup.Data); err != nil {
		return fmt.Errorf("restoring backup: %w", err)
	}
	return nil
}

func validateBackup(backup *model.Backup) error {
	if backup == nil {
		return apperror.InvalidBackup("empty document")
	}
	if backup.Version != model.BackupVersion {
		return apperror.InvalidBackup(fmt.Sprintf("unsupported version %d", backup.Version))
	}
	if backup.Data == nil {
		return apperror.InvalidBackup("missing data section")
	}
	if backup.Data.Settings != nil {
		if !currency.IsValid(backup.Data.Settings.Currency) {
			return apperror.InvalidBackup(fmt.Sprintf("unsupported currency %q", backup.Data.Settings.Currency))
		}
		if !backup.Data.Settings.CurrentMonth.IsValid() {
			return apperror.InvalidBackup(fmt.Sprintf("invalid current month %q", backup.Data.Settings.CurrentMonth))
		}
	}

	categoryIDs := make(map[string]struct{}, len(backup.Data.Categories))
	for _, c := range backup.Data.Categories {
		if c.ID == "" {
			return apperror.InvalidBackup("category without id")
		}
		if _, dup := categoryIDs[c.ID]; dup {
			return apperror.InvalidBackup(fmt.Sprintf("duplicate category id %s", c.ID))
		}
		categoryIDs[c.ID] = struct{}{}
	}

	for _, e := range backup.Data.Expenses {
		if e.ID == "" {
			return apperror.InvalidBackup("expense without id")
		}
		if _, ok := categoryIDs[e.CategoryID]; !ok {
			return apperror.InvalidBackup(fmt.Sprintf("expense %s references unknown category %s", e.ID, e.CategoryID))
		}
		if e.Month != e.Date.MonthKey() {
			return apperror.InvalidBackup(fmt.Sprintf("expense %s month %s does not match date %s", e.ID, e.Month, e.Date))
		}
	}

	archiveMonths := make(map[datetime.MonthKey]struct{}, len(backup.Data.MonthlyArchives))
	for _, a := range backup.Data.MonthlyArchives {
		if !a.Month.IsValid() {
			return apperror.InvalidBackup(fmt.Sprintf("archive with invalid month %q", a.Month))
		}
		if _, dup := archiveMonths[a.Month]; dup {
			return apperror.InvalidBackup(fmt.Sprintf("duplicate archive for month %s", a.Month))
		}
		archiveMonths[a.Month] = struct{}{}
	}

	return nil
}

// ExportExpensesCSV exports one month's expenses to CSV, category ids
// resolved to names.
func (s *ExportService) ExportExpensesCSV(ctx context.Context, month datetime.MonthKey) ([]byte, error) {
	if !month.IsValid() {
		return nil, apperror.ValidationError("month", "must be in YYYY-MM format")
	}

	expenses, err := s.expenseRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("fetching expenses for export: %w", err)
	}
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching categories for export: %w", err)
	}
	nameByID := make(map[string]string, len(categories))
	for _, c := range categories {
		nameByID[c.ID] = c.Name
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"Date", "Category", "Description", "Amount"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}

	for _, e := range expenses {
		row := []string{
			e.Date.String(),
			nameByID[e.CategoryID],
			e.Description,
			e.Amount.String(),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV writer: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportArchivePDF renders a closed month's archive as a PDF report.
func (s *ExportService) ExportArchivePDF(ctx context.Context, month datetime.MonthKey) ([]byte, error) {
	archive, err := s.archiveRepo.GetByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("fetching archive for export: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 12, model.AppName, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 14)
	pdf.SetTextColor(108, 117, 125)
	start := archive.Month.Start()
	pdf.CellFormat(0, 8, fmt.Sprintf("Monthly Report - %s %d", start.Month(), start.Year()), "", 1, "C", false, 0, "")

	pdf.Ln(10)

	// Summary section
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(5)

	code := archive.Summary.Currency
	colWidth := float64(85)
	summaryRows := []struct {
		label string
		value string
		r     int
		g     int
		b     int
	}{
		{"Monthly Income", currency.Format(archive.Summary.MonthlyIncome, code), 40, 167, 69},
		{"Fixed Expenses", currency.Format(archive.Summary.TotalFixedExpenses, code), 220, 53, 69},
		{"Total Spent", currency.Format(archive.Summary.TotalSpent, code), 220, 53, 69},
		{"Total Saved", currency.Format(archive.Summary.TotalSaved, code), 33, 37, 41},
	}
	for _, row := range summaryRows {
		pdf.SetFont("Arial", "", 11)
		pdf.SetTextColor(108, 117, 125)
		pdf.CellFormat(colWidth, 7, row.label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(row.r, row.g, row.b)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(colWidth, 7, row.value, "", 1, "R", false, 0, "")
	}

	pdf.Ln(15)

	// Categories section
	if len(archive.Categories) > 0 {
		pdf.SetFont("Arial", "B", 14)
		pdf.SetTextColor(33, 37, 41)
		pdf.CellFormat(0, 8, "Categories", "", 1, "L", false, 0, "")

		pdf.SetDrawColor(200, 200, 200)
		pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
		pdf.Ln(5)

		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(248, 249, 250)
		pdf.SetTextColor(33, 37, 41)
		pdf.CellFormat(60, 8, "Category", "1", 0, "L", true, 0, "")
		pdf.CellFormat(40, 8, "Budget", "1", 0, "R", true, 0, "")
		pdf.CellFormat(40, 8, "Spent", "1", 0, "R", true, 0, "")
		pdf.CellFormat(30, 8, "Used", "1", 1, "R", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, cat := range archive.Categories {
			pdf.SetTextColor(33, 37, 41)
			pdf.CellFormat(60, 7, cat.Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 7, currency.Format(cat.BudgetLimit, code), "1", 0, "R", false, 0, "")
			pdf.CellFormat(40, 7, currency.Format(cat.Spent, code), "1", 0, "R", false, 0, "")
			pdf.CellFormat(30, 7, fmt.Sprintf("%.1f%%", cat.Percentage), "1", 1, "R", false, 0, "")
		}
	}

	// Footer
	pdf.SetY(-25)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(108, 117, 125)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated by %s on %s", model.AppName, time.Now().Format("January 2, 2006")), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generating PDF: %w", err)
	}

	return buf.Bytes(), nil
}
