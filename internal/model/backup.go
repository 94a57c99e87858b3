package model

import "time"

// BackupVersion is the schema version written into export documents.
const BackupVersion = 1

// AppName tags export documents with their producing application.
const AppName = "ZeroBudget"

// Backup is the export/import document. It contains the complete store
// contents: settings, fixed expenses, categories, expenses across ALL
// months, and every monthly archive. Export then import reproduces an
// observably identical store.
// Data is a pointer so a document missing its data section can be told
// apart from one with an empty store.
type Backup struct {
	Version    int         `json:"version"`
	ExportedAt time.Time   `json:"exportedAt"`
	AppName    string      `json:"appName"`
	Data       *BackupData `json:"data"`
}

// BackupData is the payload section of a backup document.
type BackupData struct {
	Settings        *Settings        `json:"settings"`
	FixedExpenses   []FixedExpense   `json:"fixedExpenses"`
	Categories      []Category       `json:"categories"`
	Expenses        []Expense        `json:"expenses"`
	MonthlyArchives []MonthlyArchive `json:"monthlyArchives"`
}
