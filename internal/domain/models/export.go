package models

import "time"

// ExportStatus tracks one export job in history.
type ExportStatus string

const (
	ExportStatusPending   ExportStatus = "pending"
	ExportStatusCompleted ExportStatus = "completed"
	ExportStatusFailed    ExportStatus = "failed"
)

// ExportHistory is one row of the export audit trail.
type ExportHistory struct {
	ID          int64        `json:"id"`
	Entity      string       `json:"entity"`
	Format      string       `json:"format"`
	Filename    string       `json:"filename"`
	RowCount    int          `json:"rowCount"`
	Status      ExportStatus `json:"status"`
	RequestedBy string       `json:"requestedBy"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// NewExportHistory is the insert payload; status starts pending.
type NewExportHistory struct {
	Entity      string
	Format      string
	Filename    string
	RowCount    int
	RequestedBy string
}
