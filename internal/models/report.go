package models

import (
	"time"
)

// ReportStatus - статус пользовательской жалобы
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusResolved ReportStatus = "resolved"
)

// Report - жалоба, отправленная пользователем через форму.
// В отличие от Incident сохраняется в хранилище при каждом создании.
type Report struct {
	ID          int64        `json:"id"`
	Category    Category     `json:"category"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	FullName    string       `json:"full_name,omitempty"`
	Contact     string       `json:"contact,omitempty"`
	SubmittedAt time.Time    `json:"submitted_at"`
	Status      ReportStatus `json:"status"`
}
