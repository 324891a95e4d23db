package v1

import (
	"time"

	"github.com/google/uuid"
)

// ActivateScreenRequest DTO для переключения экрана
// @Description DTO для переключения экрана
type ActivateScreenRequest struct {
	Screen string `json:"screen" validate:"required"`
}

// ScreenResponse DTO для ответа с текущим состоянием экранов
// @Description DTO для ответа с текущим состоянием экранов
type ScreenResponse struct {
	Screen      string `json:"screen"`
	Clock       string `json:"clock"`
	UnreadCount int    `json:"unread_count"`
}

// IncidentResponse DTO для ответа со справочным инцидентом
// @Description DTO для ответа со справочным инцидентом
type IncidentResponse struct {
	ID           int     `json:"id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	RelativeTime string  `json:"relative_time"`
	Distance     string  `json:"distance"`
}

// SubmitReportRequest DTO для отправки жалобы
// @Description DTO для отправки жалобы
type SubmitReportRequest struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
	FullName    string `json:"full_name,omitempty"`
	Contact     string `json:"contact,omitempty"`
}

// ReportResponse DTO для ответа с жалобой
// @Description DTO для ответа с жалобой
type ReportResponse struct {
	ID          int64     `json:"id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	FullName    string    `json:"full_name,omitempty"`
	Contact     string    `json:"contact,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
	Status      string    `json:"status"`
}

// StageAttachmentRequest DTO для добавления файла в область подготовки
// @Description DTO для добавления файла в область подготовки
type StageAttachmentRequest struct {
	Name string `json:"name" validate:"required"`
	Size int64  `json:"size" validate:"gte=0"`
}

// AttachmentResponse DTO для ответа с файлом из области подготовки
// @Description DTO для ответа с файлом из области подготовки
type AttachmentResponse struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// NotificationResponse DTO для ответа с уведомлением
// @Description DTO для ответа с уведомлением
type NotificationResponse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	RelativeTime string `json:"relative_time"`
	Icon         string `json:"icon"`
	Unread       bool   `json:"unread"`
}

// DialogResponse DTO для ответа с ожидающим диалогом
// @Description DTO для ответа с ожидающим диалогом
type DialogResponse struct {
	ID      uuid.UUID `json:"id"`
	Kind    string    `json:"kind"`
	Prompt  string    `json:"prompt"`
	Options []string  `json:"options,omitempty"`
}

// AnswerDialogRequest DTO для ответа на диалог
// @Description DTO для ответа на диалог
type AnswerDialogRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// ToastResponse DTO для ответа с всплывающим сообщением
// @Description DTO для ответа с всплывающим сообщением
type ToastResponse struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

// LocationResponse DTO для ответа с координатой пользователя
// @Description DTO для ответа с координатой пользователя
type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AdminStatsResponse DTO для ответа со сводкой админ-экрана
// @Description DTO для ответа со сводкой админ-экрана
type AdminStatsResponse struct {
	ReportsToday        int `json:"reports_today"`
	PendingCount        int `json:"pending_count"`
	ResolvedCount       int `json:"resolved_count"`
	ResponseRatePercent int `json:"response_rate_percent"`
}

// ProfileStatsResponse DTO для ответа со счетчиками профиля
// @Description DTO для ответа со счетчиками профиля
type ProfileStatsResponse struct {
	Total    int `json:"total"`
	Resolved int `json:"resolved"`
	Pending  int `json:"pending"`
}
