package models

// Notification - запись в ленте уведомлений
type Notification struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	RelativeTime string `json:"relative_time"`
	Icon         string `json:"icon"`
	Unread       bool   `json:"unread"`
}
