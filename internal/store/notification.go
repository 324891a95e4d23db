package store

import (
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/civic_guardian/internal/models"
)

// NotificationFeed владеет лентой уведомлений.
// Инвариант: лента всегда упорядочена от новых к старым,
// поэтому новые записи добавляются только в начало.
type NotificationFeed struct {
	mu            sync.RWMutex
	clock         clockwork.Clock
	notifications []*models.Notification
}

// NewNotificationFeed создает пустую ленту уведомлений
func NewNotificationFeed(clock clockwork.Clock) *NotificationFeed {
	return &NotificationFeed{
		clock:         clock,
		notifications: make([]*models.Notification, 0),
	}
}

// Seed загружает фиксированный стартовый набор уведомлений
func (f *NotificationFeed) Seed() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.notifications = []*models.Notification{
		{ID: 1, Title: "New Incident Near You", Description: "A traffic accident was reported 0.3 miles from your location.", RelativeTime: "2 minutes ago", Icon: "fas fa-exclamation-triangle", Unread: true},
		{ID: 2, Title: "Report Resolved", Description: "Your report #1256 has been resolved by local authorities.", RelativeTime: "1 hour ago", Icon: "fas fa-check-circle", Unread: false},
		{ID: 3, Title: "App Update Available", Description: "Update to version 2.1.0 is now available with new features.", RelativeTime: "3 hours ago", Icon: "fas fa-info-circle", Unread: false},
		{ID: 4, Title: "Emergency Alert", Description: "Police activity reported in your area. Please avoid the area if possible.", RelativeTime: "30 minutes ago", Icon: "fas fa-shield-alt", Unread: true},
	}
}

// PushEmergencyAlert добавляет непрочитанное экстренное уведомление в начало ленты
func (f *NotificationFeed) PushEmergencyAlert() *models.Notification {
	notification := &models.Notification{
		ID:           f.clock.Now().UnixMilli(),
		Title:        "Emergency Alert Sent",
		Description:  "Emergency services have been contacted. Stay safe and follow instructions.",
		RelativeTime: "Just now",
		Icon:         "fas fa-exclamation-triangle",
		Unread:       true,
	}

	f.mu.Lock()
	f.notifications = append([]*models.Notification{notification}, f.notifications...)
	f.mu.Unlock()
	return notification
}

// MarkAllRead помечает все уведомления прочитанными. Повторные вызовы - no-op.
func (f *NotificationFeed) MarkAllRead() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, n := range f.notifications {
		n.Unread = false
	}
}

// Snapshot возвращает копию ленты от новых к старым
func (f *NotificationFeed) Snapshot() []*models.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]*models.Notification, len(f.notifications))
	copy(out, f.notifications)
	return out
}

// UnreadCount возвращает количество непрочитанных уведомлений
func (f *NotificationFeed) UnreadCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	count := 0
	for _, n := range f.notifications {
		if n.Unread {
			count++
		}
	}
	return count
}
