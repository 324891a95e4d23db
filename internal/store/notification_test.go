package store

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFeed(t *testing.T) (*NotificationFeed, *clockwork.FakeClock) {
	t.Helper()
	fakeClock := clockwork.NewFakeClockAt(time.Date(2026, time.August, 30, 15, 0, 0, 0, time.UTC))
	return NewNotificationFeed(fakeClock), fakeClock
}

func TestSeed_LoadsInitialEntries(t *testing.T) {
	feed, _ := newTestFeed(t)

	feed.Seed()

	notifications := feed.Snapshot()
	require.Len(t, notifications, 4)
	assert.Equal(t, "New Incident Near You", notifications[0].Title)
	assert.Equal(t, 2, feed.UnreadCount())
}

func TestPushEmergencyAlert_PrependsUnreadEntry(t *testing.T) {
	feed, fakeClock := newTestFeed(t)
	feed.Seed()

	pushed := feed.PushEmergencyAlert()

	notifications := feed.Snapshot()
	require.Len(t, notifications, 5)
	// Новая запись всегда первая
	assert.Equal(t, pushed.ID, notifications[0].ID)
	assert.Equal(t, fakeClock.Now().UnixMilli(), notifications[0].ID)
	assert.Equal(t, "Emergency Alert Sent", notifications[0].Title)
	assert.Equal(t, "Just now", notifications[0].RelativeTime)
	assert.True(t, notifications[0].Unread)
}

func TestPushEmergencyAlert_KeepsMostRecentFirstOrder(t *testing.T) {
	feed, fakeClock := newTestFeed(t)

	first := feed.PushEmergencyAlert()
	fakeClock.Advance(time.Minute)
	second := feed.PushEmergencyAlert()

	notifications := feed.Snapshot()
	require.Len(t, notifications, 2)
	assert.Equal(t, second.ID, notifications[0].ID)
	assert.Equal(t, first.ID, notifications[1].ID)
}

func TestMarkAllRead_Idempotent(t *testing.T) {
	feed, _ := newTestFeed(t)
	feed.Seed()
	feed.PushEmergencyAlert()
	require.NotZero(t, feed.UnreadCount())

	feed.MarkAllRead()
	assert.Zero(t, feed.UnreadCount())

	// Повторный вызов ничего не меняет
	before := feed.Snapshot()
	feed.MarkAllRead()
	assert.Equal(t, before, feed.Snapshot())
}
