package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/shenikar/civic_guardian/internal/store"
	storagemocks "github.com/shenikar/civic_guardian/internal/storage/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAdminService — вспомогательная функция: стор наполняется
// жалобами через мок хранилища
func newTestAdminService(t *testing.T, persisted []*models.Report) (*AdminService, *clockwork.FakeClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	storageMock := storagemocks.NewMockReportStorage(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	fakeClock := clockwork.NewFakeClockAt(time.Date(2026, time.August, 30, 15, 0, 0, 0, time.UTC))

	incidentStore := store.NewIncidentStore(storageMock, logger)
	if persisted != nil {
		storageMock.EXPECT().LoadReports(gomock.Any()).Return(persisted, nil).Times(1)
		incidentStore.LoadPersistedReports(context.Background())
	}

	return NewAdminService(incidentStore, logger, fakeClock), fakeClock
}

func TestComputeStats_EmptyCollection(t *testing.T) {
	svc, _ := newTestAdminService(t, nil)

	stats := svc.ComputeStats()

	assert.Equal(t, 0, stats.ReportsToday)
	assert.Equal(t, 0, stats.PendingCount)
	assert.Equal(t, 0, stats.ResolvedCount)
	// При пустой коллекции процент ответов равен нулю, а не NaN
	assert.Equal(t, 0, stats.ResponseRatePercent)
}

func TestComputeStats_CountsAndResponseRate(t *testing.T) {
	now := time.Date(2026, time.August, 30, 15, 0, 0, 0, time.UTC)
	svc, _ := newTestAdminService(t, []*models.Report{
		{ID: 1, Status: models.ReportStatusResolved, SubmittedAt: now.Add(-26 * time.Hour)},
		{ID: 2, Status: models.ReportStatusPending, SubmittedAt: now.Add(-2 * time.Hour)},
		{ID: 3, Status: models.ReportStatusResolved, SubmittedAt: now.Add(-time.Minute)},
	})

	stats := svc.ComputeStats()

	assert.Equal(t, 2, stats.ReportsToday)
	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 2, stats.ResolvedCount)
	// round(2/3*100) = 67
	assert.Equal(t, 67, stats.ResponseRatePercent)
}

func TestComputeStats_AllPending(t *testing.T) {
	now := time.Date(2026, time.August, 30, 15, 0, 0, 0, time.UTC)
	svc, _ := newTestAdminService(t, []*models.Report{
		{ID: 1, Status: models.ReportStatusPending, SubmittedAt: now},
		{ID: 2, Status: models.ReportStatusPending, SubmittedAt: now},
	})

	stats := svc.ComputeStats()

	assert.Equal(t, 2, stats.PendingCount)
	assert.Equal(t, 0, stats.ResponseRatePercent)
}

func TestRecentActivity_TruncatesAndReverses(t *testing.T) {
	reports := make([]*models.Report, 0, 12)
	base := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	for i := 1; i <= 12; i++ {
		reports = append(reports, &models.Report{
			ID:          int64(i),
			Description: fmt.Sprintf("report %d", i),
			SubmittedAt: base.Add(time.Duration(i) * time.Minute),
			Status:      models.ReportStatusPending,
		})
	}
	svc, _ := newTestAdminService(t, reports)

	activity := svc.RecentActivity(0)

	require.Len(t, activity, DefaultActivityLimit)
	// От новых к старым: последние 10 из 12
	assert.Equal(t, int64(12), activity[0].ID)
	assert.Equal(t, int64(3), activity[len(activity)-1].ID)
}

func TestRecentActivity_FewerThanLimit(t *testing.T) {
	svc, _ := newTestAdminService(t, []*models.Report{
		{ID: 1, Status: models.ReportStatusPending},
		{ID: 2, Status: models.ReportStatusPending},
	})

	activity := svc.RecentActivity(10)

	require.Len(t, activity, 2)
	assert.Equal(t, int64(2), activity[0].ID)
	assert.Equal(t, int64(1), activity[1].ID)
}

func TestProfileStats(t *testing.T) {
	svc, _ := newTestAdminService(t, []*models.Report{
		{ID: 1, Status: models.ReportStatusPending},
		{ID: 2, Status: models.ReportStatusResolved},
		{ID: 3, Status: models.ReportStatusPending},
	})

	stats := svc.ProfileStats()

	assert.Equal(t, ProfileStats{Total: 3, Resolved: 1, Pending: 2}, stats)
}
