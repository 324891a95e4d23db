package store

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/shenikar/civic_guardian/internal/storage"
	"github.com/shenikar/civic_guardian/internal/storage/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentStore — вспомогательная функция для создания стора с моком хранилища
func newTestIncidentStore(t *testing.T) (*IncidentStore, *mocks.MockReportStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	storageMock := mocks.NewMockReportStorage(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	s := NewIncidentStore(storageMock, logger)
	return s, storageMock
}

func TestFilterIncidents_All(t *testing.T) {
	s, _ := newTestIncidentStore(t)
	s.LoadSeedIncidents()

	incidents := s.FilterIncidents(FilterAll)

	require.Len(t, incidents, 5)
	// Все пять категорий присутствуют
	seen := map[models.Category]bool{}
	for _, incident := range incidents {
		seen[incident.Category] = true
	}
	for _, category := range models.Categories() {
		assert.True(t, seen[category], "missing category %s", category)
	}
}

func TestFilterIncidents_ByCategory(t *testing.T) {
	s, _ := newTestIncidentStore(t)
	s.LoadSeedIncidents()

	for _, category := range models.Categories() {
		incidents := s.FilterIncidents(string(category))
		require.Len(t, incidents, 1, "category %s", category)
		assert.Equal(t, category, incidents[0].Category)
	}
}

func TestFilterIncidents_CaseInsensitive(t *testing.T) {
	s, _ := newTestIncidentStore(t)
	s.LoadSeedIncidents()

	incidents := s.FilterIncidents("Hazard")

	require.Len(t, incidents, 1)
	assert.Equal(t, 5, incidents[0].ID)
	assert.Equal(t, "Fallen tree blocking road", incidents[0].Description)
}

func TestFilterIncidents_EmptyFilterReturnsAll(t *testing.T) {
	s, _ := newTestIncidentStore(t)
	s.LoadSeedIncidents()

	assert.Len(t, s.FilterIncidents(""), 5)
}

func TestAddReport_AppendsAndPersists(t *testing.T) {
	s, storageMock := newTestIncidentStore(t)
	ctx := context.Background()
	report := &models.Report{
		ID:          1,
		Category:    models.CategoryTheft,
		Description: "Car break-in",
		Status:      models.ReportStatusPending,
		SubmittedAt: time.Now(),
	}

	storageMock.EXPECT().
		SaveReports(ctx, gomock.Len(1)).
		Return(nil).
		Times(1)

	s.AddReport(ctx, report)

	reports := s.Reports()
	require.Len(t, reports, 1)
	assert.Equal(t, report.ID, reports[0].ID)
}

func TestAddReport_PersistFailureKeepsReportInMemory(t *testing.T) {
	s, storageMock := newTestIncidentStore(t)
	ctx := context.Background()

	storageMock.EXPECT().
		SaveReports(ctx, gomock.Any()).
		Return(errors.New("disk full")).
		Times(1)

	s.AddReport(ctx, &models.Report{ID: 7, Category: models.CategoryHazard, Description: "x"})

	assert.Len(t, s.Reports(), 1)
}

func TestLoadPersistedReports_NotFound(t *testing.T) {
	s, storageMock := newTestIncidentStore(t)
	ctx := context.Background()

	storageMock.EXPECT().
		LoadReports(ctx).
		Return(nil, storage.ErrNotFound).
		Times(1)

	s.LoadPersistedReports(ctx)

	assert.Empty(t, s.Reports())
}

func TestLoadPersistedReports_ReadFailureLeavesCollectionEmpty(t *testing.T) {
	s, storageMock := newTestIncidentStore(t)
	ctx := context.Background()

	storageMock.EXPECT().
		LoadReports(ctx).
		Return(nil, errors.New("malformed payload")).
		Times(1)

	s.LoadPersistedReports(ctx)

	assert.Empty(t, s.Reports())
}

func TestLoadPersistedReports_OverwritesInMemoryDefault(t *testing.T) {
	s, storageMock := newTestIncidentStore(t)
	ctx := context.Background()
	persisted := []*models.Report{
		{ID: 10, Category: models.CategoryAccident, Description: "stored", Status: models.ReportStatusPending},
		{ID: 11, Category: models.CategoryTheft, Description: "stored too", Status: models.ReportStatusResolved},
	}

	storageMock.EXPECT().
		LoadReports(ctx).
		Return(persisted, nil).
		Times(1)

	s.LoadPersistedReports(ctx)

	reports := s.Reports()
	require.Len(t, reports, 2)
	assert.Equal(t, int64(10), reports[0].ID)

	got, ok := s.ReportByID(11)
	require.True(t, ok)
	assert.Equal(t, models.ReportStatusResolved, got.Status)
}

func TestReportByID_NotFound(t *testing.T) {
	s, _ := newTestIncidentStore(t)

	_, ok := s.ReportByID(42)

	assert.False(t, ok)
}
