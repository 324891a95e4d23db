package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReports() []*models.Report {
	return []*models.Report{
		{
			ID:          1700000000000,
			Category:    models.CategoryAccident,
			Description: "Fender bender",
			Location:    "Current Location",
			SubmittedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
			Status:      models.ReportStatusPending,
		},
		{
			ID:          1700000000001,
			Category:    models.CategoryHazard,
			Description: "Fallen tree",
			Location:    "40.7100, -74.0080",
			FullName:    "Jane Roe",
			Contact:     "555-0101",
			SubmittedAt: time.Date(2026, 8, 30, 13, 30, 0, 0, time.UTC),
			Status:      models.ReportStatusResolved,
		},
	}
}

func TestFileStorage_LoadReports_NotFound(t *testing.T) {
	s := NewFileStorage(filepath.Join(t.TempDir(), "reports.json"))

	reports, err := s.LoadReports(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, reports)
}

func TestFileStorage_SaveAndLoad(t *testing.T) {
	s := NewFileStorage(filepath.Join(t.TempDir(), "nested", "reports.json"))
	ctx := context.Background()
	expected := testReports()

	require.NoError(t, s.SaveReports(ctx, expected))

	loaded, err := s.LoadReports(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, expected[0].ID, loaded[0].ID)
	assert.Equal(t, models.CategoryAccident, loaded[0].Category)
	assert.Equal(t, models.ReportStatusResolved, loaded[1].Status)
	assert.Equal(t, "Jane Roe", loaded[1].FullName)
}

func TestFileStorage_SaveReports_ReplacesPreviousValue(t *testing.T) {
	s := NewFileStorage(filepath.Join(t.TempDir(), "reports.json"))
	ctx := context.Background()

	require.NoError(t, s.SaveReports(ctx, testReports()))
	require.NoError(t, s.SaveReports(ctx, testReports()[:1]))

	loaded, err := s.LoadReports(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestFileStorage_LoadReports_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	s := NewFileStorage(path)

	_, err := s.LoadReports(context.Background())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
