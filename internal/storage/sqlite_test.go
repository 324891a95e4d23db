package storage

import (
	"context"
	"testing"

	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := OpenSQLiteStorage(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStorage_LoadReports_Empty(t *testing.T) {
	s := newTestSQLiteStorage(t)

	reports, err := s.LoadReports(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, reports)
}

func TestSQLiteStorage_SaveAndLoad(t *testing.T) {
	s := newTestSQLiteStorage(t)
	ctx := context.Background()
	expected := testReports()

	require.NoError(t, s.SaveReports(ctx, expected))

	loaded, err := s.LoadReports(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	// Порядок добавления должен сохраняться
	assert.Equal(t, expected[0].ID, loaded[0].ID)
	assert.Equal(t, expected[1].ID, loaded[1].ID)
	assert.True(t, expected[1].SubmittedAt.Equal(loaded[1].SubmittedAt))
	assert.Equal(t, models.ReportStatusPending, loaded[0].Status)
}

func TestSQLiteStorage_SaveReports_ReplacesPreviousValue(t *testing.T) {
	s := newTestSQLiteStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveReports(ctx, testReports()))
	require.NoError(t, s.SaveReports(ctx, testReports()[1:]))

	loaded, err := s.LoadReports(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, models.CategoryHazard, loaded[0].Category)
}
