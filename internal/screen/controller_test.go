package screen

import (
	"bytes"
	"testing"

	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRenderer фиксирует вызовы хуков для проверок
type recordingRenderer struct {
	calls       []string
	highlighted []models.Screen
}

func (r *recordingRenderer) RefreshHome()          { r.calls = append(r.calls, "home") }
func (r *recordingRenderer) RefreshMap()           { r.calls = append(r.calls, "map") }
func (r *recordingRenderer) RefreshReports()       { r.calls = append(r.calls, "reports") }
func (r *recordingRenderer) RefreshProfile()       { r.calls = append(r.calls, "profile") }
func (r *recordingRenderer) RefreshNotifications() { r.calls = append(r.calls, "notifications") }
func (r *recordingRenderer) RefreshAdmin()         { r.calls = append(r.calls, "admin") }
func (r *recordingRenderer) HighlightNav(s models.Screen) {
	r.highlighted = append(r.highlighted, s)
}

func newTestController(t *testing.T) (*Controller, *recordingRenderer) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	renderer := &recordingRenderer{}
	return NewController(renderer, logger), renderer
}

func TestActivate_RunsHookExactlyOnce(t *testing.T) {
	c, renderer := newTestController(t)

	c.Activate(models.ScreenAdmin)

	assert.Equal(t, models.ScreenAdmin, c.Current())
	assert.Equal(t, []string{"admin"}, renderer.calls)
	assert.Equal(t, []models.Screen{models.ScreenAdmin}, renderer.highlighted)
}

func TestActivate_EveryScreenReachableFromAnyOther(t *testing.T) {
	c, renderer := newTestController(t)
	sequence := []models.Screen{
		models.ScreenMap,
		models.ScreenAdmin,
		models.ScreenReportForm,
		models.ScreenNotifications,
		models.ScreenHome,
		models.ScreenProfile,
		models.ScreenReports,
	}

	for _, s := range sequence {
		c.Activate(s)
		assert.Equal(t, s, c.Current())
	}

	// У формы жалобы нет хука, остальные экраны дали по одному вызову
	assert.Equal(t, []string{"map", "admin", "notifications", "home", "profile", "reports"}, renderer.calls)
	// Индикатор навигации обновляется на каждый переход
	require.Len(t, renderer.highlighted, len(sequence))
}

func TestActivate_NilRendererStillUpdatesCurrentScreen(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	c := NewController(nil, logger)

	assert.NotPanics(t, func() { c.Activate(models.ScreenMap) })
	assert.Equal(t, models.ScreenMap, c.Current())
}

func TestToggleAdmin(t *testing.T) {
	c, _ := newTestController(t)

	c.ToggleAdmin()
	assert.Equal(t, models.ScreenAdmin, c.Current())

	c.ToggleAdmin()
	assert.Equal(t, models.ScreenHome, c.Current())
}
