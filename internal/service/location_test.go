package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/civic_guardian/internal/config"
	"github.com/shenikar/civic_guardian/internal/mapview"
	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/shenikar/civic_guardian/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestLocationService — вспомогательная функция для создания сервиса геолокации
func newTestLocationService(t *testing.T) (*LocationService, *mocks.MockGeolocator, *clockwork.FakeClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	geoMock := mocks.NewMockGeolocator(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		LocationTimeout: 10 * time.Second,
		LocationMaxAge:  5 * time.Minute,
	}
	fakeClock := clockwork.NewFakeClockAt(time.Date(2026, time.August, 30, 15, 0, 0, 0, time.UTC))

	return NewLocationService(geoMock, logger, cfg, fakeClock), geoMock, fakeClock
}

func TestRequestLocation_Success_RecentersViews(t *testing.T) {
	svc, geoMock, _ := newTestLocationService(t)
	coord := models.Coordinate{Lat: 40.7306, Lng: -73.9352}
	view := mapview.NewStateView(mapview.ViewPrimary, models.Coordinate{Lat: 40.7128, Lng: -74.006}, 13)
	svc.RegisterView(view)

	geoMock.EXPECT().CurrentPosition(gomock.Any()).Return(coord, nil).Times(1)

	svc.RequestLocation(context.Background())

	got, ok := svc.LastKnown()
	require.True(t, ok)
	assert.Equal(t, coord, got)

	state := view.Snapshot()
	assert.Equal(t, coord, state.Center)
	assert.Equal(t, 15, state.Zoom)
	require.Len(t, state.Markers, 1)
	assert.Equal(t, mapview.LocationPopup, state.Markers[0].Popup)
}

func TestRequestLocation_FailureKeepsPriorCoordinate(t *testing.T) {
	svc, geoMock, _ := newTestLocationService(t)
	view := mapview.NewStateView(mapview.ViewPrimary, models.Coordinate{Lat: 40.7128, Lng: -74.006}, 13)
	svc.RegisterView(view)

	geoMock.EXPECT().
		CurrentPosition(gomock.Any()).
		Return(models.Coordinate{}, errors.New("permission denied")).
		Times(1)

	svc.RequestLocation(context.Background())

	_, ok := svc.LastKnown()
	assert.False(t, ok)
	// Вид остается на центре по умолчанию
	state := view.Snapshot()
	assert.Equal(t, 40.7128, state.Center.Lat)
	assert.Empty(t, state.Markers)
}

func TestRequestLocation_ReusesFreshCachedCoordinate(t *testing.T) {
	svc, geoMock, fakeClock := newTestLocationService(t)
	coord := models.Coordinate{Lat: 40.7306, Lng: -73.9352}

	geoMock.EXPECT().CurrentPosition(gomock.Any()).Return(coord, nil).Times(1)

	svc.RequestLocation(context.Background())
	fakeClock.Advance(time.Minute)
	// Второй запрос в пределах срока свежести не трогает геолокатор
	svc.RequestLocation(context.Background())

	got, ok := svc.LastKnown()
	require.True(t, ok)
	assert.Equal(t, coord, got)
}

func TestRequestLocation_RefreshesStaleCoordinate(t *testing.T) {
	svc, geoMock, fakeClock := newTestLocationService(t)

	geoMock.EXPECT().
		CurrentPosition(gomock.Any()).
		Return(models.Coordinate{Lat: 1, Lng: 1}, nil).
		Times(1)
	svc.RequestLocation(context.Background())

	fakeClock.Advance(6 * time.Minute)

	geoMock.EXPECT().
		CurrentPosition(gomock.Any()).
		Return(models.Coordinate{Lat: 2, Lng: 2}, nil).
		Times(1)
	svc.RequestLocation(context.Background())

	got, _ := svc.LastKnown()
	assert.Equal(t, models.Coordinate{Lat: 2, Lng: 2}, got)
}

func TestStaticGeolocator(t *testing.T) {
	g := StaticGeolocator{Coordinate: models.Coordinate{Lat: 9.33706, Lng: 125.9698}}

	coord, err := g.CurrentPosition(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 9.33706, coord.Lat)
}
