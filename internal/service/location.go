package service

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/civic_guardian/internal/config"
	"github.com/shenikar/civic_guardian/internal/mapview"
	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/sirupsen/logrus"
)

// Зум, на который перецентровывается карта после определения координаты
const locateZoom = 15

// Geolocator - контракт внешнего источника координат.
// Один запрос - одна попытка; таймаут задается вызывающей стороной.
type Geolocator interface {
	CurrentPosition(ctx context.Context) (models.Coordinate, error)
}

// LocationService оборачивает геолокатор: кеширует последнюю известную
// координату и перецентровывает зарегистрированные виды карты.
// Ошибка получения координаты молча логируется, прежняя координата сохраняется.
type LocationService struct {
	geolocator Geolocator
	logger     *logrus.Logger
	cfg        *config.Config
	clock      clockwork.Clock

	mu        sync.Mutex
	views     []mapview.View
	lastKnown *models.Coordinate
	fixedAt   time.Time
}

// NewLocationService создает сервис геолокации
func NewLocationService(geolocator Geolocator, logger *logrus.Logger, cfg *config.Config, clock clockwork.Clock) *LocationService {
	return &LocationService{
		geolocator: geolocator,
		logger:     logger,
		cfg:        cfg,
		clock:      clock,
	}
}

// RegisterView подписывает вид карты на перецентровку при новой координате
func (s *LocationService) RegisterView(v mapview.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views = append(s.views, v)
}

// RequestLocation делает одноразовый запрос координаты.
// Достаточно свежая кешированная координата переиспользуется без запроса.
func (s *LocationService) RequestLocation(ctx context.Context) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "RequestLocation",
	})

	s.mu.Lock()
	if s.lastKnown != nil && s.clock.Since(s.fixedAt) < s.cfg.LocationMaxAge {
		coord := *s.lastKnown
		s.mu.Unlock()
		log.Debug("Reusing cached coordinate")
		s.recenter(coord)
		return
	}
	s.mu.Unlock()

	reqCtx, cancel := context.WithTimeout(ctx, s.cfg.LocationTimeout)
	defer cancel()

	coord, err := s.geolocator.CurrentPosition(reqCtx)
	if err != nil {
		// Отказ или таймаут не показываем пользователю: остаемся
		// на прежней координате или центре по умолчанию
		log.WithError(err).Warn("Failed to acquire location")
		return
	}

	s.mu.Lock()
	s.lastKnown = &coord
	s.fixedAt = s.clock.Now()
	s.mu.Unlock()

	log.WithFields(logrus.Fields{"lat": coord.Lat, "lng": coord.Lng}).Info("Location acquired")
	s.recenter(coord)
}

// LastKnown возвращает последнюю известную координату
func (s *LocationService) LastKnown() (models.Coordinate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastKnown == nil {
		return models.Coordinate{}, false
	}
	return *s.lastKnown, true
}

// recenter перемещает все зарегистрированные виды к координате
// и ставит маркер местоположения
func (s *LocationService) recenter(coord models.Coordinate) {
	s.mu.Lock()
	views := make([]mapview.View, len(s.views))
	copy(views, s.views)
	s.mu.Unlock()

	for _, v := range views {
		v.SetView(coord, locateZoom)
		mapview.AddLocationMarker(v, coord)
	}
}

// StaticGeolocator всегда возвращает одну и ту же координату.
// Используется, когда настоящего источника координат нет.
type StaticGeolocator struct {
	Coordinate models.Coordinate
}

// CurrentPosition возвращает фиксированную координату
func (g StaticGeolocator) CurrentPosition(_ context.Context) (models.Coordinate, error) {
	return g.Coordinate, nil
}
