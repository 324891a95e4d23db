package store

import (
	"context"
	"strings"
	"sync"

	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/shenikar/civic_guardian/internal/storage"
	"github.com/sirupsen/logrus"
)

// FilterAll - специальное значение фильтра, возвращающее все инциденты
const FilterAll = "All"

// IncidentStore владеет справочными инцидентами и пользовательскими жалобами.
// Никакой другой компонент не изменяет эти коллекции напрямую.
type IncidentStore struct {
	mu      sync.RWMutex
	storage storage.ReportStorage
	logger  *logrus.Logger

	incidents []*models.Incident
	reports   []*models.Report
}

// NewIncidentStore создает стор поверх хранилища жалоб
func NewIncidentStore(st storage.ReportStorage, logger *logrus.Logger) *IncidentStore {
	return &IncidentStore{
		storage: st,
		logger:  logger,
		reports: make([]*models.Report, 0),
	}
}

// LoadSeedIncidents загружает справочные инциденты. Вызывается один раз
// при старте; коллекция дальше не изменяется и не удаляется.
func (s *IncidentStore) LoadSeedIncidents() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.incidents = []*models.Incident{
		{ID: 1, Coordinate: models.Coordinate{Lat: 40.7128, Lng: -74.0060}, Category: models.CategoryTheft, Description: "Car break-in", RelativeTime: "15 min ago", Distance: "0.5 miles"},
		{ID: 2, Coordinate: models.Coordinate{Lat: 40.7180, Lng: -74.0100}, Category: models.CategoryVandalism, Description: "Graffiti on building", RelativeTime: "2 hours ago", Distance: "0.8 miles"},
		{ID: 3, Coordinate: models.Coordinate{Lat: 40.7080, Lng: -74.0050}, Category: models.CategoryAccident, Description: "Two-car collision", RelativeTime: "5 hours ago", Distance: "1.2 miles"},
		{ID: 4, Coordinate: models.Coordinate{Lat: 40.7150, Lng: -74.0150}, Category: models.CategorySuspicious, Description: "Suspicious person", RelativeTime: "1 day ago", Distance: "0.3 miles"},
		{ID: 5, Coordinate: models.Coordinate{Lat: 40.7100, Lng: -74.0080}, Category: models.CategoryHazard, Description: "Fallen tree blocking road", RelativeTime: "2 days ago", Distance: "0.7 miles"},
	}
	s.logger.WithField("count", len(s.incidents)).Info("Seed incidents loaded")
}

// LoadPersistedReports читает сохраненные жалобы при старте.
// Ошибка чтения или разбора не роняет запуск: остаемся с пустой коллекцией.
func (s *IncidentStore) LoadPersistedReports(ctx context.Context) {
	log := s.logger.WithFields(logrus.Fields{
		"store":  "incident",
		"method": "LoadPersistedReports",
	})

	reports, err := s.storage.LoadReports(ctx)
	if err != nil {
		if err == storage.ErrNotFound {
			log.Info("No persisted reports found, starting with empty collection")
		} else {
			log.WithError(err).Warn("Failed to load persisted reports, starting with empty collection")
		}
		return
	}

	s.mu.Lock()
	s.reports = reports
	s.mu.Unlock()
	log.WithField("count", len(reports)).Info("Persisted reports loaded")
}

// AddReport добавляет жалобу и сразу перезаписывает коллекцию в хранилище.
// Ошибка записи не отменяет добавление: жалоба остается в памяти, ошибка только логируется.
func (s *IncidentStore) AddReport(ctx context.Context, report *models.Report) {
	s.mu.Lock()
	s.reports = append(s.reports, report)
	snapshot := make([]*models.Report, len(s.reports))
	copy(snapshot, s.reports)
	s.mu.Unlock()

	if err := s.storage.SaveReports(ctx, snapshot); err != nil {
		s.logger.WithError(err).WithField("report_id", report.ID).
			Warn("Failed to persist report collection")
	}
}

// Incidents возвращает все справочные инциденты
func (s *IncidentStore) Incidents() []*models.Incident {
	return s.FilterIncidents(FilterAll)
}

// FilterIncidents возвращает инциденты заданной категории.
// Сравнение без учета регистра; "All" или пустая строка - без фильтра.
func (s *IncidentStore) FilterIncidents(category string) []*models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if category == "" || strings.EqualFold(category, FilterAll) {
		out := make([]*models.Incident, len(s.incidents))
		copy(out, s.incidents)
		return out
	}

	out := make([]*models.Incident, 0)
	for _, incident := range s.incidents {
		if strings.EqualFold(string(incident.Category), category) {
			out = append(out, incident)
		}
	}
	return out
}

// Reports возвращает снимок коллекции жалоб в порядке добавления
func (s *IncidentStore) Reports() []*models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Report, len(s.reports))
	copy(out, s.reports)
	return out
}

// ReportByID возвращает жалобу по идентификатору
func (s *IncidentStore) ReportByID(id int64) (*models.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, report := range s.reports {
		if report.ID == id {
			return report, true
		}
	}
	return nil, false
}
