package service

import (
	"math"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/shenikar/civic_guardian/internal/store"
	"github.com/sirupsen/logrus"
)

// DefaultActivityLimit - размер таблицы последних жалоб на админ-экране
const DefaultActivityLimit = 10

// AdminStats - сводные показатели для админ-экрана
type AdminStats struct {
	ReportsToday        int `json:"reports_today"`
	PendingCount        int `json:"pending_count"`
	ResolvedCount       int `json:"resolved_count"`
	ResponseRatePercent int `json:"response_rate_percent"`
}

// ProfileStats - счетчики жалоб для экрана профиля
type ProfileStats struct {
	Total    int `json:"total"`
	Resolved int `json:"resolved"`
	Pending  int `json:"pending"`
}

// AdminService вычисляет производные показатели по коллекции жалоб.
// Стор только читается, никогда не изменяется.
type AdminService struct {
	store  *store.IncidentStore
	logger *logrus.Logger
	clock  clockwork.Clock
}

// NewAdminService создает сервис админ-агрегации
func NewAdminService(incidentStore *store.IncidentStore, logger *logrus.Logger, clock clockwork.Clock) *AdminService {
	return &AdminService{
		store:  incidentStore,
		logger: logger,
		clock:  clock,
	}
}

// ComputeStats пересчитывает сводку по текущей коллекции жалоб
func (s *AdminService) ComputeStats() AdminStats {
	reports := s.store.Reports()
	now := s.clock.Now()

	stats := AdminStats{}
	for _, report := range reports {
		if sameDay(report.SubmittedAt.In(now.Location()), now) {
			stats.ReportsToday++
		}
		switch report.Status {
		case models.ReportStatusPending:
			stats.PendingCount++
		case models.ReportStatusResolved:
			stats.ResolvedCount++
		}
	}

	// Деление на ноль не допускаем: пустая коллекция дает 0%
	if len(reports) > 0 {
		stats.ResponseRatePercent = int(math.Round(float64(stats.ResolvedCount) / float64(len(reports)) * 100))
	}

	s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "ComputeStats",
		"total":   len(reports),
		"pending": stats.PendingCount,
	}).Debug("Admin stats recomputed")
	return stats
}

// RecentActivity возвращает последние limit жалоб от новых к старым
func (s *AdminService) RecentActivity(limit int) []*models.Report {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	reports := s.store.Reports()
	if len(reports) > limit {
		reports = reports[len(reports)-limit:]
	}

	// Разворачиваем: в сторе жалобы лежат в порядке добавления
	out := make([]*models.Report, len(reports))
	for i, report := range reports {
		out[len(reports)-1-i] = report
	}
	return out
}

// ProfileStats пересчитывает счетчики жалоб для экрана профиля
func (s *AdminService) ProfileStats() ProfileStats {
	reports := s.store.Reports()

	stats := ProfileStats{Total: len(reports)}
	for _, report := range reports {
		switch report.Status {
		case models.ReportStatusPending:
			stats.Pending++
		case models.ReportStatusResolved:
			stats.Resolved++
		}
	}
	return stats
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
