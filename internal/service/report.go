package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/civic_guardian/internal/config"
	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/shenikar/civic_guardian/internal/observability"
	"github.com/shenikar/civic_guardian/internal/store"
	"github.com/sirupsen/logrus"
)

// ErrSubmissionInFlight возвращается при попытке отправить вторую жалобу,
// пока первая еще не завершилась. Отправки сериализуются намеренно.
var ErrSubmissionInFlight = errors.New("another submission is already in flight")

// DefaultLocationText подставляется, когда координата неизвестна,
// а пользователь не указал место вручную
const DefaultLocationText = "Current Location"

// ValidationError - ошибка валидации формы жалобы.
// Показывается пользователю, форма сохраняется для исправления.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("please fill in all required fields: %v", e.Fields)
}

// SubmitReportInput - данные формы жалобы
type SubmitReportInput struct {
	Category    string `validate:"required,oneof=theft vandalism accident suspicious hazard"`
	Description string `validate:"required"`
	Location    string
	FullName    string
	Contact     string
}

// LocationSource отдает последнюю известную координату пользователя
type LocationSource interface {
	LastKnown() (models.Coordinate, bool)
}

// SubmissionListener получает событие об успешно завершенной отправке.
// Вызывается вне блокировок сервиса.
type SubmissionListener interface {
	ReportSubmitted(report *models.Report)
}

// ReportService проводит жалобу через валидацию, имитацию задержки
// внешнего вызова и фиксацию в сторе с сохранением.
type ReportService struct {
	store    *store.IncidentStore
	location LocationSource
	logger   *logrus.Logger
	cfg      *config.Config
	clock    clockwork.Clock
	metrics  *observability.Metrics
	validate *validator.Validate
	listener SubmissionListener

	mu          sync.Mutex
	activeToken uuid.UUID // uuid.Nil, когда отправки нет
}

// NewReportService создает сервис отправки жалоб
func NewReportService(
	incidentStore *store.IncidentStore,
	location LocationSource,
	logger *logrus.Logger,
	cfg *config.Config,
	clock clockwork.Clock,
	metrics *observability.Metrics,
	listener SubmissionListener,
) *ReportService {
	return &ReportService{
		store:    incidentStore,
		location: location,
		logger:   logger,
		cfg:      cfg,
		clock:    clock,
		metrics:  metrics,
		validate: validator.New(),
		listener: listener,
	}
}

// Submit валидирует жалобу и запускает отложенное завершение отправки.
// Возвращает токен отправки; завершение с устаревшим токеном отбрасывается,
// поэтому отмененная отправка не трогает состояние.
func (s *ReportService) Submit(ctx context.Context, input SubmitReportInput) (uuid.UUID, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "Submit",
		"category": input.Category,
	})

	if err := s.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Report validation failed")
		s.metrics.ValidationFailures.Inc()
		return uuid.Nil, s.toValidationError(err)
	}

	s.mu.Lock()
	if s.activeToken != uuid.Nil {
		s.mu.Unlock()
		log.Warn("Rejecting submit: another submission is in flight")
		return uuid.Nil, ErrSubmissionInFlight
	}
	token := uuid.New()
	s.activeToken = token
	s.mu.Unlock()

	locationText := s.resolveLocationText(input.Location)

	log.WithField("token", token).Info("Report accepted, simulating submission latency")
	s.metrics.SubmissionsInFlight.Inc()

	go s.complete(ctx, token, input, locationText)

	return token, nil
}

// InFlight сообщает, идет ли сейчас отправка
func (s *ReportService) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeToken != uuid.Nil
}

// complete досыпает имитацию внешнего вызова и фиксирует жалобу,
// если токен все еще активен
func (s *ReportService) complete(ctx context.Context, token uuid.UUID, input SubmitReportInput, locationText string) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "complete",
		"token":   token,
	})

	select {
	case <-s.clock.After(s.cfg.SubmitLatency):
	case <-ctx.Done():
		log.WithError(ctx.Err()).Warn("Submission abandoned before completion")
		s.release(token)
		s.metrics.SubmissionsInFlight.Dec()
		return
	}

	s.mu.Lock()
	if s.activeToken != token {
		// Устаревшее завершение: пользователь уже ушел с формы
		s.mu.Unlock()
		log.Warn("Discarding stale submission completion")
		s.metrics.SubmissionsInFlight.Dec()
		return
	}
	s.activeToken = uuid.Nil
	s.mu.Unlock()

	now := s.clock.Now()
	report := &models.Report{
		ID:          now.UnixMilli(),
		Category:    models.Category(input.Category),
		Description: input.Description,
		Location:    locationText,
		FullName:    input.FullName,
		Contact:     input.Contact,
		SubmittedAt: now,
		Status:      models.ReportStatusPending,
	}

	// Завершение переживает исходный запрос, поэтому сохраняем без его отмены
	s.store.AddReport(context.WithoutCancel(ctx), report)
	s.metrics.SubmissionsInFlight.Dec()
	s.metrics.ReportsSubmitted.Inc()
	log.WithField("report_id", report.ID).Info("Report submitted successfully")

	if s.listener != nil {
		s.listener.ReportSubmitted(report)
	}
}

// Cancel снимает активную отправку по токену. Завершение с этим
// токеном после отмены будет отброшено.
func (s *ReportService) Cancel(token uuid.UUID) {
	s.release(token)
}

func (s *ReportService) release(token uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeToken == token {
		s.activeToken = uuid.Nil
	}
}

// resolveLocationText подставляет место по умолчанию:
// известная координата форматируется как "lat, lng" с четырьмя знаками
func (s *ReportService) resolveLocationText(locationText string) string {
	if locationText != "" {
		return locationText
	}
	if coord, ok := s.location.LastKnown(); ok {
		return fmt.Sprintf("%.4f, %.4f", coord.Lat, coord.Lng)
	}
	return DefaultLocationText
}

// toValidationError переводит ошибку validator в пользовательскую
func (s *ReportService) toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: []string{err.Error()}}
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}
