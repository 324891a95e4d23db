package app

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/civic_guardian/internal/config"
	"github.com/shenikar/civic_guardian/internal/dialog"
	"github.com/shenikar/civic_guardian/internal/mapview"
	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/shenikar/civic_guardian/internal/observability"
	"github.com/shenikar/civic_guardian/internal/screen"
	"github.com/shenikar/civic_guardian/internal/service"
	"github.com/shenikar/civic_guardian/internal/storage"
	"github.com/shenikar/civic_guardian/internal/store"
	"github.com/sirupsen/logrus"
)

// Виды всплывающих сообщений
const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// Toast - всплывающее сообщение. Активно не более одного:
// новое сообщение вытесняет предыдущее.
type Toast struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

// Attachment - файл в области подготовки формы жалобы.
// Хранится только имя и размер, содержимое никуда не передается.
type Attachment struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// App собирает сторы, сервисы и контроллер экранов в одно приложение.
// Создается один раз на процесс.
type App struct {
	cfg     *config.Config
	logger  *logrus.Logger
	clock   clockwork.Clock
	metrics *observability.Metrics

	store   *store.IncidentStore
	feed    *store.NotificationFeed
	dialogs *dialog.Broker

	primaryView *mapview.StateView
	fullView    *mapview.StateView

	reports  *service.ReportService
	admin    *service.AdminService
	location *service.LocationService
	screens  *screen.Controller

	mu          sync.Mutex
	toast       *Toast
	toastToken  uint64
	clockText   string
	attachments []Attachment

	reportsView   []*models.Report
	profileView   service.ProfileStats
	adminStats    service.AdminStats
	adminActivity []*models.Report
}

// NewApp собирает приложение из конфигурации и внешних зависимостей
func NewApp(
	cfg *config.Config,
	logger *logrus.Logger,
	clock clockwork.Clock,
	metrics *observability.Metrics,
	reportStorage storage.ReportStorage,
	geolocator service.Geolocator,
) *App {
	center := models.Coordinate{Lat: cfg.DefaultLat, Lng: cfg.DefaultLng}

	primaryView := mapview.NewStateView(mapview.ViewPrimary, center, cfg.DefaultZoom)
	primaryView.AddTileLayer(mapview.DefaultTileURL, mapview.DefaultAttribution)
	fullView := mapview.NewStateView(mapview.ViewFull, center, cfg.DefaultZoom)
	fullView.AddTileLayer(mapview.DefaultTileURL, mapview.DefaultAttribution)

	incidentStore := store.NewIncidentStore(reportStorage, logger)
	locationSvc := service.NewLocationService(geolocator, logger, cfg, clock)
	locationSvc.RegisterView(primaryView)
	locationSvc.RegisterView(fullView)

	a := &App{
		cfg:         cfg,
		logger:      logger,
		clock:       clock,
		metrics:     metrics,
		store:       incidentStore,
		feed:        store.NewNotificationFeed(clock),
		dialogs:     dialog.NewBroker(),
		primaryView: primaryView,
		fullView:    fullView,
		admin:       service.NewAdminService(incidentStore, logger, clock),
		location:    locationSvc,
	}
	a.reports = service.NewReportService(incidentStore, locationSvc, logger, cfg, clock, metrics, a)
	a.screens = screen.NewController(a, logger)
	return a
}

// Bootstrap загружает стартовые данные и активирует домашний экран
func (a *App) Bootstrap(ctx context.Context) {
	a.store.LoadSeedIncidents()
	a.store.LoadPersistedReports(ctx)
	a.feed.Seed()
	a.refreshClockText()
	a.screens.Activate(models.ScreenHome)
}

// Start запускает фоновое обновление отображаемого времени
func (a *App) Start(ctx context.Context) {
	ticker := a.clock.NewTicker(a.cfg.ClockTick)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
				a.refreshClockText()
			}
		}
	}()
}

func (a *App) refreshClockText() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.clockText = a.clock.Now().Format("15:04")
}

// ClockText возвращает отображаемое время в формате ЧЧ:ММ
func (a *App) ClockText() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.clockText
}

// Activate переключает активный экран
func (a *App) Activate(s models.Screen) {
	a.screens.Activate(s)
}

// CurrentScreen возвращает активный экран
func (a *App) CurrentScreen() models.Screen {
	return a.screens.Current()
}

// ToggleAdmin переключает админ-экран
func (a *App) ToggleAdmin() {
	a.screens.ToggleAdmin()
}

// Incidents возвращает справочные инциденты без фильтра
func (a *App) Incidents() []*models.Incident {
	return a.store.Incidents()
}

// FilterIncidents возвращает инциденты заданной категории
func (a *App) FilterIncidents(category string) []*models.Incident {
	return a.store.FilterIncidents(category)
}

// Reports возвращает коллекцию жалоб в порядке добавления
func (a *App) Reports() []*models.Report {
	return a.store.Reports()
}

// ReportByID возвращает жалобу по идентификатору
func (a *App) ReportByID(id int64) (*models.Report, bool) {
	return a.store.ReportByID(id)
}

// AdminStatsNow пересчитывает сводку админ-экрана по текущей коллекции
func (a *App) AdminStatsNow() service.AdminStats {
	return a.admin.ComputeStats()
}

// AdminActivity возвращает последние limit жалоб от новых к старым
func (a *App) AdminActivity(limit int) []*models.Report {
	return a.admin.RecentActivity(limit)
}

// ProfileStatsNow пересчитывает счетчики жалоб экрана профиля
func (a *App) ProfileStatsNow() service.ProfileStats {
	return a.admin.ProfileStats()
}

// Notifications возвращает ленту уведомлений от новых к старым
func (a *App) Notifications() []*models.Notification {
	return a.feed.Snapshot()
}

// UnreadCount возвращает количество непрочитанных уведомлений
func (a *App) UnreadCount() int {
	return a.feed.UnreadCount()
}

// MarkNotificationsRead помечает все уведомления прочитанными
func (a *App) MarkNotificationsRead() {
	a.feed.MarkAllRead()
}

// Dialogs возвращает брокер ожидающих диалогов
func (a *App) Dialogs() *dialog.Broker {
	return a.dialogs
}

// MapState возвращает снимок состояния вида карты по имени
func (a *App) MapState(name string) (mapview.State, bool) {
	switch name {
	case mapview.ViewPrimary:
		return a.primaryView.Snapshot(), true
	case mapview.ViewFull:
		return a.fullView.Snapshot(), true
	}
	return mapview.State{}, false
}

// RequestLocation запрашивает координату и перецентровывает карты
func (a *App) RequestLocation(ctx context.Context) {
	a.location.RequestLocation(ctx)
}

// LastKnownLocation возвращает последнюю известную координату
func (a *App) LastKnownLocation() (models.Coordinate, bool) {
	return a.location.LastKnown()
}

// SubmitReport проводит жалобу через сервис отправки.
// Ошибка валидации дополнительно показывается всплывающим сообщением.
func (a *App) SubmitReport(ctx context.Context, input service.SubmitReportInput) error {
	_, err := a.reports.Submit(ctx, input)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			a.ShowMessage("Please fill in all required fields", ToastError)
		}
		return err
	}
	return nil
}

// SubmissionInFlight сообщает, идет ли сейчас отправка жалобы
func (a *App) SubmissionInFlight() bool {
	return a.reports.InFlight()
}

// ReportSubmitted вызывается сервисом отправки после фиксации жалобы.
// Область подготовки файлов очищается вместе с формой.
func (a *App) ReportSubmitted(_ *models.Report) {
	a.mu.Lock()
	a.attachments = nil
	a.mu.Unlock()

	a.ShowMessage("Incident reported successfully!", ToastSuccess)
	a.screens.Activate(models.ScreenHome)
}

// StageAttachment добавляет файл в область подготовки формы жалобы
func (a *App) StageAttachment(name string, size int64) Attachment {
	attachment := Attachment{Name: name, Size: size}
	a.mu.Lock()
	a.attachments = append(a.attachments, attachment)
	a.mu.Unlock()
	return attachment
}

// RemoveAttachment убирает файл из области подготовки по имени
func (a *App) RemoveAttachment(name string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, attachment := range a.attachments {
		if attachment.Name == name {
			a.attachments = append(a.attachments[:i], a.attachments[i+1:]...)
			return true
		}
	}
	return false
}

// Attachments возвращает снимок области подготовки файлов
func (a *App) Attachments() []Attachment {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Attachment, len(a.attachments))
	copy(out, a.attachments)
	return out
}

// HandleEmergency запрашивает подтверждение и отправляет экстренный вызов.
// Отказ пользователя не является ошибкой.
func (a *App) HandleEmergency(ctx context.Context) error {
	answer, err := a.dialogs.Request(ctx, dialog.KindEmergencyConfirm,
		"Are you sure you want to contact emergency services?",
		[]string{dialog.AnswerYes, dialog.AnswerNo})
	if err != nil {
		return err
	}
	if answer != dialog.AnswerYes {
		return nil
	}

	a.feed.PushEmergencyAlert()
	a.metrics.EmergencyAlerts.Inc()
	a.logger.WithField("service", "app").Warn("Emergency services contacted")
	a.ShowMessage("Emergency services have been contacted. Help is on the way!", ToastError)
	return nil
}

// HandleLogout запрашивает подтверждение выхода
func (a *App) HandleLogout(ctx context.Context) error {
	answer, err := a.dialogs.Request(ctx, dialog.KindLogoutConfirm,
		"Are you sure you want to logout?",
		[]string{dialog.AnswerYes, dialog.AnswerNo})
	if err != nil {
		return err
	}
	if answer != dialog.AnswerYes {
		return nil
	}

	a.ShowMessage("Logged out successfully", ToastSuccess)
	a.screens.Activate(models.ScreenHome)
	return nil
}

// HandleFilter спрашивает категорию и возвращает отфильтрованные инциденты.
// Маркеры полной карты перестраиваются под выбранный фильтр.
func (a *App) HandleFilter(ctx context.Context) ([]*models.Incident, error) {
	options := []string{store.FilterAll}
	for _, c := range models.Categories() {
		options = append(options, titleCase(string(c)))
	}

	answer, err := a.dialogs.Request(ctx, dialog.KindFilterSelect, "Filter incidents by category", options)
	if err != nil {
		return nil, err
	}

	incidents := a.store.FilterIncidents(answer)
	mapview.RebuildIncidentMarkers(a.fullView, incidents)
	if coord, ok := a.location.LastKnown(); ok {
		mapview.AddLocationMarker(a.fullView, coord)
	}
	return incidents, nil
}

// ShowMessage показывает всплывающее сообщение и прячет его по TTL.
// Новое сообщение вытесняет предыдущее вместе с его таймером.
func (a *App) ShowMessage(text, kind string) {
	a.mu.Lock()
	a.toastToken++
	token := a.toastToken
	a.toast = &Toast{Text: text, Kind: kind}
	a.mu.Unlock()

	a.metrics.ToastsShown.WithLabelValues(kind).Inc()

	go func() {
		<-a.clock.After(a.cfg.ToastTTL)
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.toastToken == token {
			a.toast = nil
		}
	}()
}

// ActiveToast возвращает текущее всплывающее сообщение, если оно есть
func (a *App) ActiveToast() (Toast, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.toast == nil {
		return Toast{}, false
	}
	return *a.toast, true
}

// RefreshHome - on-enter хук домашнего экрана: мини-карта пересчитывает размеры
func (a *App) RefreshHome() {
	a.primaryView.InvalidateSize()
}

// RefreshMap - on-enter хук экрана карты: маркеры перестраиваются заново
func (a *App) RefreshMap() {
	mapview.RebuildIncidentMarkers(a.fullView, a.store.Incidents())
	if coord, ok := a.location.LastKnown(); ok {
		mapview.AddLocationMarker(a.fullView, coord)
	}
	a.fullView.InvalidateSize()
}

// RefreshReports - on-enter хук экрана жалоб
func (a *App) RefreshReports() {
	reports := a.store.Reports()
	a.mu.Lock()
	a.reportsView = reports
	a.mu.Unlock()
}

// RefreshProfile - on-enter хук экрана профиля
func (a *App) RefreshProfile() {
	stats := a.admin.ProfileStats()
	a.mu.Lock()
	a.profileView = stats
	a.mu.Unlock()
}

// RefreshNotifications - on-enter хук экрана уведомлений
func (a *App) RefreshNotifications() {}

// RefreshAdmin - on-enter хук админ-экрана: сводка и таблица
// последних жалоб пересчитываются по текущей коллекции
func (a *App) RefreshAdmin() {
	stats := a.admin.ComputeStats()
	activity := a.admin.RecentActivity(service.DefaultActivityLimit)
	a.mu.Lock()
	a.adminStats = stats
	a.adminActivity = activity
	a.mu.Unlock()
}

// HighlightNav учитывает активацию экрана в метриках
func (a *App) HighlightNav(s models.Screen) {
	a.metrics.ScreenActivations.WithLabelValues(string(s)).Inc()
}

// ReportsView возвращает коллекцию жалоб, показанную на экране жалоб
func (a *App) ReportsView() []*models.Report {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reportsView
}

// ProfileView возвращает счетчики жалоб экрана профиля
func (a *App) ProfileView() service.ProfileStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.profileView
}

// AdminView возвращает сводку и последние жалобы админ-экрана
func (a *App) AdminView() (service.AdminStats, []*models.Report) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.adminStats, a.adminActivity
}

// titleCase делает первую букву категории заглавной для вариантов фильтра
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
