package screen

import (
	"sync"

	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/sirupsen/logrus"
)

// Renderer получает on-enter хуки экранов. Контроллер вызывает хук
// ровно один раз на активацию, а не на каждую перерисовку.
type Renderer interface {
	RefreshHome()
	RefreshMap()
	RefreshReports()
	RefreshProfile()
	RefreshNotifications()
	RefreshAdmin()
	HighlightNav(screen models.Screen)
}

// Controller - плоский конечный автомат экранов: активен ровно один
// экран, переход возможен с любого экрана на любой.
type Controller struct {
	mu       sync.Mutex
	logger   *logrus.Logger
	renderer Renderer
	current  models.Screen
}

// NewController создает контроллер. Renderer может быть nil:
// смена экрана обязана работать и без целей отрисовки.
func NewController(renderer Renderer, logger *logrus.Logger) *Controller {
	return &Controller{
		logger:   logger,
		renderer: renderer,
		current:  models.ScreenHome,
	}
}

// Activate скрывает прочие экраны, показывает запрошенный и запускает
// его on-enter хук. Текущий экран обновляется даже без renderer.
func (c *Controller) Activate(screen models.Screen) {
	c.mu.Lock()
	c.current = screen
	c.mu.Unlock()

	c.logger.WithFields(logrus.Fields{
		"controller": "screen",
		"screen":     screen,
	}).Debug("Screen activated")

	if c.renderer == nil {
		return
	}

	switch screen {
	case models.ScreenHome:
		c.renderer.RefreshHome()
	case models.ScreenMap:
		c.renderer.RefreshMap()
	case models.ScreenReports:
		c.renderer.RefreshReports()
	case models.ScreenProfile:
		c.renderer.RefreshProfile()
	case models.ScreenNotifications:
		c.renderer.RefreshNotifications()
	case models.ScreenAdmin:
		c.renderer.RefreshAdmin()
	case models.ScreenReportForm:
		// У формы жалобы нет on-enter хука
	}

	c.renderer.HighlightNav(screen)
}

// Current возвращает активный экран
func (c *Controller) Current() models.Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// ToggleAdmin переключает админ-экран: повторное нажатие возвращает домой
func (c *Controller) ToggleAdmin() {
	if c.Current() == models.ScreenAdmin {
		c.Activate(models.ScreenHome)
		return
	}
	c.Activate(models.ScreenAdmin)
}
