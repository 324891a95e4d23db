package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты конечного автомата экранов
	screens := api.Group("/screens")
	{
		screens.GET("/current", h.getScreen)
		screens.POST("/activate", h.activateScreen)
	}

	// Справочные инциденты и жалобы
	api.GET("/incidents", h.listIncidents)
	api.POST("/incidents/filter", h.filterIncidents)
	reports := api.Group("/reports")
	{
		reports.POST("", h.submitReport)
		reports.GET("", h.listReports)
		reports.POST("/attachments", h.stageAttachment)
		reports.GET("/attachments", h.listAttachments)
		reports.DELETE("/attachments/:name", h.removeAttachment)
	}

	// Лента уведомлений
	notifications := api.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.POST("/read", h.markNotificationsRead)
	}

	// Потоки с подтверждением через диалоги
	api.POST("/emergency", h.triggerEmergency)
	api.POST("/session/logout", h.logout)
	dialogs := api.Group("/dialogs")
	{
		dialogs.GET("", h.listDialogs)
		dialogs.POST("/:id/answer", h.answerDialog)
	}

	// Геолокация и виды карты
	api.POST("/location/locate", h.locate)
	api.GET("/maps/:name", h.getMapState)

	// Всплывающие сообщения и профиль
	api.GET("/messages/current", h.currentMessage)
	api.GET("/profile/stats", h.profileStats)

	// Админ-маршруты защищены API-ключом
	admin := api.Group("/admin")
	admin.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		admin.GET("/stats", h.getAdminStats)
		admin.GET("/activity", h.getAdminActivity)
		admin.GET("/reports/:id", h.getAdminReport)
		admin.POST("/toggle", h.toggleAdmin)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
