package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/civic_guardian/internal/app"
	"github.com/shenikar/civic_guardian/internal/config"
	"github.com/shenikar/civic_guardian/internal/dialog"
	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/shenikar/civic_guardian/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	app      *app.App
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(application *app.App, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		app:      application,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// @Summary Get current screen state
// @Description Get the active screen, displayed clock and unread notification count.
// @Tags Screens
// @Accept json
// @Produce json
// @Success 200 {object} ScreenResponse
// @Router /screens/current [get]
func (h *Handler) getScreen(c *gin.Context) {
	c.JSON(http.StatusOK, ScreenResponse{
		Screen:      string(h.app.CurrentScreen()),
		Clock:       h.app.ClockText(),
		UnreadCount: h.app.UnreadCount(),
	})
}

// @Summary Activate a screen
// @Description Switch the application to the requested screen and run its on-enter hook.
// @Tags Screens
// @Accept json
// @Produce json
// @Param screen body ActivateScreenRequest true "Screen activation request"
// @Success 200 {object} ScreenResponse
// @Failure 400 {object} map[string]string "Invalid request body or unknown screen"
// @Router /screens/activate [post]
func (h *Handler) activateScreen(c *gin.Context) {
	var input ActivateScreenRequest
	log := h.logger.WithField("method", "activateScreen")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	screen, err := models.ParseScreen(input.Screen)
	if err != nil {
		log.WithError(err).Warn("Unknown screen requested")
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown screen"})
		return
	}

	h.app.Activate(screen)
	c.JSON(http.StatusOK, ScreenResponse{
		Screen:      string(h.app.CurrentScreen()),
		Clock:       h.app.ClockText(),
		UnreadCount: h.app.UnreadCount(),
	})
}

// @Summary List incidents
// @Description Get reference incidents, optionally filtered by category. "All" or an empty category returns everything.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param category query string false "Incident category filter" default(All)
// @Success 200 {array} IncidentResponse
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	category := c.DefaultQuery("category", "All")
	c.JSON(http.StatusOK, ModelsToIncidentResponses(h.app.FilterIncidents(category)))
}

// @Summary Submit a report
// @Description Submit an incident report. The submission completes asynchronously after a simulated backend call.
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body SubmitReportRequest true "Report submission request"
// @Success 202 {object} map[string]string "Submission accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Another submission is in flight"
// @Router /reports [post]
func (h *Handler) submitReport(c *gin.Context) {
	var input SubmitReportRequest
	log := h.logger.WithField("method", "submitReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// Завершение отправки переживает HTTP-запрос, поэтому отвязываем контекст
	if err := h.app.SubmitReport(context.WithoutCancel(c.Request.Context()), DTOToSubmitInput(input)); err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "please fill in all required fields", "fields": verr.Fields})
		case errors.Is(err, service.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "another submission is already in flight"})
		default:
			log.WithError(err).Error("Failed to submit report")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// @Summary List reports
// @Description Get all submitted reports in submission order.
// @Tags Reports
// @Accept json
// @Produce json
// @Success 200 {array} ReportResponse
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToReportResponses(h.app.Reports()))
}

// @Summary Stage an attachment
// @Description Add a file to the report form staging area. Only the name and size are kept; the staging area is cleared when a submission completes.
// @Tags Reports
// @Accept json
// @Produce json
// @Param attachment body StageAttachmentRequest true "Attachment staging request"
// @Success 201 {object} AttachmentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /reports/attachments [post]
func (h *Handler) stageAttachment(c *gin.Context) {
	var input StageAttachmentRequest
	log := h.logger.WithField("method", "stageAttachment")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attachment := h.app.StageAttachment(input.Name, input.Size)
	c.JSON(http.StatusCreated, AttachmentResponse{Name: attachment.Name, Size: attachment.Size})
}

// @Summary List staged attachments
// @Description Get the files currently staged on the report form.
// @Tags Reports
// @Accept json
// @Produce json
// @Success 200 {array} AttachmentResponse
// @Router /reports/attachments [get]
func (h *Handler) listAttachments(c *gin.Context) {
	attachments := h.app.Attachments()
	responses := make([]AttachmentResponse, len(attachments))
	for i, attachment := range attachments {
		responses[i] = AttachmentResponse{Name: attachment.Name, Size: attachment.Size}
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Remove a staged attachment
// @Description Remove a file from the report form staging area by name.
// @Tags Reports
// @Accept json
// @Produce json
// @Param name path string true "Attachment name"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Attachment not found"
// @Router /reports/attachments/{name} [delete]
func (h *Handler) removeAttachment(c *gin.Context) {
	if !h.app.RemoveAttachment(c.Param("name")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "attachment not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List notifications
// @Description Get the notification feed, newest first.
// @Tags Notifications
// @Accept json
// @Produce json
// @Success 200 {array} NotificationResponse
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToNotificationResponses(h.app.Notifications()))
}

// @Summary Mark all notifications read
// @Description Mark every notification in the feed as read. Repeated calls are a no-op.
// @Tags Notifications
// @Accept json
// @Produce json
// @Success 204 "No Content"
// @Router /notifications/read [post]
func (h *Handler) markNotificationsRead(c *gin.Context) {
	h.app.MarkNotificationsRead()
	c.Status(http.StatusNoContent)
}

// @Summary Trigger an emergency call
// @Description Start the emergency confirmation flow. The confirmation dialog appears under /dialogs.
// @Tags Emergency
// @Accept json
// @Produce json
// @Success 202 {object} map[string]string "Confirmation requested"
// @Router /emergency [post]
func (h *Handler) triggerEmergency(c *gin.Context) {
	log := h.logger.WithField("method", "triggerEmergency")

	// Поток блокируется до ответа на диалог, поэтому уводим его в фон.
	// Диалог без ответа снимается по таймауту, горутина не живет вечно.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.cfg.DialogTTL)
		defer cancel()
		if err := h.app.HandleEmergency(ctx); err != nil {
			log.WithError(err).Warn("Emergency flow did not complete")
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{"status": "confirmation required"})
}

// @Summary Logout
// @Description Start the logout confirmation flow. The confirmation dialog appears under /dialogs.
// @Tags Session
// @Accept json
// @Produce json
// @Success 202 {object} map[string]string "Confirmation requested"
// @Router /session/logout [post]
func (h *Handler) logout(c *gin.Context) {
	log := h.logger.WithField("method", "logout")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.cfg.DialogTTL)
		defer cancel()
		if err := h.app.HandleLogout(ctx); err != nil {
			log.WithError(err).Warn("Logout flow did not complete")
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{"status": "confirmation required"})
}

// @Summary Start incident filter selection
// @Description Start the category selection flow. The selection dialog appears under /dialogs; the full map view rebuilds its markers once answered.
// @Tags Incidents
// @Accept json
// @Produce json
// @Success 202 {object} map[string]string "Selection requested"
// @Router /incidents/filter [post]
func (h *Handler) filterIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "filterIncidents")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.cfg.DialogTTL)
		defer cancel()
		incidents, err := h.app.HandleFilter(ctx)
		if err != nil {
			log.WithError(err).Warn("Filter flow did not complete")
			return
		}
		log.WithField("count", len(incidents)).Info("Incident filter applied")
	}()

	c.JSON(http.StatusAccepted, gin.H{"status": "selection required"})
}

// @Summary List pending dialogs
// @Description Get dialogs waiting for a user decision.
// @Tags Dialogs
// @Accept json
// @Produce json
// @Success 200 {array} DialogResponse
// @Router /dialogs [get]
func (h *Handler) listDialogs(c *gin.Context) {
	c.JSON(http.StatusOK, DialogsToResponses(h.app.Dialogs().Pending()))
}

// @Summary Answer a pending dialog
// @Description Deliver the user's answer to a pending dialog.
// @Tags Dialogs
// @Accept json
// @Produce json
// @Param id path string true "Dialog ID"
// @Param answer body AnswerDialogRequest true "Dialog answer"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid dialog ID or request body"
// @Failure 404 {object} map[string]string "Dialog not found"
// @Router /dialogs/{id}/answer [post]
func (h *Handler) answerDialog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dialog ID"})
		return
	}
	log := h.logger.WithField("method", "answerDialog").WithField("id", id)

	var input AnswerDialogRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.app.Dialogs().Resolve(id, input.Answer); err != nil {
		if errors.Is(err, dialog.ErrUnknownDialog) {
			log.WithError(err).Warn("Failed to resolve dialog")
			c.JSON(http.StatusNotFound, gin.H{"error": "dialog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Locate the user
// @Description Request the user's coordinate and recenter the map views. A failed fix keeps the previous coordinate.
// @Tags Location
// @Accept json
// @Produce json
// @Success 200 {object} LocationResponse
// @Success 204 "Location unavailable"
// @Router /location/locate [post]
func (h *Handler) locate(c *gin.Context) {
	h.app.RequestLocation(c.Request.Context())

	coord, ok := h.app.LastKnownLocation()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, LocationResponse{Latitude: coord.Lat, Longitude: coord.Lng})
}

// @Summary Get a map view state
// @Description Get the center, zoom and markers of a map view ("primary" or "full").
// @Tags Maps
// @Accept json
// @Produce json
// @Param name path string true "Map view name"
// @Success 200 {object} mapview.State
// @Failure 404 {object} map[string]string "Map view not found"
// @Router /maps/{name} [get]
func (h *Handler) getMapState(c *gin.Context) {
	state, ok := h.app.MapState(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "map view not found"})
		return
	}
	c.JSON(http.StatusOK, state)
}

// @Summary Get the active toast message
// @Description Get the current transient message, if one is shown.
// @Tags Messages
// @Accept json
// @Produce json
// @Success 200 {object} ToastResponse
// @Success 204 "No active message"
// @Router /messages/current [get]
func (h *Handler) currentMessage(c *gin.Context) {
	toast, ok := h.app.ActiveToast()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ToastResponse{Text: toast.Text, Kind: toast.Kind})
}

// @Summary Get profile statistics
// @Description Get the report counters shown on the profile screen.
// @Tags Profile
// @Accept json
// @Produce json
// @Success 200 {object} ProfileStatsResponse
// @Router /profile/stats [get]
func (h *Handler) profileStats(c *gin.Context) {
	stats := h.app.ProfileStatsNow()
	c.JSON(http.StatusOK, ProfileStatsResponse{
		Total:    stats.Total,
		Resolved: stats.Resolved,
		Pending:  stats.Pending,
	})
}

// @Summary Get admin statistics
// @Description Get the aggregated report statistics for the admin dashboard. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} AdminStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /admin/stats [get]
func (h *Handler) getAdminStats(c *gin.Context) {
	stats := h.app.AdminStatsNow()
	c.JSON(http.StatusOK, AdminStatsResponse{
		ReportsToday:        stats.ReportsToday,
		PendingCount:        stats.PendingCount,
		ResolvedCount:       stats.ResolvedCount,
		ResponseRatePercent: stats.ResponseRatePercent,
	})
}

// @Summary Get recent report activity
// @Description Get the most recent reports, newest first. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Number of reports" default(10)
// @Success 200 {array} ReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /admin/activity [get]
func (h *Handler) getAdminActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	c.JSON(http.StatusOK, ModelsToReportResponses(h.app.AdminActivity(limit)))
}

// @Summary Get a report by ID
// @Description Get a single submitted report by its ID. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /admin/reports/{id} [get]
func (h *Handler) getAdminReport(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "getAdminReport").WithField("id", id)

	report, ok := h.app.ReportByID(id)
	if !ok {
		log.Warn("Report not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Toggle the admin screen
// @Description Switch to the admin screen, or back home if it is already active. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ScreenResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /admin/toggle [post]
func (h *Handler) toggleAdmin(c *gin.Context) {
	h.app.ToggleAdmin()
	c.JSON(http.StatusOK, ScreenResponse{
		Screen:      string(h.app.CurrentScreen()),
		Clock:       h.app.ClockText(),
		UnreadCount: h.app.UnreadCount(),
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
