package v1

import (
	"github.com/shenikar/civic_guardian/internal/dialog"
	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/shenikar/civic_guardian/internal/service"
)

// DTOToSubmitInput преобразует DTO жалобы во входные данные сервиса
func DTOToSubmitInput(dto SubmitReportRequest) service.SubmitReportInput {
	return service.SubmitReportInput{
		Category:    dto.Category,
		Description: dto.Description,
		Location:    dto.Location,
		FullName:    dto.FullName,
		Contact:     dto.Contact,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:           model.ID,
		Latitude:     model.Coordinate.Lat,
		Longitude:    model.Coordinate.Lng,
		Category:     string(model.Category),
		Description:  model.Description,
		RelativeTime: model.RelativeTime,
		Distance:     model.Distance,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToReportResponse преобразует жалобу в DTO для ответа
func ModelToReportResponse(model *models.Report) *ReportResponse {
	return &ReportResponse{
		ID:          model.ID,
		Category:    string(model.Category),
		Description: model.Description,
		Location:    model.Location,
		FullName:    model.FullName,
		Contact:     model.Contact,
		SubmittedAt: model.SubmittedAt,
		Status:      string(model.Status),
	}
}

// ModelsToReportResponses преобразует слайс жалоб в слайс DTO
func ModelsToReportResponses(models []*models.Report) []*ReportResponse {
	responses := make([]*ReportResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToReportResponse(model)
	}
	return responses
}

// ModelToNotificationResponse преобразует уведомление в DTO для ответа
func ModelToNotificationResponse(model *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:           model.ID,
		Title:        model.Title,
		Description:  model.Description,
		RelativeTime: model.RelativeTime,
		Icon:         model.Icon,
		Unread:       model.Unread,
	}
}

// ModelsToNotificationResponses преобразует слайс уведомлений в слайс DTO
func ModelsToNotificationResponses(models []*models.Notification) []*NotificationResponse {
	responses := make([]*NotificationResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToNotificationResponse(model)
	}
	return responses
}

// DialogToResponse преобразует ожидающий диалог в DTO для ответа
func DialogToResponse(d dialog.Dialog) *DialogResponse {
	return &DialogResponse{
		ID:      d.ID,
		Kind:    string(d.Kind),
		Prompt:  d.Prompt,
		Options: d.Options,
	}
}

// DialogsToResponses преобразует слайс диалогов в слайс DTO
func DialogsToResponses(dialogs []dialog.Dialog) []*DialogResponse {
	responses := make([]*DialogResponse, len(dialogs))
	for i, d := range dialogs {
		responses[i] = DialogToResponse(d)
	}
	return responses
}
