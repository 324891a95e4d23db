package storage

import (
	"context"
	"errors"

	"github.com/shenikar/civic_guardian/internal/models"
)

// ReportKey - единственный ключ, под которым хранится коллекция жалоб
const ReportKey = "civicGuardianReports"

// ErrNotFound возвращается, когда коллекция еще не сохранялась.
// Для вызывающего кода это не ошибка: стартуем с пустой коллекцией.
var ErrNotFound = errors.New("report collection not found")

// ReportStorage определяет контракт хранилища жалоб.
// Коллекция читается один раз при старте и целиком
// перезаписывается при каждом добавлении жалобы.
type ReportStorage interface {
	LoadReports(ctx context.Context) ([]*models.Report, error)
	SaveReports(ctx context.Context, reports []*models.Report) error
}
