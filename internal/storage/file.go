package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shenikar/civic_guardian/internal/models"
)

// FileStorage хранит коллекцию жалоб в одном JSON-файле.
// Бэкенд по умолчанию: локальный аналог key-value хранилища браузера.
type FileStorage struct {
	path string
}

// NewFileStorage создает файловое хранилище по указанному пути
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// LoadReports читает коллекцию жалоб из файла
func (s *FileStorage) LoadReports(_ context.Context) ([]*models.Report, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read report collection: %w", err)
	}

	reports := make([]*models.Report, 0)
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report collection: %w", err)
	}
	return reports, nil
}

// SaveReports атомарно перезаписывает коллекцию жалоб целиком
func (s *FileStorage) SaveReports(_ context.Context, reports []*models.Report) error {
	data, err := json.Marshal(reports)
	if err != nil {
		return fmt.Errorf("failed to marshal report collection: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	// Пишем во временный файл и переименовываем, чтобы прежнее
	// значение заменялось атомарно
	tmp, err := os.CreateTemp(dir, "reports-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write report collection: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace report collection: %w", err)
	}
	return nil
}
