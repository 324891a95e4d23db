package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/shenikar/civic_guardian/internal/models"
)

// SQLiteStorage хранит коллекцию жалоб в локальной базе SQLite.
// Схема повторяет таблицу reports из настольной версии приложения.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

const createReportsTable = `
CREATE TABLE IF NOT EXISTS reports (
	id           INTEGER PRIMARY KEY,
	category     TEXT NOT NULL,
	description  TEXT NOT NULL,
	location     TEXT,
	full_name    TEXT,
	contact      TEXT,
	submitted_at TIMESTAMP NOT NULL,
	status       TEXT NOT NULL DEFAULT 'pending'
);`

// OpenSQLiteStorage открывает (или создает) базу reports.db в указанном каталоге
func OpenSQLiteStorage(dbDir string) (*SQLiteStorage, error) {
	if err := os.MkdirAll(dbDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, "reports.db")
	db, err := sql.Open("sqlite", dbPath+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite поддерживает только одного писателя
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if _, err := db.Exec(createReportsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create reports table: %w", err)
	}

	return &SQLiteStorage{db: db, dbPath: dbPath}, nil
}

// Close закрывает соединение с базой
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// LoadReports читает коллекцию жалоб в порядке их добавления
func (s *SQLiteStorage) LoadReports(ctx context.Context) ([]*models.Report, error) {
	query := `
		SELECT id, category, description, location, full_name, contact, submitted_at, status
		FROM reports
		ORDER BY rowid;
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.Report, 0)
	for rows.Next() {
		report := &models.Report{}
		var submittedAt string
		err := rows.Scan(
			&report.ID,
			&report.Category,
			&report.Description,
			&report.Location,
			&report.FullName,
			&report.Contact,
			&submittedAt,
			&report.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, submittedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse submitted_at: %w", err)
		}
		report.SubmittedAt = ts
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reports iteration: %w", err)
	}

	if len(reports) == 0 {
		return nil, ErrNotFound
	}
	return reports, nil
}

// SaveReports перезаписывает коллекцию жалоб целиком в одной транзакции
func (s *SQLiteStorage) SaveReports(ctx context.Context, reports []*models.Report) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM reports;"); err != nil {
		return fmt.Errorf("failed to clear reports table: %w", err)
	}

	insert := `
		INSERT INTO reports (id, category, description, location, full_name, contact, submitted_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, report := range reports {
		_, err := tx.ExecContext(ctx, insert,
			report.ID,
			report.Category,
			report.Description,
			report.Location,
			report.FullName,
			report.Contact,
			report.SubmittedAt.Format(time.RFC3339Nano),
			report.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to insert report %d: %w", report.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit report collection: %w", err)
	}
	return nil
}
