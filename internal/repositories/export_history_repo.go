package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type ExportHistoryRepo struct {
	DB *sql.DB
}

func (r ExportHistoryRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert records a pending export and returns its id.
func (r ExportHistoryRepo) Insert(h models.NewExportHistory) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, domain.InternalError{Msg: "database not available"}
	}
	res, err := db.Exec(`
		INSERT INTO export_history (entity, format, filename, row_count, status, requested_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, h.Entity, h.Format, h.Filename, h.RowCount, models.ExportStatusPending, h.RequestedBy)
	if err != nil {
		return 0, fmt.Errorf("insert export history: %w", err)
	}
	return res.LastInsertId()
}

// MarkStatus finalizes a history row as completed or failed.
func (r ExportHistoryRepo) MarkStatus(id int64, status models.ExportStatus, rowCount int) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}
	res, err := db.Exec(`
		UPDATE export_history SET status=?, row_count=?, updated_at=NOW() WHERE id=?
	`, status, rowCount, id)
	if err != nil {
		return fmt.Errorf("update export history: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "export history"}
	}
	return nil
}

// ListRecent returns history rows, newest first.
func (r ExportHistoryRepo) ListRecent(limit int) ([]models.ExportHistory, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not available"}
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := db.Query(`
		SELECT id, entity, format, filename, row_count, status, COALESCE(requested_by, ''), created_at, updated_at
		FROM export_history
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list export history: %w", err)
	}
	defer rows.Close()

	out := []models.ExportHistory{}
	for rows.Next() {
		var h models.ExportHistory
		if err := rows.Scan(&h.ID, &h.Entity, &h.Format, &h.Filename, &h.RowCount, &h.Status, &h.RequestedBy, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan export history: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID loads one history row.
func (r ExportHistoryRepo) GetByID(id int64) (models.ExportHistory, error) {
	db := r.db()
	if db == nil {
		return models.ExportHistory{}, domain.InternalError{Msg: "database not available"}
	}
	var h models.ExportHistory
	err := db.QueryRow(`
		SELECT id, entity, format, filename, row_count, status, COALESCE(requested_by, ''), created_at, updated_at
		FROM export_history
		WHERE id=? LIMIT 1
	`, id).Scan(&h.ID, &h.Entity, &h.Format, &h.Filename, &h.RowCount, &h.Status, &h.RequestedBy, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ExportHistory{}, domain.NotFoundError{Resource: "export history"}
		}
		return models.ExportHistory{}, err
	}
	return h, nil
}
