package repositories

import (
	"testing"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestExportHistoryInsertAndMark(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO export_history").
		WithArgs("bookings", "xlsx", "bookings_export_2025-03-10_14-05-09.xlsx", 0,
			string(models.ExportStatusPending), "admin").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("UPDATE export_history").
		WithArgs(string(models.ExportStatusCompleted), 12, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := ExportHistoryRepo{DB: db}
	id, err := repo.Insert(models.NewExportHistory{
		Entity:      "bookings",
		Format:      "xlsx",
		Filename:    "bookings_export_2025-03-10_14-05-09.xlsx",
		RequestedBy: "admin",
	})
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if id != 7 {
		t.Fatalf("id = %d, want 7", id)
	}
	if err := repo.MarkStatus(id, models.ExportStatusCompleted, 12); err != nil {
		t.Fatalf("MarkStatus returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestExportHistoryMarkMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE export_history").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := ExportHistoryRepo{DB: db}
	if err := repo.MarkStatus(99, models.ExportStatusFailed, 0); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestExportHistoryListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "entity", "format", "filename", "row_count", "status", "requested_by", "created_at", "updated_at"}).
		AddRow(2, "rooms", "pdf", "rooms_export_2025-03-11_09-00-00.pdf", 4, "completed", "admin", now, now).
		AddRow(1, "bookings", "tsv", "bookings_export_2025-03-10_14-05-09.tsv", 12, "failed", "", now, now)
	mock.ExpectQuery("SELECT (.+) FROM export_history").WillReturnRows(rows)

	repo := ExportHistoryRepo{DB: db}
	history, err := repo.ListRecent(10)
	if err != nil {
		t.Fatalf("ListRecent returned error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("got %d rows, want 2", len(history))
	}
	if history[0].Entity != "rooms" || history[0].Status != models.ExportStatusCompleted {
		t.Fatalf("unexpected first row: %+v", history[0])
	}
}

func TestExportHistoryGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "entity", "format", "filename", "row_count", "status", "requested_by", "created_at", "updated_at"}).
		AddRow(7, "bookings", "xlsx", "bookings_export_2025-03-10_14-05-09.xlsx", 12, "completed", "admin", now, now)
	mock.ExpectQuery("SELECT (.+) FROM export_history").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	repo := ExportHistoryRepo{DB: db}
	h, err := repo.GetByID(7)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if h.ID != 7 || h.Format != "xlsx" || h.RowCount != 12 {
		t.Fatalf("unexpected row: %+v", h)
	}
}

func TestExportHistoryGetByIDMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM export_history").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "entity", "format", "filename", "row_count", "status", "requested_by", "created_at", "updated_at"}))

	repo := ExportHistoryRepo{DB: db}
	if _, err := repo.GetByID(99); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
