package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func tableCount(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestEnsureSchemaBackfillsRequesterColumn(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("information_schema.tables").
		WithArgs("operators").
		WillReturnRows(tableCount(1))
	mock.ExpectQuery("information_schema.tables").
		WithArgs("export_history").
		WillReturnRows(tableCount(1))
	mock.ExpectQuery("information_schema.columns").
		WithArgs("export_history", "requested_by").
		WillReturnRows(tableCount(0))
	mock.ExpectExec("ALTER TABLE export_history").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := EnsureSchema(conn); err != nil {
		t.Fatalf("EnsureSchema returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEnsureSchemaNoopWhenCurrent(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("information_schema.tables").
		WithArgs("operators").
		WillReturnRows(tableCount(1))
	mock.ExpectQuery("information_schema.tables").
		WithArgs("export_history").
		WillReturnRows(tableCount(1))
	mock.ExpectQuery("information_schema.columns").
		WithArgs("export_history", "requested_by").
		WillReturnRows(tableCount(1))

	if err := EnsureSchema(conn); err != nil {
		t.Fatalf("EnsureSchema returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEnsureSchemaCreatesMissingTables(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("information_schema.tables").
		WithArgs("operators").
		WillReturnRows(tableCount(0))
	mock.ExpectExec("CREATE TABLE operators").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("information_schema.tables").
		WithArgs("export_history").
		WillReturnRows(tableCount(0))
	mock.ExpectExec("CREATE TABLE export_history").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := EnsureSchema(conn); err != nil {
		t.Fatalf("EnsureSchema returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
