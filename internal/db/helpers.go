package db

import "database/sql"

// QueryRower is the subset of *sql.DB the schema probes need, so sqlmock and
// transactions satisfy it too.
type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

func HasTable(q QueryRower, table string) bool {
	var n int
	err := q.QueryRow(`
        SELECT COUNT(*)
        FROM information_schema.tables
        WHERE table_schema = DATABASE() AND table_name = ?
    `, table).Scan(&n)
	return err == nil && n > 0
}

func HasColumn(q QueryRower, table, column string) bool {
	var n int
	err := q.QueryRow(`
        SELECT COUNT(*)
        FROM information_schema.columns
        WHERE table_schema = DATABASE() AND table_name = ? AND column_name = ?
    `, table, column).Scan(&n)
	return err == nil && n > 0
}

// EnsureSchema creates the local tables when they are missing and backfills
// columns added after the first release. Only operator accounts and the
// export audit trail live here; hotel data stays behind the backend API.
func EnsureSchema(conn *sql.DB) error {
	if !HasTable(conn, "operators") {
		if _, err := conn.Exec(`
            CREATE TABLE operators (
                id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
                name VARCHAR(191) NOT NULL,
                username VARCHAR(64) NOT NULL,
                email VARCHAR(191) NOT NULL,
                phone VARCHAR(32) NOT NULL DEFAULT '',
                password_hash VARCHAR(191) NOT NULL,
                role VARCHAR(32) NOT NULL DEFAULT 'staff',
                status VARCHAR(32) NOT NULL DEFAULT 'active',
                created_at DATETIME NOT NULL,
                updated_at DATETIME NOT NULL,
                PRIMARY KEY (id),
                UNIQUE KEY uq_operators_email (email),
                UNIQUE KEY uq_operators_username (username)
            ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
        `); err != nil {
			return err
		}
	}

	if !HasTable(conn, "export_history") {
		if _, err := conn.Exec(`
            CREATE TABLE export_history (
                id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
                entity VARCHAR(64) NOT NULL,
                format VARCHAR(16) NOT NULL,
                filename VARCHAR(191) NOT NULL,
                requested_by VARCHAR(64) NOT NULL DEFAULT '',
                status VARCHAR(16) NOT NULL DEFAULT 'pending',
                row_count INT NOT NULL DEFAULT 0,
                created_at DATETIME NOT NULL,
                updated_at DATETIME NOT NULL,
                PRIMARY KEY (id),
                KEY idx_export_history_created (created_at)
            ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
        `); err != nil {
			return err
		}
	} else if !HasColumn(conn, "export_history", "requested_by") {
		// pre-audit installs lack the requester column
		if _, err := conn.Exec(`
            ALTER TABLE export_history
            ADD COLUMN requested_by VARCHAR(64) NOT NULL DEFAULT '' AFTER filename
        `); err != nil {
			return err
		}
	}

	return nil
}
