// Package sqlite persists the audit trail in a local SQLite file. The trail
// is kept separate from the main database so it survives resets of the
// operational data and needs no server to inspect.
package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"zoo-ops/internal/domain/audit"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS audit_log (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	action      TEXT NOT NULL,
	resource    TEXT NOT NULL,
	resource_id TEXT NOT NULL,
	old_data    TEXT,
	new_data    TEXT,
	timestamp   TIMESTAMP NOT NULL,
	ip_address  TEXT
);
CREATE INDEX IF NOT EXISTS idx_audit_resource ON audit_log (resource, timestamp);
`

type AuditRepo struct {
	db *sql.DB
}

// OpenAuditRepo opens (or creates) the trail database at path and bootstraps
// the schema.
func OpenAuditRepo(path string) (*AuditRepo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// modernc sqlite serializes writes itself; one connection avoids
	// SQLITE_BUSY under concurrent appends.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &AuditRepo{db: db}, nil
}

func (r *AuditRepo) Close() error {
	return r.db.Close()
}

func (r *AuditRepo) Append(ctx context.Context, e audit.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO audit_log (
			id, user_id, action, resource, resource_id,
			old_data, new_data, timestamp, ip_address
		) VALUES (?,?,?,?,?,?,?,?,?)
	`,
		e.ID,
		e.UserID,
		e.Action,
		e.Resource,
		e.ResourceID,
		nullJSON(e.OldData),
		nullJSON(e.NewData),
		e.Timestamp,
		e.IPAddress,
	)
	return err
}

func (r *AuditRepo) List(ctx context.Context, f audit.ListFilter) ([]audit.Entry, error) {
	q := `
		SELECT
			id, user_id, action, resource, resource_id,
			old_data, new_data, timestamp, ip_address
		FROM audit_log
		WHERE (? = '' OR resource = ?)
		  AND (? = '' OR action = ?)
		  AND (? = '' OR user_id = ?)
		ORDER BY timestamp DESC
	`
	args := []any{
		f.Resource, f.Resource,
		string(f.Action), string(f.Action),
		f.UserID, f.UserID,
	}
	if f.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]audit.Entry, 0)
	for rows.Next() {
		var e audit.Entry
		var oldData, newData sql.NullString
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Action,
			&e.Resource,
			&e.ResourceID,
			&oldData,
			&newData,
			&e.Timestamp,
			&e.IPAddress,
		); err != nil {
			return nil, err
		}
		if oldData.Valid {
			e.OldData = []byte(oldData.String)
		}
		if newData.Valid {
			e.NewData = []byte(newData.String)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func nullJSON(b []byte) sql.NullString {
	if len(b) == 0 || strings.TrimSpace(string(b)) == "null" {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}
