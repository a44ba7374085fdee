package postgres

import (
	"context"
	"database/sql"
	"strings"

	"zoo-ops/internal/domain/notifications"
)

type NotificationsRepo struct {
	db *sql.DB
}

func NewNotificationsRepo(db *sql.DB) *NotificationsRepo {
	return &NotificationsRepo{db: db}
}

func (r *NotificationsRepo) Create(ctx context.Context, n notifications.Notification) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (
			id, type, title, message, priority, read,
			user_id, related_id,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		n.ID,
		n.Type,
		n.Title,
		n.Message,
		n.Priority,
		n.Read,
		n.UserID,
		n.RelatedID,
		n.CreatedAt,
		n.UpdatedAt,
	)
	return err
}

func (r *NotificationsRepo) Update(ctx context.Context, n notifications.Notification) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notifications
		SET
			type = $2,
			title = $3,
			message = $4,
			priority = $5,
			read = $6,
			user_id = $7,
			related_id = $8,
			updated_at = $9
		WHERE id = $1
	`,
		n.ID,
		n.Type,
		n.Title,
		n.Message,
		n.Priority,
		n.Read,
		n.UserID,
		n.RelatedID,
		n.UpdatedAt,
	)
	if err != nil {
		return err
	}
	c, _ := res.RowsAffected()
	if c == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *NotificationsRepo) GetByID(ctx context.Context, id string) (notifications.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return notifications.Notification{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, type, title, message, priority, read,
			user_id, related_id,
			created_at, updated_at
		FROM notifications
		WHERE id = $1
	`, id)

	var n notifications.Notification
	if err := row.Scan(
		&n.ID,
		&n.Type,
		&n.Title,
		&n.Message,
		&n.Priority,
		&n.Read,
		&n.UserID,
		&n.RelatedID,
		&n.CreatedAt,
		&n.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return notifications.Notification{}, ErrNotFound
		}
		return notifications.Notification{}, err
	}
	return n, nil
}

func (r *NotificationsRepo) List(ctx context.Context, f notifications.ListFilter) ([]notifications.Notification, error) {
	// user_id = '' means broadcast, visible to everyone
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, type, title, message, priority, read,
			user_id, related_id,
			created_at, updated_at
		FROM notifications
		WHERE ($1 = '' OR user_id = '' OR user_id = $1)
		  AND ($2 = '' OR type = $2)
		  AND ($3::boolean IS NULL OR read = $3)
		ORDER BY created_at DESC
	`, f.UserID, string(f.Type), nullBool(f.Read))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notifications.Notification, 0)
	for rows.Next() {
		var n notifications.Notification
		if err := rows.Scan(
			&n.ID,
			&n.Type,
			&n.Title,
			&n.Message,
			&n.Priority,
			&n.Read,
			&n.UserID,
			&n.RelatedID,
			&n.CreatedAt,
			&n.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NotificationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
