package postgres

import (
	"context"
	"database/sql"
	"strings"

	"zoo-ops/internal/domain/feeding"
)

type FeedingRepo struct {
	db *sql.DB
}

func NewFeedingRepo(db *sql.DB) *FeedingRepo {
	return &FeedingRepo{db: db}
}

func (r *FeedingRepo) Create(ctx context.Context, s feeding.Schedule) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO feeding_schedules (
			id, animal_id, item_id, food_type,
			quantity, unit, frequency, feed_time,
			caretaker_id, last_fed, is_active, notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		s.ID,
		s.AnimalID,
		s.ItemID,
		s.FoodType,
		s.Quantity,
		s.Unit,
		s.Frequency,
		s.Time,
		s.CaretakerID,
		toNullTime(s.LastFed),
		s.IsActive,
		s.Notes,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *FeedingRepo) Update(ctx context.Context, s feeding.Schedule) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE feeding_schedules
		SET
			animal_id = $2,
			item_id = $3,
			food_type = $4,
			quantity = $5,
			unit = $6,
			frequency = $7,
			feed_time = $8,
			caretaker_id = $9,
			last_fed = $10,
			is_active = $11,
			notes = $12,
			updated_at = $13
		WHERE id = $1
	`,
		s.ID,
		s.AnimalID,
		s.ItemID,
		s.FoodType,
		s.Quantity,
		s.Unit,
		s.Frequency,
		s.Time,
		s.CaretakerID,
		toNullTime(s.LastFed),
		s.IsActive,
		s.Notes,
		s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FeedingRepo) GetByID(ctx context.Context, id string) (feeding.Schedule, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return feeding.Schedule{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, animal_id, item_id, food_type,
			quantity, unit, frequency, feed_time,
			caretaker_id, last_fed, is_active, notes,
			created_at, updated_at
		FROM feeding_schedules
		WHERE id = $1
	`, id)

	s, err := scanSchedule(row)
	if err == sql.ErrNoRows {
		return feeding.Schedule{}, ErrNotFound
	}
	return s, err
}

func (r *FeedingRepo) List(ctx context.Context, f feeding.ListFilter) ([]feeding.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, animal_id, item_id, food_type,
			quantity, unit, frequency, feed_time,
			caretaker_id, last_fed, is_active, notes,
			created_at, updated_at
		FROM feeding_schedules
		WHERE ($1 = '' OR animal_id = $1)
		  AND ($2 = '' OR caretaker_id = $2)
		  AND ($3::boolean IS NULL OR is_active = $3)
		ORDER BY created_at ASC
	`, f.AnimalID, f.CaretakerID, nullBool(f.Active))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]feeding.Schedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *FeedingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM feeding_schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func scanSchedule(row rowScanner) (feeding.Schedule, error) {
	var s feeding.Schedule
	var fed sql.NullTime
	if err := row.Scan(
		&s.ID,
		&s.AnimalID,
		&s.ItemID,
		&s.FoodType,
		&s.Quantity,
		&s.Unit,
		&s.Frequency,
		&s.Time,
		&s.CaretakerID,
		&fed,
		&s.IsActive,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return feeding.Schedule{}, err
	}

	s.LastFed = fromNullTime(fed)
	return s, nil
}
