package postgres

import (
	"context"
	"database/sql"
	"strings"

	"zoo-ops/internal/domain/enclosures"
)

type EnclosuresRepo struct {
	db *sql.DB
}

func NewEnclosuresRepo(db *sql.DB) *EnclosuresRepo {
	return &EnclosuresRepo{db: db}
}

func (r *EnclosuresRepo) Create(ctx context.Context, e enclosures.Enclosure) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO enclosures (
			id, name, type, capacity, location,
			temperature, humidity,
			last_cleaned, caretaker_id,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		e.ID,
		e.Name,
		e.Type,
		e.Capacity,
		e.Location,
		toNullFloat(e.Temperature),
		toNullFloat(e.Humidity),
		toNullTime(e.LastCleaned),
		e.CaretakerID,
		e.CreatedAt,
		e.UpdatedAt,
	)
	return err
}

func (r *EnclosuresRepo) Update(ctx context.Context, e enclosures.Enclosure) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE enclosures
		SET
			name = $2,
			type = $3,
			capacity = $4,
			location = $5,
			temperature = $6,
			humidity = $7,
			last_cleaned = $8,
			caretaker_id = $9,
			updated_at = $10
		WHERE id = $1
	`,
		e.ID,
		e.Name,
		e.Type,
		e.Capacity,
		e.Location,
		toNullFloat(e.Temperature),
		toNullFloat(e.Humidity),
		toNullTime(e.LastCleaned),
		e.CaretakerID,
		e.UpdatedAt,
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

func (r *EnclosuresRepo) GetByID(ctx context.Context, id string) (enclosures.Enclosure, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return enclosures.Enclosure{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, type, capacity, location,
			temperature, humidity,
			last_cleaned, caretaker_id,
			created_at, updated_at
		FROM enclosures
		WHERE id = $1
	`, id)

	e, err := scanEnclosure(row)
	if err == sql.ErrNoRows {
		return enclosures.Enclosure{}, ErrNotFound
	}
	return e, err
}

func (r *EnclosuresRepo) List(ctx context.Context) ([]enclosures.Enclosure, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, type, capacity, location,
			temperature, humidity,
			last_cleaned, caretaker_id,
			created_at, updated_at
		FROM enclosures
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]enclosures.Enclosure, 0)
	for rows.Next() {
		e, err := scanEnclosure(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EnclosuresRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM enclosures WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEnclosure(row rowScanner) (enclosures.Enclosure, error) {
	var e enclosures.Enclosure
	var temp, hum sql.NullFloat64
	var cleaned sql.NullTime
	if err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Type,
		&e.Capacity,
		&e.Location,
		&temp,
		&hum,
		&cleaned,
		&e.CaretakerID,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return enclosures.Enclosure{}, err
	}

	e.Temperature = fromNullFloat(temp)
	e.Humidity = fromNullFloat(hum)
	e.LastCleaned = fromNullTime(cleaned)
	return e, nil
}
