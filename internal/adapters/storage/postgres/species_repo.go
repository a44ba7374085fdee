package postgres

import (
	"context"
	"database/sql"
	"strings"

	"zoo-ops/internal/domain/species"
)

type SpeciesRepo struct {
	db *sql.DB
}

func NewSpeciesRepo(db *sql.DB) *SpeciesRepo {
	return &SpeciesRepo{db: db}
}

func (r *SpeciesRepo) Create(ctx context.Context, s species.Species) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO species (
			id, common_name, scientific_name, category, description,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		s.ID,
		s.CommonName,
		s.ScientificName,
		s.Category,
		s.Description,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *SpeciesRepo) Update(ctx context.Context, s species.Species) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE species
		SET
			common_name = $2,
			scientific_name = $3,
			category = $4,
			description = $5,
			updated_at = $6
		WHERE id = $1
	`,
		s.ID,
		s.CommonName,
		s.ScientificName,
		s.Category,
		s.Description,
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

func (r *SpeciesRepo) GetByID(ctx context.Context, id string) (species.Species, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return species.Species{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, common_name, scientific_name, category, description,
			created_at, updated_at
		FROM species
		WHERE id = $1
	`, id)

	var s species.Species
	if err := row.Scan(
		&s.ID,
		&s.CommonName,
		&s.ScientificName,
		&s.Category,
		&s.Description,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return species.Species{}, ErrNotFound
		}
		return species.Species{}, err
	}
	return s, nil
}

func (r *SpeciesRepo) List(ctx context.Context) ([]species.Species, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, common_name, scientific_name, category, description,
			created_at, updated_at
		FROM species
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]species.Species, 0)
	for rows.Next() {
		var s species.Species
		if err := rows.Scan(
			&s.ID,
			&s.CommonName,
			&s.ScientificName,
			&s.Category,
			&s.Description,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SpeciesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM species WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
