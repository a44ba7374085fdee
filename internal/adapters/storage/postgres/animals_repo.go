package postgres

import (
	"context"
	"database/sql"
	"strings"

	"zoo-ops/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `
	id, name, species_id, category,
	age, weight, sex, status,
	enclosure_id, caretaker_id, doctor_id,
	arrival_date, dob, last_checkup,
	description, image_url,
	created_at, updated_at`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	`,
		a.ID,
		a.Name,
		a.Species.RefID(),
		a.Category,
		a.Age,
		a.Weight,
		a.Sex,
		a.Status,
		a.EnclosureID,
		a.CaretakerID,
		a.DoctorID,
		toNullTime(a.ArrivalDate),
		toNullTime(a.DOB),
		toNullTime(a.LastCheckup),
		a.Description,
		a.ImageURL,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET
			name = $2,
			species_id = $3,
			category = $4,
			age = $5,
			weight = $6,
			sex = $7,
			status = $8,
			enclosure_id = $9,
			caretaker_id = $10,
			doctor_id = $11,
			arrival_date = $12,
			dob = $13,
			last_checkup = $14,
			description = $15,
			image_url = $16,
			updated_at = $17
		WHERE id = $1
	`,
		a.ID,
		a.Name,
		a.Species.RefID(),
		a.Category,
		a.Age,
		a.Weight,
		a.Sex,
		a.Status,
		a.EnclosureID,
		a.CaretakerID,
		a.DoctorID,
		toNullTime(a.ArrivalDate),
		toNullTime(a.DOB),
		toNullTime(a.LastCheckup),
		a.Description,
		a.ImageURL,
		a.UpdatedAt,
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

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE id = $1
	`, id)

	a, err := scanAnimal(row)
	if err == sql.ErrNoRows {
		return animals.Animal{}, ErrNotFound
	}
	return a, err
}

func (r *AnimalsRepo) List(ctx context.Context, f animals.ListFilter) ([]animals.Animal, error) {
	q := `
		SELECT ` + animalColumns + `
		FROM animals
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR status = $2)
		  AND ($3 = '' OR enclosure_id = $3)
		  AND ($4 = '' OR name ILIKE '%' || $4 || '%')
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, q, string(f.Category), string(f.Status), f.EnclosureID, f.Search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) CountByEnclosure(ctx context.Context, enclosureID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM animals WHERE enclosure_id = $1
	`, enclosureID).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row rowScanner) (animals.Animal, error) {
	var a animals.Animal
	var speciesID string
	var arrival, dob, checkup sql.NullTime
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&speciesID,
		&a.Category,
		&a.Age,
		&a.Weight,
		&a.Sex,
		&a.Status,
		&a.EnclosureID,
		&a.CaretakerID,
		&a.DoctorID,
		&arrival,
		&dob,
		&checkup,
		&a.Description,
		&a.ImageURL,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return animals.Animal{}, err
	}

	a.Species = animals.RefID(speciesID)
	a.ArrivalDate = fromNullTime(arrival)
	a.DOB = fromNullTime(dob)
	a.LastCheckup = fromNullTime(checkup)
	return a, nil
}
