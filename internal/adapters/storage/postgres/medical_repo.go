package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"zoo-ops/internal/domain/medical"
)

type MedicalRepo struct {
	db *sql.DB
}

func NewMedicalRepo(db *sql.DB) *MedicalRepo {
	return &MedicalRepo{db: db}
}

func (r *MedicalRepo) Create(ctx context.Context, rec medical.Record) error {
	meds, err := json.Marshal(rec.Medications)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO medical_records (
			id, animal_id, doctor_id,
			date, type,
			diagnosis, treatment, medications, notes,
			next_checkup,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		rec.ID,
		rec.AnimalID,
		rec.DoctorID,
		rec.Date,
		rec.Type,
		rec.Diagnosis,
		rec.Treatment,
		meds,
		rec.Notes,
		toNullTime(rec.NextCheckup),
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

func (r *MedicalRepo) Update(ctx context.Context, rec medical.Record) error {
	meds, err := json.Marshal(rec.Medications)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE medical_records
		SET
			animal_id = $2,
			doctor_id = $3,
			date = $4,
			type = $5,
			diagnosis = $6,
			treatment = $7,
			medications = $8,
			notes = $9,
			next_checkup = $10,
			updated_at = $11
		WHERE id = $1
	`,
		rec.ID,
		rec.AnimalID,
		rec.DoctorID,
		rec.Date,
		rec.Type,
		rec.Diagnosis,
		rec.Treatment,
		meds,
		rec.Notes,
		toNullTime(rec.NextCheckup),
		rec.UpdatedAt,
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

func (r *MedicalRepo) GetByID(ctx context.Context, id string) (medical.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return medical.Record{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, animal_id, doctor_id,
			date, type,
			diagnosis, treatment, medications, notes,
			next_checkup,
			created_at, updated_at
		FROM medical_records
		WHERE id = $1
	`, id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return medical.Record{}, ErrNotFound
	}
	return rec, err
}

func (r *MedicalRepo) List(ctx context.Context, f medical.ListFilter) ([]medical.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, animal_id, doctor_id,
			date, type,
			diagnosis, treatment, medications, notes,
			next_checkup,
			created_at, updated_at
		FROM medical_records
		WHERE ($1 = '' OR animal_id = $1)
		  AND ($2 = '' OR doctor_id = $2)
		  AND ($3 = '' OR type = $3)
		ORDER BY date DESC
	`, f.AnimalID, f.DoctorID, string(f.Type))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medical.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *MedicalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medical_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRecord(row rowScanner) (medical.Record, error) {
	var rec medical.Record
	var meds []byte
	var next sql.NullTime
	if err := row.Scan(
		&rec.ID,
		&rec.AnimalID,
		&rec.DoctorID,
		&rec.Date,
		&rec.Type,
		&rec.Diagnosis,
		&rec.Treatment,
		&meds,
		&rec.Notes,
		&next,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return medical.Record{}, err
	}

	// medications is jsonb, an array of strings
	if len(meds) > 0 {
		if err := json.Unmarshal(meds, &rec.Medications); err != nil {
			return medical.Record{}, err
		}
	}
	rec.NextCheckup = fromNullTime(next)
	return rec, nil
}
