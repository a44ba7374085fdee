package postgres

import (
	"context"
	"database/sql"
	"strings"

	"zoo-ops/internal/domain/inventory"
)

type InventoryRepo struct {
	db *sql.DB
}

func NewInventoryRepo(db *sql.DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

func (r *InventoryRepo) Create(ctx context.Context, it inventory.Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory_items (
			id, name, category,
			quantity, unit,
			min_threshold, max_threshold,
			cost, supplier,
			expiry_date, last_restocked,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		it.ID,
		it.Name,
		it.Category,
		it.Quantity,
		it.Unit,
		it.MinThreshold,
		it.MaxThreshold,
		it.Cost,
		it.Supplier,
		toNullTime(it.ExpiryDate),
		toNullTime(it.LastRestocked),
		it.CreatedAt,
		it.UpdatedAt,
	)
	return err
}

func (r *InventoryRepo) Update(ctx context.Context, it inventory.Item) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE inventory_items
		SET
			name = $2,
			category = $3,
			quantity = $4,
			unit = $5,
			min_threshold = $6,
			max_threshold = $7,
			cost = $8,
			supplier = $9,
			expiry_date = $10,
			last_restocked = $11,
			updated_at = $12
		WHERE id = $1
	`,
		it.ID,
		it.Name,
		it.Category,
		it.Quantity,
		it.Unit,
		it.MinThreshold,
		it.MaxThreshold,
		it.Cost,
		it.Supplier,
		toNullTime(it.ExpiryDate),
		toNullTime(it.LastRestocked),
		it.UpdatedAt,
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

func (r *InventoryRepo) GetByID(ctx context.Context, id string) (inventory.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return inventory.Item{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, category,
			quantity, unit,
			min_threshold, max_threshold,
			cost, supplier,
			expiry_date, last_restocked,
			created_at, updated_at
		FROM inventory_items
		WHERE id = $1
	`, id)

	it, err := scanItem(row)
	if err == sql.ErrNoRows {
		return inventory.Item{}, ErrNotFound
	}
	return it, err
}

func (r *InventoryRepo) List(ctx context.Context, category inventory.Category) ([]inventory.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, category,
			quantity, unit,
			min_threshold, max_threshold,
			cost, supplier,
			expiry_date, last_restocked,
			created_at, updated_at
		FROM inventory_items
		WHERE ($1 = '' OR category = $1)
		ORDER BY created_at ASC
	`, string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]inventory.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanItem(row rowScanner) (inventory.Item, error) {
	var it inventory.Item
	var expiry, restocked sql.NullTime
	if err := row.Scan(
		&it.ID,
		&it.Name,
		&it.Category,
		&it.Quantity,
		&it.Unit,
		&it.MinThreshold,
		&it.MaxThreshold,
		&it.Cost,
		&it.Supplier,
		&expiry,
		&restocked,
		&it.CreatedAt,
		&it.UpdatedAt,
	); err != nil {
		return inventory.Item{}, err
	}

	it.ExpiryDate = fromNullTime(expiry)
	it.LastRestocked = fromNullTime(restocked)
	return it, nil
}
