package suppliers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridian-erp/meridian-erp/internal/shared"
)

type Repository interface {
	Get(ctx context.Context, id int64) (Supplier, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Search(ctx context.Context, filter BoundedFilter, page shared.PageRequest) ([]Supplier, int, error)
	Create(ctx context.Context, s Supplier) (Supplier, error)
	Update(ctx context.Context, s Supplier) (Supplier, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context, id int64) (Supplier, error) {
	var s Supplier
	err := r.db.QueryRow(ctx, `SELECT id, name, tax_id FROM suppliers WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.TaxID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Supplier{}, fmt.Errorf("supplier %d: %w", id, shared.ErrNotFound)
		}
		return Supplier{}, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name, code FROM products WHERE supplier_id = $1 ORDER BY name ASC`, id)
	if err != nil {
		return Supplier{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var ref ProductRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Code); err != nil {
			return Supplier{}, err
		}
		s.Products = append(s.Products, ref)
	}
	return s, rows.Err()
}

func (r *repository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM suppliers WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *repository) Search(ctx context.Context, filter BoundedFilter, page shared.PageRequest) ([]Supplier, int, error) {
	const where = ` FROM suppliers
		WHERE name ILIKE '%' || $1 || '%'
		  AND tax_id ILIKE '%' || $2 || '%'`

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+where, filter.Name, filter.TaxID).Scan(&total); err != nil {
		return nil, 0, err
	}

	page = page.Normalize()
	rows, err := r.db.Query(ctx, `SELECT id, name, tax_id`+where+` ORDER BY name ASC LIMIT $3 OFFSET $4`,
		filter.Name, filter.TaxID, page.PerPage, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Supplier
	for rows.Next() {
		var s Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.TaxID); err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

func (r *repository) Create(ctx context.Context, s Supplier) (Supplier, error) {
	err := r.db.QueryRow(ctx, `INSERT INTO suppliers (name, tax_id) VALUES ($1, $2) RETURNING id`,
		s.Name, s.TaxID).Scan(&s.ID)
	if err != nil {
		return Supplier{}, mapSaveError(err, s.TaxID)
	}
	return s, nil
}

func (r *repository) Update(ctx context.Context, s Supplier) (Supplier, error) {
	tag, err := r.db.Exec(ctx, `UPDATE suppliers SET name = $1, tax_id = $2 WHERE id = $3`,
		s.Name, s.TaxID, s.ID)
	if err != nil {
		return Supplier{}, mapSaveError(err, s.TaxID)
	}
	if tag.RowsAffected() == 0 {
		return Supplier{}, fmt.Errorf("supplier %d: %w", s.ID, shared.ErrNotFound)
	}
	return s, nil
}

// Delete removes the supplier. Products or sales still referencing it hit
// the FK restriction and surface as a storage failure, by decision: no
// cascade is invented at this layer.
func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("supplier %d: %w", id, shared.ErrNotFound)
	}
	return nil
}

func mapSaveError(err error, taxID string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("supplier tax id %s: %w", taxID, shared.ErrAlreadyExists)
	}
	return err
}
