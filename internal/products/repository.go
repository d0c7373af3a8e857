package products

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
	Get(ctx context.Context, id int64) (Product, error)
	ListByIDs(ctx context.Context, ids []int64) ([]Product, error)
	Search(ctx context.Context, filter BoundedFilter, page shared.PageRequest) ([]Product, int, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, p Product) (Product, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, code, price, quantity, on_promotion, promo_price, supplier_id, image_ref`

func (r *repository) Get(ctx context.Context, id int64) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, fmt.Errorf("product %d: %w", id, shared.ErrNotFound)
		}
		return Product{}, err
	}
	return p, nil
}

// ListByIDs returns products in the order the ids were supplied; a missing
// id aborts with ErrNotFound.
func (r *repository) ListByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[int64]Product, len(ids))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("product %d: %w", id, shared.ErrNotFound)
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *repository) Search(ctx context.Context, filter BoundedFilter, page shared.PageRequest) ([]Product, int, error) {
	const where = ` FROM products
		WHERE name ILIKE '%' || $1 || '%'
		  AND code ILIKE '%' || $2 || '%'
		  AND price BETWEEN $3 AND $4
		  AND quantity BETWEEN $5 AND $6
		  AND (promo_price IS NULL OR promo_price BETWEEN $7 AND $8)`

	args := []any{
		filter.Name, filter.Code,
		filter.PriceFrom, filter.PriceTo,
		filter.QuantityFrom, filter.QuantityTo,
		filter.PromoPriceFrom, filter.PromoPriceTo,
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page = page.Normalize()
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+where+` ORDER BY name ASC LIMIT $9 OFFSET $10`,
		append(args, page.PerPage, page.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *repository) Create(ctx context.Context, p Product) (Product, error) {
	query := `INSERT INTO products (name, code, price, quantity, on_promotion, promo_price, supplier_id, image_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		p.Name, p.Code, p.Price, p.Quantity, p.OnPromotion, p.PromoPrice, p.SupplierID, p.ImageRef).Scan(&p.ID)
	if err != nil {
		return Product{}, mapSaveError(err, p.Code)
	}
	return p, nil
}

func (r *repository) Update(ctx context.Context, p Product) (Product, error) {
	query := `UPDATE products SET name = $1, code = $2, price = $3, quantity = $4,
		on_promotion = $5, promo_price = $6, supplier_id = $7, image_ref = $8 WHERE id = $9`
	tag, err := r.db.Exec(ctx, query,
		p.Name, p.Code, p.Price, p.Quantity, p.OnPromotion, p.PromoPrice, p.SupplierID, p.ImageRef, p.ID)
	if err != nil {
		return Product{}, mapSaveError(err, p.Code)
	}
	if tag.RowsAffected() == 0 {
		return Product{}, fmt.Errorf("product %d: %w", p.ID, shared.ErrNotFound)
	}
	return p, nil
}

// Delete removes the product. Sales still referencing it hit the FK
// restriction and surface as a storage failure; no cascade is invented.
func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", id, shared.ErrNotFound)
	}
	return nil
}

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Code, &p.Price, &p.Quantity,
		&p.OnPromotion, &p.PromoPrice, &p.SupplierID, &p.ImageRef)
	return p, err
}

func mapSaveError(err error, code string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("product code %s: %w", code, shared.ErrAlreadyExists)
	}
	return err
}
