package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridian-erp/meridian-erp/internal/platform/db"
	"github.com/meridian-erp/meridian-erp/internal/products"
	"github.com/meridian-erp/meridian-erp/internal/shared"
)

type Repository interface {
	Get(ctx context.Context, id int64) (Sale, error)
	Search(ctx context.Context, filter BoundedFilter, page shared.PageRequest) ([]Sale, int, error)
	Create(ctx context.Context, s Sale) (Sale, error)
	Update(ctx context.Context, s Sale) (Sale, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) Get(ctx context.Context, id int64) (Sale, error) {
	var s Sale
	err := r.pool.QueryRow(ctx,
		`SELECT id, total, purchase_date, customer_id, supplier_id FROM sales WHERE id = $1`, id).
		Scan(&s.ID, &s.Total, &s.PurchaseDate, &s.CustomerID, &s.SupplierID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Sale{}, fmt.Errorf("sale %d: %w", id, shared.ErrNotFound)
		}
		return Sale{}, err
	}

	items, err := r.loadLines(ctx, id)
	if err != nil {
		return Sale{}, err
	}
	s.Products = items
	return s, nil
}

func (r *repository) Search(ctx context.Context, filter BoundedFilter, page shared.PageRequest) ([]Sale, int, error) {
	const where = ` FROM sales
		WHERE purchase_date BETWEEN $1 AND $2
		  AND total BETWEEN $3 AND $4`

	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*)`+where,
		filter.PurchaseFrom, filter.PurchaseTo, filter.TotalFrom, filter.TotalTo).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	page = page.Normalize()
	rows, err := r.pool.Query(ctx,
		`SELECT id, total, purchase_date, customer_id, supplier_id`+where+
			` ORDER BY purchase_date ASC, id ASC LIMIT $5 OFFSET $6`,
		filter.PurchaseFrom, filter.PurchaseTo, filter.TotalFrom, filter.TotalTo,
		page.PerPage, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Sale
	for rows.Next() {
		var s Sale
		if err := rows.Scan(&s.ID, &s.Total, &s.PurchaseDate, &s.CustomerID, &s.SupplierID); err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range out {
		items, err := r.loadLines(ctx, out[i].ID)
		if err != nil {
			return nil, 0, err
		}
		out[i].Products = items
	}
	return out, total, nil
}

// Create persists the sale and its line items in one transaction.
func (r *repository) Create(ctx context.Context, s Sale) (Sale, error) {
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO sales (total, purchase_date, customer_id, supplier_id)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			s.Total, s.PurchaseDate, s.CustomerID, s.SupplierID).Scan(&s.ID)
		if err != nil {
			return err
		}
		return insertLines(ctx, tx, s.ID, s.ProductIDs())
	})
	if err != nil {
		return Sale{}, err
	}
	return s, nil
}

// Update overwrites the sale by id and replaces its line items in one
// transaction.
func (r *repository) Update(ctx context.Context, s Sale) (Sale, error) {
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE sales SET total = $1, purchase_date = $2, customer_id = $3, supplier_id = $4 WHERE id = $5`,
			s.Total, s.PurchaseDate, s.CustomerID, s.SupplierID, s.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("sale %d: %w", s.ID, shared.ErrNotFound)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM sale_products WHERE sale_id = $1`, s.ID); err != nil {
			return err
		}
		return insertLines(ctx, tx, s.ID, s.ProductIDs())
	})
	if err != nil {
		return Sale{}, err
	}
	return s, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sale %d: %w", id, shared.ErrNotFound)
	}
	return nil
}

func (r *repository) loadLines(ctx context.Context, saleID int64) ([]products.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.name, p.code, p.price, p.quantity, p.on_promotion, p.promo_price, p.supplier_id, p.image_ref
		 FROM sale_products sp
		 JOIN products p ON p.id = sp.product_id
		 WHERE sp.sale_id = $1
		 ORDER BY sp.position ASC`, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []products.Product
	for rows.Next() {
		var p products.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Code, &p.Price, &p.Quantity,
			&p.OnPromotion, &p.PromoPrice, &p.SupplierID, &p.ImageRef)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func insertLines(ctx context.Context, tx pgx.Tx, saleID int64, productIDs []int64) error {
	for i, productID := range productIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO sale_products (sale_id, product_id, position) VALUES ($1, $2, $3)`,
			saleID, productID, i+1)
		if err != nil {
			return err
		}
	}
	return nil
}
