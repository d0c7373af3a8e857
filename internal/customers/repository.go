package customers

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
	Get(ctx context.Context, id int64) (Customer, error)
	FindByEmail(ctx context.Context, email string) (Customer, error)
	Search(ctx context.Context, filter BoundedFilter, page shared.PageRequest) ([]Customer, int, error)
	Create(ctx context.Context, c Customer) (Customer, error)
	Update(ctx context.Context, c Customer) (Customer, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const customerColumns = `id, name, email, password_hash, document, registered_at`

func (r *repository) Get(ctx context.Context, id int64) (Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Customer{}, fmt.Errorf("customer %d: %w", id, shared.ErrNotFound)
		}
		return Customer{}, err
	}
	return c, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
	c, err := scanCustomer(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Customer{}, fmt.Errorf("customer %s: %w", email, shared.ErrNotFound)
		}
		return Customer{}, err
	}
	return c, nil
}

func (r *repository) Search(ctx context.Context, filter BoundedFilter, page shared.PageRequest) ([]Customer, int, error) {
	const where = ` FROM customers
		WHERE name ILIKE '%' || $1 || '%'
		  AND email ILIKE '%' || $2 || '%'
		  AND document ILIKE '%' || $3 || '%'
		  AND registered_at BETWEEN $4 AND $5`

	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+where,
		filter.Name, filter.Email, filter.Document, filter.RegisteredFrom, filter.RegisteredTo).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	page = page.Normalize()
	rows, err := r.db.Query(ctx, `SELECT `+customerColumns+where+` ORDER BY name ASC LIMIT $6 OFFSET $7`,
		filter.Name, filter.Email, filter.Document, filter.RegisteredFrom, filter.RegisteredTo,
		page.PerPage, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (r *repository) Create(ctx context.Context, c Customer) (Customer, error) {
	query := `INSERT INTO customers (name, email, password_hash, document, registered_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, query, c.Name, c.Email, c.PasswordHash, c.Document, c.RegisteredAt).Scan(&c.ID)
	if err != nil {
		return Customer{}, mapSaveError(err, c.Email)
	}
	return c, nil
}

func (r *repository) Update(ctx context.Context, c Customer) (Customer, error) {
	query := `UPDATE customers SET name = $1, email = $2, password_hash = $3, document = $4, registered_at = $5
		WHERE id = $6`
	tag, err := r.db.Exec(ctx, query, c.Name, c.Email, c.PasswordHash, c.Document, c.RegisteredAt, c.ID)
	if err != nil {
		return Customer{}, mapSaveError(err, c.Email)
	}
	if tag.RowsAffected() == 0 {
		return Customer{}, fmt.Errorf("customer %d: %w", c.ID, shared.ErrNotFound)
	}
	return c, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %d: %w", id, shared.ErrNotFound)
	}
	return nil
}

func scanCustomer(row pgx.Row) (Customer, error) {
	var c Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.Document, &c.RegisteredAt)
	return c, err
}

// mapSaveError surfaces unique-violation conflicts as a domain error; all
// other storage failures pass through untouched.
func mapSaveError(err error, email string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("customer email %s: %w", email, shared.ErrAlreadyExists)
	}
	return err
}
