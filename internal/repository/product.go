package repository

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/sweetbatch/orderdesk/internal/domain/pricing"
	"github.com/sweetbatch/orderdesk/internal/domain/product"
)

const (
	listProductsSQL = `SELECT id, name, price, category, step
		FROM products WHERE active = TRUE ORDER BY id`

	getProductByIDSQL = `SELECT id, name, price, category, step
		FROM products WHERE id = $1 AND active = TRUE`

	getProductsByIDsSQL = `SELECT id, name, price, category, step
		FROM products WHERE id = ANY($1) AND active = TRUE`

	listTiersSQL = `SELECT product_id, min_quantity, discount
		FROM product_tiers WHERE product_id = ANY($1) ORDER BY product_id, min_quantity`
)

var _ product.Repository = (*ProductRepository)(nil)

// ProductRepository implements product.Repository backed by PostgreSQL.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository returns a ProductRepository that uses the given pool.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// List returns all active products with their tier tables.
func (r *ProductRepository) List(ctx context.Context) ([]product.Product, error) {
	rows, err := r.pool.Query(ctx, listProductsSQL)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return r.attachTiers(ctx, products)
}

// GetByID returns a single product with its tier table.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product
	err := r.pool.QueryRow(ctx, getProductByIDSQL, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Category, &p.Step,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrNotFound
		}
		return nil, fmt.Errorf("getting product %q: %w", id, err)
	}

	withTiers, err := r.attachTiers(ctx, []product.Product{p})
	if err != nil {
		return nil, err
	}
	return &withTiers[0], nil
}

// GetByIDs batch-fetches products with their tier tables. Missing ids are
// simply absent from the result; the caller decides whether that is an error.
func (r *ProductRepository) GetByIDs(ctx context.Context, ids []string) ([]product.Product, error) {
	rows, err := r.pool.Query(ctx, getProductsByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("getting products: %w", err)
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("getting products: %w", err)
	}
	return r.attachTiers(ctx, products)
}

func collectProducts(rows pgx.Rows) ([]product.Product, error) {
	defer rows.Close()

	var out []product.Product
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Step); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// attachTiers loads the discount tiers for the given products in one query.
func (r *ProductRepository) attachTiers(ctx context.Context, products []product.Product) ([]product.Product, error) {
	if len(products) == 0 {
		return products, nil
	}

	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	rows, err := r.pool.Query(ctx, listTiersSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("listing product tiers: %w", err)
	}
	defer rows.Close()

	tiersByProduct := make(map[string][]pricing.Tier)
	for rows.Next() {
		var (
			productID string
			minQty    int
			discount  decimal.Decimal
		)
		if err := rows.Scan(&productID, &minQty, &discount); err != nil {
			return nil, fmt.Errorf("listing product tiers: %w", err)
		}
		tiersByProduct[productID] = append(tiersByProduct[productID], pricing.Tier{
			MinQuantity: minQty,
			Discount:    discount,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing product tiers: %w", err)
	}

	for i := range products {
		products[i].Tiers = tiersByProduct[products[i].ID]
	}
	return products, nil
}
