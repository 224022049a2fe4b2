package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type ProductRepository interface {
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	ProductExists(ctx context.Context, id int64) (bool, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product, promotions []int64) error
	DeleteProduct(ctx context.Context, id int64) error
}

type productRepository struct {
	DB *sqlx.DB
}

func NewProductRepo(db *sqlx.DB) ProductRepository {
	return &productRepository{DB: db}
}

// client ordering keys; anything else is rejected by the service
var productOrdering = map[string]string{
	"":              "p.title ASC, p.id ASC",
	"price":         "p.unit_price ASC, p.id ASC",
	"-price":        "p.unit_price DESC, p.id ASC",
	"unit_price":    "p.unit_price ASC, p.id ASC",
	"-unit_price":   "p.unit_price DESC, p.id ASC",
	"last_updated":  "p.last_updated ASC, p.id ASC",
	"-last_updated": "p.last_updated DESC, p.id ASC",
}

func ValidProductOrdering(ordering string) bool {
	_, ok := productOrdering[ordering]
	return ok
}

const productSelect = `
	SELECT p.id, p.title, p.slug, p.description, p.unit_price, p.inventory, p.collection_id, p.last_updated,
		COALESCE(array_agg(pp.promotion_id ORDER BY pp.promotion_id) FILTER (WHERE pp.promotion_id IS NOT NULL), '{}') AS promotions
	FROM products p
	LEFT JOIN product_promotions pp ON pp.product_id = p.id`

// search text is matched literally; backslash is ILIKE's default escape
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func (r *productRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var (
		conditions []string
		args       []any
	)

	if filter.CollectionID != nil {
		args = append(args, *filter.CollectionID)
		conditions = append(conditions, fmt.Sprintf("p.collection_id = $%d", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+likeEscaper.Replace(filter.Search)+"%")
		conditions = append(conditions, fmt.Sprintf("(p.title ILIKE $%d OR p.description ILIKE $%d)", len(args), len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "\n\tWHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.DB.GetContext(dbCtx, &total, `SELECT COUNT(*) FROM products p`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	orderBy, ok := productOrdering[filter.Ordering]
	if !ok {
		orderBy = productOrdering[""]
	}

	offset := (filter.Page - 1) * filter.PageSize
	query := productSelect + where + fmt.Sprintf(`
	GROUP BY p.id
	ORDER BY %s
	LIMIT $%d OFFSET $%d`, orderBy, len(args)+1, len(args)+2)

	products := []*models.Product{}
	if err := r.DB.SelectContext(dbCtx, &products, query, append(args, filter.PageSize, offset)...); err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	return products, total, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := productSelect + `
	WHERE p.id = $1
	GROUP BY p.id`

	var product models.Product
	if err := r.DB.GetContext(dbCtx, &product, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

func (r *productRepository) ProductExists(ctx context.Context, id int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var exists bool
	if err := r.DB.GetContext(dbCtx, &exists, `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("failed to check product: %w", err)
	}

	return exists, nil
}

// CreateProduct inserts the product and links product.Promotions in one transaction.
func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTxx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO products (title, slug, description, unit_price, inventory, collection_id, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, last_updated`

	err = tx.QueryRowxContext(dbCtx, query,
		product.Title, product.Slug, product.Description, product.UnitPrice, product.Inventory, product.CollectionID,
	).Scan(&product.ID, &product.LastUpdated)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", translateError(err))
	}

	if err := linkPromotions(dbCtx, tx, product.ID, product.Promotions); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit product: %w", err)
	}

	return nil
}

// UpdateProduct writes every column of product. A non-nil promotions slice
// replaces the product's promotions; nil leaves them as they are.
func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product, promotions []int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTxx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE products
		SET title = $1, slug = $2, description = $3, unit_price = $4, inventory = $5, collection_id = $6, last_updated = NOW()
		WHERE id = $7
		RETURNING last_updated`

	err = tx.QueryRowxContext(dbCtx, query,
		product.Title, product.Slug, product.Description, product.UnitPrice, product.Inventory, product.CollectionID, product.ID,
	).Scan(&product.LastUpdated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}

		return fmt.Errorf("failed to update product: %w", translateError(err))
	}

	if promotions != nil {
		if _, err := tx.ExecContext(dbCtx, `DELETE FROM product_promotions WHERE product_id = $1`, product.ID); err != nil {
			return fmt.Errorf("failed to clear product promotions: %w", err)
		}

		if err := linkPromotions(dbCtx, tx, product.ID, promotions); err != nil {
			return err
		}

		product.Promotions = pq.Int64Array(promotions)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit product: %w", err)
	}

	return nil
}

// DeleteProduct fails with ErrReferenced while an order item points at the product.
func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if err := ensureUnreferenced(dbCtx, r.DB, `SELECT EXISTS(SELECT 1 FROM order_items WHERE product_id = $1)`, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", translateDeleteError(err))
	}

	return expectAffected(result)
}

func linkPromotions(ctx context.Context, tx *sqlx.Tx, productID int64, promotions []int64) error {
	if len(promotions) == 0 {
		return nil
	}

	query := `
		INSERT INTO product_promotions (product_id, promotion_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING`

	if _, err := tx.ExecContext(ctx, query, productID, pq.Array(promotions)); err != nil {
		return fmt.Errorf("failed to link promotions: %w", translateError(err))
	}

	return nil
}
