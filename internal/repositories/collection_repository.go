package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/jmoiron/sqlx"
)

type CollectionRepository interface {
	ListCollections(ctx context.Context) ([]*models.Collection, error)
	GetCollectionByID(ctx context.Context, id int64) (*models.Collection, error)
	CreateCollection(ctx context.Context, collection *models.Collection) error
	UpdateCollection(ctx context.Context, collection *models.Collection) error
	DeleteCollection(ctx context.Context, id int64) error
}

type collectionRepository struct {
	DB *sqlx.DB
}

func NewCollectionRepo(db *sqlx.DB) CollectionRepository {
	return &collectionRepository{DB: db}
}

const collectionColumns = `
	SELECT c.id, c.title, c.featured_product_id, COUNT(p.id) AS product_count
	FROM collections c
	LEFT JOIN products p ON p.collection_id = c.id`

func (r *collectionRepository) ListCollections(ctx context.Context) ([]*models.Collection, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := collectionColumns + `
	GROUP BY c.id
	ORDER BY c.id`

	collections := []*models.Collection{}
	if err := r.DB.SelectContext(dbCtx, &collections, query); err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	return collections, nil
}

func (r *collectionRepository) GetCollectionByID(ctx context.Context, id int64) (*models.Collection, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := collectionColumns + `
	WHERE c.id = $1
	GROUP BY c.id`

	var collection models.Collection
	if err := r.DB.GetContext(dbCtx, &collection, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get collection: %w", err)
	}

	return &collection, nil
}

func (r *collectionRepository) CreateCollection(ctx context.Context, collection *models.Collection) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO collections (title, featured_product_id)
		VALUES ($1, $2)
		RETURNING id`

	if err := r.DB.QueryRowxContext(dbCtx, query, collection.Title, collection.FeaturedProductID).Scan(&collection.ID); err != nil {
		return fmt.Errorf("failed to create collection: %w", translateError(err))
	}

	return nil
}

func (r *collectionRepository) UpdateCollection(ctx context.Context, collection *models.Collection) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE collections SET title = $1, featured_product_id = $2 WHERE id = $3`

	result, err := r.DB.ExecContext(dbCtx, query, collection.Title, collection.FeaturedProductID, collection.ID)
	if err != nil {
		return fmt.Errorf("failed to update collection: %w", translateError(err))
	}

	return expectAffected(result)
}

// DeleteCollection fails with ErrReferenced while any product belongs to
// the collection. The RESTRICT foreign key still catches a product inserted
// between the check and the delete.
func (r *collectionRepository) DeleteCollection(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if err := ensureUnreferenced(dbCtx, r.DB, `SELECT EXISTS(SELECT 1 FROM products WHERE collection_id = $1)`, id); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", translateDeleteError(err))
	}

	return expectAffected(result)
}

// ensureUnreferenced runs an EXISTS query and reports a hit as ErrReferenced.
func ensureUnreferenced(ctx context.Context, db *sqlx.DB, query string, id int64) error {
	var referenced bool
	if err := db.GetContext(ctx, &referenced, query, id); err != nil {
		return fmt.Errorf("failed to check references: %w", err)
	}

	if referenced {
		return ErrReferenced
	}

	return nil
}

func expectAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
