package repository_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{
	"id", "title", "slug", "description", "unit_price", "inventory", "collection_id", "last_updated", "promotions",
}

func TestListProducts(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()

	t.Run("Filters, Orders And Paginates", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)
		collectionID := int64(2)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products p WHERE p.collection_id = \$1 AND \(p.title ILIKE \$2 OR p.description ILIKE \$2\)`).
			WithArgs(int64(2), "%mug%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

		mock.ExpectQuery(`GROUP BY p.id ORDER BY p.unit_price DESC, p.id ASC LIMIT \$3 OFFSET \$4`).
			WithArgs(int64(2), "%mug%", 10, 10).
			WillReturnRows(sqlmock.NewRows(productColumns).
				AddRow(5, "Coffee Mug", "coffee-mug", nil, "12.50", 4, 2, now, "{1,3}"))

		// Act
		products, total, err := repo.ListProducts(ctx, models.ProductFilter{
			CollectionID: &collectionID,
			Search:       "mug",
			Ordering:     "-price",
			Page:         2,
			PageSize:     10,
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 11, total)
		require.Len(t, products, 1)
		assert.Equal(t, "coffee-mug", products[0].Slug)
		assert.True(t, decimal.RequireFromString("12.50").Equal(products[0].UnitPrice))
		assert.Equal(t, pq.Int64Array{1, 3}, products[0].Promotions)
		assert.Nil(t, products[0].Description)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Search Wildcards Matched Literally", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products p WHERE \(p.title ILIKE \$1`).
			WithArgs(`%50\% off\_now\\%`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`LIMIT \$2 OFFSET \$3`).
			WithArgs(`%50\% off\_now\\%`, 10, 0).
			WillReturnRows(sqlmock.NewRows(productColumns))

		_, _, err := repo.ListProducts(ctx, models.ProductFilter{Search: `50% off_now\`, Page: 1, PageSize: 10})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No Filters Uses Title Ordering", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM products p$`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`ORDER BY p.title ASC, p.id ASC LIMIT \$1 OFFSET \$2`).
			WithArgs(10, 0).
			WillReturnRows(sqlmock.NewRows(productColumns))

		products, total, err := repo.ListProducts(ctx, models.ProductFilter{Page: 1, PageSize: 10})

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetProductByID(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		mock.ExpectQuery(`WHERE p.id = \$1 GROUP BY p.id`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(productColumns).
				AddRow(5, "Coffee Mug", "coffee-mug", "Ceramic", "12.50", 4, 2, time.Now(), "{}"))

		product, err := repo.GetProductByID(ctx, 5)

		require.NoError(t, err)
		require.NotNil(t, product.Description)
		assert.Equal(t, "Ceramic", *product.Description)
		assert.Empty(t, product.Promotions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		mock.ExpectQuery(`WHERE p.id = \$1`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(productColumns))

		product, err := repo.GetProductByID(ctx, 5)

		require.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, product)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewProductRepo(db)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM products WHERE id = \$1\)`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ProductExists(t.Context(), 3)

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProduct(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()

	newProduct := func() *models.Product {
		return &models.Product{
			Title:        "Coffee Mug",
			Slug:         "coffee-mug",
			UnitPrice:    decimal.RequireFromString("12.50"),
			Inventory:    4,
			CollectionID: 2,
			Promotions:   pq.Int64Array{1, 3},
		}
	}

	t.Run("Success With Promotions", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)
		product := newProduct()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO products \(title, slug, description, unit_price, inventory, collection_id, last_updated\)`).
			WithArgs("Coffee Mug", "coffee-mug", nil, decimal.RequireFromString("12.50"), 4, int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "last_updated"}).AddRow(9, now))
		mock.ExpectExec(`INSERT INTO product_promotions \(product_id, promotion_id\) SELECT \$1, unnest\(\$2::bigint\[\]\)`).
			WithArgs(int64(9), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		// Act
		err := repo.CreateProduct(ctx, product)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(9), product.ID)
		assert.Equal(t, now, product.LastUpdated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown Collection", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO products`).
			WillReturnError(&pq.Error{Code: "23503", Constraint: "products_collection_id_fkey"})
		mock.ExpectRollback()

		err := repo.CreateProduct(ctx, newProduct())

		require.ErrorIs(t, err, repository.ErrCollectionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown Promotion", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO products`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "last_updated"}).AddRow(9, now))
		mock.ExpectExec(`INSERT INTO product_promotions`).
			WillReturnError(&pq.Error{Code: "23503", Constraint: "product_promotions_promotion_id_fkey"})
		mock.ExpectRollback()

		err := repo.CreateProduct(ctx, newProduct())

		require.ErrorIs(t, err, repository.ErrPromotionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()

	product := func() *models.Product {
		return &models.Product{
			ID:           9,
			Title:        "Tea Mug",
			Slug:         "tea-mug",
			UnitPrice:    decimal.RequireFromString("8"),
			Inventory:    1,
			CollectionID: 2,
			Promotions:   pq.Int64Array{1},
		}
	}

	t.Run("Keeps Promotions When Nil", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)
		p := product()

		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE products SET title = \$1`).
			WithArgs("Tea Mug", "tea-mug", nil, decimal.RequireFromString("8"), 1, int64(2), int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"last_updated"}).AddRow(now))
		mock.ExpectCommit()

		err := repo.UpdateProduct(ctx, p, nil)

		require.NoError(t, err)
		assert.Equal(t, pq.Int64Array{1}, p.Promotions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Clears Promotions When Empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)
		p := product()

		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE products`).
			WillReturnRows(sqlmock.NewRows([]string{"last_updated"}).AddRow(now))
		mock.ExpectExec(`DELETE FROM product_promotions WHERE product_id = \$1`).
			WithArgs(int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.UpdateProduct(ctx, p, []int64{})

		require.NoError(t, err)
		assert.Empty(t, p.Promotions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE products`).
			WillReturnRows(sqlmock.NewRows([]string{"last_updated"}))
		mock.ExpectRollback()

		err := repo.UpdateProduct(ctx, product(), nil)

		require.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := t.Context()

	expectOrdered := func(mock sqlmock.Sqlmock, ordered bool) {
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM order_items WHERE product_id = \$1\)`).
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(ordered))
	}

	t.Run("Referenced By Order Item", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		expectOrdered(mock, true)

		err := repo.DeleteProduct(ctx, 9)

		require.ErrorIs(t, err, repository.ErrReferenced)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ordered After Check", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		expectOrdered(mock, false)
		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs(int64(9)).
			WillReturnError(&pq.Error{Code: "23503", Constraint: "order_items_product_id_fkey"})

		err := repo.DeleteProduct(ctx, 9)

		require.ErrorIs(t, err, repository.ErrReferenced)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		expectOrdered(mock, false)
		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs(int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteProduct(ctx, 9))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
