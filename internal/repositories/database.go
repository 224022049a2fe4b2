package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.opentelemetry.io/otel/attribute"
)

type Repository struct {
	DB         *sqlx.DB
	User       UserRepository
	Collection CollectionRepository
	Promotion  PromotionRepository
	Product    ProductRepository
	Review     ReviewRepository
	Customer   CustomerRepository
	Cart       CartRepository
	Order      OrderRepository
}

// New opens the traced Postgres pool and builds every repository on it.
func New(cfg *config.Config) (*Repository, error) {
	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewFromDB(sqlx.NewDb(db, "postgres")), nil
}

func NewFromDB(db *sqlx.DB) *Repository {
	return &Repository{
		DB:         db,
		User:       NewUserRepo(db),
		Collection: NewCollectionRepo(db),
		Promotion:  NewPromotionRepo(db),
		Product:    NewProductRepo(db),
		Review:     NewReviewRepo(db),
		Customer:   NewCustomerRepo(db),
		Cart:       NewCartRepo(db),
		Order:      NewOrderRepo(db),
	}
}

func (r *Repository) Close() error {
	return r.DB.Close()
}
