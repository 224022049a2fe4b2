package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

const componentName = "storefront"

func NewHealthHandler(cfg *config.Config, version string) (*health.Health, error) {
	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    componentName,
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks(cfg)...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

// postgres and redis must be up; stripe is reported but never fails the check
func checks(cfg *config.Config) []health.Config {
	list := []health.Config{
		{
			Name:    "database",
			Timeout: 3 * time.Second,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		},
		{
			Name:    "redis",
			Timeout: 2 * time.Second,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		},
	}

	if cfg.Stripe.APIKey != "" {
		api := client.New(cfg.Stripe.APIKey, nil)

		list = append(list, health.Config{
			Name:      "stripe",
			Timeout:   5 * time.Second,
			SkipOnErr: true,
			Check: func(ctx context.Context) error {
				params := &stripe.BalanceParams{Params: stripe.Params{Context: ctx}}
				if _, err := api.Balance.Get(params); err != nil {
					return fmt.Errorf("failed to connect to stripe: %w", err)
				}

				return nil
			},
		})
	}

	return list
}
