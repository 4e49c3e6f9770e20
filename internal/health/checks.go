package health

import (
	"context"
	"fmt"
	"time"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/sendgrid/sendgrid-go"
)

func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{

			Name:    "ecommerce-database-system",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "database",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: postgres.New(postgres.Config{
					DSN: cfg.Database.GetDSN(),
				}),
			},
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			health.Config{
				Name:    "sendgrid",
				Timeout: 5 * time.Second,
				// Confirmation emails are sent best-effort, so a provider
				// outage degrades the status instead of failing it.
				SkipOnErr: true,
				Check: func(ctx context.Context) error {
					if cfg.SendGrid.APIKey == "" {
						return fmt.Errorf("sendgrid api key is not configured")
					}
					request := sendgrid.GetRequest(cfg.SendGrid.APIKey, "/v3/scopes", "https://api.sendgrid.com")
					request.Method = "GET"
					resp, err := sendgrid.MakeRequestWithContext(ctx, request)
					if err != nil {
						return fmt.Errorf("failed to connect to sendgrid: %w", err)
					}
					if resp.StatusCode >= 400 {
						return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
					}
					return nil
				},
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
