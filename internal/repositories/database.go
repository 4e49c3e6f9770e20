package repository

import (
	"database/sql"
	"fmt"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/config"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/db"
	"github.com/XSAM/otelsql"
	"log/slog"

	_ "github.com/lib/pq"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Repository owns the database pool and hands out the per-entity
// repositories built on it.
type Repository struct {
	DB *sql.DB

	User         UserRepository
	Product      ProductRepository
	Inventory    InventoryRepository
	Cart         CartRepository
	Checkout     CheckoutRepository
	Order        OrderRepository
	Payment      PaymentRepository
	Shipment     ShipmentRepository
	Review       ReviewRepository
	Activity     ActivityRepository
	Report       ReportRepository
	Notification NotificationRepository
}

func New(cfg *config.Config, logger *slog.Logger) (*Repository, error) {

	dsn := cfg.Database.GetDSN()

	if cfg.Database.RunMigrations {
		if err := db.RunMigrations(dsn, logger); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// otelsql wraps the postgres driver so every query carries a span.
	pool, err := otelsql.Open("postgres", dsn,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	pool.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := pool.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		DB:           pool,
		User:         NewUserRepo(pool),
		Product:      NewProductRepo(pool),
		Inventory:    NewInventoryRepo(pool),
		Cart:         NewCartRepo(pool),
		Checkout:     NewCheckoutRepo(pool),
		Order:        NewOrderRepo(pool),
		Payment:      NewPaymentRepo(pool),
		Shipment:     NewShipmentRepo(pool),
		Review:       NewReviewRepo(pool),
		Activity:     NewActivityRepo(pool),
		Report:       NewReportRepo(pool),
		Notification: NewNotificationRepo(pool),
	}, nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
