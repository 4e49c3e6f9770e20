package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/utils"
	"github.com/google/uuid"
)

type ShipmentRepository interface {
	CreateShipment(ctx context.Context, shipment *models.Shipment) error
	ListShipmentsByOrder(ctx context.Context, orderID uuid.UUID) ([]models.Shipment, error)
	UpdateShipmentStatus(ctx context.Context, id uuid.UUID, status models.ShipmentStatus) (*models.Shipment, error)
}

type shipmentRepository struct {
	DB *sql.DB
}

func NewShipmentRepo(db *sql.DB) ShipmentRepository {
	return &shipmentRepository{DB: db}
}

const shipmentColumns = `id, order_id, carrier, COALESCE(tracking_number, ''), status, shipped_at, delivered_at, created_at, updated_at`

func (r *shipmentRepository) CreateShipment(ctx context.Context, shipment *models.Shipment) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO shipments (id, order_id, carrier, tracking_number, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, shipment.ID, shipment.OrderID, shipment.Carrier,
		nullableString(shipment.TrackingNumber), shipment.Status).
		Scan(&shipment.CreatedAt, &shipment.UpdatedAt)
}

func (r *shipmentRepository) ListShipmentsByOrder(ctx context.Context, orderID uuid.UUID) ([]models.Shipment, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE order_id = $1 ORDER BY created_at`

	rows, err := r.DB.QueryContext(dbCtx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	defer rows.Close()

	var shipments []models.Shipment

	for rows.Next() {
		var shipment models.Shipment

		err := rows.Scan(&shipment.ID, &shipment.OrderID, &shipment.Carrier, &shipment.TrackingNumber,
			&shipment.Status, &shipment.ShippedAt, &shipment.DeliveredAt, &shipment.CreatedAt, &shipment.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shipment: %w", err)
		}

		shipments = append(shipments, shipment)
	}

	return shipments, rows.Err()
}

// UpdateShipmentStatus stamps shipped_at/delivered_at the first time the
// matching status is reached.
func (r *shipmentRepository) UpdateShipmentStatus(ctx context.Context, id uuid.UUID, status models.ShipmentStatus) (*models.Shipment, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE shipments
		SET status = $1,
			shipped_at = CASE WHEN $1 = 'shipped' AND shipped_at IS NULL THEN NOW() ELSE shipped_at END,
			delivered_at = CASE WHEN $1 = 'delivered' AND delivered_at IS NULL THEN NOW() ELSE delivered_at END,
			updated_at = NOW()
		WHERE id = $2
		RETURNING ` + shipmentColumns + `
	`

	shipment := &models.Shipment{}

	err := r.DB.QueryRowContext(dbCtx, query, status, id).Scan(
		&shipment.ID, &shipment.OrderID, &shipment.Carrier, &shipment.TrackingNumber,
		&shipment.Status, &shipment.ShippedAt, &shipment.DeliveredAt, &shipment.CreatedAt, &shipment.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to update shipment status: %w", err)
	}

	return shipment, nil
}
