package service

import (
	"context"
	"database/sql"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/errors"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	repository "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/repositories"
	"github.com/google/uuid"
)

type ShipmentService interface {
	CreateShipment(ctx context.Context, orderID uuid.UUID, req *models.CreateShipmentRequest) (*models.Shipment, error)
	ListShipmentsByOrder(ctx context.Context, orderID uuid.UUID) ([]models.Shipment, error)
	UpdateShipmentStatus(ctx context.Context, id uuid.UUID, status models.ShipmentStatus) (*models.Shipment, error)
}

type shipmentService struct {
	repo      repository.ShipmentRepository
	orderRepo repository.OrderRepository
}

func NewShipmentService(repo repository.ShipmentRepository, orderRepo repository.OrderRepository) ShipmentService {
	return &shipmentService{repo: repo, orderRepo: orderRepo}
}

func (s *shipmentService) CreateShipment(ctx context.Context, orderID uuid.UUID, req *models.CreateShipmentRequest) (*models.Shipment, error) {

	if _, err := s.orderRepo.GetOrderByID(ctx, orderID); err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	shipment := &models.Shipment{
		ID:             uuid.New(),
		OrderID:        orderID,
		Carrier:        req.Carrier,
		TrackingNumber: req.TrackingNumber,
		Status:         models.ShipmentStatusPending,
	}

	if err := s.repo.CreateShipment(ctx, shipment); err != nil {
		if constraintErr := errors.ConstraintError(err); constraintErr != nil {
			return nil, constraintErr
		}

		return nil, errors.DatabaseError("Failed to create shipment").WithError(err)
	}

	return shipment, nil
}

func (s *shipmentService) ListShipmentsByOrder(ctx context.Context, orderID uuid.UUID) ([]models.Shipment, error) {

	shipments, err := s.repo.ListShipmentsByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch shipments").WithError(err)
	}

	return shipments, nil
}

func (s *shipmentService) UpdateShipmentStatus(ctx context.Context, id uuid.UUID, status models.ShipmentStatus) (*models.Shipment, error) {

	if !status.IsValid() {
		return nil, errors.ValidationError("Unknown shipment status: " + string(status))
	}

	shipment, err := s.repo.UpdateShipmentStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Shipment not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to update shipment status").WithError(err)
	}

	return shipment, nil
}
