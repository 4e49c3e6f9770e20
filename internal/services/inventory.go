package service

import (
	"context"
	"database/sql"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/errors"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	repository "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/repositories"
	"github.com/google/uuid"
)

type InventoryService interface {
	GetInventory(ctx context.Context, productID uuid.UUID) (*models.Inventory, error)
	Restock(ctx context.Context, productID uuid.UUID, quantity int) (*models.Inventory, error)
	Reserve(ctx context.Context, productID uuid.UUID, quantity int) (*models.Inventory, error)
	Release(ctx context.Context, productID uuid.UUID, quantity int) (*models.Inventory, error)
	ReapplyOrderAdjustments(ctx context.Context, orderID uuid.UUID) (int, error)
}

type inventoryService struct {
	repo repository.InventoryRepository
}

func NewInventoryService(repo repository.InventoryRepository) InventoryService {
	return &inventoryService{repo: repo}
}

func (s *inventoryService) GetInventory(ctx context.Context, productID uuid.UUID) (*models.Inventory, error) {

	inventory, err := s.repo.GetByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Inventory not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch inventory").WithError(err)
	}

	return inventory, nil
}

func (s *inventoryService) Restock(ctx context.Context, productID uuid.UUID, quantity int) (*models.Inventory, error) {

	inventory, err := s.repo.Restock(ctx, productID, quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Inventory not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to restock").WithError(err)
	}

	return inventory, nil
}

func (s *inventoryService) Reserve(ctx context.Context, productID uuid.UUID, quantity int) (*models.Inventory, error) {

	inventory, err := s.repo.Reserve(ctx, productID, quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Inventory not found").WithError(err)
		}

		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, errors.ConstraintViolationError("Not enough unreserved stock").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to reserve stock").WithError(err)
	}

	return inventory, nil
}

func (s *inventoryService) Release(ctx context.Context, productID uuid.UUID, quantity int) (*models.Inventory, error) {

	inventory, err := s.repo.Release(ctx, productID, quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Inventory not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to release reservation").WithError(err)
	}

	return inventory, nil
}

// ReapplyOrderAdjustments retries the inventory side effect for an order.
// Items already applied are skipped by the adjustment ledger, so calling
// this any number of times moves the counters at most once per item.
func (s *inventoryService) ReapplyOrderAdjustments(ctx context.Context, orderID uuid.UUID) (int, error) {

	applied, err := s.repo.ApplyOrderAdjustments(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errors.NotFoundError("Order not found").WithError(err)
		}

		return 0, errors.DatabaseError("Failed to apply inventory adjustments").WithError(err)
	}

	return applied, nil
}
