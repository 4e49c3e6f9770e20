package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/utils"
	"github.com/google/uuid"
)

type InventoryRepository interface {
	GetByProductID(ctx context.Context, productID uuid.UUID) (*models.Inventory, error)
	Restock(ctx context.Context, productID uuid.UUID, quantity int) (*models.Inventory, error)
	Reserve(ctx context.Context, productID uuid.UUID, quantity int) (*models.Inventory, error)
	Release(ctx context.Context, productID uuid.UUID, quantity int) (*models.Inventory, error)
	ApplyOrderAdjustments(ctx context.Context, orderID uuid.UUID) (int, error)
}

type inventoryRepository struct {
	DB *sql.DB
}

func NewInventoryRepo(db *sql.DB) InventoryRepository {
	return &inventoryRepository{DB: db}
}

func (r *inventoryRepository) GetByProductID(ctx context.Context, productID uuid.UUID) (*models.Inventory, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT product_id, stock, reserved, updated_at
		FROM inventory
		WHERE product_id = $1
	`

	inventory := &models.Inventory{}

	err := r.DB.QueryRowContext(dbCtx, query, productID).
		Scan(&inventory.ProductID, &inventory.Stock, &inventory.Reserved, &inventory.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	return inventory, nil
}

func (r *inventoryRepository) Restock(ctx context.Context, productID uuid.UUID, quantity int) (*models.Inventory, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE inventory
		SET stock = stock + $2, updated_at = NOW()
		WHERE product_id = $1
		RETURNING product_id, stock, reserved, updated_at
	`

	return r.scanInventoryRow(r.DB.QueryRowContext(dbCtx, query, productID, quantity), "restock")
}

// Reserve holds quantity units against uncommitted carts/orders. The
// condition keeps reserved within free stock; zero rows means either a
// missing record or an overcommit, told apart by a follow-up lookup.
func (r *inventoryRepository) Reserve(ctx context.Context, productID uuid.UUID, quantity int) (*models.Inventory, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE inventory
		SET reserved = reserved + $2, updated_at = NOW()
		WHERE product_id = $1 AND stock - reserved >= $2
		RETURNING product_id, stock, reserved, updated_at
	`

	inventory := &models.Inventory{}

	err := r.DB.QueryRowContext(dbCtx, query, productID, quantity).
		Scan(&inventory.ProductID, &inventory.Stock, &inventory.Reserved, &inventory.UpdatedAt)
	if err == nil {
		return inventory, nil
	}

	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to reserve stock: %w", err)
	}

	var exists bool

	if err := r.DB.QueryRowContext(dbCtx, `SELECT EXISTS (SELECT 1 FROM inventory WHERE product_id = $1)`, productID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check inventory record: %w", err)
	}

	if !exists {
		return nil, sql.ErrNoRows
	}

	return nil, ErrInsufficientStock
}

func (r *inventoryRepository) Release(ctx context.Context, productID uuid.UUID, quantity int) (*models.Inventory, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE inventory
		SET reserved = GREATEST(reserved - $2, 0), updated_at = NOW()
		WHERE product_id = $1
		RETURNING product_id, stock, reserved, updated_at
	`

	return r.scanInventoryRow(r.DB.QueryRowContext(dbCtx, query, productID, quantity), "release")
}

// ApplyOrderAdjustments re-applies the inventory side effect for every item
// of an order. Safe to call any number of times; the adjustments ledger
// skips items already applied. Returns how many items were newly applied.
func (r *inventoryRepository) ApplyOrderAdjustments(ctx context.Context, orderID uuid.UUID) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin adjustment transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(dbCtx, `SELECT id, product_id, quantity FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to load order items: %w", err)
	}

	type itemRow struct {
		id        uuid.UUID
		productID uuid.UUID
		quantity  int
	}

	var items []itemRow

	for rows.Next() {
		var item itemRow

		if err := rows.Scan(&item.id, &item.productID, &item.quantity); err != nil {
			rows.Close()

			return 0, fmt.Errorf("failed to scan order item: %w", err)
		}

		items = append(items, item)
	}

	rows.Close()

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to read order items: %w", err)
	}

	if len(items) == 0 {
		return 0, sql.ErrNoRows
	}

	applied := 0

	for _, item := range items {
		inserted, err := applyInventoryAdjustment(dbCtx, tx, item.id, item.productID, item.quantity)
		if err != nil {
			return 0, err
		}

		if inserted {
			applied++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit adjustments: %w", err)
	}

	return applied, nil
}

func (r *inventoryRepository) scanInventoryRow(row *sql.Row, op string) (*models.Inventory, error) {
	inventory := &models.Inventory{}

	err := row.Scan(&inventory.ProductID, &inventory.Stock, &inventory.Reserved, &inventory.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to %s inventory: %w", op, err)
	}

	return inventory, nil
}

// applyInventoryAdjustment decrements stock and reserved for one order item
// exactly once. The ledger insert is the idempotency guard: on conflict the
// item was already applied and the counters stay untouched. Both counters
// floor at zero.
func applyInventoryAdjustment(ctx context.Context, tx *sql.Tx, orderItemID, productID uuid.UUID, quantity int) (bool, error) {
	result, err := tx.ExecContext(ctx, `
		INSERT INTO inventory_adjustments (order_item_id, product_id, quantity, applied_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (order_item_id) DO NOTHING
	`, orderItemID, productID, quantity)
	if err != nil {
		return false, fmt.Errorf("failed to record inventory adjustment: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read adjustment result: %w", err)
	}

	if inserted == 0 {
		return false, nil
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE inventory
		SET stock = GREATEST(stock - $2, 0),
			reserved = GREATEST(reserved - $2, 0),
			updated_at = NOW()
		WHERE product_id = $1
	`, productID, quantity)
	if err != nil {
		return false, fmt.Errorf("failed to adjust inventory: %w", err)
	}

	return true, nil
}
