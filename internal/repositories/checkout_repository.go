package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/utils"
	"github.com/google/uuid"
)

type CheckoutRepository interface {
	CheckoutCart(ctx context.Context, req *models.CheckoutRequest) (*models.Order, error)
}

type checkoutRepository struct {
	DB *sql.DB
}

func NewCheckoutRepo(db *sql.DB) CheckoutRepository {
	return &checkoutRepository{DB: db}
}

// CheckoutCart converts the cart's current contents into a new order inside
// one transaction: lock cart row, read items, insert order and order items
// with point-in-time prices, apply the inventory adjustment per item, clear
// the cart. Any failure rolls the whole unit back, so no partial order,
// order items, inventory change or cleared cart is ever visible.
//
// Returns sql.ErrNoRows when the cart does not exist or is not owned by the
// user, ErrEmptyCart when there is nothing to check out.
func (r *checkoutRepository) CheckoutCart(ctx context.Context, req *models.CheckoutRequest) (*models.Order, error) {
	dbCtx, cancel := utils.WithCheckoutTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("failed to begin checkout transaction: %w", err)
	}
	defer tx.Rollback()

	// Row lock serializes concurrent checkouts of the same cart; ownership
	// rides on the same predicate.
	var cartID uuid.UUID

	err = tx.QueryRowContext(dbCtx, `SELECT id FROM carts WHERE id = $1 AND user_id = $2 FOR UPDATE`, req.CartID, req.UserID).
		Scan(&cartID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to lock cart: %w", err)
	}

	items, err := r.lockedCartItems(dbCtx, tx, cartID)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var total float64

	for _, item := range items {
		if item.Quantity <= 0 || item.UnitPrice < 0 {
			return nil, ErrInvalidCartItem
		}

		total += float64(item.Quantity) * item.UnitPrice
	}

	order := &models.Order{
		ID:              uuid.New(),
		UserID:          req.UserID,
		Status:          models.OrderStatusPending,
		TotalAmount:     total,
		ShippingAddress: req.ShippingAddress,
	}
	if req.ShippingAmount != nil {
		order.ShippingAmount = *req.ShippingAmount
	}

	err = tx.QueryRowContext(dbCtx, `
		INSERT INTO orders (id, user_id, status, total_amount, shipping_amount, shipping_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`, order.ID, order.UserID, order.Status, order.TotalAmount, order.ShippingAmount, nullableString(order.ShippingAddress)).
		Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	for _, cartItem := range items {
		orderItem := models.OrderItem{
			ID:         uuid.New(),
			OrderID:    order.ID,
			ProductID:  cartItem.ProductID,
			Quantity:   cartItem.Quantity,
			UnitPrice:  cartItem.UnitPrice,
			TotalPrice: float64(cartItem.Quantity) * cartItem.UnitPrice,
		}

		err = tx.QueryRowContext(dbCtx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, total_price, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())
			RETURNING created_at
		`, orderItem.ID, orderItem.OrderID, orderItem.ProductID, orderItem.Quantity, orderItem.UnitPrice, orderItem.TotalPrice).
			Scan(&orderItem.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert order item: %w", err)
		}

		if _, err := applyInventoryAdjustment(dbCtx, tx, orderItem.ID, orderItem.ProductID, orderItem.Quantity); err != nil {
			return nil, err
		}

		order.Items = append(order.Items, orderItem)
	}

	// The cart row persists, only its items go.
	if _, err := tx.ExecContext(dbCtx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	if _, err := tx.ExecContext(dbCtx, `UPDATE carts SET updated_at = NOW() WHERE id = $1`, cartID); err != nil {
		return nil, fmt.Errorf("failed to touch cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit checkout: %w", err)
	}

	return order, nil
}

func (r *checkoutRepository) lockedCartItems(ctx context.Context, tx *sql.Tx, cartID uuid.UUID) ([]models.CartItem, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT product_id, quantity, unit_price
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY added_at
	`, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart items: %w", err)
	}
	defer rows.Close()

	var items []models.CartItem

	for rows.Next() {
		var item models.CartItem

		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}

		items = append(items, item)
	}

	return items, rows.Err()
}
