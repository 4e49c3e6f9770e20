package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	repository "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCheckoutRepoTest(t *testing.T) (repository.CheckoutRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewCheckoutRepo(db)
	require.NotNil(t, repo, "NewCheckoutRepo should return a non-nil repository")

	return repo, mock
}

func TestNewCheckoutRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewCheckoutRepo(db)
	assert.NotNil(t, repo, "NewCheckoutRepo should return a non-nil repository")
}

func TestCheckoutCart(t *testing.T) {
	lockCartSQL := regexp.QuoteMeta(`SELECT id FROM carts WHERE id = $1 AND user_id = $2 FOR UPDATE`)
	readItemsSQL := regexp.QuoteMeta(`SELECT product_id, quantity, unit_price`)
	insertOrderSQL := regexp.QuoteMeta(`INSERT INTO orders (id, user_id, status, total_amount, shipping_amount, shipping_address, created_at, updated_at)`)
	insertItemSQL := regexp.QuoteMeta(`INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, total_price, created_at)`)
	insertAdjustmentSQL := regexp.QuoteMeta(`INSERT INTO inventory_adjustments (order_item_id, product_id, quantity, applied_at)`)
	adjustInventorySQL := regexp.QuoteMeta(`SET stock = GREATEST(stock - $2, 0),`)
	clearCartSQL := regexp.QuoteMeta(`DELETE FROM cart_items WHERE cart_id = $1`)
	touchCartSQL := regexp.QuoteMeta(`UPDATE carts SET updated_at = NOW() WHERE id = $1`)

	t.Run("Success - Two Item Cart", func(t *testing.T) {
		// Arrange
		repo, mock := setupCheckoutRepoTest(t)
		ctx := t.Context()

		cartID := uuid.New()
		userID := uuid.New()
		laptopID := uuid.New()
		phoneID := uuid.New()
		now := time.Now()

		req := &models.CheckoutRequest{CartID: cartID, UserID: userID}

		mock.ExpectBegin()
		mock.ExpectQuery(lockCartSQL).
			WithArgs(cartID, userID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(cartID))
		mock.ExpectQuery(readItemsSQL).
			WithArgs(cartID).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity", "unit_price"}).
				AddRow(laptopID, 1, 79999.00).
				AddRow(phoneID, 1, 69999.00))

		// Total is the sum of quantity times unit price, shipping excluded.
		mock.ExpectQuery(insertOrderSQL).
			WithArgs(sqlmock.AnyArg(), userID, models.OrderStatusPending, 149998.00, 0.0, nil).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		mock.ExpectQuery(insertItemSQL).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), laptopID, 1, 79999.00, 79999.00).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		mock.ExpectExec(insertAdjustmentSQL).
			WithArgs(sqlmock.AnyArg(), laptopID, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(adjustInventorySQL).
			WithArgs(laptopID, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectQuery(insertItemSQL).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), phoneID, 1, 69999.00, 69999.00).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		mock.ExpectExec(insertAdjustmentSQL).
			WithArgs(sqlmock.AnyArg(), phoneID, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(adjustInventorySQL).
			WithArgs(phoneID, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectExec(clearCartSQL).
			WithArgs(cartID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(touchCartSQL).
			WithArgs(cartID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		order, err := repo.CheckoutCart(ctx, req)

		// Assert
		require.NoError(t, err, "CheckoutCart should succeed for a valid cart")
		require.NotNil(t, order)
		assert.NotEqual(t, uuid.Nil, order.ID, "Order should get a fresh ID")
		assert.Equal(t, userID, order.UserID)
		assert.Equal(t, models.OrderStatusPending, order.Status, "New orders start out pending")
		assert.Equal(t, 149998.00, order.TotalAmount, "Total should be the sum of line totals")
		assert.Equal(t, 0.0, order.ShippingAmount)

		require.Len(t, order.Items, 2, "Every cart line should become an order item")
		assert.Equal(t, laptopID, order.Items[0].ProductID)
		assert.Equal(t, 79999.00, order.Items[0].UnitPrice, "Order items keep the price at checkout time")
		assert.Equal(t, 79999.00, order.Items[0].TotalPrice)
		assert.Equal(t, phoneID, order.Items[1].ProductID)
		assert.Equal(t, 69999.00, order.Items[1].UnitPrice)
		assert.Equal(t, order.ID, order.Items[1].OrderID)

		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Success - Quantity And Shipping Carried Through", func(t *testing.T) {
		// Arrange
		repo, mock := setupCheckoutRepoTest(t)
		ctx := t.Context()

		cartID := uuid.New()
		userID := uuid.New()
		productID := uuid.New()
		now := time.Now()
		shipping := 99.00

		req := &models.CheckoutRequest{
			CartID:          cartID,
			UserID:          userID,
			ShippingAmount:  &shipping,
			ShippingAddress: "221B Baker Street",
		}

		mock.ExpectBegin()
		mock.ExpectQuery(lockCartSQL).
			WithArgs(cartID, userID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(cartID))
		mock.ExpectQuery(readItemsSQL).
			WithArgs(cartID).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity", "unit_price"}).
				AddRow(productID, 3, 19.99))

		// Shipping is stored on the order but never folded into the total.
		mock.ExpectQuery(insertOrderSQL).
			WithArgs(sqlmock.AnyArg(), userID, models.OrderStatusPending, 59.97, 99.00, "221B Baker Street").
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		mock.ExpectQuery(insertItemSQL).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), productID, 3, 19.99, 59.97).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		mock.ExpectExec(insertAdjustmentSQL).
			WithArgs(sqlmock.AnyArg(), productID, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(adjustInventorySQL).
			WithArgs(productID, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectExec(clearCartSQL).
			WithArgs(cartID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(touchCartSQL).
			WithArgs(cartID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		order, err := repo.CheckoutCart(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 59.97, order.TotalAmount)
		assert.Equal(t, 99.00, order.ShippingAmount)
		assert.Equal(t, "221B Baker Street", order.ShippingAddress)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Empty Cart Writes Nothing", func(t *testing.T) {
		// Arrange
		repo, mock := setupCheckoutRepoTest(t)
		ctx := t.Context()

		cartID := uuid.New()
		userID := uuid.New()
		req := &models.CheckoutRequest{CartID: cartID, UserID: userID}

		mock.ExpectBegin()
		mock.ExpectQuery(lockCartSQL).
			WithArgs(cartID, userID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(cartID))
		mock.ExpectQuery(readItemsSQL).
			WithArgs(cartID).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity", "unit_price"}))
		mock.ExpectRollback()

		// Act
		order, err := repo.CheckoutCart(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, order)
		assert.ErrorIs(t, err, repository.ErrEmptyCart, "An empty cart should be reported as such")
		require.NoError(t, mock.ExpectationsWereMet(), "No insert or delete should run for an empty cart")
	})

	t.Run("Failure - Cart Missing Or Owned By Someone Else", func(t *testing.T) {
		// Arrange
		repo, mock := setupCheckoutRepoTest(t)
		ctx := t.Context()

		req := &models.CheckoutRequest{CartID: uuid.New(), UserID: uuid.New()}

		mock.ExpectBegin()
		mock.ExpectQuery(lockCartSQL).
			WithArgs(req.CartID, req.UserID).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		// Act
		order, err := repo.CheckoutCart(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, order)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Invalid Cart Item", func(t *testing.T) {
		// Arrange
		repo, mock := setupCheckoutRepoTest(t)
		ctx := t.Context()

		cartID := uuid.New()
		userID := uuid.New()
		req := &models.CheckoutRequest{CartID: cartID, UserID: userID}

		mock.ExpectBegin()
		mock.ExpectQuery(lockCartSQL).
			WithArgs(cartID, userID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(cartID))
		mock.ExpectQuery(readItemsSQL).
			WithArgs(cartID).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity", "unit_price"}).
				AddRow(uuid.New(), 0, 10.00))
		mock.ExpectRollback()

		// Act
		order, err := repo.CheckoutCart(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, order)
		assert.ErrorIs(t, err, repository.ErrInvalidCartItem)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Serialization Conflict Bubbles Up", func(t *testing.T) {
		// Arrange
		repo, mock := setupCheckoutRepoTest(t)
		ctx := t.Context()

		cartID := uuid.New()
		userID := uuid.New()
		req := &models.CheckoutRequest{CartID: cartID, UserID: userID}
		pqErr := &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}

		mock.ExpectBegin()
		mock.ExpectQuery(lockCartSQL).
			WithArgs(cartID, userID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(cartID))
		mock.ExpectQuery(readItemsSQL).
			WithArgs(cartID).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity", "unit_price"}).
				AddRow(uuid.New(), 2, 25.00))
		mock.ExpectQuery(insertOrderSQL).
			WithArgs(sqlmock.AnyArg(), userID, models.OrderStatusPending, 50.00, 0.0, nil).
			WillReturnError(pqErr)
		mock.ExpectRollback()

		// Act
		order, err := repo.CheckoutCart(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, order)

		var driverErr *pq.Error

		require.True(t, errors.As(err, &driverErr), "The driver error should stay inspectable through the wrap")
		assert.Equal(t, pq.ErrorCode("40001"), driverErr.Code)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Failure - Commit Error", func(t *testing.T) {
		// Arrange
		repo, mock := setupCheckoutRepoTest(t)
		ctx := t.Context()

		cartID := uuid.New()
		userID := uuid.New()
		productID := uuid.New()
		now := time.Now()
		req := &models.CheckoutRequest{CartID: cartID, UserID: userID}

		mock.ExpectBegin()
		mock.ExpectQuery(lockCartSQL).
			WithArgs(cartID, userID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(cartID))
		mock.ExpectQuery(readItemsSQL).
			WithArgs(cartID).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity", "unit_price"}).
				AddRow(productID, 1, 15.00))
		mock.ExpectQuery(insertOrderSQL).
			WithArgs(sqlmock.AnyArg(), userID, models.OrderStatusPending, 15.00, 0.0, nil).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectQuery(insertItemSQL).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), productID, 1, 15.00, 15.00).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		mock.ExpectExec(insertAdjustmentSQL).
			WithArgs(sqlmock.AnyArg(), productID, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(adjustInventorySQL).
			WithArgs(productID, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(clearCartSQL).
			WithArgs(cartID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(touchCartSQL).
			WithArgs(cartID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

		// Act
		order, err := repo.CheckoutCart(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, order)
		assert.ErrorContains(t, err, "failed to commit checkout")
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})
}
