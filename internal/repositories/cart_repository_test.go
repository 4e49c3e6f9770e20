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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartRepoTest(t *testing.T) (repository.CartRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewCartRepo(db)
	require.NotNil(t, repo, "NewCartRepo should return a non-nil repository")

	return repo, mock
}

func TestNewCartRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewCartRepo(db)
	assert.NotNil(t, repo, "NewCartRepo should return a non-nil repository")
}

func TestCartRepository(t *testing.T) {
	insertCartSQL := regexp.QuoteMeta(`INSERT INTO carts (id, user_id, created_at, updated_at)`)
	getByIDSQL := regexp.QuoteMeta(`SELECT id, user_id, created_at, updated_at FROM carts WHERE id = $1`)
	getByUserSQL := regexp.QuoteMeta(`SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1`)
	listItemsSQL := regexp.QuoteMeta(`SELECT product_id, quantity, unit_price, added_at`)
	upsertItemSQL := regexp.QuoteMeta(`INSERT INTO cart_items (cart_id, product_id, quantity, unit_price, added_at)`)
	updateQuantitySQL := regexp.QuoteMeta(`SET quantity = $3`)
	removeItemSQL := regexp.QuoteMeta(`DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`)
	touchCartSQL := regexp.QuoteMeta(`UPDATE carts SET updated_at = NOW() WHERE id = $1`)

	t.Run("CreateCart", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			ctx := t.Context()

			cart := &models.Cart{ID: uuid.New(), UserID: uuid.New()}
			now := time.Now()

			mock.ExpectQuery(insertCartSQL).
				WithArgs(cart.ID, cart.UserID).
				WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

			// Act
			err := repo.CreateCart(ctx, cart)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, now, cart.CreatedAt)
			assert.Equal(t, now, cart.UpdatedAt)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Failure - Database Error", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			ctx := t.Context()

			cart := &models.Cart{ID: uuid.New(), UserID: uuid.New()}
			dbError := errors.New("connection refused")

			mock.ExpectQuery(insertCartSQL).
				WithArgs(cart.ID, cart.UserID).
				WillReturnError(dbError)

			// Act
			err := repo.CreateCart(ctx, cart)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})

	t.Run("GetCartByID", func(t *testing.T) {
		t.Run("Success - Items And Total", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			ctx := t.Context()

			cartID := uuid.New()
			userID := uuid.New()
			laptopID := uuid.New()
			mouseID := uuid.New()
			now := time.Now()

			mock.ExpectQuery(getByIDSQL).
				WithArgs(cartID).
				WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "created_at", "updated_at"}).
					AddRow(cartID, userID, now, now))
			mock.ExpectQuery(listItemsSQL).
				WithArgs(cartID).
				WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity", "unit_price", "added_at"}).
					AddRow(laptopID, 2, 999.50, now).
					AddRow(mouseID, 1, 25.00, now))

			// Act
			cart, err := repo.GetCartByID(ctx, cartID)

			// Assert
			require.NoError(t, err)
			require.NotNil(t, cart)
			assert.Equal(t, cartID, cart.ID)
			assert.Equal(t, userID, cart.UserID)
			require.Len(t, cart.Items, 2)
			assert.Equal(t, 1999.00, cart.Items[0].TotalPrice, "Line total should be quantity times unit price")
			assert.Equal(t, 2024.00, cart.Total, "Cart total should be the sum of line totals")
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Failure - Cart Not Found", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			ctx := t.Context()

			cartID := uuid.New()

			mock.ExpectQuery(getByIDSQL).
				WithArgs(cartID).
				WillReturnError(sql.ErrNoRows)

			// Act
			cart, err := repo.GetCartByID(ctx, cartID)

			// Assert
			require.Error(t, err)
			assert.Nil(t, cart)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Failure - Items Query Error", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			ctx := t.Context()

			cartID := uuid.New()
			now := time.Now()

			mock.ExpectQuery(getByIDSQL).
				WithArgs(cartID).
				WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "created_at", "updated_at"}).
					AddRow(cartID, uuid.New(), now, now))
			mock.ExpectQuery(listItemsSQL).
				WithArgs(cartID).
				WillReturnError(errors.New("relation dropped"))

			// Act
			cart, err := repo.GetCartByID(ctx, cartID)

			// Assert
			require.Error(t, err)
			assert.Nil(t, cart)
			assert.ErrorContains(t, err, "failed to list cart items")
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})

	t.Run("GetCartByUserID", func(t *testing.T) {
		t.Run("Success - Empty Cart", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			ctx := t.Context()

			cartID := uuid.New()
			userID := uuid.New()
			now := time.Now()

			mock.ExpectQuery(getByUserSQL).
				WithArgs(userID).
				WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "created_at", "updated_at"}).
					AddRow(cartID, userID, now, now))
			mock.ExpectQuery(listItemsSQL).
				WithArgs(cartID).
				WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity", "unit_price", "added_at"}))

			// Act
			cart, err := repo.GetCartByUserID(ctx, userID)

			// Assert
			require.NoError(t, err)
			require.NotNil(t, cart)
			assert.Empty(t, cart.Items, "A cart with no rows in cart_items is empty, not missing")
			assert.Zero(t, cart.Total)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})

	t.Run("UpsertItem", func(t *testing.T) {
		t.Run("Success - Quantity Accumulates", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			ctx := t.Context()

			cartID := uuid.New()
			item := &models.CartItem{ProductID: uuid.New(), Quantity: 2, UnitPrice: 10.00}
			now := time.Now()

			mock.ExpectQuery(upsertItemSQL).
				WithArgs(cartID, item.ProductID, 2, 10.00).
				WillReturnRows(sqlmock.NewRows([]string{"quantity", "added_at"}).AddRow(5, now))
			mock.ExpectExec(touchCartSQL).
				WithArgs(cartID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			err := repo.UpsertItem(ctx, cartID, item)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, 5, item.Quantity, "Existing rows accumulate quantity")
			assert.Equal(t, 50.00, item.TotalPrice)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Failure - Database Error", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			ctx := t.Context()

			cartID := uuid.New()
			item := &models.CartItem{ProductID: uuid.New(), Quantity: 1, UnitPrice: 10.00}

			mock.ExpectQuery(upsertItemSQL).
				WithArgs(cartID, item.ProductID, 1, 10.00).
				WillReturnError(errors.New("deadlock detected"))

			// Act
			err := repo.UpsertItem(ctx, cartID, item)

			// Assert
			require.Error(t, err)
			assert.ErrorContains(t, err, "failed to upsert cart item")
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})

	t.Run("UpdateItemQuantity", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			ctx := t.Context()

			cartID := uuid.New()
			productID := uuid.New()

			mock.ExpectExec(updateQuantitySQL).
				WithArgs(cartID, productID, 4).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(touchCartSQL).
				WithArgs(cartID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			err := repo.UpdateItemQuantity(ctx, cartID, productID, 4)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Success - Zero Quantity Removes The Item", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			ctx := t.Context()

			cartID := uuid.New()
			productID := uuid.New()

			mock.ExpectExec(removeItemSQL).
				WithArgs(cartID, productID).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(touchCartSQL).
				WithArgs(cartID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			err := repo.UpdateItemQuantity(ctx, cartID, productID, 0)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Failure - No Matching Item", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			ctx := t.Context()

			cartID := uuid.New()
			productID := uuid.New()

			mock.ExpectExec(updateQuantitySQL).
				WithArgs(cartID, productID, 2).
				WillReturnResult(sqlmock.NewResult(0, 0))

			// Act
			err := repo.UpdateItemQuantity(ctx, cartID, productID, 2)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})

	t.Run("RemoveItem", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			ctx := t.Context()

			cartID := uuid.New()
			productID := uuid.New()

			mock.ExpectExec(removeItemSQL).
				WithArgs(cartID, productID).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(touchCartSQL).
				WithArgs(cartID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			err := repo.RemoveItem(ctx, cartID, productID)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Failure - Item Not In Cart", func(t *testing.T) {
			// Arrange
			repo, mock := setupCartRepoTest(t)
			ctx := t.Context()

			cartID := uuid.New()
			productID := uuid.New()

			mock.ExpectExec(removeItemSQL).
				WithArgs(cartID, productID).
				WillReturnResult(sqlmock.NewResult(0, 0))

			// Act
			err := repo.RemoveItem(ctx, cartID, productID)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})
}
