package repository_test

import (
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

func setupPaymentRepoTest(t *testing.T) (repository.PaymentRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewPaymentRepo(db)
	require.NotNil(t, repo, "NewPaymentRepo should return a non-nil repository")

	return repo, mock
}

func TestNewPaymentRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewPaymentRepo(db)
	assert.NotNil(t, repo, "NewPaymentRepo should return a non-nil repository")
}

func TestPaymentRepository(t *testing.T) {
	insertPaymentSQL := regexp.QuoteMeta(`INSERT INTO payments (id, order_id, amount, currency, method, status, transaction_ref, created_at, updated_at)`)
	listPaymentsSQL := regexp.QuoteMeta(`SELECT id, order_id, amount, currency, method, status, COALESCE(transaction_ref, ''), created_at, updated_at`)

	t.Run("CreatePayment", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupPaymentRepoTest(t)
			ctx := t.Context()

			payment := &models.Payment{
				ID:             uuid.New(),
				OrderID:        uuid.New(),
				Amount:         149998.00,
				Currency:       "INR",
				Method:         "card",
				Status:         models.PaymentStatusPending,
				TransactionRef: "txn_0042",
			}
			now := time.Now()

			mock.ExpectQuery(insertPaymentSQL).
				WithArgs(payment.ID, payment.OrderID, payment.Amount, payment.Currency,
					payment.Method, payment.Status, payment.TransactionRef).
				WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

			// Act
			err := repo.CreatePayment(ctx, payment)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, now, payment.CreatedAt)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Failure - Unknown Order", func(t *testing.T) {
			// Arrange
			repo, mock := setupPaymentRepoTest(t)
			ctx := t.Context()

			payment := &models.Payment{
				ID:       uuid.New(),
				OrderID:  uuid.New(),
				Amount:   10.00,
				Currency: "INR",
				Method:   "upi",
				Status:   models.PaymentStatusPending,
			}
			pqErr := &pq.Error{Code: "23503", Constraint: "payments_order_id_fkey"}

			mock.ExpectQuery(insertPaymentSQL).
				WithArgs(payment.ID, payment.OrderID, payment.Amount, payment.Currency,
					payment.Method, payment.Status, nil).
				WillReturnError(pqErr)

			// Act
			err := repo.CreatePayment(ctx, payment)

			// Assert
			require.Error(t, err)

			var driverErr *pq.Error

			require.True(t, errors.As(err, &driverErr), "Foreign key violations should stay inspectable")
			assert.Equal(t, pq.ErrorCode("23503"), driverErr.Code)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})

	t.Run("ListPaymentsByOrder", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupPaymentRepoTest(t)
			ctx := t.Context()

			orderID := uuid.New()
			now := time.Now()

			mock.ExpectQuery(listPaymentsSQL).
				WithArgs(orderID).
				WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "amount", "currency", "method", "status", "transaction_ref", "created_at", "updated_at"}).
					AddRow(uuid.New(), orderID, 149998.00, "INR", "card", "failed", "", now, now).
					AddRow(uuid.New(), orderID, 149998.00, "INR", "upi", "succeeded", "txn_0042", now, now))

			// Act
			payments, err := repo.ListPaymentsByOrder(ctx, orderID)

			// Assert
			require.NoError(t, err)
			require.Len(t, payments, 2, "Retried payments keep every attempt on record")
			assert.Equal(t, models.PaymentStatusFailed, payments[0].Status)
			assert.Equal(t, models.PaymentStatusSucceeded, payments[1].Status)
			assert.Equal(t, "txn_0042", payments[1].TransactionRef)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Success - No Payments Yet", func(t *testing.T) {
			// Arrange
			repo, mock := setupPaymentRepoTest(t)
			ctx := t.Context()

			orderID := uuid.New()

			mock.ExpectQuery(listPaymentsSQL).
				WithArgs(orderID).
				WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "amount", "currency", "method", "status", "transaction_ref", "created_at", "updated_at"}))

			// Act
			payments, err := repo.ListPaymentsByOrder(ctx, orderID)

			// Assert
			require.NoError(t, err)
			assert.Empty(t, payments)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Failure - Query Error", func(t *testing.T) {
			// Arrange
			repo, mock := setupPaymentRepoTest(t)
			ctx := t.Context()

			orderID := uuid.New()

			mock.ExpectQuery(listPaymentsSQL).
				WithArgs(orderID).
				WillReturnError(errors.New("connection reset"))

			// Act
			payments, err := repo.ListPaymentsByOrder(ctx, orderID)

			// Assert
			require.Error(t, err)
			assert.Nil(t, payments)
			assert.ErrorContains(t, err, "failed to list payments")
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})
}
