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

func setupShipmentRepoTest(t *testing.T) (repository.ShipmentRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewShipmentRepo(db)
	require.NotNil(t, repo, "NewShipmentRepo should return a non-nil repository")

	return repo, mock
}

func TestNewShipmentRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewShipmentRepo(db)
	assert.NotNil(t, repo, "NewShipmentRepo should return a non-nil repository")
}

func TestShipmentRepository(t *testing.T) {
	shipmentColumns := []string{"id", "order_id", "carrier", "tracking_number", "status", "shipped_at", "delivered_at", "created_at", "updated_at"}

	insertShipmentSQL := regexp.QuoteMeta(`INSERT INTO shipments (id, order_id, carrier, tracking_number, status, created_at, updated_at)`)
	listShipmentsSQL := regexp.QuoteMeta(`FROM shipments WHERE order_id = $1 ORDER BY created_at`)
	updateStatusSQL := regexp.QuoteMeta(`shipped_at = CASE WHEN $1 = 'shipped' AND shipped_at IS NULL THEN NOW() ELSE shipped_at END`)

	t.Run("CreateShipment", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupShipmentRepoTest(t)
			ctx := t.Context()

			shipment := &models.Shipment{
				ID:             uuid.New(),
				OrderID:        uuid.New(),
				Carrier:        "bluedart",
				TrackingNumber: "BD123456789",
				Status:         models.ShipmentStatusPending,
			}
			now := time.Now()

			mock.ExpectQuery(insertShipmentSQL).
				WithArgs(shipment.ID, shipment.OrderID, shipment.Carrier, shipment.TrackingNumber, shipment.Status).
				WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

			// Act
			err := repo.CreateShipment(ctx, shipment)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, now, shipment.CreatedAt)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Failure - Database Error", func(t *testing.T) {
			// Arrange
			repo, mock := setupShipmentRepoTest(t)
			ctx := t.Context()

			shipment := &models.Shipment{
				ID:      uuid.New(),
				OrderID: uuid.New(),
				Carrier: "bluedart",
				Status:  models.ShipmentStatusPending,
			}
			dbError := errors.New("connection refused")

			mock.ExpectQuery(insertShipmentSQL).
				WithArgs(shipment.ID, shipment.OrderID, shipment.Carrier, nil, shipment.Status).
				WillReturnError(dbError)

			// Act
			err := repo.CreateShipment(ctx, shipment)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})

	t.Run("ListShipmentsByOrder", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupShipmentRepoTest(t)
			ctx := t.Context()

			orderID := uuid.New()
			now := time.Now()
			shippedAt := now.Add(-48 * time.Hour)

			mock.ExpectQuery(listShipmentsSQL).
				WithArgs(orderID).
				WillReturnRows(sqlmock.NewRows(shipmentColumns).
					AddRow(uuid.New(), orderID, "bluedart", "BD123456789", "in_transit", shippedAt, nil, now, now))

			// Act
			shipments, err := repo.ListShipmentsByOrder(ctx, orderID)

			// Assert
			require.NoError(t, err)
			require.Len(t, shipments, 1)
			assert.Equal(t, models.ShipmentStatusInTransit, shipments[0].Status)
			require.NotNil(t, shipments[0].ShippedAt)
			assert.Nil(t, shipments[0].DeliveredAt, "An undelivered shipment has no delivery timestamp")
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Success - No Shipments Yet", func(t *testing.T) {
			// Arrange
			repo, mock := setupShipmentRepoTest(t)
			ctx := t.Context()

			orderID := uuid.New()

			mock.ExpectQuery(listShipmentsSQL).
				WithArgs(orderID).
				WillReturnRows(sqlmock.NewRows(shipmentColumns))

			// Act
			shipments, err := repo.ListShipmentsByOrder(ctx, orderID)

			// Assert
			require.NoError(t, err)
			assert.Empty(t, shipments)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})

	t.Run("UpdateShipmentStatus", func(t *testing.T) {
		t.Run("Success - Shipped Stamps The Timestamp", func(t *testing.T) {
			// Arrange
			repo, mock := setupShipmentRepoTest(t)
			ctx := t.Context()

			shipmentID := uuid.New()
			orderID := uuid.New()
			now := time.Now()

			mock.ExpectQuery(updateStatusSQL).
				WithArgs(models.ShipmentStatusShipped, shipmentID).
				WillReturnRows(sqlmock.NewRows(shipmentColumns).
					AddRow(shipmentID, orderID, "bluedart", "BD123456789", "shipped", now, nil, now, now))

			// Act
			shipment, err := repo.UpdateShipmentStatus(ctx, shipmentID, models.ShipmentStatusShipped)

			// Assert
			require.NoError(t, err)
			require.NotNil(t, shipment)
			assert.Equal(t, models.ShipmentStatusShipped, shipment.Status)
			require.NotNil(t, shipment.ShippedAt)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Failure - Shipment Not Found", func(t *testing.T) {
			// Arrange
			repo, mock := setupShipmentRepoTest(t)
			ctx := t.Context()

			shipmentID := uuid.New()

			mock.ExpectQuery(updateStatusSQL).
				WithArgs(models.ShipmentStatusDelivered, shipmentID).
				WillReturnError(sql.ErrNoRows)

			// Act
			shipment, err := repo.UpdateShipmentStatus(ctx, shipmentID, models.ShipmentStatusDelivered)

			// Assert
			require.Error(t, err)
			assert.Nil(t, shipment)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})
}
