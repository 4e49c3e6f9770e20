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

func setupUserRepoTest(t *testing.T) (repository.UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewUserRepo(db)
	require.NotNil(t, repo, "NewUserRepo should return a non-nil repository")

	return repo, mock
}

func TestNewUserRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewUserRepo(db)
	assert.NotNil(t, repo, "NewUserRepo should return a non-nil repository")
}

func TestUserRepository(t *testing.T) {
	insertUserSQL := regexp.QuoteMeta(`INSERT INTO users (id, email, password_hash, first_name, last_name, phone, created_at, updated_at)`)
	getUserSQL := regexp.QuoteMeta(`SELECT id, email, password_hash, first_name, last_name, COALESCE(phone, ''), created_at, updated_at`)
	updateUserSQL := regexp.QuoteMeta(`SET first_name = $1, last_name = $2, phone = $3, updated_at = NOW()`)
	clearDefaultSQL := regexp.QuoteMeta(`UPDATE addresses SET is_default = FALSE WHERE user_id = $1`)
	insertAddressSQL := regexp.QuoteMeta(`INSERT INTO addresses (id, user_id, line1, line2, city, state, postal_code, country, is_default, created_at)`)
	listAddressesSQL := regexp.QuoteMeta(`SELECT id, user_id, line1, COALESCE(line2, ''), city, COALESCE(state, ''), postal_code, country, is_default, created_at`)
	updateAddressSQL := regexp.QuoteMeta(`SET line1 = $1, line2 = $2, city = $3, state = $4, postal_code = $5, country = $6, is_default = $7`)
	deleteAddressSQL := regexp.QuoteMeta(`DELETE FROM addresses WHERE id = $1`)

	t.Run("CreateUser", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupUserRepoTest(t)
			ctx := t.Context()

			user := &models.User{
				ID:        uuid.New(),
				Email:     "jane.doe@example.com",
				Password:  "$2a$10$hash",
				FirstName: "Jane",
				LastName:  "Doe",
				Phone:     "+15550100200",
			}
			now := time.Now()

			mock.ExpectQuery(insertUserSQL).
				WithArgs(user.ID, user.Email, user.Password, user.FirstName, user.LastName, user.Phone).
				WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

			// Act
			err := repo.CreateUser(ctx, user)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, now, user.CreatedAt)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Success - Missing Phone Stored As NULL", func(t *testing.T) {
			// Arrange
			repo, mock := setupUserRepoTest(t)
			ctx := t.Context()

			user := &models.User{
				ID:        uuid.New(),
				Email:     "no.phone@example.com",
				Password:  "$2a$10$hash",
				FirstName: "No",
				LastName:  "Phone",
			}
			now := time.Now()

			mock.ExpectQuery(insertUserSQL).
				WithArgs(user.ID, user.Email, user.Password, user.FirstName, user.LastName, nil).
				WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

			// Act
			err := repo.CreateUser(ctx, user)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Failure - Duplicate Email", func(t *testing.T) {
			// Arrange
			repo, mock := setupUserRepoTest(t)
			ctx := t.Context()

			user := &models.User{
				ID:        uuid.New(),
				Email:     "taken@example.com",
				Password:  "$2a$10$hash",
				FirstName: "Taken",
				LastName:  "Email",
			}
			pqErr := &pq.Error{Code: "23505", Constraint: "users_email_key"}

			mock.ExpectQuery(insertUserSQL).
				WithArgs(user.ID, user.Email, user.Password, user.FirstName, user.LastName, nil).
				WillReturnError(pqErr)

			// Act
			err := repo.CreateUser(ctx, user)

			// Assert
			require.Error(t, err)

			var driverErr *pq.Error

			require.True(t, errors.As(err, &driverErr), "Unique violations should stay inspectable")
			assert.Equal(t, pq.ErrorCode("23505"), driverErr.Code)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})

	t.Run("GetUserByID", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupUserRepoTest(t)
			ctx := t.Context()

			userID := uuid.New()
			now := time.Now()

			mock.ExpectQuery(getUserSQL).
				WithArgs(userID).
				WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "first_name", "last_name", "phone", "created_at", "updated_at"}).
					AddRow(userID, "jane.doe@example.com", "$2a$10$hash", "Jane", "Doe", "", now, now))

			// Act
			user, err := repo.GetUserByID(ctx, userID)

			// Assert
			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, userID, user.ID)
			assert.Equal(t, "jane.doe@example.com", user.Email)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Failure - User Not Found", func(t *testing.T) {
			// Arrange
			repo, mock := setupUserRepoTest(t)
			ctx := t.Context()

			userID := uuid.New()

			mock.ExpectQuery(getUserSQL).
				WithArgs(userID).
				WillReturnError(sql.ErrNoRows)

			// Act
			user, err := repo.GetUserByID(ctx, userID)

			// Assert
			require.Error(t, err)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})

	t.Run("GetUserByEmail", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupUserRepoTest(t)
			ctx := t.Context()

			userID := uuid.New()
			now := time.Now()

			mock.ExpectQuery(getUserSQL).
				WithArgs("jane.doe@example.com").
				WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "first_name", "last_name", "phone", "created_at", "updated_at"}).
					AddRow(userID, "jane.doe@example.com", "$2a$10$hash", "Jane", "Doe", "+15550100200", now, now))

			// Act
			user, err := repo.GetUserByEmail(ctx, "jane.doe@example.com")

			// Assert
			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, "+15550100200", user.Phone)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})

	t.Run("UpdateUser", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupUserRepoTest(t)
			ctx := t.Context()

			user := &models.User{ID: uuid.New(), FirstName: "Janet", LastName: "Doe", Phone: "+15550100300"}
			now := time.Now()

			mock.ExpectQuery(updateUserSQL).
				WithArgs(user.FirstName, user.LastName, user.Phone, user.ID).
				WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

			// Act
			err := repo.UpdateUser(ctx, user)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, now, user.UpdatedAt)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Failure - User Not Found", func(t *testing.T) {
			// Arrange
			repo, mock := setupUserRepoTest(t)
			ctx := t.Context()

			user := &models.User{ID: uuid.New(), FirstName: "Ghost", LastName: "User"}

			mock.ExpectQuery(updateUserSQL).
				WithArgs(user.FirstName, user.LastName, nil, user.ID).
				WillReturnError(sql.ErrNoRows)

			// Act
			err := repo.UpdateUser(ctx, user)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})

	t.Run("CreateAddress", func(t *testing.T) {
		t.Run("Success - Default Address Clears The Old One", func(t *testing.T) {
			// Arrange
			repo, mock := setupUserRepoTest(t)
			ctx := t.Context()

			address := &models.Address{
				ID:         uuid.New(),
				UserID:     uuid.New(),
				Line1:      "221B Baker Street",
				City:       "London",
				PostalCode: "NW1 6XE",
				Country:    "GB",
				IsDefault:  true,
			}
			now := time.Now()

			mock.ExpectBegin()
			mock.ExpectExec(clearDefaultSQL).
				WithArgs(address.UserID).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectQuery(insertAddressSQL).
				WithArgs(address.ID, address.UserID, address.Line1, nil, address.City, nil,
					address.PostalCode, address.Country, true).
				WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
			mock.ExpectCommit()

			// Act
			err := repo.CreateAddress(ctx, address)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, now, address.CreatedAt)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Success - Secondary Address", func(t *testing.T) {
			// Arrange
			repo, mock := setupUserRepoTest(t)
			ctx := t.Context()

			address := &models.Address{
				ID:         uuid.New(),
				UserID:     uuid.New(),
				Line1:      "742 Evergreen Terrace",
				Line2:      "Unit 4",
				City:       "Springfield",
				State:      "OR",
				PostalCode: "97478",
				Country:    "US",
			}
			now := time.Now()

			mock.ExpectBegin()
			mock.ExpectQuery(insertAddressSQL).
				WithArgs(address.ID, address.UserID, address.Line1, "Unit 4", address.City, "OR",
					address.PostalCode, address.Country, false).
				WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
			mock.ExpectCommit()

			// Act
			err := repo.CreateAddress(ctx, address)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Failure - Insert Error Rolls Back", func(t *testing.T) {
			// Arrange
			repo, mock := setupUserRepoTest(t)
			ctx := t.Context()

			address := &models.Address{
				ID:         uuid.New(),
				UserID:     uuid.New(),
				Line1:      "10 Downing Street",
				City:       "London",
				PostalCode: "SW1A 2AA",
				Country:    "GB",
			}

			mock.ExpectBegin()
			mock.ExpectQuery(insertAddressSQL).
				WithArgs(address.ID, address.UserID, address.Line1, nil, address.City, nil,
					address.PostalCode, address.Country, false).
				WillReturnError(errors.New("disk full"))
			mock.ExpectRollback()

			// Act
			err := repo.CreateAddress(ctx, address)

			// Assert
			require.Error(t, err)
			assert.ErrorContains(t, err, "failed to insert address")
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})

	t.Run("ListAddressesByUser", func(t *testing.T) {
		t.Run("Success - Default First", func(t *testing.T) {
			// Arrange
			repo, mock := setupUserRepoTest(t)
			ctx := t.Context()

			userID := uuid.New()
			now := time.Now()

			mock.ExpectQuery(listAddressesSQL).
				WithArgs(userID).
				WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "line1", "line2", "city", "state", "postal_code", "country", "is_default", "created_at"}).
					AddRow(uuid.New(), userID, "221B Baker Street", "", "London", "", "NW1 6XE", "GB", true, now).
					AddRow(uuid.New(), userID, "742 Evergreen Terrace", "Unit 4", "Springfield", "OR", "97478", "US", false, now))

			// Act
			addresses, err := repo.ListAddressesByUser(ctx, userID)

			// Assert
			require.NoError(t, err)
			require.Len(t, addresses, 2)
			assert.True(t, addresses[0].IsDefault)
			assert.Equal(t, "Unit 4", addresses[1].Line2)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})

	t.Run("UpdateAddress", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupUserRepoTest(t)
			ctx := t.Context()

			address := &models.Address{
				ID:         uuid.New(),
				UserID:     uuid.New(),
				Line1:      "1600 Pennsylvania Avenue",
				City:       "Washington",
				State:      "DC",
				PostalCode: "20500",
				Country:    "US",
			}

			mock.ExpectBegin()
			mock.ExpectExec(updateAddressSQL).
				WithArgs(address.Line1, nil, address.City, "DC", address.PostalCode,
					address.Country, false, address.ID, address.UserID).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			// Act
			err := repo.UpdateAddress(ctx, address)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Failure - Address Not Owned By User", func(t *testing.T) {
			// Arrange
			repo, mock := setupUserRepoTest(t)
			ctx := t.Context()

			address := &models.Address{
				ID:         uuid.New(),
				UserID:     uuid.New(),
				Line1:      "Somewhere Else",
				City:       "Nowhere",
				PostalCode: "00000",
				Country:    "US",
			}

			mock.ExpectBegin()
			mock.ExpectExec(updateAddressSQL).
				WithArgs(address.Line1, nil, address.City, nil, address.PostalCode,
					address.Country, false, address.ID, address.UserID).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectRollback()

			// Act
			err := repo.UpdateAddress(ctx, address)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})

	t.Run("DeleteAddress", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupUserRepoTest(t)
			ctx := t.Context()

			addressID := uuid.New()

			mock.ExpectExec(deleteAddressSQL).
				WithArgs(addressID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			err := repo.DeleteAddress(ctx, addressID)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Failure - Address Not Found", func(t *testing.T) {
			// Arrange
			repo, mock := setupUserRepoTest(t)
			ctx := t.Context()

			addressID := uuid.New()

			mock.ExpectExec(deleteAddressSQL).
				WithArgs(addressID).
				WillReturnResult(sqlmock.NewResult(0, 0))

			// Act
			err := repo.DeleteAddress(ctx, addressID)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})
}
