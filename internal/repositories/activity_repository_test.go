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

func setupActivityRepoTest(t *testing.T) (repository.ActivityRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewActivityRepo(db)
	require.NotNil(t, repo, "NewActivityRepo should return a non-nil repository")

	return repo, mock
}

func TestNewActivityRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewActivityRepo(db)
	assert.NotNil(t, repo, "NewActivityRepo should return a non-nil repository")
}

func TestActivityRepository(t *testing.T) {
	copyViewsSQL := regexp.QuoteMeta(pq.CopyIn("product_views", "product_id", "user_id", "viewed_at"))
	copySearchesSQL := regexp.QuoteMeta(pq.CopyIn("product_search_logs", "query", "user_id", "results_count", "searched_at"))

	t.Run("InsertProductViews", func(t *testing.T) {
		t.Run("Success - Batch Copied In One Transaction", func(t *testing.T) {
			// Arrange
			repo, mock := setupActivityRepoTest(t)
			ctx := t.Context()

			userID := uuid.New()
			now := time.Now()
			views := []models.ProductView{
				{ProductID: uuid.New(), UserID: &userID, ViewedAt: now},
				{ProductID: uuid.New(), UserID: nil, ViewedAt: now},
			}

			mock.ExpectBegin()
			prep := mock.ExpectPrepare(copyViewsSQL)
			prep.ExpectExec().
				WithArgs(views[0].ProductID, userID, now).
				WillReturnResult(sqlmock.NewResult(0, 1))
			prep.ExpectExec().
				WithArgs(views[1].ProductID, nil, now).
				WillReturnResult(sqlmock.NewResult(0, 1))
			prep.ExpectExec().
				WillReturnResult(sqlmock.NewResult(0, 2))
			mock.ExpectCommit()

			// Act
			err := repo.InsertProductViews(ctx, views)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Success - Empty Batch Is A No-Op", func(t *testing.T) {
			// Arrange
			repo, mock := setupActivityRepoTest(t)
			ctx := t.Context()

			// Act
			err := repo.InsertProductViews(ctx, nil)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet(), "An empty batch should never touch the database")
		})

		t.Run("Failure - Copy Error Rolls Back", func(t *testing.T) {
			// Arrange
			repo, mock := setupActivityRepoTest(t)
			ctx := t.Context()

			views := []models.ProductView{
				{ProductID: uuid.New(), ViewedAt: time.Now()},
			}

			mock.ExpectBegin()
			prep := mock.ExpectPrepare(copyViewsSQL)
			prep.ExpectExec().
				WillReturnError(errors.New("copy aborted"))
			mock.ExpectRollback()

			// Act
			err := repo.InsertProductViews(ctx, views)

			// Assert
			require.Error(t, err)
			assert.ErrorContains(t, err, "failed to buffer product view")
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})

	t.Run("InsertSearchLogs", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupActivityRepoTest(t)
			ctx := t.Context()

			now := time.Now()
			logs := []models.ProductSearchLog{
				{Query: "laptop", UserID: nil, ResultsCount: 14, SearchedAt: now},
			}

			mock.ExpectBegin()
			prep := mock.ExpectPrepare(copySearchesSQL)
			prep.ExpectExec().
				WithArgs("laptop", nil, 14, now).
				WillReturnResult(sqlmock.NewResult(0, 1))
			prep.ExpectExec().
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			// Act
			err := repo.InsertSearchLogs(ctx, logs)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Success - Empty Batch Is A No-Op", func(t *testing.T) {
			// Arrange
			repo, mock := setupActivityRepoTest(t)
			ctx := t.Context()

			// Act
			err := repo.InsertSearchLogs(ctx, nil)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet(), "An empty batch should never touch the database")
		})

		t.Run("Failure - Commit Error", func(t *testing.T) {
			// Arrange
			repo, mock := setupActivityRepoTest(t)
			ctx := t.Context()

			now := time.Now()
			logs := []models.ProductSearchLog{
				{Query: "phone", ResultsCount: 3, SearchedAt: now},
			}

			mock.ExpectBegin()
			prep := mock.ExpectPrepare(copySearchesSQL)
			prep.ExpectExec().
				WithArgs("phone", nil, 3, now).
				WillReturnResult(sqlmock.NewResult(0, 1))
			prep.ExpectExec().
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

			// Act
			err := repo.InsertSearchLogs(ctx, logs)

			// Assert
			require.Error(t, err)
			assert.ErrorContains(t, err, "failed to commit search logs")
			require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})
	})
}
