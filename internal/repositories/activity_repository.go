package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/utils"
	"github.com/lib/pq"
)

type ActivityRepository interface {
	InsertProductViews(ctx context.Context, views []models.ProductView) error
	InsertSearchLogs(ctx context.Context, logs []models.ProductSearchLog) error
}

type activityRepository struct {
	DB *sql.DB
}

func NewActivityRepo(db *sql.DB) ActivityRepository {
	return &activityRepository{DB: db}
}

// InsertProductViews writes a batch of view events via COPY. The writer
// flushes in batches, so a round trip per row would not keep up.
func (r *activityRepository) InsertProductViews(ctx context.Context, views []models.ProductView) error {
	if len(views) == 0 {
		return nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(dbCtx, pq.CopyIn("product_views", "product_id", "user_id", "viewed_at"))
	if err != nil {
		return fmt.Errorf("failed to prepare copy: %w", err)
	}

	for _, view := range views {
		if _, err := stmt.ExecContext(dbCtx, view.ProductID, view.UserID, view.ViewedAt); err != nil {
			return fmt.Errorf("failed to buffer product view: %w", err)
		}
	}

	if _, err := stmt.ExecContext(dbCtx); err != nil {
		return fmt.Errorf("failed to flush product views: %w", err)
	}

	if err := stmt.Close(); err != nil {
		return fmt.Errorf("failed to close copy statement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit product views: %w", err)
	}

	return nil
}

func (r *activityRepository) InsertSearchLogs(ctx context.Context, logs []models.ProductSearchLog) error {
	if len(logs) == 0 {
		return nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(dbCtx, pq.CopyIn("product_search_logs", "query", "user_id", "results_count", "searched_at"))
	if err != nil {
		return fmt.Errorf("failed to prepare copy: %w", err)
	}

	for _, entry := range logs {
		if _, err := stmt.ExecContext(dbCtx, entry.Query, entry.UserID, entry.ResultsCount, entry.SearchedAt); err != nil {
			return fmt.Errorf("failed to buffer search log: %w", err)
		}
	}

	if _, err := stmt.ExecContext(dbCtx); err != nil {
		return fmt.Errorf("failed to flush search logs: %w", err)
	}

	if err := stmt.Close(); err != nil {
		return fmt.Errorf("failed to close copy statement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit search logs: %w", err)
	}

	return nil
}
