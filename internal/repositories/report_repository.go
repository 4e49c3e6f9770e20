package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/utils"
)

// revenueStatusList is the SQL IN-list of revenue-bearing order states,
// shared by every revenue report.
var revenueStatusList = func() string {
	statuses := models.RevenueBearingStatuses()

	quoted := make([]string, len(statuses))
	for i, s := range statuses {
		quoted[i] = "'" + string(s) + "'"
	}

	return strings.Join(quoted, ", ")
}()

// ReportRepository runs the read-only analytical queries. Revenue-bearing
// reports count only orders in processing, shipped or delivered states;
// pending orders have not been paid for and cancelled or refunded ones
// no longer represent income.
type ReportRepository interface {
	BestSellers(ctx context.Context, limit int) ([]models.BestSellerRow, error)
	RevenueByCategory(ctx context.Context) ([]models.CategoryRevenueRow, error)
	MonthlyRevenue(ctx context.Context) ([]models.MonthlyRevenueRow, error)
	AverageRatings(ctx context.Context, limit int) ([]models.ProductRatingRow, error)
	MostViewed(ctx context.Context, limit int) ([]models.MostViewedRow, error)
	TopSearches(ctx context.Context, limit int) ([]models.TopSearchRow, error)
}

type reportRepository struct {
	DB *sql.DB
}

func NewReportRepo(db *sql.DB) ReportRepository {
	return &reportRepository{DB: db}
}

func (r *reportRepository) BestSellers(ctx context.Context, limit int) ([]models.BestSellerRow, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT p.id, p.name, SUM(oi.quantity) AS units_sold, SUM(oi.total_price) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		WHERE o.status IN (%s)
		GROUP BY p.id, p.name
		ORDER BY units_sold DESC, revenue DESC
		LIMIT $1
	`, revenueStatusList)

	rows, err := r.DB.QueryContext(dbCtx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query best sellers: %w", err)
	}
	defer rows.Close()

	var result []models.BestSellerRow

	for rows.Next() {
		var row models.BestSellerRow

		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan best seller row: %w", err)
		}

		result = append(result, row)
	}

	return result, rows.Err()
}

func (r *reportRepository) RevenueByCategory(ctx context.Context) ([]models.CategoryRevenueRow, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT c.id, c.name, COUNT(DISTINCT o.id) AS orders_count, SUM(oi.total_price) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		JOIN categories c ON c.id = p.category_id
		WHERE o.status IN (%s)
		GROUP BY c.id, c.name
		ORDER BY revenue DESC
	`, revenueStatusList)

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue by category: %w", err)
	}
	defer rows.Close()

	var result []models.CategoryRevenueRow

	for rows.Next() {
		var row models.CategoryRevenueRow

		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.OrdersCount, &row.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan category revenue row: %w", err)
		}

		result = append(result, row)
	}

	return result, rows.Err()
}

// MonthlyRevenue covers the last six calendar months including the current
// one. Months with no qualifying orders are absent from the result rather
// than zero-filled.
func (r *reportRepository) MonthlyRevenue(ctx context.Context) ([]models.MonthlyRevenueRow, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT date_trunc('month', o.created_at) AS month, COUNT(*) AS orders_count, SUM(o.total_amount) AS revenue
		FROM orders o
		WHERE o.status IN (%s)
		  AND o.created_at >= date_trunc('month', NOW()) - INTERVAL '5 months'
		GROUP BY month
		ORDER BY month
	`, revenueStatusList)

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly revenue: %w", err)
	}
	defer rows.Close()

	var result []models.MonthlyRevenueRow

	for rows.Next() {
		var row models.MonthlyRevenueRow

		if err := rows.Scan(&row.Month, &row.OrdersCount, &row.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan monthly revenue row: %w", err)
		}

		result = append(result, row)
	}

	return result, rows.Err()
}

func (r *reportRepository) AverageRatings(ctx context.Context, limit int) ([]models.ProductRatingRow, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT p.id, p.name, ROUND(AVG(rv.rating), 2) AS average_rating, COUNT(rv.id) AS review_count
		FROM reviews rv
		JOIN products p ON p.id = rv.product_id
		GROUP BY p.id, p.name
		ORDER BY average_rating DESC, review_count DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(dbCtx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query average ratings: %w", err)
	}
	defer rows.Close()

	var result []models.ProductRatingRow

	for rows.Next() {
		var row models.ProductRatingRow

		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.AverageRating, &row.ReviewCount); err != nil {
			return nil, fmt.Errorf("failed to scan product rating row: %w", err)
		}

		result = append(result, row)
	}

	return result, rows.Err()
}

func (r *reportRepository) MostViewed(ctx context.Context, limit int) ([]models.MostViewedRow, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT p.id, p.name, COUNT(*) AS views
		FROM product_views pv
		JOIN products p ON p.id = pv.product_id
		WHERE pv.viewed_at >= NOW() - INTERVAL '30 days'
		GROUP BY p.id, p.name
		ORDER BY views DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(dbCtx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query most viewed products: %w", err)
	}
	defer rows.Close()

	var result []models.MostViewedRow

	for rows.Next() {
		var row models.MostViewedRow

		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Views); err != nil {
			return nil, fmt.Errorf("failed to scan most viewed row: %w", err)
		}

		result = append(result, row)
	}

	return result, rows.Err()
}

// TopSearches folds case so "iphone" and "iPhone" count as one query.
func (r *reportRepository) TopSearches(ctx context.Context, limit int) ([]models.TopSearchRow, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT LOWER(query) AS query, COUNT(*) AS searches
		FROM product_search_logs
		WHERE searched_at >= NOW() - INTERVAL '30 days'
		GROUP BY LOWER(query)
		ORDER BY searches DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(dbCtx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top searches: %w", err)
	}
	defer rows.Close()

	var result []models.TopSearchRow

	for rows.Next() {
		var row models.TopSearchRow

		if err := rows.Scan(&row.Query, &row.Searches); err != nil {
			return nil, fmt.Errorf("failed to scan top search row: %w", err)
		}

		result = append(result, row)
	}

	return result, rows.Err()
}
