package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/api/middleware"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/cache"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/config"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/errors"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	repository "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/repositories"
)

const defaultReportLimit = 10

// ReportService serves the read-only analytics. Results are cached; the
// reports aggregate historical data, so TTL staleness is acceptable.
type ReportService interface {
	BestSellers(ctx context.Context, limit int) ([]models.BestSellerRow, error)
	RevenueByCategory(ctx context.Context) ([]models.CategoryRevenueRow, error)
	MonthlyRevenue(ctx context.Context) ([]models.MonthlyRevenueRow, error)
	AverageRatings(ctx context.Context, limit int) ([]models.ProductRatingRow, error)
	MostViewed(ctx context.Context, limit int) ([]models.MostViewedRow, error)
	TopSearches(ctx context.Context, limit int) ([]models.TopSearchRow, error)
}

type reportService struct {
	repo  repository.ReportRepository
	cache cache.Cache
	cfg   *config.CacheConfig
}

func NewReportService(repo repository.ReportRepository, cacheStore cache.Cache, cfg *config.CacheConfig) ReportService {
	return &reportService{repo: repo, cache: cacheStore, cfg: cfg}
}

func clampReportLimit(limit int) int {
	if limit < 1 || limit > 100 {
		return defaultReportLimit
	}

	return limit
}

func (s *reportService) BestSellers(ctx context.Context, limit int) ([]models.BestSellerRow, error) {

	limit = clampReportLimit(limit)
	key := cache.Key(cache.ReportKeyPrefix, fmt.Sprintf("best_sellers:%d", limit))

	var cached []models.BestSellerRow
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	rows, err := s.repo.BestSellers(ctx, limit)
	if err != nil {
		return nil, errors.DatabaseError("Failed to compute best sellers").WithError(err)
	}

	s.storeReport(ctx, key, rows)

	return rows, nil
}

func (s *reportService) RevenueByCategory(ctx context.Context) ([]models.CategoryRevenueRow, error) {

	key := cache.Key(cache.ReportKeyPrefix, "revenue_by_category")

	var cached []models.CategoryRevenueRow
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	rows, err := s.repo.RevenueByCategory(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to compute revenue by category").WithError(err)
	}

	s.storeReport(ctx, key, rows)

	return rows, nil
}

func (s *reportService) MonthlyRevenue(ctx context.Context) ([]models.MonthlyRevenueRow, error) {

	key := cache.Key(cache.ReportKeyPrefix, "monthly_revenue")

	var cached []models.MonthlyRevenueRow
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	rows, err := s.repo.MonthlyRevenue(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to compute monthly revenue").WithError(err)
	}

	s.storeReport(ctx, key, rows)

	return rows, nil
}

func (s *reportService) AverageRatings(ctx context.Context, limit int) ([]models.ProductRatingRow, error) {

	limit = clampReportLimit(limit)
	key := cache.Key(cache.ReportKeyPrefix, fmt.Sprintf("average_ratings:%d", limit))

	var cached []models.ProductRatingRow
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	rows, err := s.repo.AverageRatings(ctx, limit)
	if err != nil {
		return nil, errors.DatabaseError("Failed to compute average ratings").WithError(err)
	}

	s.storeReport(ctx, key, rows)

	return rows, nil
}

func (s *reportService) MostViewed(ctx context.Context, limit int) ([]models.MostViewedRow, error) {

	limit = clampReportLimit(limit)
	key := cache.Key(cache.ReportKeyPrefix, fmt.Sprintf("most_viewed:%d", limit))

	var cached []models.MostViewedRow
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	rows, err := s.repo.MostViewed(ctx, limit)
	if err != nil {
		return nil, errors.DatabaseError("Failed to compute most viewed products").WithError(err)
	}

	s.storeReport(ctx, key, rows)

	return rows, nil
}

func (s *reportService) TopSearches(ctx context.Context, limit int) ([]models.TopSearchRow, error) {

	limit = clampReportLimit(limit)
	key := cache.Key(cache.ReportKeyPrefix, fmt.Sprintf("top_searches:%d", limit))

	var cached []models.TopSearchRow
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	rows, err := s.repo.TopSearches(ctx, limit)
	if err != nil {
		return nil, errors.DatabaseError("Failed to compute top searches").WithError(err)
	}

	s.storeReport(ctx, key, rows)

	return rows, nil
}

func (s *reportService) storeReport(ctx context.Context, key string, rows any) {
	if err := s.cache.Set(ctx, key, rows, s.cfg.ReportTTL); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to cache report", slog.String("key", key), slog.Any("error", err))
	}
}
