package service

import (
	"context"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/errors"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	repository "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/repositories"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type ReviewService interface {
	SubmitReview(ctx context.Context, productID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error)
	ListReviews(ctx context.Context, productID uuid.UUID, page, size int) ([]models.Review, int, error)
}

type reviewService struct {
	repo        repository.ReviewRepository
	productRepo repository.ProductRepository
	sanitizer   *bluemonday.Policy
}

func NewReviewService(repo repository.ReviewRepository, productRepo repository.ProductRepository) ReviewService {
	return &reviewService{
		repo:        repo,
		productRepo: productRepo,
		sanitizer:   bluemonday.UGCPolicy(),
	}
}

// SubmitReview stores one review per (product, user); resubmitting replaces
// the earlier rating and comment.
func (s *reviewService) SubmitReview(ctx context.Context, productID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error) {

	if _, err := s.productRepo.GetProductByID(ctx, productID); err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	review := &models.Review{
		ID:        uuid.New(),
		ProductID: productID,
		UserID:    req.UserID,
		Rating:    req.Rating,
		Comment:   s.sanitizer.Sanitize(req.Comment),
	}

	if err := s.repo.UpsertReview(ctx, review); err != nil {
		if constraintErr := errors.ConstraintError(err); constraintErr != nil {
			return nil, constraintErr
		}

		return nil, errors.DatabaseError("Failed to save review").WithError(err)
	}

	return review, nil
}

func (s *reviewService) ListReviews(ctx context.Context, productID uuid.UUID, page, size int) ([]models.Review, int, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 50 {
		size = 10
	}

	reviews, total, err := s.repo.ListReviewsByProduct(ctx, productID, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch reviews").WithError(err)
	}

	return reviews, total, nil
}
