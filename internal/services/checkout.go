package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/api/middleware"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/errors"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/metrics"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	repository "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/repositories"
)

type CheckoutService interface {
	Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Order, error)
}

type checkoutService struct {
	checkoutRepo repository.CheckoutRepository
	userRepo     repository.UserRepository
	lockRepo     repository.CartLockRepository
	rateLimiter  repository.RateLimitRepository
	notifier     NotificationService
}

func NewCheckoutService(
	checkoutRepo repository.CheckoutRepository,
	userRepo repository.UserRepository,
	lockRepo repository.CartLockRepository,
	rateLimiter repository.RateLimitRepository,
	notifier NotificationService,
) CheckoutService {
	return &checkoutService{
		checkoutRepo: checkoutRepo,
		userRepo:     userRepo,
		lockRepo:     lockRepo,
		rateLimiter:  rateLimiter,
		notifier:     notifier,
	}
}

// Checkout turns the cart into an order. The per-cart lock serializes
// concurrent attempts up front; the serializable transaction underneath is
// what actually guarantees a cart converts at most once.
func (s *checkoutService) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Order, error) {

	logger := middleware.LoggerFromContext(ctx)
	start := time.Now()

	allowed, _, retryAfter, err := s.rateLimiter.CheckCheckoutRateLimit(ctx, req.UserID.String())
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		metrics.ObserveCheckout(metrics.CheckoutOutcomeRateLimited, time.Since(start))

		return nil, errors.TooManyRequestsError("Too many checkout attempts. Please try again later.").
			WithDetail(fmt.Sprintf("retry after %d seconds", retryAfter))
	}

	token, acquired, err := s.lockRepo.AcquireCartLock(ctx, req.CartID)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to serialize checkout").WithError(err)
	}

	if !acquired {
		metrics.ObserveCheckout(metrics.CheckoutOutcomeConflict, time.Since(start))

		return nil, errors.ConcurrentModificationError("Another checkout for this cart is already in progress")
	}

	defer func() {
		if err := s.lockRepo.ReleaseCartLock(ctx, req.CartID, token); err != nil {
			logger.Warn("Failed to release cart lock; it will expire on its own",
				slog.String("cartID", req.CartID.String()), slog.Any("error", err))
		}
	}()

	order, err := s.checkoutRepo.CheckoutCart(ctx, req)
	if err != nil {
		return nil, s.mapCheckoutError(err, start)
	}

	metrics.ObserveCheckout(metrics.CheckoutOutcomeCompleted, time.Since(start))
	logger.Info("Checkout completed",
		slog.String("orderID", order.ID.String()),
		slog.String("cartID", req.CartID.String()),
		slog.Float64("totalAmount", order.TotalAmount))

	// Confirmation mail happens after commit and must not hold up the
	// response; a failed send is recorded by the notification service.
	if s.notifier != nil {
		go s.sendConfirmationEmail(context.WithoutCancel(ctx), order)
	}

	return order, nil
}

func (s *checkoutService) mapCheckoutError(err error, start time.Time) error {

	switch {
	case errors.Is(err, repository.ErrEmptyCart):
		metrics.ObserveCheckout(metrics.CheckoutOutcomeEmptyCart, time.Since(start))

		return errors.EmptyCartError("Cart has no items to check out").WithError(err)

	case errors.Is(err, repository.ErrInvalidCartItem):
		metrics.ObserveCheckout(metrics.CheckoutOutcomeError, time.Since(start))

		return errors.ValidationError("Cart contains an invalid item").WithError(err)

	case errors.Is(err, sql.ErrNoRows):
		metrics.ObserveCheckout(metrics.CheckoutOutcomeNotFound, time.Since(start))

		return errors.NotFoundError("Cart not found for this user").WithError(err)
	}

	// Serialization failures surface when two transactions raced past the
	// redis lock, e.g. after a lock TTL expiry.
	if errors.IsSerializationFailure(err) {
		metrics.ObserveCheckout(metrics.CheckoutOutcomeConflict, time.Since(start))

		return errors.ConcurrentModificationError("Cart was modified by a concurrent checkout").WithError(err)
	}

	if constraintErr := errors.ConstraintError(err); constraintErr != nil {
		metrics.ObserveCheckout(metrics.CheckoutOutcomeError, time.Since(start))

		return constraintErr
	}

	metrics.ObserveCheckout(metrics.CheckoutOutcomeError, time.Since(start))

	return errors.DatabaseError("Checkout failed").WithError(err)
}

func (s *checkoutService) sendConfirmationEmail(ctx context.Context, order *models.Order) {

	logger := middleware.LoggerFromContext(ctx)

	user, err := s.userRepo.GetUserByID(ctx, order.UserID)
	if err != nil {
		logger.Warn("Skipping order confirmation email, user lookup failed",
			slog.String("orderID", order.ID.String()), slog.Any("error", err))

		return
	}

	req := &models.EmailNotificationRequest{
		To:      user.Email,
		Subject: fmt.Sprintf("Order confirmation %s", order.ID),
		Content: fmt.Sprintf("Hi %s,\n\nWe received your order %s for a total of %.2f. We will let you know when it ships.\n",
			user.FirstName, order.ID, order.TotalAmount+order.ShippingAmount),
	}

	if _, err := s.notifier.SendEmail(ctx, req); err != nil {
		logger.Warn("Order confirmation email failed",
			slog.String("orderID", order.ID.String()), slog.Any("error", err))
	}
}
