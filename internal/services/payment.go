package service

import (
	"context"
	"strings"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/errors"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	repository "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/repositories"
	"github.com/google/uuid"
)

// PaymentService keeps payment records; the capture itself happens in an
// external system that reports back via TransactionRef.
type PaymentService interface {
	CreatePayment(ctx context.Context, orderID uuid.UUID, req *models.CreatePaymentRequest) (*models.Payment, error)
	ListPaymentsByOrder(ctx context.Context, orderID uuid.UUID) ([]models.Payment, error)
}

type paymentService struct {
	repo      repository.PaymentRepository
	orderRepo repository.OrderRepository
}

func NewPaymentService(repo repository.PaymentRepository, orderRepo repository.OrderRepository) PaymentService {
	return &paymentService{repo: repo, orderRepo: orderRepo}
}

func (s *paymentService) CreatePayment(ctx context.Context, orderID uuid.UUID, req *models.CreatePaymentRequest) (*models.Payment, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	// An omitted amount means "the whole order", shipping included.
	amount := order.TotalAmount + order.ShippingAmount
	if req.Amount != nil {
		amount = *req.Amount
	}

	payment := &models.Payment{
		ID:             uuid.New(),
		OrderID:        orderID,
		Amount:         amount,
		Currency:       strings.ToUpper(req.Currency),
		Method:         req.Method,
		Status:         models.PaymentStatusPending,
		TransactionRef: req.TransactionRef,
	}

	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		if constraintErr := errors.ConstraintError(err); constraintErr != nil {
			return nil, constraintErr
		}

		return nil, errors.DatabaseError("Failed to create payment").WithError(err)
	}

	return payment, nil
}

func (s *paymentService) ListPaymentsByOrder(ctx context.Context, orderID uuid.UUID) ([]models.Payment, error) {

	payments, err := s.repo.ListPaymentsByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch payments").WithError(err)
	}

	return payments, nil
}
