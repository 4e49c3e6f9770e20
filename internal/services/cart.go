package service

import (
	"context"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/errors"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	repository "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/repositories"
	"github.com/google/uuid"
)

type CartService interface {
	CreateCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	GetCart(ctx context.Context, cartID uuid.UUID) (*models.Cart, error)
	GetCartByUser(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, cartID uuid.UUID, req *models.AddItemRequest) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, cartID, productID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, cartID, productID uuid.UUID) (*models.Cart, error)
}

type cartService struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(repo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{repo: repo, productRepo: productRepo}
}

// CreateCart returns the user's existing cart when there is one; a user has
// at most one open cart.
func (s *cartService) CreateCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {

	existing, err := s.repo.GetCartByUserID(ctx, userID)
	if err == nil {
		return existing, nil
	}

	cart := &models.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items:  []models.CartItem{},
	}

	if err := s.repo.CreateCart(ctx, cart); err != nil {
		if constraintErr := errors.ConstraintError(err); constraintErr != nil {
			return nil, constraintErr
		}

		return nil, errors.DatabaseError("Failed to create cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) GetCart(ctx context.Context, cartID uuid.UUID) (*models.Cart, error) {

	cart, err := s.repo.GetCartByID(ctx, cartID)
	if err != nil {
		return nil, errors.NotFoundError("Cart not found").WithError(err)
	}

	return cart, nil
}

func (s *cartService) GetCartByUser(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {

	cart, err := s.repo.GetCartByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NotFoundError("Cart not found").WithError(err)
	}

	return cart, nil
}

// AddItem snapshots the catalog price into the cart row. Adding a product
// already in the cart bumps its quantity instead of duplicating the line.
func (s *cartService) AddItem(ctx context.Context, cartID uuid.UUID, req *models.AddItemRequest) (*models.Cart, error) {

	if _, err := s.repo.GetCartByID(ctx, cartID); err != nil {
		return nil, errors.NotFoundError("Cart not found").WithError(err)
	}

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if product.Status != models.ProductStatusActive {
		return nil, errors.ValidationError("Product is not available for purchase")
	}

	item := &models.CartItem{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: product.Price,
	}

	if err := s.repo.UpsertItem(ctx, cartID, item); err != nil {
		if constraintErr := errors.ConstraintError(err); constraintErr != nil {
			return nil, constraintErr
		}

		return nil, errors.DatabaseError("Failed to add item to cart").WithError(err)
	}

	return s.GetCart(ctx, cartID)
}

func (s *cartService) UpdateQuantity(ctx context.Context, cartID, productID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error) {

	err := s.repo.UpdateItemQuantity(ctx, cartID, productID, req.Quantity)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCartItem) {
			return nil, errors.ValidationError("Item quantity is invalid")
		}

		return nil, errors.NotFoundError("Item not found in the cart").WithError(err)
	}

	return s.GetCart(ctx, cartID)
}

func (s *cartService) RemoveItem(ctx context.Context, cartID, productID uuid.UUID) (*models.Cart, error) {

	if err := s.repo.RemoveItem(ctx, cartID, productID); err != nil {
		return nil, errors.NotFoundError("Item not found in the cart").WithError(err)
	}

	return s.GetCart(ctx, cartID)
}
