package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/utils"
	"github.com/google/uuid"
)

type ProductRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateProduct(ctx context.Context, product *models.Product, initialStock int) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, categoryID *uuid.UUID, page, size int) ([]models.Product, int, error)
	SearchProducts(ctx context.Context, query string, page, size int) ([]models.Product, int, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `
	p.id, p.category_id, p.sku, p.name, COALESCE(p.description, ''), p.price, p.status, p.created_at, p.updated_at,
	c.id, c.name, COALESCE(c.description, ''), c.created_at
`

func (r *productRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO categories (id, name, description, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING created_at
	`

	return r.DB.QueryRowContext(dbCtx, query, category.ID, category.Name, nullableString(category.Description)).
		Scan(&category.CreatedAt)
}

func (r *productRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, COALESCE(description, ''), created_at
		FROM categories
		ORDER BY name
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category

	for rows.Next() {
		var category models.Category

		if err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}

		categories = append(categories, category)
	}

	return categories, rows.Err()
}

// CreateProduct inserts the product together with its inventory record, so a
// product never exists without stock counters.
func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product, initialStock int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin product transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO products (id, category_id, sku, name, description, price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, query, product.ID, product.CategoryID, product.SKU, product.Name,
		nullableString(product.Description), product.Price, product.Status).
		Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	if _, err := tx.ExecContext(dbCtx, `INSERT INTO inventory (product_id, stock, reserved, updated_at) VALUES ($1, $2, 0, NOW())`, product.ID, initialStock); err != nil {
		return fmt.Errorf("failed to insert inventory record: %w", err)
	}

	return tx.Commit()
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`

	product := &models.Product{Category: &models.Category{}}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&product.ID, &product.CategoryID, &product.SKU, &product.Name, &product.Description,
		&product.Price, &product.Status, &product.CreatedAt, &product.UpdatedAt,
		&product.Category.ID, &product.Category.Name, &product.Category.Description, &product.Category.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

func (r *productRepository) ListProducts(ctx context.Context, categoryID *uuid.UUID, page, size int) ([]models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM products WHERE ($1::uuid IS NULL OR category_id = $1)`
	if err := r.DB.QueryRowContext(dbCtx, countQuery, categoryID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	offset := (page - 1) * size

	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE ($1::uuid IS NULL OR p.category_id = $1)
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.QueryContext(dbCtx, query, categoryID, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// SearchProducts matches name and description case-insensitively. Plain
// ILIKE on purpose: search-index construction is out of scope.
func (r *productRepository) SearchProducts(ctx context.Context, query string, page, size int) ([]models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	pattern := "%" + query + "%"

	var total int

	countQuery := `SELECT COUNT(*) FROM products WHERE name ILIKE $1 OR description ILIKE $1`
	if err := r.DB.QueryRowContext(dbCtx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	offset := (page - 1) * size

	searchQuery := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.name ILIKE $1 OR p.description ILIKE $1
		ORDER BY p.name
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.QueryContext(dbCtx, searchQuery, pattern, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search products: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET category_id = $1, name = $2, description = $3, price = $4, status = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, product.CategoryID, product.Name, nullableString(product.Description),
		product.Price, product.Status, product.ID).
		Scan(&product.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return err
		}

		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	var products []models.Product

	for rows.Next() {
		product := models.Product{Category: &models.Category{}}

		err := rows.Scan(
			&product.ID, &product.CategoryID, &product.SKU, &product.Name, &product.Description,
			&product.Price, &product.Status, &product.CreatedAt, &product.UpdatedAt,
			&product.Category.ID, &product.Category.Name, &product.Category.Description, &product.Category.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		products = append(products, product)
	}

	return products, rows.Err()
}
