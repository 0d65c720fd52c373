package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chococroco/orders-api/internal/domain/entity"
	"github.com/chococroco/orders-api/internal/domain/repository"
	"github.com/chococroco/orders-api/pkg/apperror"
	"github.com/chococroco/orders-api/pkg/pagination"
)

// CatalogService handles the reference data: categories, sizes and products.
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	sizeRepo     repository.SizeRepository
	productRepo  repository.ProductRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	sizeRepo repository.SizeRepository,
	productRepo repository.ProductRepository,
) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		sizeRepo:     sizeRepo,
		productRepo:  productRepo,
	}
}

// --- Categories ---

// CreateCategory creates a new category
func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}
	category := &entity.Category{Name: strings.TrimSpace(name)}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory renames a category
func (s *CatalogService) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	if strings.TrimSpace(name) == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}
	category.Name = strings.TrimSpace(name)
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory deletes a category; products referencing it keep a NULL category
func (s *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}

// ListCategories lists all categories
func (s *CatalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// --- Sizes ---

// CreateSize creates a new size
func (s *CatalogService) CreateSize(ctx context.Context, name string) (*entity.Size, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperror.NewBadRequestError("Size name is required")
	}
	size := &entity.Size{Name: strings.TrimSpace(name)}
	if err := s.sizeRepo.Create(ctx, size); err != nil {
		return nil, err
	}
	return size, nil
}

// UpdateSize renames a size
func (s *CatalogService) UpdateSize(ctx context.Context, id uuid.UUID, name string) (*entity.Size, error) {
	size, err := s.sizeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if size == nil {
		return nil, apperror.NewNotFoundError("Size")
	}
	if strings.TrimSpace(name) == "" {
		return nil, apperror.NewBadRequestError("Size name is required")
	}
	size.Name = strings.TrimSpace(name)
	if err := s.sizeRepo.Update(ctx, size); err != nil {
		return nil, err
	}
	return size, nil
}

// DeleteSize deletes a size; products referencing it keep a NULL size
func (s *CatalogService) DeleteSize(ctx context.Context, id uuid.UUID) error {
	size, err := s.sizeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if size == nil {
		return apperror.NewNotFoundError("Size")
	}
	return s.sizeRepo.Delete(ctx, id)
}

// ListSizes lists all sizes
func (s *CatalogService) ListSizes(ctx context.Context) ([]entity.Size, error) {
	return s.sizeRepo.List(ctx)
}

// --- Products ---

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name       string
	CategoryID *uuid.UUID
	SizeID     *uuid.UUID
	CostPrice  decimal.Decimal
	SellPrice  decimal.Decimal
	Image      *string
}

// CreateProduct creates a new product. The display name is derived from the
// name and size before the write, so it is always consistent with them.
func (s *CatalogService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if input.CostPrice.IsNegative() {
		return nil, apperror.NewBadRequestError("cost_price must not be negative")
	}
	if input.SellPrice.IsNegative() {
		return nil, apperror.NewBadRequestError("sell_price must not be negative")
	}

	sizeName, err := s.resolveSizeName(ctx, input.SizeID)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		DisplayName: entity.ComputeDisplayName(strings.TrimSpace(input.Name), sizeName),
		CategoryID:  input.CategoryID,
		SizeID:      input.SizeID,
		CostPrice:   input.CostPrice,
		SellPrice:   input.SellPrice,
		Image:       input.Image,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents the update product input. Nil pointers leave
// the field unchanged; ClearSize/ClearCategory drop the reference.
type UpdateProductInput struct {
	ID            uuid.UUID
	Name          *string
	CategoryID    *uuid.UUID
	ClearCategory bool
	SizeID        *uuid.UUID
	ClearSize     bool
	CostPrice     *decimal.Decimal
	SellPrice     *decimal.Decimal
	Image         *string
}

// UpdateProduct updates a product and rederives its display name
func (s *CatalogService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperror.NewBadRequestError("Product name is required")
		}
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.ClearCategory {
		product.CategoryID = nil
		product.Category = nil
	} else if input.CategoryID != nil {
		if err := s.checkCategory(ctx, input.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = input.CategoryID
	}
	if input.ClearSize {
		product.SizeID = nil
		product.Size = nil
	} else if input.SizeID != nil {
		product.SizeID = input.SizeID
	}
	if input.CostPrice != nil {
		if input.CostPrice.IsNegative() {
			return nil, apperror.NewBadRequestError("cost_price must not be negative")
		}
		product.CostPrice = *input.CostPrice
	}
	if input.SellPrice != nil {
		if input.SellPrice.IsNegative() {
			return nil, apperror.NewBadRequestError("sell_price must not be negative")
		}
		product.SellPrice = *input.SellPrice
	}
	if input.Image != nil {
		product.Image = input.Image
	}

	sizeName, err := s.resolveSizeName(ctx, product.SizeID)
	if err != nil {
		return nil, err
	}
	product.DisplayName = entity.ComputeDisplayName(product.Name, sizeName)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product. Dependent orders (and their payments) are
// removed by the store's cascade rules.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts lists products with pagination and optional name search
func (s *CatalogService) ListProducts(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

func (s *CatalogService) resolveSizeName(ctx context.Context, sizeID *uuid.UUID) (string, error) {
	if sizeID == nil {
		return "", nil
	}
	size, err := s.sizeRepo.GetByID(ctx, *sizeID)
	if err != nil {
		return "", err
	}
	if size == nil {
		return "", apperror.NewNotFoundError("Size")
	}
	return size.Name, nil
}

func (s *CatalogService) checkCategory(ctx context.Context, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}
	category, err := s.categoryRepo.GetByID(ctx, *categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return nil
}
