package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chococroco/orders-api/internal/domain/entity"
	domainRepo "github.com/chococroco/orders-api/internal/domain/repository"
	"github.com/chococroco/orders-api/pkg/pagination"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domainRepo.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Category{}, "id = ?", id).Error
}

func (r *categoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

type sizeRepository struct {
	db *gorm.DB
}

// NewSizeRepository creates a new size repository
func NewSizeRepository(db *gorm.DB) domainRepo.SizeRepository {
	return &sizeRepository{db: db}
}

func (r *sizeRepository) Create(ctx context.Context, size *entity.Size) error {
	return r.db.WithContext(ctx).Create(size).Error
}

func (r *sizeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Size, error) {
	var size entity.Size
	err := r.db.WithContext(ctx).First(&size, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &size, err
}

func (r *sizeRepository) Update(ctx context.Context, size *entity.Size) error {
	return r.db.WithContext(ctx).Save(size).Error
}

func (r *sizeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Size{}, "id = ?", id).Error
}

func (r *sizeRepository) List(ctx context.Context) ([]entity.Size, error) {
	var sizes []entity.Size
	err := r.db.WithContext(ctx).Order("name ASC").Find(&sizes).Error
	return sizes, err
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Size").
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error
}

func (r *productRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Product{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Category").
		Preload("Size").
		Order("created_at DESC").
		Find(&products).Error

	return products, total, err
}

func (r *productRepository) ListForExport(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var products []entity.Product
	query := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Size").
		Order("created_at ASC")
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}
	err := query.Find(&products).Error
	return products, err
}
