package repositories

import (
	"context"

	"github.com/hafizianr/go-catalog-admin/app/models"
	"gorm.io/gorm"
)

// ProductFilter narrows a listing by exact category and/or subcategory id.
// Zero means "no filter"; both filters are ANDed when set.
type ProductFilter struct {
	CategoryID    uint
	SubcategoryID uint
}

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	GetFiltered(ctx context.Context, filter ProductFilter, limit int) ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Subcategory").
		First(&product, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Update writes all mutable columns through a map so a nil SubcategoryID
// lands as NULL instead of being skipped by gorm's zero-value handling.
func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	updates := map[string]interface{}{
		"category_id":       product.CategoryID,
		"subcategory_id":    product.SubcategoryID,
		"model_name":        product.ModelName,
		"model_description": product.ModelDescription,
		"model_image":       product.ModelImage,
	}
	result := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", product.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	// RowsAffected counts matched rows here (the MySQL DSN sets
	// clientFoundRows), so zero means the row is gone, not that the
	// resubmitted values were identical.
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *productRepository) Delete(ctx context.Context, id uint) error {
	result := p.db.WithContext(ctx).Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetFiltered returns the newest rows first, joined with their category and
// subcategory, capped at limit.
func (p *productRepository) GetFiltered(ctx context.Context, filter ProductFilter, limit int) ([]models.Product, error) {
	var products []models.Product

	query := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Preload("Category").
		Preload("Subcategory")

	if filter.CategoryID > 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.SubcategoryID > 0 {
		query = query.Where("subcategory_id = ?", filter.SubcategoryID)
	}

	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&products).Error

	return products, err
}
