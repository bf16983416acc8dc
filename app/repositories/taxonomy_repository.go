package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/hafizianr/go-catalog-admin/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaxonomyRepositoryImpl interface {
	AddCategory(ctx context.Context, name string) error
	AddSubcategory(ctx context.Context, categoryID uint, name string) error
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetSubcategories(ctx context.Context) ([]models.Subcategory, error)
	GroupSubcategoriesByCategory(ctx context.Context) (map[uint][]models.Subcategory, error)
	DeleteCategory(ctx context.Context, id uint) error
	DeleteSubcategory(ctx context.Context, id uint) error
}

type taxonomyRepository struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepositoryImpl {
	return &taxonomyRepository{db: db}
}

// AddCategory inserts a category by name. A duplicate name is treated as
// already existing, not as an error.
func (r *taxonomyRepository) AddCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: category name cannot be empty", ErrValidation)
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Category{Name: name}).Error
}

// AddSubcategory inserts a subcategory under a category. Duplicate
// (category, name) pairs are silently accepted.
func (r *taxonomyRepository) AddSubcategory(ctx context.Context, categoryID uint, name string) error {
	name = strings.TrimSpace(name)
	if categoryID == 0 || name == "" {
		return fmt.Errorf("%w: select a category and provide a subcategory name", ErrValidation)
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Subcategory{CategoryID: categoryID, Name: name}).Error
}

func (r *taxonomyRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *taxonomyRepository) GetSubcategories(ctx context.Context) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	err := r.db.WithContext(ctx).Order("name ASC").Find(&subcategories).Error
	if err != nil {
		return nil, err
	}
	return subcategories, nil
}

// GroupSubcategoriesByCategory builds the category-id to subcategories map
// consumed by the dependent selection UI. Each slice keeps name order.
func (r *taxonomyRepository) GroupSubcategoriesByCategory(ctx context.Context) (map[uint][]models.Subcategory, error) {
	subcategories, err := r.GetSubcategories(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[uint][]models.Subcategory)
	for _, s := range subcategories {
		grouped[s.CategoryID] = append(grouped[s.CategoryID], s)
	}
	return grouped, nil
}

// DeleteCategory removes a category and its subcategories in one transaction.
// The delete is rejected while any product still references the category.
func (r *taxonomyRepository) DeleteCategory(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Product{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrCategoryInUse
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.Subcategory{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// DeleteSubcategory clears the subcategory reference on dependent products
// (the products themselves survive), then removes the row.
func (r *taxonomyRepository) DeleteSubcategory(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Product{}).
			Where("subcategory_id = ?", id).
			Update("subcategory_id", nil).Error
		if err != nil {
			return err
		}
		result := tx.Delete(&models.Subcategory{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
