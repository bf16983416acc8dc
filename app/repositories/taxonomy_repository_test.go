package repositories

import (
	"context"
	"testing"

	"github.com/hafizianr/go-catalog-admin/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAddCategory(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaxonomyRepository(db)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid name", input: "Battery"},
		{name: "trims whitespace", input: "  Inverter  "},
		{name: "empty name", input: "", wantErr: ErrValidation},
		{name: "whitespace only", input: "   ", wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.AddCategory(ctx, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	categories, err := repo.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Battery", categories[0].Name)
	assert.Equal(t, "Inverter", categories[1].Name)
}

func TestAddCategoryDuplicateIsIgnored(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaxonomyRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.AddCategory(ctx, "Ups"))
	require.NoError(t, repo.AddCategory(ctx, "Ups"))

	categories, err := repo.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestAddSubcategory(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaxonomyRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.AddCategory(ctx, "Battery"))
	categories, err := repo.GetCategories(ctx)
	require.NoError(t, err)
	categoryID := categories[0].ID

	assert.ErrorIs(t, repo.AddSubcategory(ctx, 0, "Tubular"), ErrValidation)
	assert.ErrorIs(t, repo.AddSubcategory(ctx, categoryID, "  "), ErrValidation)

	require.NoError(t, repo.AddSubcategory(ctx, categoryID, "Tubular"))
	require.NoError(t, repo.AddSubcategory(ctx, categoryID, "Tubular"))

	subcategories, err := repo.GetSubcategories(ctx)
	require.NoError(t, err)
	assert.Len(t, subcategories, 1)
}

func TestSameSubcategoryNameAcrossCategories(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaxonomyRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.AddCategory(ctx, "Battery"))
	require.NoError(t, repo.AddCategory(ctx, "Ups"))
	categories, err := repo.GetCategories(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.AddSubcategory(ctx, categories[0].ID, "Industrial"))
	require.NoError(t, repo.AddSubcategory(ctx, categories[1].ID, "Industrial"))

	subcategories, err := repo.GetSubcategories(ctx)
	require.NoError(t, err)
	assert.Len(t, subcategories, 2)
}

func TestGroupSubcategoriesByCategory(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaxonomyRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.AddCategory(ctx, "Battery"))
	require.NoError(t, repo.AddCategory(ctx, "Ups"))
	categories, err := repo.GetCategories(ctx)
	require.NoError(t, err)
	batteryID, upsID := categories[0].ID, categories[1].ID

	require.NoError(t, repo.AddSubcategory(ctx, batteryID, "Tubular"))
	require.NoError(t, repo.AddSubcategory(ctx, batteryID, "Flat plate"))
	require.NoError(t, repo.AddSubcategory(ctx, upsID, "Online"))

	grouped, err := repo.GroupSubcategoriesByCategory(ctx)
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	require.Len(t, grouped[batteryID], 2)
	assert.Equal(t, "Flat plate", grouped[batteryID][0].Name)
	assert.Equal(t, "Tubular", grouped[batteryID][1].Name)
	require.Len(t, grouped[upsID], 1)
	assert.Equal(t, "Online", grouped[upsID][0].Name)
}

func TestDeleteCategory(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaxonomyRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.AddCategory(ctx, "Battery"))
	categories, err := repo.GetCategories(ctx)
	require.NoError(t, err)
	categoryID := categories[0].ID
	require.NoError(t, repo.AddSubcategory(ctx, categoryID, "Tubular"))

	t.Run("rejected while products reference it", func(t *testing.T) {
		product := models.Product{CategoryID: categoryID, ModelName: "BT-100"}
		require.NoError(t, db.Create(&product).Error)

		assert.ErrorIs(t, repo.DeleteCategory(ctx, categoryID), ErrCategoryInUse)

		require.NoError(t, db.Delete(&models.Product{}, product.ID).Error)
	})

	t.Run("removes category and its subcategories", func(t *testing.T) {
		require.NoError(t, repo.DeleteCategory(ctx, categoryID))

		remaining, err := repo.GetCategories(ctx)
		require.NoError(t, err)
		assert.Empty(t, remaining)

		subcategories, err := repo.GetSubcategories(ctx)
		require.NoError(t, err)
		assert.Empty(t, subcategories)
	})

	t.Run("missing id", func(t *testing.T) {
		assert.ErrorIs(t, repo.DeleteCategory(ctx, 9999), ErrNotFound)
	})
}

func TestDeleteSubcategoryClearsProductReferences(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaxonomyRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.AddCategory(ctx, "Battery"))
	categories, err := repo.GetCategories(ctx)
	require.NoError(t, err)
	categoryID := categories[0].ID
	require.NoError(t, repo.AddSubcategory(ctx, categoryID, "Tubular"))
	subcategories, err := repo.GetSubcategories(ctx)
	require.NoError(t, err)
	subID := subcategories[0].ID

	product := models.Product{CategoryID: categoryID, SubcategoryID: &subID, ModelName: "BT-100"}
	require.NoError(t, db.Create(&product).Error)

	require.NoError(t, repo.DeleteSubcategory(ctx, subID))

	var survivor models.Product
	require.NoError(t, db.First(&survivor, product.ID).Error)
	assert.Nil(t, survivor.SubcategoryID)
	assert.Equal(t, categoryID, survivor.CategoryID)

	assert.ErrorIs(t, repo.DeleteSubcategory(ctx, subID), ErrNotFound)
}

func TestDeleteSubcategoryMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaxonomyRepository(db)

	err := repo.DeleteSubcategory(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, gorm.ErrRecordNotFound)
}
