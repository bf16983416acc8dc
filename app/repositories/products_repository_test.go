package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hafizianr/go-catalog-admin/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTaxonomy(t *testing.T, db *gorm.DB) (models.Category, models.Subcategory) {
	t.Helper()

	category := models.Category{Name: "Battery"}
	require.NoError(t, db.Create(&category).Error)
	subcategory := models.Subcategory{CategoryID: category.ID, Name: "Tubular"}
	require.NoError(t, db.Create(&subcategory).Error)
	return category, subcategory
}

func TestProductCreateAndGetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	category, subcategory := seedTaxonomy(t, db)

	desc := "products/abc123.pdf"
	product := &models.Product{
		CategoryID:       category.ID,
		SubcategoryID:    &subcategory.ID,
		ModelName:        "BT-100",
		ModelDescription: &desc,
	}
	require.NoError(t, repo.Create(ctx, product))
	require.NotZero(t, product.ID)

	fetched, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "BT-100", fetched.ModelName)
	assert.Equal(t, "Battery", fetched.Category.Name)
	require.NotNil(t, fetched.Subcategory)
	assert.Equal(t, "Tubular", fetched.Subcategory.Name)
	require.NotNil(t, fetched.ModelDescription)
	assert.Equal(t, desc, *fetched.ModelDescription)
	assert.Nil(t, fetched.ModelImage)
}

func TestProductGetByIDMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)

	product, err := repo.GetByID(context.Background(), 999)
	assert.NoError(t, err)
	assert.Nil(t, product)
}

func TestProductUpdateWritesNullSubcategory(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	category, subcategory := seedTaxonomy(t, db)

	product := &models.Product{
		CategoryID:    category.ID,
		SubcategoryID: &subcategory.ID,
		ModelName:     "BT-100",
	}
	require.NoError(t, repo.Create(ctx, product))

	product.SubcategoryID = nil
	product.ModelName = "BT-200"
	require.NoError(t, repo.Update(ctx, product))

	fetched, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "BT-200", fetched.ModelName)
	assert.Nil(t, fetched.SubcategoryID)
}

func TestProductUpdateNoChangeIsNotMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	category, _ := seedTaxonomy(t, db)

	product := &models.Product{CategoryID: category.ID, ModelName: "BT-100"}
	require.NoError(t, repo.Create(ctx, product))

	// Resubmitting identical values must not look like a missing row.
	require.NoError(t, repo.Update(ctx, product))
	assert.NoError(t, repo.Update(ctx, product))
}

func TestProductUpdateMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	category, _ := seedTaxonomy(t, db)

	err := repo.Update(context.Background(), &models.Product{
		ID:         999,
		CategoryID: category.ID,
		ModelName:  "ghost",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	category, _ := seedTaxonomy(t, db)

	product := &models.Product{CategoryID: category.ID, ModelName: "BT-100"}
	require.NoError(t, repo.Create(ctx, product))

	require.NoError(t, repo.Delete(ctx, product.ID))
	assert.ErrorIs(t, repo.Delete(ctx, product.ID), ErrNotFound)
}

func TestProductGetFiltered(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	battery := models.Category{Name: "Battery"}
	require.NoError(t, db.Create(&battery).Error)
	ups := models.Category{Name: "Ups"}
	require.NoError(t, db.Create(&ups).Error)
	tubular := models.Subcategory{CategoryID: battery.ID, Name: "Tubular"}
	require.NoError(t, db.Create(&tubular).Error)

	now := time.Now()
	for i := 0; i < 3; i++ {
		p := models.Product{
			CategoryID: battery.ID,
			ModelName:  fmt.Sprintf("BT-%d", i),
			CreatedAt:  now.Add(time.Duration(i) * time.Second),
		}
		if i == 0 {
			p.SubcategoryID = &tubular.ID
		}
		require.NoError(t, repo.Create(ctx, &p))
	}
	require.NoError(t, repo.Create(ctx, &models.Product{
		CategoryID: ups.ID,
		ModelName:  "UP-1",
		CreatedAt:  now.Add(time.Hour),
	}))

	t.Run("no filter returns newest first", func(t *testing.T) {
		products, err := repo.GetFiltered(ctx, ProductFilter{}, 200)
		require.NoError(t, err)
		require.Len(t, products, 4)
		assert.Equal(t, "UP-1", products[0].ModelName)
		assert.Equal(t, "BT-2", products[1].ModelName)
		assert.Equal(t, "Ups", products[0].Category.Name)
	})

	t.Run("category filter", func(t *testing.T) {
		products, err := repo.GetFiltered(ctx, ProductFilter{CategoryID: battery.ID}, 200)
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("subcategory filter", func(t *testing.T) {
		products, err := repo.GetFiltered(ctx, ProductFilter{
			CategoryID:    battery.ID,
			SubcategoryID: tubular.ID,
		}, 200)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "BT-0", products[0].ModelName)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		products, err := repo.GetFiltered(ctx, ProductFilter{}, 2)
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})
}
