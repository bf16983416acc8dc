package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/hafizianr/go-catalog-admin/app/models"
	"github.com/hafizianr/go-catalog-admin/app/repositories"
	"github.com/hafizianr/go-catalog-admin/app/utils/uploads"
)

// Multipart field names shared with the admin forms.
const (
	FieldModelImage       = "model_image"
	FieldModelDescription = "model_description"
)

// ProductInput carries the scalar product fields. The subcategory is not
// checked against the category here: a subcategory belonging to a different
// category is stored as given, matching the legacy writer.
type ProductInput struct {
	CategoryID    uint
	SubcategoryID *uint
	ModelName     string
}

type CatalogService struct {
	productRepo repositories.ProductRepositoryImpl
	store       *uploads.Store
}

func NewCatalogService(productRepo repositories.ProductRepositoryImpl, store *uploads.Store) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		store:       store,
	}
}

func (s *CatalogService) validate(input ProductInput) (string, error) {
	modelName := strings.TrimSpace(input.ModelName)
	if input.CategoryID == 0 || modelName == "" {
		return "", fmt.Errorf("%w: category and model name are required", repositories.ErrValidation)
	}
	return modelName, nil
}

// CreateProduct stages both optional uploads before touching the database.
// A rejected upload aborts the whole operation and no row is written.
func (s *CatalogService) CreateProduct(ctx context.Context, r *http.Request, input ProductInput) (*models.Product, error) {
	modelName, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	descPath, err := s.store.Accept(r, FieldModelDescription, uploads.DocumentTypes)
	if err != nil {
		return nil, err
	}
	imagePath, err := s.store.Accept(r, FieldModelImage, uploads.ImageTypes)
	if err != nil {
		s.store.Reclaim(descPath)
		return nil, err
	}

	product := &models.Product{
		CategoryID:       input.CategoryID,
		SubcategoryID:    input.SubcategoryID,
		ModelName:        modelName,
		ModelDescription: optionalPath(descPath),
		ModelImage:       optionalPath(imagePath),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.store.Reclaim(descPath)
		s.store.Reclaim(imagePath)
		return nil, err
	}
	return product, nil
}

// UpdateProduct follows "new file supplied → stage replacement; none → keep".
// Replacement is swap-then-delete-old: the row is committed pointing at the
// new asset before the previous file is reclaimed, so a failed write never
// loses the old asset.
func (s *CatalogService) UpdateProduct(ctx context.Context, r *http.Request, id uint, input ProductInput) (*models.Product, error) {
	modelName, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, repositories.ErrNotFound
	}

	newDesc, err := s.store.Accept(r, FieldModelDescription, uploads.DocumentTypes)
	if err != nil {
		return nil, err
	}
	newImage, err := s.store.Accept(r, FieldModelImage, uploads.ImageTypes)
	if err != nil {
		s.store.Reclaim(newDesc)
		return nil, err
	}

	oldDesc := derefPath(product.ModelDescription)
	oldImage := derefPath(product.ModelImage)

	product.CategoryID = input.CategoryID
	product.SubcategoryID = input.SubcategoryID
	product.ModelName = modelName
	if newDesc != "" {
		product.ModelDescription = &newDesc
	}
	if newImage != "" {
		product.ModelImage = &newImage
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.store.Reclaim(newDesc)
		s.store.Reclaim(newImage)
		return nil, err
	}

	if newDesc != "" && oldDesc != "" && oldDesc != newDesc {
		s.store.Reclaim(oldDesc)
	}
	if newImage != "" && oldImage != "" && oldImage != newImage {
		s.store.Reclaim(oldImage)
	}

	return product, nil
}

// DeleteProduct removes the row and then reclaims the image asset. Only the
// image is reclaimed; description files are left behind, preserving the
// legacy cleanup behavior.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return repositories.ErrNotFound
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	if product.ModelImage != nil {
		s.store.Reclaim(*product.ModelImage)
	}
	return nil
}

func (s *CatalogService) ListProducts(ctx context.Context, filter repositories.ProductFilter, limit int) ([]models.Product, error) {
	return s.productRepo.GetFiltered(ctx, filter, limit)
}

func optionalPath(path string) *string {
	if path == "" {
		return nil
	}
	return &path
}

func derefPath(path *string) string {
	if path == nil {
		return ""
	}
	return *path
}
