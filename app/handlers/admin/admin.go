package admin

import (
	"errors"
	"log"
	"time"

	"github.com/hafizianr/go-catalog-admin/app/handlers"
	"github.com/hafizianr/go-catalog-admin/app/models"
	"github.com/hafizianr/go-catalog-admin/app/repositories"
	"github.com/hafizianr/go-catalog-admin/app/services"
	"github.com/hafizianr/go-catalog-admin/app/utils/uploads"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

// Listing caps: the add view shows the most recent 50 rows, the management
// view up to 200.
const (
	recentProductsLimit = 50
	manageProductsLimit = 200
)

type AdminHandler struct {
	render       *render.Render
	validator    *validator.Validate
	taxonomyRepo repositories.TaxonomyRepositoryImpl
	catalogSvc   *services.CatalogService
}

func NewAdminHandler(
	render *render.Render,
	validator *validator.Validate,
	taxonomyRepo repositories.TaxonomyRepositoryImpl,
	catalogSvc *services.CatalogService,
) *AdminHandler {
	return &AdminHandler{
		render:       render,
		validator:    validator,
		taxonomyRepo: taxonomyRepo,
		catalogSvc:   catalogSvc,
	}
}

type ProductForm struct {
	CategoryID    string `form:"category" validate:"required,numeric"`
	SubcategoryID string `form:"sub_category" validate:"omitempty,numeric"`
	ModelName     string `form:"model_name" validate:"required,max=255"`
}

// ProductRow is a product joined with its category and subcategory names for
// the listing views.
type ProductRow struct {
	ID               uint      `json:"id"`
	ModelName        string    `json:"model_name"`
	CategoryID       uint      `json:"category_id"`
	CategoryName     string    `json:"category_name"`
	SubcategoryID    *uint     `json:"subcategory_id"`
	SubcategoryName  string    `json:"subcategory_name"`
	ModelDescription string    `json:"model_description"`
	ModelImage       string    `json:"model_image"`
	CreatedAt        time.Time `json:"created_at"`
}

func toProductRows(products []models.Product) []ProductRow {
	rows := make([]ProductRow, 0, len(products))
	for _, p := range products {
		row := ProductRow{
			ID:            p.ID,
			ModelName:     p.ModelName,
			CategoryID:    p.CategoryID,
			CategoryName:  p.Category.Name,
			SubcategoryID: p.SubcategoryID,
			CreatedAt:     p.CreatedAt,
		}
		if p.Subcategory != nil {
			row.SubcategoryName = p.Subcategory.Name
		}
		if p.ModelDescription != nil {
			row.ModelDescription = *p.ModelDescription
		}
		if p.ModelImage != nil {
			row.ModelImage = *p.ModelImage
		}
		rows = append(rows, row)
	}
	return rows
}

// outcomeMessage maps a failure onto the message shown to the operator.
// Expected failures surface verbatim; anything else downgrades to a generic
// message instead of leaking internals.
func outcomeMessage(err error) string {
	var typeErr *uploads.UnsupportedTypeError
	switch {
	case errors.Is(err, repositories.ErrValidation):
		return err.Error()
	case errors.As(err, &typeErr):
		return typeErr.Error()
	case errors.Is(err, uploads.ErrUploadFailed):
		return err.Error()
	case errors.Is(err, repositories.ErrCategoryInUse):
		return "Category cannot be deleted while products still reference it."
	case errors.Is(err, repositories.ErrNotFound):
		return "Record not found."
	default:
		log.Printf("admin operation failed unexpectedly: %v", err)
		return "Operation failed."
	}
}

func fail(err error) handlers.Outcome {
	return handlers.Outcome{Success: false, Message: outcomeMessage(err)}
}

func ok(message string) handlers.Outcome {
	return handlers.Outcome{Success: true, Message: message}
}
