package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/hafizianr/go-catalog-admin/app/handlers"
	"github.com/hafizianr/go-catalog-admin/app/helpers"
	"github.com/hafizianr/go-catalog-admin/app/repositories"
	"github.com/hafizianr/go-catalog-admin/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

const maxUploadMemory = 32 << 20

// ProductsGetHandler serves the management listing, optionally narrowed by
// ?category= and ?sub_category=.
func (h *AdminHandler) ProductsGetHandler(w http.ResponseWriter, r *http.Request) {
	filter := repositories.ProductFilter{
		CategoryID:    parseQueryID(r, "category"),
		SubcategoryID: parseQueryID(r, "sub_category"),
	}

	products, err := h.catalogSvc.ListProducts(r.Context(), filter, manageProductsLimit)
	if err != nil {
		_ = h.render.JSON(w, http.StatusInternalServerError, fail(err))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, toProductRows(products))
}

// RecentProductsHandler backs the add view with the newest entries.
func (h *AdminHandler) RecentProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogSvc.ListProducts(r.Context(), repositories.ProductFilter{}, recentProductsLimit)
	if err != nil {
		_ = h.render.JSON(w, http.StatusInternalServerError, fail(err))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, toProductRows(products))
}

func (h *AdminHandler) AddProductPost(w http.ResponseWriter, r *http.Request) {
	input, parsed := h.parseProductForm(w, r)
	if !parsed {
		return
	}

	product, err := h.catalogSvc.CreateProduct(r.Context(), r, input)
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, fail(err))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, ok(fmt.Sprintf("Product added: %s", product.ModelName)))
}

func (h *AdminHandler) EditProductPost(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)

	input, parsed := h.parseProductForm(w, r)
	if !parsed {
		return
	}

	product, err := h.catalogSvc.UpdateProduct(r.Context(), r, uint(id), input)
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, fail(err))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, ok(fmt.Sprintf("Product updated: %s", product.ModelName)))
}

func (h *AdminHandler) DeleteProductPost(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)

	if err := h.catalogSvc.DeleteProduct(r.Context(), uint(id)); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, fail(err))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, ok("Product deleted."))
}

// parseProductForm reads the multipart form and validates the scalar fields.
// File parts stay untouched here; the catalog service pulls them straight
// from the request.
func (h *AdminHandler) parseProductForm(w http.ResponseWriter, r *http.Request) (services.ProductInput, bool) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, handlers.Outcome{Success: false, Message: "Could not process the request."})
		return services.ProductInput{}, false
	}

	form := ProductForm{
		CategoryID:    r.PostFormValue("category"),
		SubcategoryID: r.PostFormValue("sub_category"),
		ModelName:     r.PostFormValue("model_name"),
	}
	if err := h.validator.Struct(&form); err != nil {
		message := "Could not process the request."
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			message = helpers.JoinValidationErrors(fieldErrs)
		}
		_ = h.render.JSON(w, http.StatusBadRequest, handlers.Outcome{Success: false, Message: message})
		return services.ProductInput{}, false
	}

	categoryID, _ := strconv.ParseUint(form.CategoryID, 10, 32)
	input := services.ProductInput{
		CategoryID: uint(categoryID),
		ModelName:  form.ModelName,
	}
	if form.SubcategoryID != "" {
		subID, _ := strconv.ParseUint(form.SubcategoryID, 10, 32)
		if subID > 0 {
			sub := uint(subID)
			input.SubcategoryID = &sub
		}
	}
	return input, true
}

func parseQueryID(r *http.Request, key string) uint {
	id, _ := strconv.ParseUint(r.URL.Query().Get(key), 10, 32)
	return uint(id)
}
