package admin

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/hafizianr/go-catalog-admin/app/handlers"
	"github.com/hafizianr/go-catalog-admin/app/models"
	"github.com/gorilla/mux"
)

// TaxonomyResponse carries the categories plus the category-id to
// subcategories grouping used to populate dependent selects.
type TaxonomyResponse struct {
	Categories    []models.Category            `json:"categories"`
	Subcategories map[uint][]models.Subcategory `json:"subcategories"`
}

func (h *AdminHandler) TaxonomyGetHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := h.taxonomyRepo.GetCategories(r.Context())
	if err != nil {
		log.Printf("TaxonomyGetHandler: failed to fetch categories: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, fail(err))
		return
	}

	grouped, err := h.taxonomyRepo.GroupSubcategoriesByCategory(r.Context())
	if err != nil {
		log.Printf("TaxonomyGetHandler: failed to fetch subcategories: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, fail(err))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, TaxonomyResponse{
		Categories:    categories,
		Subcategories: grouped,
	})
}

func (h *AdminHandler) AddCategoryPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, handlers.Outcome{Success: false, Message: "Could not process the request."})
		return
	}

	name := r.PostFormValue("new_category")
	if err := h.taxonomyRepo.AddCategory(r.Context(), name); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, fail(err))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, ok(fmt.Sprintf("Category added (or already existed): %s", name)))
}

func (h *AdminHandler) AddSubcategoryPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, handlers.Outcome{Success: false, Message: "Could not process the request."})
		return
	}

	categoryID, _ := strconv.ParseUint(r.PostFormValue("category_for_subcat"), 10, 32)
	name := r.PostFormValue("new_subcategory")

	if err := h.taxonomyRepo.AddSubcategory(r.Context(), uint(categoryID), name); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, fail(err))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, ok(fmt.Sprintf("Subcategory added (or already existed): %s", name)))
}

func (h *AdminHandler) DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)

	if err := h.taxonomyRepo.DeleteCategory(r.Context(), uint(id)); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, fail(err))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, ok("Category deleted."))
}

func (h *AdminHandler) DeleteSubcategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)

	if err := h.taxonomyRepo.DeleteSubcategory(r.Context(), uint(id)); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, fail(err))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, ok("Subcategory deleted."))
}
