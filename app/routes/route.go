package routes

import (
	"net/http"

	"github.com/hafizianr/go-catalog-admin/app/configs"
	"github.com/hafizianr/go-catalog-admin/app/handlers"
	"github.com/hafizianr/go-catalog-admin/app/handlers/admin"
	"github.com/hafizianr/go-catalog-admin/app/middlewares"
	"github.com/hafizianr/go-catalog-admin/app/repositories"
	"github.com/hafizianr/go-catalog-admin/app/services"
	"github.com/hafizianr/go-catalog-admin/app/utils/renderer"
	"github.com/hafizianr/go-catalog-admin/app/utils/sessions"
	"github.com/hafizianr/go-catalog-admin/app/utils/uploads"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, sessionStore sessions.SessionStore) *mux.Router {
	render := renderer.New()
	validate := validator.New()

	userRepo := repositories.NewUserRepository(db)
	taxonomyRepo := repositories.NewTaxonomyRepository(db)
	productRepo := repositories.NewProductRepository(db)

	store := uploads.NewStore(configs.LoadENV.UploadDir)
	authSvc := services.NewAuthService(userRepo)
	catalogSvc := services.NewCatalogService(productRepo, store)

	authHandler := handlers.NewAuthHandler(render, authSvc, sessionStore, validate)
	adminHandler := admin.NewAdminHandler(render, validate, taxonomyRepo, catalogSvc)

	router := mux.NewRouter()
	router.Use(middlewares.RequestLogMiddleware)
	router.Use(middlewares.SessionUserMiddleware(sessionStore, userRepo))

	// Auth surface. The JSON endpoints hang off ?action= query matchers so
	// fetch-style clients and the plain form post share one path.
	router.HandleFunc("/login", authHandler.LoginAPIHandler).
		Methods("POST").Queries("action", "login")
	router.HandleFunc("/login", authHandler.CreateDemoHandler).
		Methods("POST").Queries("action", "create_demo")
	router.HandleFunc("/login", authHandler.LoginPostHandler).Methods("POST")
	router.HandleFunc("/logout", authHandler.LogoutHandler).Methods("GET")

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.RequireAuthMiddleware)
	if key := configs.LoadENV.CSRFKey; key != "" {
		adminRouter.Use(csrf.Protect([]byte(key), csrf.Secure(false), csrf.Path("/")))
	}

	adminRouter.HandleFunc("/taxonomy", adminHandler.TaxonomyGetHandler).Methods("GET")
	adminRouter.HandleFunc("/categories", adminHandler.AddCategoryPost).Methods("POST")
	adminRouter.HandleFunc("/categories/{id:[0-9]+}", adminHandler.DeleteCategoryHandler).Methods("DELETE")
	adminRouter.HandleFunc("/subcategories", adminHandler.AddSubcategoryPost).Methods("POST")
	adminRouter.HandleFunc("/subcategories/{id:[0-9]+}", adminHandler.DeleteSubcategoryHandler).Methods("DELETE")

	adminRouter.HandleFunc("/products", adminHandler.ProductsGetHandler).Methods("GET")
	adminRouter.HandleFunc("/products/recent", adminHandler.RecentProductsHandler).Methods("GET")
	adminRouter.HandleFunc("/products", adminHandler.AddProductPost).Methods("POST")
	adminRouter.HandleFunc("/products/{id:[0-9]+}", adminHandler.EditProductPost).Methods("POST")
	adminRouter.HandleFunc("/products/{id:[0-9]+}", adminHandler.DeleteProductPost).Methods("DELETE")

	// Stored assets are served straight from disk under /uploads/.
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(store.Root()))),
	)

	return router
}
