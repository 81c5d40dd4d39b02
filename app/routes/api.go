package routes

import (
	"gorm.io/gorm"

	"storefront/app/controllers"
	"storefront/app/services"
	"storefront/config"
	"storefront/pkg/middleware"
	"storefront/pkg/rbac"
	"storefront/pkg/router"
)

// RegisterAPI mounts the API surface on r. When OPEN_API is disabled every
// resource route requires a bearer token, and deletes additionally require
// the admin role.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	authController := controllers.NewAuthController(services.NewAuthService(db))
	customerController := controllers.NewCustomerController(services.NewCustomerService(db))
	productController := controllers.NewProductController(services.NewProductService(db))
	orderController := controllers.NewOrderController(services.NewOrderService(db))

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", "auth.register", authController.Register, rbac.Guest)
	auth.Post("/login", "auth.login", authController.Login, rbac.Guest)
	auth.Get("/user", "auth.user", authController.Account, middleware.AuthRequired)

	var guards []router.Middleware
	var deleteGuards []router.Middleware
	if !config.OpenAPI() {
		guards = append(guards, middleware.AuthRequired)
		deleteGuards = append(deleteGuards, rbac.HasRole("admin"))
	}

	resources := api.Group("", guards...)

	resources.Get("/products", "products.index", productController.Index)
	resources.Post("/products", "products.store", productController.Store)
	resources.Get("/products/{id}", "products.show", productController.Show)
	resources.Put("/products/{id}", "products.update", productController.Update)
	resources.Delete("/products/{id}", "products.destroy", productController.Destroy, deleteGuards...)

	resources.Get("/customers", "customers.index", customerController.Index)
	resources.Post("/customers", "customers.store", customerController.Store)
	resources.Get("/customers/{id}", "customers.show", customerController.Show)
	resources.Put("/customers/{id}", "customers.update", customerController.Update)
	resources.Delete("/customers/{id}", "customers.destroy", customerController.Destroy, deleteGuards...)

	resources.Get("/orders", "orders.index", orderController.Index)
	resources.Post("/orders", "orders.store", orderController.Store)
	resources.Get("/orders/{id}", "orders.show", orderController.Show)
	resources.Get("/orders/{id}/items", "orders.items", orderController.Items)
	resources.Put("/orders/{id}", "orders.update", orderController.Update)
	resources.Patch("/orders/{id}", "orders.patch", orderController.Update)
	resources.Delete("/orders/{id}", "orders.destroy", orderController.Destroy, deleteGuards...)
}
