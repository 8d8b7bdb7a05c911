package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/danuarts/stylora-backend/app/controllers"
	"github.com/danuarts/stylora-backend/pkg/middleware"
)

func RegisterCustomerRoutes(app *fiber.App) {
	customers := app.Group("/customers", middleware.JWTProtected())
	customers.Put("/preference", controllers.SetPreference)
	customers.Post("/addresses", controllers.AddAddress)
	customers.Put("/addresses/:id/activate", controllers.ActivateAddress)
	customers.Get("/favourites", controllers.ListFavourites)
}
