package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/danuarts/stylora-backend/app/controllers"
	"github.com/danuarts/stylora-backend/pkg/middleware"
)

func RegisterStylistRoutes(app *fiber.App) {
	// Public
	app.Get("/stylists/active-count", controllers.ActiveStylistCount)

	stylists := app.Group("/stylists", middleware.JWTProtected())
	stylists.Post("/search", controllers.SearchStylists)
	stylists.Post("/active", controllers.ActiveStylists)
	stylists.Get("/:id", controllers.StylistDetail)
	stylists.Post("/:id/favourite", controllers.FavouriteStylist)
	stylists.Delete("/:id/favourite", controllers.UnfavouriteStylist)
	stylists.Post("/:id/block", controllers.BlockStylist)
	stylists.Delete("/:id/block", controllers.UnblockStylist)
}
