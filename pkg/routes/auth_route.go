package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/danuarts/stylora-backend/app/controllers"
)

func RegisterAuthRoutes(app *fiber.App) {
	app.Post("/auth/signup", controllers.CustomerSignUp)
	app.Post("/auth/signin", controllers.SignIn)
}
