package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/danuarts/stylora-backend/app/controllers"
)

func RegisterPresenceRoutes(app *fiber.App) {
	app.Get("/ws/presence", websocket.New(func(c *websocket.Conn) {
		controllers.PresenceSocket(c)
	}))
}
