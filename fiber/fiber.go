package fiber

import (
	gofiber "github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupFiber builds the app with the shared middleware stack.
func SetupFiber() *gofiber.App {
	app := gofiber.New(gofiber.Config{
		AppName: "dropout-risk-dashboard",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	return app
}
