package http

import (
	"github.com/gofiber/fiber/v2"

	"spendsmart/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, user *handlers.UserHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":      "SpendSmart API",
			"status":    "ok",
			"endpoints": []string{"/health", "/auth", "/user", "/models"},
		})
	})
	app.Get("/models", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"models": []string{"Transaction", "BudgetGoal", "Income", "User"},
		})
	})
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	a := app.Group("/auth")
	a.Post("/signup", auth.Signup)
	a.Post("/login", auth.Login)
	a.Get("/me", authMW, auth.Me)
	a.Post("/logout", auth.Logout)

	u := app.Group("/user", authMW)
	u.Get("/dashboard", user.Dashboard)
	u.Post("/goals", user.CreateGoal)
	u.Post("/transactions", user.CreateTransaction)
	u.Post("/incomes", user.CreateIncome)
}
