package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "magangku_backend/internals/features/users/auth/service"
	"magangku_backend/internals/middlewares"
)

// AuthRoutes: login email/password + Google. Logout cukup di sisi client
// (token stateless, tidak ada state server yang perlu dihapus).
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	auth := api.Group("/auth", middlewares.LoginRateLimiter())
	auth.Post("/login", func(c *fiber.Ctx) error { return authService.Login(db, c) })
	auth.Post("/login-google", func(c *fiber.Ctx) error { return authService.LoginGoogle(db, c) })
}
