// internals/middlewares/auth/admin_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
)

// AdminOnly memeriksa profil pemanggil: harus role admin dan masih aktif.
// Dipasang setelah AuthMiddleware (butuh locals user_id).
func AdminOnly(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, _ := c.Locals("user_id").(string)
		userID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid session")
		}

		var profile struct {
			Role     string
			IsActive bool
		}
		if err := db.Table("user_profiles").
			Select("role, is_active").
			Where("id = ?", userID).
			First(&profile).Error; err != nil {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden")
		}
		if profile.Role != constants.RoleAdmin || !profile.IsActive {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden")
		}
		return c.Next()
	}
}
