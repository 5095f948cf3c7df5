package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/users/user/controller"
)

// UserAdminRoutes: provisioning akun + reset password + export (guard admin di caller).
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserAdminController(db)

	users := admin.Group("/users")
	users.Get("/", ctrl.GetAll)
	users.Post("/", ctrl.Create)

	admin.Post("/change-password", ctrl.ChangePassword)
	admin.Get("/export/users", ctrl.ExportCSV)
}
