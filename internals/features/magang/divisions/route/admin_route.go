package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/magang/divisions/controller"
)

func DivisionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDivisionController(db)

	div := admin.Group("/divisions")
	div.Get("/", ctrl.GetAll)
	div.Post("/", ctrl.Create)
	div.Put("/", ctrl.Update)
	div.Put("/:id", ctrl.Update)
	div.Delete("/", ctrl.Delete)
	div.Delete("/:id", ctrl.Delete)
	div.Post("/:id/reset", ctrl.ResetSlots)
}
