package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/activity/activity_logs/controller"
)

func ActivityLogAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewActivityLogController(db)

	logs := admin.Group("/activity-logs")
	logs.Get("/", ctrl.GetAll)
	logs.Post("/", ctrl.Create)
}
