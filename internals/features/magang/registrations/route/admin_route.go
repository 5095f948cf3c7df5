package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/magang/registrations/controller"
	"magangku_backend/internals/features/magang/registrations/service"
	"magangku_backend/internals/helpers/mailerx"
	"magangku_backend/internals/helpers/oss"
)

// RegistrationAdminRoutes: antrian review + transisi status (guard admin di caller).
func RegistrationAdminRoutes(admin fiber.Router, db *gorm.DB, blob oss.BlobService, mailer mailerx.Mailer) {
	ctrl := controller.NewRegistrationController(db,
		service.NewIntakeService(db, blob),
		service.NewStatusService(db, mailer),
	)

	registrations := admin.Group("/registrations")
	registrations.Get("/", ctrl.AdminList)
	registrations.Post("/:id/status", ctrl.UpdateStatus)
}
