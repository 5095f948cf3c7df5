package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/magang/registrations/controller"
	"magangku_backend/internals/features/magang/registrations/service"
	"magangku_backend/internals/helpers/mailerx"
	"magangku_backend/internals/helpers/oss"
)

// RegistrationUserRoutes: endpoint publik pendaftaran + cek status.
func RegistrationUserRoutes(api fiber.Router, db *gorm.DB, blob oss.BlobService, mailer mailerx.Mailer) {
	ctrl := controller.NewRegistrationController(db,
		service.NewIntakeService(db, blob),
		service.NewStatusService(db, mailer),
	)

	magang := api.Group("/magang")
	magang.Post("/", ctrl.Submit)
	magang.Get("/", ctrl.GetAll)
}
