package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/magang/presensi/controller"
	"magangku_backend/internals/features/magang/presensi/service"
)

// PresensiAdminRoutes: export CSV presensi (guard admin di caller).
func PresensiAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPresensiController(db, service.NewPresensiService(db), nil)
	admin.Get("/export/attendance", ctrl.ExportCSV)
}
