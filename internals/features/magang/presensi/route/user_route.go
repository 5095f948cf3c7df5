package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/magang/presensi/controller"
	"magangku_backend/internals/features/magang/presensi/service"
	"magangku_backend/internals/helpers/oss"
)

// PresensiUserRoutes: presensi masuk/pulang + riwayat sendiri (caller sudah login).
func PresensiUserRoutes(api fiber.Router, db *gorm.DB, blob oss.BlobService) {
	ctrl := controller.NewPresensiController(db, service.NewPresensiService(db), blob)

	presensi := api.Group("/presensi")
	presensi.Get("/", ctrl.GetMine)
	presensi.Post("/check-in", ctrl.CheckIn)
	presensi.Post("/check-out", ctrl.CheckOut)
}
