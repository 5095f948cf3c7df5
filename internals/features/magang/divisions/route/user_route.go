package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/magang/divisions/controller"
)

// Daftar divisi dibaca publik (mengisi dropdown form pendaftaran).
func DivisionUserRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDivisionController(db)
	public.Get("/divisions", ctrl.GetAll)
}
