// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityRoute "magangku_backend/internals/features/activity/activity_logs/route"
	divisionRoute "magangku_backend/internals/features/magang/divisions/route"
	presensiRoute "magangku_backend/internals/features/magang/presensi/route"
	registrationRoute "magangku_backend/internals/features/magang/registrations/route"
	notificationRoute "magangku_backend/internals/features/notifications/route"
	authRoute "magangku_backend/internals/features/users/auth/route"
	userRoute "magangku_backend/internals/features/users/user/route"
	"magangku_backend/internals/helpers/mailerx"
	"magangku_backend/internals/helpers/oss"
	"magangku_backend/internals/middlewares"
	authMiddleware "magangku_backend/internals/middlewares/auth"
)

var startTime time.Time

// Deps: kolaborator eksternal yang dibuat sekali di main dan diinject ke routes.
type Deps struct {
	DB     *gorm.DB
	Blob   oss.BlobService
	Mailer mailerx.Mailer
}

func SetupRoutes(app *fiber.App, deps Deps) {
	startTime = time.Now()

	BaseRoutes(app, deps.DB)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	api := app.Group("/api")

	authRoute.AuthRoutes(api, deps.DB)
	divisionRoute.DivisionUserRoutes(api, deps.DB)
	notificationRoute.NotificationRoutes(api, deps.Mailer)

	// Form pendaftaran publik dibatasi rate limiter khusus.
	api.Use("/magang", methodLimiter(fiber.MethodPost, middlewares.RegisterRateLimiter()))
	registrationRoute.RegistrationUserRoutes(api, deps.DB, deps.Blob, deps.Mailer)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api", authMiddleware.AuthMiddleware(deps.DB))
	presensiRoute.PresensiUserRoutes(private, deps.DB, deps.Blob)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/admin",
		authMiddleware.AuthMiddleware(deps.DB),
		authMiddleware.AdminOnly(deps.DB),
	)

	registrationRoute.RegistrationAdminRoutes(admin, deps.DB, deps.Blob, deps.Mailer)
	divisionRoute.DivisionAdminRoutes(admin, deps.DB)
	presensiRoute.PresensiAdminRoutes(admin, deps.DB)
	userRoute.UserAdminRoutes(admin, deps.DB)
	activityRoute.ActivityLogAdminRoutes(admin, deps.DB)
}

// methodLimiter menjalankan limiter hanya untuk method tertentu.
func methodLimiter(method string, limiter fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != method {
			return c.Next()
		}
		return limiter(c)
	}
}
