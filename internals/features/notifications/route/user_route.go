package route

import (
	"github.com/gofiber/fiber/v2"

	"magangku_backend/internals/features/notifications/controller"
	"magangku_backend/internals/helpers/mailerx"
)

// NotificationRoutes: endpoint pengiriman email transaksional.
func NotificationRoutes(api fiber.Router, mailer mailerx.Mailer) {
	ctrl := controller.NewNotificationController(mailer)

	api.Post("/send-approval", ctrl.SendApproval)
	api.Post("/send-rejection", ctrl.SendRejection)
	api.Post("/send-confirmation", ctrl.SendConfirmation)
}
