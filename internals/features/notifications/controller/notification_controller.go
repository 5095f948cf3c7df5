package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	helpers "magangku_backend/internals/helpers"
	"magangku_backend/internals/helpers/mailerx"
)

type NotificationController struct {
	Mailer mailerx.Mailer
}

func NewNotificationController(mailer mailerx.Mailer) *NotificationController {
	return &NotificationController{Mailer: mailer}
}

// SendApproval: kirim email persetujuan (dipanggil admin panel).
func (ctrl *NotificationController) SendApproval(c *fiber.Ctx) error {
	var req struct {
		Email           string `json:"email"`
		Nama            string `json:"nama"`
		KodePendaftaran string `json:"kode_pendaftaran"`
		Password        string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.Email == "" || req.Nama == "" || req.KodePendaftaran == "" || req.Password == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Data tidak lengkap (termasuk password)")
	}

	if err := ctrl.Mailer.SendApproval(req.Email, req.Nama, req.KodePendaftaran, req.Password); err != nil {
		return sendError(c, "approval", req.Email, err)
	}
	return helpers.JsonOK(c, "Email persetujuan terkirim", nil)
}

// SendRejection: kirim email penolakan beserta alasan.
func (ctrl *NotificationController) SendRejection(c *fiber.Ctx) error {
	var req struct {
		Email           string `json:"email"`
		Nama            string `json:"nama"`
		KodePendaftaran string `json:"kode_pendaftaran"`
		RejectionReason string `json:"rejection_reason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.Email == "" || req.Nama == "" || req.KodePendaftaran == "" || req.RejectionReason == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Data tidak lengkap")
	}

	if err := ctrl.Mailer.SendRejection(req.Email, req.Nama, req.KodePendaftaran, req.RejectionReason); err != nil {
		return sendError(c, "rejection", req.Email, err)
	}
	return helpers.JsonOK(c, "Email penolakan terkirim", nil)
}

// SendConfirmation: kirim email konfirmasi pendaftaran diterima sistem.
func (ctrl *NotificationController) SendConfirmation(c *fiber.Ctx) error {
	var req struct {
		ToEmail     string `json:"to_email"`
		NamaLengkap string `json:"nama_lengkap"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.ToEmail == "" || req.NamaLengkap == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Email dan nama lengkap harus diisi")
	}

	if err := ctrl.Mailer.SendConfirmation(req.ToEmail, req.NamaLengkap); err != nil {
		return sendError(c, "confirmation", req.ToEmail, err)
	}
	return helpers.JsonOK(c, "Email konfirmasi terkirim", nil)
}

func sendError(c *fiber.Ctx, kind, to string, err error) error {
	if errors.Is(err, mailerx.ErrNotConfigured) {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	log.Printf("[ERROR] Gagal kirim email %s ke %s: %v", kind, to, err)
	return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim email")
}
