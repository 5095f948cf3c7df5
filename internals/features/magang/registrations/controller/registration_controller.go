package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/magang/registrations/dto"
	"magangku_backend/internals/features/magang/registrations/model"
	"magangku_backend/internals/features/magang/registrations/service"
	helper "magangku_backend/internals/helpers"
)

type RegistrationController struct {
	DB     *gorm.DB
	Intake *service.IntakeService
	Status *service.StatusService
}

func NewRegistrationController(db *gorm.DB, intake *service.IntakeService, status *service.StatusService) *RegistrationController {
	return &RegistrationController{DB: db, Intake: intake, Status: status}
}

// Submit: endpoint publik pendaftaran magang (multipart form + dokumen bukti).
func (ctrl *RegistrationController) Submit(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Form tidak valid")
	}

	req := dto.IntakeRequest{
		NamaLengkap:    formValue(form.Value, "nama_lengkap"),
		Email:          formValue(form.Value, "email"),
		Telepon:        formValue(form.Value, "telepon"),
		Institusi:      formValue(form.Value, "institusi"),
		Jurusan:        formValue(form.Value, "jurusan"),
		Semester:       formValue(form.Value, "semester"),
		DurasiMagang:   formValue(form.Value, "durasi_magang"),
		TanggalMulai:   formValue(form.Value, "tanggal_mulai"),
		TanggalSelesai: formValue(form.Value, "tanggal_selesai"),
		Deskripsi:      formValue(form.Value, "deskripsi"),
	}
	if raw := formValue(form.Value, "division_id"); raw != "" {
		if n, convErr := strconv.Atoi(raw); convErr == nil && n > 0 {
			req.DivisionID = uint(n)
		}
	}
	if err := req.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Form lama memakai nama field bukti[]; terima keduanya.
	files := form.File["bukti[]"]
	if len(files) == 0 {
		files = form.File["bukti"]
	}
	req.DocumentTypes = form.Value["document_type[]"]
	if len(req.DocumentTypes) == 0 {
		req.DocumentTypes = form.Value["document_type"]
	}

	result, err := ctrl.Intake.Submit(c.Context(), req, files, c.IP(), c.Get(fiber.HeaderUserAgent))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDivisionNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrSlotPenuh):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pendaftaran")
		}
	}

	return helper.JsonCreated(c, "Pendaftaran berhasil dikirim", result)
}

// GetAll: lookup status publik. Filter ?kode_pendaftaran= & ?status=, paginated.
func (ctrl *RegistrationController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 100)

	q := ctrl.DB.Model(&model.RegistrationModel{})
	if kode := c.Query("kode_pendaftaran"); kode != "" {
		q = q.Where("kode_pendaftaran = ?", kode)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pendaftaran")
	}

	var registrations []model.RegistrationModel
	if err := q.Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&registrations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pendaftaran")
	}

	return helper.JsonList(c, "", registrations, helper.BuildPagination(total, p))
}

// AdminList: antrian review — pendaftaran pending beserta dokumennya.
func (ctrl *RegistrationController) AdminList(c *fiber.Ctx) error {
	var registrations []model.RegistrationModel
	if err := ctrl.DB.
		Where("status = ?", model.StatusPending).
		Preload("Documents").
		Order("created_at ASC").
		Find(&registrations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pendaftaran")
	}
	return helper.JsonOK(c, "", registrations)
}

// UpdateStatus: approve/reject satu pendaftaran pending.
func (ctrl *RegistrationController) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pendaftaran tidak valid")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	result, err := ctrl.Status.Transition(c.Context(), uint(id), service.TransitionInput{
		Status:          req.Status,
		RejectionReason: req.RejectionReason,
		ChangedBy:       req.ChangedBy,
		Password:        req.Password,
		IPAddress:       c.IP(),
		UserAgent:       c.Get(fiber.HeaderUserAgent),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus),
			errors.Is(err, service.ErrReasonRequired),
			errors.Is(err, service.ErrPasswordRequired):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrRegistrationNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAlreadyFinal):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status pendaftaran")
		}
	}

	return helper.JsonUpdated(c, "Status pendaftaran berhasil diubah", result)
}

func formValue(values map[string][]string, key string) string {
	if v, ok := values[key]; ok && len(v) > 0 {
		return v[0]
	}
	return ""
}
