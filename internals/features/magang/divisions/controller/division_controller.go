package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityService "magangku_backend/internals/features/activity/activity_logs/service"
	"magangku_backend/internals/constants"
	"magangku_backend/internals/features/magang/divisions/dto"
	"magangku_backend/internals/features/magang/divisions/model"
	helper "magangku_backend/internals/helpers"
)

var validate = validator.New()

type DivisionController struct {
	DB *gorm.DB
}

func NewDivisionController(db *gorm.DB) *DivisionController {
	return &DivisionController{DB: db}
}

// GetAll: semua divisi, urut nama (dipakai form publik & admin panel).
func (ctrl *DivisionController) GetAll(c *fiber.Ctx) error {
	var divisions []model.DivisionModel
	if err := ctrl.DB.Order("nama_divisi ASC").Find(&divisions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data divisi")
	}
	return helper.JsonOK(c, "", divisions)
}

func (ctrl *DivisionController) Create(c *fiber.Ctx) error {
	var req dto.CreateDivisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// available_slots = total_slots saat dibuat
	available := *req.TotalSlots
	division := model.DivisionModel{
		NamaDivisi:     req.NamaDivisi,
		TotalSlots:     *req.TotalSlots,
		AvailableSlots: &available,
		Description:    req.Description,
		IsActive:       true,
	}
	if err := ctrl.DB.Create(&division).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Divisi dengan nama tersebut sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat divisi")
	}

	activityService.Log(ctrl.DB, activityService.Entry{
		ActivityType: constants.ActivityDivisionCreated,
		Description:  "Divisi dibuat: " + division.NamaDivisi,
		Metadata:     map[string]any{"division_id": division.ID, "total_slots": division.TotalSlots},
		IPAddress:    c.IP(),
		UserAgent:    c.Get(fiber.HeaderUserAgent),
	})

	return helper.JsonCreated(c, "Divisi berhasil dibuat", division)
}

// Update menerima id via path param, query ?id=, atau body.
func (ctrl *DivisionController) Update(c *fiber.Ctx) error {
	var req dto.UpdateDivisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	id := resolveID(c, req.ID)
	if id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID divisi wajib diisi")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.NamaDivisi != nil && strings.TrimSpace(*req.NamaDivisi) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama divisi tidak boleh kosong")
	}

	var division model.DivisionModel
	if err := ctrl.DB.First(&division, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Divisi tidak ditemukan")
	}

	updates := map[string]any{}
	if req.NamaDivisi != nil {
		updates["nama_divisi"] = strings.TrimSpace(*req.NamaDivisi)
	}
	if req.TotalSlots != nil {
		updates["total_slots"] = *req.TotalSlots
	}
	if req.AvailableSlots != nil {
		updates["available_slots"] = *req.AvailableSlots
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan data", division)
	}

	if err := ctrl.DB.Model(&division).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Divisi dengan nama tersebut sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update divisi")
	}

	activityService.Log(ctrl.DB, activityService.Entry{
		ActivityType: constants.ActivityDivisionUpdated,
		Description:  "Divisi diubah: " + division.NamaDivisi,
		Metadata:     map[string]any{"division_id": division.ID},
		IPAddress:    c.IP(),
		UserAgent:    c.Get(fiber.HeaderUserAgent),
	})

	return helper.JsonUpdated(c, "Divisi berhasil diupdate", division)
}

func (ctrl *DivisionController) Delete(c *fiber.Ctx) error {
	id := resolveID(c, nil)
	if id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID divisi wajib diisi")
	}

	var division model.DivisionModel
	if err := ctrl.DB.First(&division, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Divisi tidak ditemukan")
	}

	// Hard delete; pendaftaran lama yang menunjuk divisi ini dibiarkan.
	if err := ctrl.DB.Delete(&division).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus divisi")
	}

	activityService.Log(ctrl.DB, activityService.Entry{
		ActivityType: constants.ActivityDivisionDeleted,
		Description:  "Divisi dihapus: " + division.NamaDivisi,
		Metadata:     map[string]any{"division_id": division.ID},
		IPAddress:    c.IP(),
		UserAgent:    c.Get(fiber.HeaderUserAgent),
	})

	return helper.JsonDeleted(c, "Divisi berhasil dihapus", fiber.Map{"deleted_id": division.ID})
}

// ResetSlots: kembalikan available_slots ke total_slots.
func (ctrl *DivisionController) ResetSlots(c *fiber.Ctx) error {
	id := resolveID(c, nil)
	if id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID divisi wajib diisi")
	}

	var division model.DivisionModel
	if err := ctrl.DB.First(&division, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Divisi tidak ditemukan")
	}

	if err := ctrl.DB.Model(&division).
		Update("available_slots", division.TotalSlots).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal reset slot divisi")
	}

	activityService.Log(ctrl.DB, activityService.Entry{
		ActivityType: constants.ActivityDivisionSlotsReset,
		Description:  "Slot divisi direset: " + division.NamaDivisi,
		Metadata:     map[string]any{"division_id": division.ID, "total_slots": division.TotalSlots},
		IPAddress:    c.IP(),
		UserAgent:    c.Get(fiber.HeaderUserAgent),
	})

	return helper.JsonUpdated(c, "Slot divisi berhasil direset", division)
}

func resolveID(c *fiber.Ctx, bodyID *uint) uint {
	if raw := c.Params("id"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return uint(n)
		}
	}
	if raw := c.Query("id"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return uint(n)
		}
	}
	if bodyID != nil {
		return *bodyID
	}
	return 0
}
