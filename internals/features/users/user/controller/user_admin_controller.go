package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	activityService "magangku_backend/internals/features/activity/activity_logs/service"
	"magangku_backend/internals/features/users/user/dto"
	"magangku_backend/internals/features/users/user/model"
	"magangku_backend/internals/features/users/user/service"
	helpers "magangku_backend/internals/helpers"
	"magangku_backend/internals/helpers/csvx"
)

var validate = validator.New()

type UserAdminController struct {
	DB      *gorm.DB
	Service *service.UserService
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db, Service: service.NewUserService(db)}
}

// GetAll: daftar profil user untuk panel admin, terbaru dulu.
func (ctrl *UserAdminController) GetAll(c *fiber.Ctx) error {
	var profiles []model.UserProfileModel
	if err := ctrl.DB.Order("created_at DESC").Find(&profiles).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helpers.JsonOK(c, "", profiles)
}

// Create: provisioning akun peserta/admin baru.
func (ctrl *UserAdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid JSON body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	profile, err := ctrl.Service.Provision(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return helpers.JsonError(c, fiber.StatusConflict, err.Error())
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	activityService.Log(ctrl.DB, activityService.Entry{
		UserEmail:    activityService.StrPtr(profile.Email),
		UserName:     activityService.StrPtr(profile.Name),
		ActivityType: constants.ActivityUserCreated,
		Description:  fmt.Sprintf("User dibuat: %s (%s)", profile.Name, profile.Role),
		Metadata:     map[string]any{"user_id": profile.ID, "role": profile.Role},
		IPAddress:    c.IP(),
		UserAgent:    c.Get(fiber.HeaderUserAgent),
	})

	return helpers.JsonCreated(c, "User berhasil dibuat", profile)
}

// ChangePassword: admin mereset password user lain.
func (ctrl *UserAdminController) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid JSON body")
	}
	if len(req.NewPassword) < 6 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Password minimal 6 karakter")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}

	if err := ctrl.Service.ChangePassword(c.Context(), userID, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengganti password")
	}

	activityService.Log(ctrl.DB, activityService.Entry{
		ActivityType: constants.ActivityUserUpdated,
		Description:  "Password user direset: " + req.UserID,
		Metadata:     map[string]any{"user_id": req.UserID},
		IPAddress:    c.IP(),
		UserAgent:    c.Get(fiber.HeaderUserAgent),
	})

	return helpers.JsonUpdated(c, "Password updated successfully", nil)
}

// ExportCSV: export seluruh profil user (format kompatibel Excel, BOM UTF-8).
func (ctrl *UserAdminController) ExportCSV(c *fiber.Ctx) error {
	var profiles []model.UserProfileModel
	if err := ctrl.DB.Order("created_at DESC").Find(&profiles).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal export data user")
	}

	headers := []string{"ID", "Name", "Email", "University", "Division", "Role", "Status", "Start Date", "End Date", "Created At"}
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		status := "Inactive"
		if p.IsActive {
			status = "Active"
		}
		rows = append(rows, []string{
			p.ID.String(),
			p.Name,
			p.Email,
			p.University,
			p.Division,
			p.Role,
			status,
			strDeref(p.StartDate),
			strDeref(p.EndDate),
			p.CreatedAt.Format("02/01/2006"),
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="users_export_%s.csv"`, time.Now().Format("2006-01-02")))
	return c.SendString(csvx.Render(headers, rows))
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
