package controller

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"magangku_backend/internals/features/activity/activity_logs/model"
	helper "magangku_backend/internals/helpers"
)

type ActivityLogController struct {
	DB *gorm.DB
}

func NewActivityLogController(db *gorm.DB) *ActivityLogController {
	return &ActivityLogController{DB: db}
}

// GetAll: log terbaru, paginated (?limit=&offset=).
func (ctrl *ActivityLogController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ActivityLogModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil activity logs")
	}

	var logs []model.ActivityLogModel
	if err := ctrl.DB.
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil activity logs")
	}

	return helper.JsonList(c, "", logs, helper.BuildPagination(total, paging))
}

type createLogRequest struct {
	UserID       *string        `json:"user_id"`
	UserEmail    *string        `json:"user_email"`
	UserName     *string        `json:"user_name"`
	ActivityType string         `json:"activity_type"`
	Description  string         `json:"description"`
	Metadata     map[string]any `json:"metadata"`
}

// Create: insert satu activity log; IP dan user-agent diambil dari request.
func (ctrl *ActivityLogController) Create(c *fiber.Ctx) error {
	var req createLogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.ActivityType == "" || req.Description == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "activity_type dan description wajib diisi")
	}

	meta := datatypes.JSON([]byte("{}"))
	if req.Metadata != nil {
		if b, err := json.Marshal(req.Metadata); err == nil {
			meta = datatypes.JSON(b)
		}
	}

	row := model.ActivityLogModel{
		UserID:       req.UserID,
		UserEmail:    req.UserEmail,
		UserName:     req.UserName,
		ActivityType: req.ActivityType,
		Description:  req.Description,
		Metadata:     meta,
		IPAddress:    c.IP(),
		UserAgent:    c.Get(fiber.HeaderUserAgent, "unknown"),
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan activity log")
	}

	return helper.JsonCreated(c, "Activity log tersimpan", row)
}
