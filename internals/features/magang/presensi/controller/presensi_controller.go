package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/magang/presensi/model"
	"magangku_backend/internals/features/magang/presensi/service"
	helper "magangku_backend/internals/helpers"
	"magangku_backend/internals/helpers/csvx"
	"magangku_backend/internals/helpers/oss"
)

const selfieDir = "presensi-selfies"

var allowedSelfieMIME = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

type PresensiController struct {
	DB      *gorm.DB
	Service *service.PresensiService
	Blob    oss.BlobService
}

func NewPresensiController(db *gorm.DB, svc *service.PresensiService, blob oss.BlobService) *PresensiController {
	return &PresensiController{DB: db, Service: svc, Blob: blob}
}

// CheckIn: presensi masuk dengan selfie wajib (field "selfie", fallback "image").
func (ctrl *PresensiController) CheckIn(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	fh, err := c.FormFile("selfie")
	if err != nil {
		fh, err = c.FormFile("image")
	}
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Foto selfie wajib disertakan")
	}
	if _, ok := allowedSelfieMIME[fh.Header.Get("Content-Type")]; !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Foto selfie harus PNG atau JPEG")
	}

	key := fmt.Sprintf("%s/%s_%s_%d.webp", selfieDir, userID, time.Now().Format("20060102"), time.Now().UnixMilli())
	imageURL, err := ctrl.Blob.UploadImageWebP(c.Context(), key, fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengunggah foto selfie")
	}

	record, err := ctrl.Service.CheckIn(c.Context(), userID, imageURL, fh.Filename)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBukanJamMasuk),
			errors.Is(err, service.ErrSudahPresensiMasuk):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan presensi masuk")
		}
	}
	return helper.JsonCreated(c, "Presensi masuk tercatat", record)
}

// CheckOut: presensi pulang, tanpa selfie.
func (ctrl *PresensiController) CheckOut(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	record, err := ctrl.Service.CheckOut(c.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBukanJamPulang),
			errors.Is(err, service.ErrBelumPresensiMasuk):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan presensi pulang")
		}
	}
	return helper.JsonUpdated(c, "Presensi pulang tercatat", record)
}

// GetMine: riwayat presensi milik pemanggil (feed kalender).
func (ctrl *PresensiController) GetMine(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	records, err := ctrl.Service.ListForUser(c.Context(), userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat presensi")
	}
	return helper.JsonOK(c, "", records)
}

// ExportCSV: export presensi untuk admin. Filter ?start_date= ?end_date= ?user_id=.
func (ctrl *PresensiController) ExportCSV(c *fiber.Ctx) error {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	userID := c.Query("user_id")

	q := ctrl.DB.Model(&model.PresensiRecordModel{}).Order("presensi_date DESC")
	if startDate != "" {
		q = q.Where("presensi_date >= ?", startDate)
	}
	if endDate != "" {
		q = q.Where("presensi_date <= ?", endDate)
	}
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	var records []model.PresensiRecordModel
	if err := q.Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal export data presensi")
	}

	headers := []string{"Date", "User Name", "University", "Check In", "Check Out", "Status"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.PresensiDate,
			r.Name,
			r.University,
			strDeref(r.PresensiTime),
			strDeref(r.PresensiOut),
			r.DerivedStatus(),
		})
	}

	dateRange := time.Now().Format("2006-01-02")
	if startDate != "" && endDate != "" {
		dateRange = startDate + "_to_" + endDate
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="attendance_report_%s.csv"`, dateRange))
	return c.SendString(csvx.Render(headers, rows))
}

// callerID membaca user id yang diset middleware auth.
func callerID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	return uuid.Parse(raw)
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
