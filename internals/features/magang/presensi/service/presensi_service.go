package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	activityService "magangku_backend/internals/features/activity/activity_logs/service"
	"magangku_backend/internals/features/magang/presensi/model"
	userModel "magangku_backend/internals/features/users/user/model"
)

// Jendela presensi (jam dinding lokal server).
const (
	WindowMasuk  = "masuk"  // 06:00–09:00
	WindowPulang = "pulang" // 13:00–18:00
)

var (
	ErrBukanJamMasuk      = errors.New("Presensi masuk hanya bisa dilakukan jam 06:00–09:00")
	ErrBukanJamPulang     = errors.New("Presensi pulang hanya bisa dilakukan jam 13:00–18:00")
	ErrSudahPresensiMasuk = errors.New("Anda sudah presensi masuk hari ini")
	ErrBelumPresensiMasuk = errors.New("Anda harus presensi masuk terlebih dahulu")
)

type PresensiService struct {
	DB *gorm.DB
	// Now bisa dioverride di test untuk mengunci jam dinding.
	Now func() time.Time
}

func NewPresensiService(db *gorm.DB) *PresensiService {
	return &PresensiService{DB: db, Now: time.Now}
}

// CurrentWindow mengembalikan jendela presensi yang sedang terbuka, atau "".
func CurrentWindow(t time.Time) string {
	h := t.Hour()
	switch {
	case h >= 6 && h < 9:
		return WindowMasuk
	case h >= 13 && h < 18:
		return WindowPulang
	default:
		return ""
	}
}

// CheckIn membuat baris presensi hari ini dengan snapshot profil + selfie.
// Selfie sudah diupload oleh controller; service hanya menerima URL-nya.
func (s *PresensiService) CheckIn(ctx context.Context, userID uuid.UUID, imageURL, imageFilename string) (*model.PresensiRecordModel, error) {
	now := s.Now()
	if CurrentWindow(now) != WindowMasuk {
		return nil, ErrBukanJamMasuk
	}

	today := now.Format("2006-01-02")
	var existing model.PresensiRecordModel
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND presensi_date = ?", userID, today).
		First(&existing).Error
	if err == nil {
		return nil, ErrSudahPresensiMasuk
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("cek presensi hari ini: %w", err)
	}

	// Snapshot nama & kampus supaya export tetap benar walau profil berubah.
	var profile userModel.UserProfileModel
	if err := s.DB.WithContext(ctx).First(&profile, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("ambil profil: %w", err)
	}

	jam := now.Format("15:04:05")
	record := model.PresensiRecordModel{
		UserID:        userID,
		Name:          profile.Name,
		University:    profile.University,
		PresensiDate:  today,
		PresensiTime:  &jam,
		ImageURL:      &imageURL,
		ImageFilename: &imageFilename,
	}
	if err := s.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("simpan presensi masuk: %w", err)
	}

	activityService.Log(s.DB, activityService.Entry{
		UserName:     activityService.StrPtr(profile.Name),
		UserEmail:    activityService.StrPtr(profile.Email),
		ActivityType: constants.ActivityAttendanceMarked,
		Description:  fmt.Sprintf("Presensi masuk: %s (%s %s)", profile.Name, today, jam),
		Metadata:     map[string]any{"presensi_id": record.ID, "presensi_date": today},
	})
	return &record, nil
}

// CheckOut mem-patch presensi_out pada baris hari ini; kalau tidak ada,
// fallback ke baris terbuka terakhir (lupa presensi pulang kemarin).
func (s *PresensiService) CheckOut(ctx context.Context, userID uuid.UUID) (*model.PresensiRecordModel, error) {
	now := s.Now()
	if CurrentWindow(now) != WindowPulang {
		return nil, ErrBukanJamPulang
	}

	today := now.Format("2006-01-02")
	var record model.PresensiRecordModel
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND presensi_date = ?", userID, today).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.DB.WithContext(ctx).
			Where("user_id = ? AND presensi_out IS NULL", userID).
			Order("presensi_date DESC").
			First(&record).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBelumPresensiMasuk
	}
	if err != nil {
		return nil, fmt.Errorf("cari presensi terbuka: %w", err)
	}
	if record.PresensiOut != nil && *record.PresensiOut != "" {
		return nil, ErrBelumPresensiMasuk
	}

	jam := now.Format("15:04:05")
	if err := s.DB.WithContext(ctx).Model(&record).
		Update("presensi_out", jam).Error; err != nil {
		return nil, fmt.Errorf("simpan presensi pulang: %w", err)
	}
	record.PresensiOut = &jam

	activityService.Log(s.DB, activityService.Entry{
		UserName:     activityService.StrPtr(record.Name),
		ActivityType: constants.ActivityAttendanceMarked,
		Description:  fmt.Sprintf("Presensi pulang: %s (%s %s)", record.Name, record.PresensiDate, jam),
		Metadata:     map[string]any{"presensi_id": record.ID, "presensi_date": record.PresensiDate},
	})
	return &record, nil
}

// ListForUser: riwayat presensi milik user (feed kalender), terbaru dulu.
func (s *PresensiService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.PresensiRecordModel, error) {
	var records []model.PresensiRecordModel
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("presensi_date DESC").
		Find(&records).Error
	return records, err
}
