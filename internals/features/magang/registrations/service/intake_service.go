package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	activityService "magangku_backend/internals/features/activity/activity_logs/service"
	divisionModel "magangku_backend/internals/features/magang/divisions/model"
	"magangku_backend/internals/features/magang/registrations/dto"
	"magangku_backend/internals/features/magang/registrations/model"
	"magangku_backend/internals/helpers/oss"
)

const (
	kodePrefix  = "MGG"
	maxFileSize = 10 * 1024 * 1024 // 10 MB per dokumen
	documentDir = "magang-documents"
)

// MIME yang diterima untuk dokumen pendaftaran.
var allowedDocumentMIME = map[string]struct{}{
	"image/jpeg":         {},
	"image/png":          {},
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

var (
	ErrDivisionNotFound = errors.New("Divisi tidak ditemukan")
	ErrSlotPenuh        = errors.New("Maaf, slot untuk divisi ini sudah penuh. Silakan pilih divisi lain.")
)

type IntakeService struct {
	DB   *gorm.DB
	Blob oss.BlobService
}

func NewIntakeService(db *gorm.DB, blob oss.BlobService) *IntakeService {
	return &IntakeService{DB: db, Blob: blob}
}

// GenerateKode: MGG + YYYYMMDD + 5 digit acak zero-padded.
func GenerateKode(now time.Time) string {
	return fmt.Sprintf("%s%s%05d", kodePrefix, now.Format("20060102"), rand.Intn(100000))
}

// Submit menjalankan intake pendaftaran: klaim slot divisi, simpan baris
// pendaftaran, unggah dokumen satu per satu, queue email konfirmasi.
//
// Klaim slot dilakukan sebagai satu conditional UPDATE atomik (cek affected
// rows), jadi dua intake bersamaan tidak bisa menjual slot yang sama.
// Kegagalan per-file hanya dicatat dan file dilewati; intake tetap sukses.
func (s *IntakeService) Submit(ctx context.Context, req dto.IntakeRequest, files []*multipart.FileHeader, ip, userAgent string) (*dto.IntakeResult, error) {
	res := s.DB.WithContext(ctx).Exec(
		`UPDATE magang_divisions
		 SET available_slots = COALESCE(available_slots, total_slots) - 1, updated_at = ?
		 WHERE id = ? AND COALESCE(available_slots, total_slots) > 0`,
		time.Now(), req.DivisionID,
	)
	if res.Error != nil {
		return nil, fmt.Errorf("klaim slot divisi: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var division divisionModel.DivisionModel
		if err := s.DB.WithContext(ctx).First(&division, req.DivisionID).Error; err != nil {
			return nil, ErrDivisionNotFound
		}
		return nil, ErrSlotPenuh
	}

	kode := GenerateKode(time.Now())
	divisionID := req.DivisionID
	registration := model.RegistrationModel{
		NamaLengkap:     req.NamaLengkap,
		Email:           req.Email,
		Telepon:         req.Telepon,
		Institusi:       req.Institusi,
		Jurusan:         req.Jurusan,
		Semester:        req.Semester,
		DurasiMagang:    req.DurasiMagang,
		TanggalMulai:    req.TanggalMulai,
		TanggalSelesai:  req.TanggalSelesai,
		Deskripsi:       req.Deskripsi,
		KodePendaftaran: kode,
		DivisionID:      &divisionID,
		Status:          model.StatusPending,
	}
	if err := s.DB.WithContext(ctx).Create(&registration).Error; err != nil {
		return nil, fmt.Errorf("simpan pendaftaran: %w", err)
	}

	uploaded := 0
	for i, fh := range files {
		if fh == nil || fh.Size == 0 {
			continue
		}
		override := ""
		if i < len(req.DocumentTypes) {
			override = req.DocumentTypes[i]
		}
		if err := s.storeDocument(ctx, registration.ID, kode, fh, override); err != nil {
			log.Printf("[WARNING] Dokumen %q dilewati: %v", fh.Filename, err)
			continue
		}
		uploaded++
	}

	// Queue email konfirmasi (dikirim asinkron oleh admin panel / endpoint email).
	notif := model.NotificationModel{
		RegistrationID:   registration.ID,
		NotificationType: "confirmation",
		EmailTo:          req.Email,
		Subject:          "Konfirmasi Pendaftaran Magang - DPMPTSP Jawa Tengah",
		Status:           "pending",
	}
	if err := s.DB.WithContext(ctx).Create(&notif).Error; err != nil {
		log.Printf("[WARNING] Gagal queue notifikasi konfirmasi: %v", err)
	}

	activityService.Log(s.DB, activityService.Entry{
		UserEmail:    activityService.StrPtr(req.Email),
		UserName:     activityService.StrPtr(req.NamaLengkap),
		ActivityType: constants.ActivityRegistrationSubmitted,
		Description:  fmt.Sprintf("Pendaftaran baru: %s (%s)", req.NamaLengkap, kode),
		Metadata: map[string]any{
			"registration_id":  registration.ID,
			"kode_pendaftaran": kode,
			"division_id":      req.DivisionID,
		},
		IPAddress: ip,
		UserAgent: userAgent,
	})

	return &dto.IntakeResult{
		ID:              registration.ID,
		KodePendaftaran: kode,
		NamaLengkap:     registration.NamaLengkap,
		Email:           registration.Email,
		UploadedFiles:   uploaded,
	}, nil
}

func (s *IntakeService) storeDocument(ctx context.Context, registrationID uint, kode string, fh *multipart.FileHeader, typeOverride string) error {
	if fh.Size > maxFileSize {
		return fmt.Errorf("ukuran %d melebihi batas 10MB", fh.Size)
	}
	contentType := fh.Header.Get("Content-Type")
	if _, ok := allowedDocumentMIME[contentType]; !ok {
		return fmt.Errorf("tipe file %q tidak diizinkan", contentType)
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	key := fmt.Sprintf("%s/%s_%d_%s%s", documentDir, kode, time.Now().UnixMilli(), token, ext)

	publicURL, err := s.Blob.UploadFile(ctx, key, fh)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	doc := model.DocumentModel{
		RegistrationID: registrationID,
		DocumentType:   constants.DetectDocumentType(fh.Filename, typeOverride),
		FileName:       fh.Filename,
		FilePath:       publicURL,
		FileSize:       fh.Size,
		FileType:       contentType,
	}
	if err := s.DB.WithContext(ctx).Create(&doc).Error; err != nil {
		return fmt.Errorf("simpan metadata dokumen: %w", err)
	}
	return nil
}
