package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	activityService "magangku_backend/internals/features/activity/activity_logs/service"
	"magangku_backend/internals/features/magang/registrations/dto"
	"magangku_backend/internals/features/magang/registrations/model"
	"magangku_backend/internals/helpers/mailerx"
)

var (
	ErrInvalidStatus        = errors.New("Status tidak valid")
	ErrReasonRequired       = errors.New("Alasan penolakan harus diisi")
	ErrPasswordRequired     = errors.New("Password akun baru wajib disertakan saat persetujuan")
	ErrRegistrationNotFound = errors.New("Pendaftaran tidak ditemukan")
	ErrAlreadyFinal         = errors.New("Status pendaftaran sudah final")
)

const approvedNote = "Pendaftaran disetujui"

type StatusService struct {
	DB     *gorm.DB
	Mailer mailerx.Mailer
}

func NewStatusService(db *gorm.DB, mailer mailerx.Mailer) *StatusService {
	return &StatusService{DB: db, Mailer: mailer}
}

type TransitionInput struct {
	Status          string
	RejectionReason string
	ChangedBy       string
	Password        string
	IPAddress       string
	UserAgent       string
}

// Transition memindahkan pendaftaran pending ke approved/rejected.
//
// Validasi dilakukan sebelum write apa pun. Pendaftaran yang sudah final
// ditolak (ErrAlreadyFinal) supaya email/log tidak terkirim dobel.
// Kegagalan kirim email dicatat tapi tidak membatalkan perubahan status —
// statusnya sudah durable di DB.
func (s *StatusService) Transition(ctx context.Context, id uint, in TransitionInput) (*dto.TransitionResult, error) {
	if in.Status != model.StatusApproved && in.Status != model.StatusRejected {
		return nil, ErrInvalidStatus
	}
	if in.Status == model.StatusRejected && strings.TrimSpace(in.RejectionReason) == "" {
		return nil, ErrReasonRequired
	}
	if in.Status == model.StatusApproved && strings.TrimSpace(in.Password) == "" {
		return nil, ErrPasswordRequired
	}

	var registration model.RegistrationModel
	if err := s.DB.WithContext(ctx).First(&registration, id).Error; err != nil {
		return nil, ErrRegistrationNotFound
	}
	if registration.Status != model.StatusPending {
		return nil, ErrAlreadyFinal
	}

	oldStatus := registration.Status
	if err := s.DB.WithContext(ctx).Model(&registration).
		Updates(map[string]any{"status": in.Status, "updated_at": time.Now()}).Error; err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	notes := approvedNote
	if in.Status == model.StatusRejected {
		notes = in.RejectionReason
	}
	changedBy := strings.TrimSpace(in.ChangedBy)
	if changedBy == "" {
		changedBy = "Admin"
	}
	history := model.StatusHistoryModel{
		RegistrationID: registration.ID,
		OldStatus:      oldStatus,
		NewStatus:      in.Status,
		Notes:          notes,
		ChangedBy:      changedBy,
	}
	if err := s.DB.WithContext(ctx).Create(&history).Error; err != nil {
		log.Printf("[WARNING] Gagal menyimpan status history (id=%d): %v", id, err)
	}

	// Kirim tepat satu email sesuai hasil.
	var mailErr error
	if in.Status == model.StatusApproved {
		mailErr = s.Mailer.SendApproval(registration.Email, registration.NamaLengkap, registration.KodePendaftaran, in.Password)
	} else {
		mailErr = s.Mailer.SendRejection(registration.Email, registration.NamaLengkap, registration.KodePendaftaran, in.RejectionReason)
	}
	if mailErr != nil {
		log.Printf("[WARNING] Gagal mengirim email %s ke %s: %v", in.Status, registration.Email, mailErr)
	}

	activityType := constants.ActivityRegistrationApproved
	description := fmt.Sprintf("Pendaftaran disetujui: %s (%s)", registration.NamaLengkap, registration.KodePendaftaran)
	if in.Status == model.StatusRejected {
		activityType = constants.ActivityRegistrationRejected
		description = fmt.Sprintf("Pendaftaran ditolak: %s (%s)", registration.NamaLengkap, registration.KodePendaftaran)
	}
	meta := map[string]any{
		"registration_id":  registration.ID,
		"kode_pendaftaran": registration.KodePendaftaran,
		"status":           in.Status,
		"changed_by":       changedBy,
	}
	if in.Status == model.StatusRejected {
		meta["rejection_reason"] = in.RejectionReason
	}
	activityService.Log(s.DB, activityService.Entry{
		UserEmail:    activityService.StrPtr(registration.Email),
		UserName:     activityService.StrPtr(registration.NamaLengkap),
		ActivityType: activityType,
		Description:  description,
		Metadata:     meta,
		IPAddress:    in.IPAddress,
		UserAgent:    in.UserAgent,
	})

	result := &dto.TransitionResult{ID: registration.ID, Status: in.Status}
	if in.Status == model.StatusRejected {
		result.RejectionReason = in.RejectionReason
	}
	return result, nil
}
