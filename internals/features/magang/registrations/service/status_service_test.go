package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"magangku_backend/internals/features/magang/registrations/model"
	"magangku_backend/internals/helpers/mailerx"
)

func seedRegistration(t *testing.T, db *gorm.DB, status string) model.RegistrationModel {
	t.Helper()
	reg := model.RegistrationModel{
		NamaLengkap:     "Siti Aminah",
		Email:           "siti@mail.com",
		Telepon:         "0812000111",
		Institusi:       "UNNES",
		KodePendaftaran: "MGG2026011512345",
		Status:          status,
	}
	require.NoError(t, db.Create(&reg).Error)
	return reg
}

func TestTransitionApprove(t *testing.T) {
	db := setupDB(t)
	reg := seedRegistration(t, db, model.StatusPending)
	mailer := &mailerx.MockMailer{}
	svc := NewStatusService(db, mailer)

	result, err := svc.Transition(context.Background(), reg.ID, TransitionInput{
		Status:   model.StatusApproved,
		Password: "rahasia123",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, result.Status)

	var fresh model.RegistrationModel
	require.NoError(t, db.First(&fresh, reg.ID).Error)
	assert.Equal(t, model.StatusApproved, fresh.Status)

	var history model.StatusHistoryModel
	require.NoError(t, db.Where("registration_id = ?", reg.ID).First(&history).Error)
	assert.Equal(t, model.StatusPending, history.OldStatus)
	assert.Equal(t, model.StatusApproved, history.NewStatus)
	assert.Equal(t, "Pendaftaran disetujui", history.Notes)
	assert.Equal(t, "Admin", history.ChangedBy)

	require.Len(t, mailer.Sent, 1)
	assert.Equal(t, "approval", mailer.Sent[0].Kind)
	assert.Equal(t, "siti@mail.com", mailer.Sent[0].To)
	assert.Equal(t, "rahasia123", mailer.Sent[0].Password)
}

func TestTransitionReject(t *testing.T) {
	db := setupDB(t)
	reg := seedRegistration(t, db, model.StatusPending)
	mailer := &mailerx.MockMailer{}
	svc := NewStatusService(db, mailer)

	result, err := svc.Transition(context.Background(), reg.ID, TransitionInput{
		Status:          model.StatusRejected,
		RejectionReason: "Dokumen tidak lengkap",
		ChangedBy:       "Kepala Bidang",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dokumen tidak lengkap", result.RejectionReason)

	var history model.StatusHistoryModel
	require.NoError(t, db.Where("registration_id = ?", reg.ID).First(&history).Error)
	assert.Equal(t, "Dokumen tidak lengkap", history.Notes)
	assert.Equal(t, "Kepala Bidang", history.ChangedBy)

	require.Len(t, mailer.Sent, 1)
	assert.Equal(t, "rejection", mailer.Sent[0].Kind)
	assert.Equal(t, "Dokumen tidak lengkap", mailer.Sent[0].Reason)
}

func TestTransitionValidation(t *testing.T) {
	db := setupDB(t)
	reg := seedRegistration(t, db, model.StatusPending)
	svc := NewStatusService(db, &mailerx.MockMailer{})
	ctx := context.Background()

	_, err := svc.Transition(ctx, reg.ID, TransitionInput{Status: "ditunda"})
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.Transition(ctx, reg.ID, TransitionInput{Status: model.StatusRejected})
	require.ErrorIs(t, err, ErrReasonRequired)

	_, err = svc.Transition(ctx, reg.ID, TransitionInput{Status: model.StatusApproved})
	require.ErrorIs(t, err, ErrPasswordRequired)

	// Tidak ada side effect dari request yang gagal validasi.
	var historyCount int64
	db.Model(&model.StatusHistoryModel{}).Count(&historyCount)
	assert.Zero(t, historyCount)
}

func TestTransitionNotFound(t *testing.T) {
	db := setupDB(t)
	svc := NewStatusService(db, &mailerx.MockMailer{})

	_, err := svc.Transition(context.Background(), 12345, TransitionInput{
		Status:   model.StatusApproved,
		Password: "rahasia123",
	})
	require.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestTransitionAlreadyFinal(t *testing.T) {
	db := setupDB(t)
	reg := seedRegistration(t, db, model.StatusPending)
	mailer := &mailerx.MockMailer{}
	svc := NewStatusService(db, mailer)
	ctx := context.Background()

	_, err := svc.Transition(ctx, reg.ID, TransitionInput{Status: model.StatusApproved, Password: "pw123456"})
	require.NoError(t, err)

	// Transisi kedua ditolak: jangan kirim email/password dua kali.
	_, err = svc.Transition(ctx, reg.ID, TransitionInput{Status: model.StatusRejected, RejectionReason: "salah klik"})
	require.ErrorIs(t, err, ErrAlreadyFinal)
	assert.Len(t, mailer.Sent, 1)
}

func TestTransitionMailFailureDoesNotRollback(t *testing.T) {
	db := setupDB(t)
	reg := seedRegistration(t, db, model.StatusPending)
	mailer := &mailerx.MockMailer{FailNext: true}
	svc := NewStatusService(db, mailer)

	_, err := svc.Transition(context.Background(), reg.ID, TransitionInput{
		Status:   model.StatusApproved,
		Password: "pw123456",
	})
	require.NoError(t, err)

	var fresh model.RegistrationModel
	require.NoError(t, db.First(&fresh, reg.ID).Error)
	assert.Equal(t, model.StatusApproved, fresh.Status)
}
