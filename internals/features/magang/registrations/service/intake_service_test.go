package service

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	activityModel "magangku_backend/internals/features/activity/activity_logs/model"
	divisionModel "magangku_backend/internals/features/magang/divisions/model"
	"magangku_backend/internals/features/magang/registrations/dto"
	"magangku_backend/internals/features/magang/registrations/model"
	"magangku_backend/internals/helpers/oss"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&divisionModel.DivisionModel{},
		&model.RegistrationModel{},
		&model.DocumentModel{},
		&model.StatusHistoryModel{},
		&model.NotificationModel{},
		&activityModel.ActivityLogModel{},
	))
	return db
}

func seedDivision(t *testing.T, db *gorm.DB, total, available int) divisionModel.DivisionModel {
	t.Helper()
	division := divisionModel.DivisionModel{
		NamaDivisi:     "Pengembangan Sistem",
		TotalSlots:     total,
		AvailableSlots: &available,
		IsActive:       true,
	}
	require.NoError(t, db.Create(&division).Error)
	return division
}

func validIntake(divisionID uint) dto.IntakeRequest {
	return dto.IntakeRequest{
		NamaLengkap:  "Budi Santoso",
		Email:        "budi@mail.com",
		Telepon:      "08123456789",
		Institusi:    "Universitas Diponegoro",
		Jurusan:      "Informatika",
		Semester:     "6",
		DurasiMagang: "3 bulan",
		DivisionID:   divisionID,
		TanggalMulai: "2026-02-01",
	}
}

func docFile(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestSubmitCreatesPendingAndClaimsSlot(t *testing.T) {
	db := setupDB(t)
	division := seedDivision(t, db, 3, 3)
	blob := &oss.MockBlobService{}
	svc := NewIntakeService(db, blob)

	files := []*multipart.FileHeader{
		docFile("surat_rekomendasi.pdf", "application/pdf", 1024),
		docFile("cv_budi.pdf", "application/pdf", 2048),
	}
	result, err := svc.Submit(context.Background(), validIntake(division.ID), files, "127.0.0.1", "test")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^MGG\d{8}\d{5}$`), result.KodePendaftaran)
	assert.Equal(t, 2, result.UploadedFiles)
	assert.Len(t, blob.Uploaded, 2)

	var reg model.RegistrationModel
	require.NoError(t, db.First(&reg, result.ID).Error)
	assert.Equal(t, model.StatusPending, reg.Status)
	assert.Equal(t, "Budi Santoso", reg.NamaLengkap)

	var fresh divisionModel.DivisionModel
	require.NoError(t, db.First(&fresh, division.ID).Error)
	require.NotNil(t, fresh.AvailableSlots)
	assert.Equal(t, 2, *fresh.AvailableSlots)

	var docs int64
	db.Model(&model.DocumentModel{}).Where("registration_id = ?", reg.ID).Count(&docs)
	assert.EqualValues(t, 2, docs)

	var notif model.NotificationModel
	require.NoError(t, db.Where("registration_id = ?", reg.ID).First(&notif).Error)
	assert.Equal(t, "confirmation", notif.NotificationType)
}

func TestSubmitSlotPenuh(t *testing.T) {
	db := setupDB(t)
	division := seedDivision(t, db, 2, 0)
	svc := NewIntakeService(db, &oss.MockBlobService{})

	_, err := svc.Submit(context.Background(), validIntake(division.ID), nil, "", "")
	require.ErrorIs(t, err, ErrSlotPenuh)

	var count int64
	db.Model(&model.RegistrationModel{}).Count(&count)
	assert.Zero(t, count)
}

func TestSubmitDivisionNotFound(t *testing.T) {
	db := setupDB(t)
	svc := NewIntakeService(db, &oss.MockBlobService{})

	_, err := svc.Submit(context.Background(), validIntake(999), nil, "", "")
	require.ErrorIs(t, err, ErrDivisionNotFound)
}

func TestSubmitNullAvailableFallsBackToTotal(t *testing.T) {
	db := setupDB(t)
	division := divisionModel.DivisionModel{NamaDivisi: "Humas", TotalSlots: 1, IsActive: true}
	require.NoError(t, db.Create(&division).Error)
	svc := NewIntakeService(db, &oss.MockBlobService{})

	_, err := svc.Submit(context.Background(), validIntake(division.ID), nil, "", "")
	require.NoError(t, err)

	// Slot kedua harus ditolak: COALESCE(total) - 1 = 0.
	_, err = svc.Submit(context.Background(), validIntake(division.ID), nil, "", "")
	require.ErrorIs(t, err, ErrSlotPenuh)
}

func TestSubmitSkipsOversizedAndWrongTypeFiles(t *testing.T) {
	db := setupDB(t)
	division := seedDivision(t, db, 2, 2)
	blob := &oss.MockBlobService{}
	svc := NewIntakeService(db, blob)

	files := []*multipart.FileHeader{
		docFile("besar.pdf", "application/pdf", 11*1024*1024),
		docFile("script.exe", "application/octet-stream", 100),
		docFile("proposal.pdf", "application/pdf", 100),
	}
	result, err := svc.Submit(context.Background(), validIntake(division.ID), files, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, result.UploadedFiles)
	assert.Len(t, blob.Uploaded, 1)
}

func TestIntakeRequestValidate(t *testing.T) {
	req := validIntake(1)
	require.NoError(t, req.Validate())

	missing := validIntake(1)
	missing.Telepon = "  "
	require.ErrorIs(t, missing.Validate(), dto.ErrMissingFields)

	badEmail := validIntake(1)
	badEmail.Email = "bukan-email"
	require.ErrorIs(t, badEmail.Validate(), dto.ErrInvalidEmail)
}

func TestGenerateKodeFormat(t *testing.T) {
	ts := time.Date(2026, 1, 15, 9, 0, 0, 0, time.Local)
	for i := 0; i < 50; i++ {
		kode := GenerateKode(ts)
		assert.Regexp(t, regexp.MustCompile(`^MGG20260115\d{5}$`), kode)
	}
}

func TestSubmitHonorsDocumentTypeOverride(t *testing.T) {
	db := setupDB(t)
	division := seedDivision(t, db, 2, 2)
	svc := NewIntakeService(db, &oss.MockBlobService{})

	req := validIntake(division.ID)
	req.DocumentTypes = []string{"proposal", "jenis-aneh"}
	files := []*multipart.FileHeader{
		docFile("scan001.pdf", "application/pdf", 100), // override menang
		docFile("cv_budi.pdf", "application/pdf", 100), // override tak dikenal: heuristik
	}
	result, err := svc.Submit(context.Background(), req, files, "", "")
	require.NoError(t, err)

	var docs []model.DocumentModel
	require.NoError(t, db.Where("registration_id = ?", result.ID).Order("id ASC").Find(&docs).Error)
	require.Len(t, docs, 2)
	assert.Equal(t, "proposal", docs[0].DocumentType)
	assert.Equal(t, "cv_portfolio", docs[1].DocumentType)
}
