package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	activityModel "magangku_backend/internals/features/activity/activity_logs/model"
	"magangku_backend/internals/features/magang/presensi/model"
	userModel "magangku_backend/internals/features/users/user/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserProfileModel{},
		&model.PresensiRecordModel{},
		&activityModel.ActivityLogModel{},
	))
	return db
}

func seedProfile(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	profile := userModel.UserProfileModel{
		ID:         uuid.New(),
		Name:       "Rina Wati",
		Email:      "rina@mail.com",
		University: "UNDIP",
		Role:       "user",
		IsActive:   true,
	}
	require.NoError(t, db.Create(&profile).Error)
	return profile.ID
}

func fixedService(db *gorm.DB, hour int) *PresensiService {
	svc := NewPresensiService(db)
	svc.Now = func() time.Time {
		return time.Date(2026, 3, 2, hour, 30, 0, 0, time.Local)
	}
	return svc
}

func TestCurrentWindow(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{5, ""}, {6, WindowMasuk}, {8, WindowMasuk}, {9, ""},
		{12, ""}, {13, WindowPulang}, {17, WindowPulang}, {18, ""}, {23, ""},
	}
	for _, tc := range cases {
		got := CurrentWindow(time.Date(2026, 3, 2, tc.hour, 0, 0, 0, time.Local))
		assert.Equal(t, tc.want, got, "hour %d", tc.hour)
	}
}

func TestCheckInCreatesRecord(t *testing.T) {
	db := setupDB(t)
	userID := seedProfile(t, db)
	svc := fixedService(db, 7)

	record, err := svc.CheckIn(context.Background(), userID, "https://cdn/selfie.webp", "selfie.jpg")
	require.NoError(t, err)

	assert.Equal(t, "Rina Wati", record.Name)
	assert.Equal(t, "UNDIP", record.University)
	assert.Equal(t, "2026-03-02", record.PresensiDate)
	require.NotNil(t, record.PresensiTime)
	assert.Equal(t, "07:30:00", *record.PresensiTime)
	assert.Equal(t, "masuk", record.DerivedStatus())
}

func TestCheckInOutsideWindow(t *testing.T) {
	db := setupDB(t)
	userID := seedProfile(t, db)

	_, err := fixedService(db, 10).CheckIn(context.Background(), userID, "u", "f")
	require.ErrorIs(t, err, ErrBukanJamMasuk)
}

func TestCheckInTwiceSameDay(t *testing.T) {
	db := setupDB(t)
	userID := seedProfile(t, db)
	svc := fixedService(db, 7)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, userID, "u", "f")
	require.NoError(t, err)
	_, err = svc.CheckIn(ctx, userID, "u", "f")
	require.ErrorIs(t, err, ErrSudahPresensiMasuk)
}

func TestCheckOutPatchesToday(t *testing.T) {
	db := setupDB(t)
	userID := seedProfile(t, db)
	ctx := context.Background()

	_, err := fixedService(db, 7).CheckIn(ctx, userID, "u", "f")
	require.NoError(t, err)

	record, err := fixedService(db, 17).CheckOut(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, record.PresensiOut)
	assert.Equal(t, "17:30:00", *record.PresensiOut)
	assert.Equal(t, "lengkap", record.DerivedStatus())
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	db := setupDB(t)
	userID := seedProfile(t, db)

	_, err := fixedService(db, 14).CheckOut(context.Background(), userID)
	require.ErrorIs(t, err, ErrBelumPresensiMasuk)
}

func TestCheckOutFallsBackToOpenRecord(t *testing.T) {
	db := setupDB(t)
	userID := seedProfile(t, db)
	jam := "07:15:00"
	old := model.PresensiRecordModel{
		UserID:       userID,
		Name:         "Rina Wati",
		PresensiDate: "2026-02-27",
		PresensiTime: &jam,
	}
	require.NoError(t, db.Create(&old).Error)

	// Tidak ada baris hari ini; baris terbuka terakhir yang di-patch.
	record, err := fixedService(db, 15).CheckOut(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-27", record.PresensiDate)
	require.NotNil(t, record.PresensiOut)
	assert.Equal(t, "15:30:00", *record.PresensiOut)
}

func TestCheckOutOutsideWindow(t *testing.T) {
	db := setupDB(t)
	userID := seedProfile(t, db)

	_, err := fixedService(db, 20).CheckOut(context.Background(), userID)
	require.ErrorIs(t, err, ErrBukanJamPulang)
}
