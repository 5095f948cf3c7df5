package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"magangku_backend/internals/features/users/user/dto"
	"magangku_backend/internals/features/users/user/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserModel{}, &model.UserProfileModel{}))
	return db
}

func validCreate() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Email:      "peserta@mail.com",
		Password:   "rahasia123",
		Name:       "Peserta Magang",
		University: "UNDIP",
		Division:   "IT",
	}
}

func TestProvisionCreatesUserAndProfile(t *testing.T) {
	db := setupDB(t)
	svc := NewUserService(db)

	profile, err := svc.Provision(context.Background(), validCreate())
	require.NoError(t, err)
	assert.Equal(t, "user", profile.Role)
	assert.True(t, profile.IsActive)

	var user model.UserModel
	require.NoError(t, db.First(&user, "id = ?", profile.ID).Error)
	assert.Equal(t, "peserta@mail.com", user.Email)
	// Password tersimpan sebagai hash bcrypt, bukan plaintext.
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("rahasia123")))
}

func TestProvisionAdminRole(t *testing.T) {
	db := setupDB(t)
	svc := NewUserService(db)

	req := validCreate()
	req.Role = "admin"
	profile, err := svc.Provision(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "admin", profile.Role)
}

func TestProvisionDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	_, err := svc.Provision(ctx, validCreate())
	require.NoError(t, err)

	_, err = svc.Provision(ctx, validCreate())
	require.ErrorIs(t, err, ErrEmailTaken)

	var users int64
	db.Model(&model.UserModel{}).Count(&users)
	assert.EqualValues(t, 1, users)
}

func TestChangePassword(t *testing.T) {
	db := setupDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	profile, err := svc.Provision(ctx, validCreate())
	require.NoError(t, err)

	require.NoError(t, svc.ChangePassword(ctx, profile.ID, "barubanget"))

	var user model.UserModel
	require.NoError(t, db.First(&user, "id = ?", profile.ID).Error)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("barubanget")))
}

func TestChangePasswordUnknownUser(t *testing.T) {
	db := setupDB(t)
	svc := NewUserService(db)

	err := svc.ChangePassword(context.Background(), uuid.New(), "barubanget")
	require.ErrorIs(t, err, ErrUserNotFound)
}
