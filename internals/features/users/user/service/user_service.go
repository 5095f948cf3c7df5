package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	"magangku_backend/internals/features/users/user/dto"
	"magangku_backend/internals/features/users/user/model"
	helpers "magangku_backend/internals/helpers"
)

var (
	ErrEmailTaken   = errors.New("Email sudah terdaftar")
	ErrUserNotFound = errors.New("User tidak ditemukan")
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Provision membuat akun login + profil. Kalau insert profil gagal, baris
// users dihapus lagi supaya tidak ada akun yatim tanpa profil.
func (s *UserService) Provision(ctx context.Context, req dto.CreateUserRequest) (*model.UserProfileModel, error) {
	role := constants.RoleUser
	if req.Role == constants.RoleAdmin {
		role = constants.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := model.UserModel{
		Email:    req.Email,
		Password: string(hash),
		IsActive: true,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if helpers.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("simpan user: %w", err)
	}

	profile := model.UserProfileModel{
		ID:         user.ID,
		Name:       req.Name,
		Email:      req.Email,
		University: req.University,
		Division:   req.Division,
		Role:       role,
		IsActive:   true,
	}
	if req.StartDate != "" {
		profile.StartDate = &req.StartDate
	}
	if req.EndDate != "" {
		profile.EndDate = &req.EndDate
	}
	if err := s.DB.WithContext(ctx).Create(&profile).Error; err != nil {
		// Rollback akun auth supaya tidak yatim.
		if delErr := s.DB.WithContext(ctx).Delete(&user).Error; delErr != nil {
			return nil, fmt.Errorf("simpan profil (%v); rollback user gagal: %w", err, delErr)
		}
		return nil, fmt.Errorf("simpan profil: %w", err)
	}
	return &profile, nil
}

// ChangePassword mengganti password user lain (aksi admin).
func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	res := s.DB.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("password", string(hash))
	if res.Error != nil {
		return fmt.Errorf("update password: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
