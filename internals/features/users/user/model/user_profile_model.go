package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfileModel menyimpan profil peserta/admin. ID sama dengan users.id.
// Division di sini label teks bebas, bukan foreign key ke magang_divisions.
type UserProfileModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name" validate:"required"`
	Email      string    `gorm:"size:255;not null" json:"email"`
	University string    `gorm:"size:255" json:"university"`
	Division   string    `gorm:"size:255" json:"division"`
	Role       string    `gorm:"type:varchar(20);not null;default:'user'" json:"role" validate:"omitempty,oneof=user admin"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	StartDate  *string   `gorm:"size:10" json:"start_date,omitempty"`
	EndDate    *string   `gorm:"size:10" json:"end_date,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserProfileModel) TableName() string { return "user_profiles" }
