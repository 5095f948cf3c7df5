package model

import "time"

// StatusHistoryModel: append-only, satu baris per transisi status.
type StatusHistoryModel struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RegistrationID uint      `gorm:"index;not null" json:"registration_id"`
	OldStatus      string    `gorm:"size:20;not null" json:"old_status"`
	NewStatus      string    `gorm:"size:20;not null" json:"new_status"`
	Notes          string    `gorm:"type:text" json:"notes"`
	ChangedBy      string    `gorm:"size:255;not null;default:'Admin'" json:"changed_by"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (StatusHistoryModel) TableName() string { return "magang_status_history" }
