package model

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLogModel: append-only, ditulis oleh semua aksi yang memutasi data.
type ActivityLogModel struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       *string        `gorm:"size:64" json:"user_id"`
	UserEmail    *string        `gorm:"size:255" json:"user_email"`
	UserName     *string        `gorm:"size:255" json:"user_name"`
	ActivityType string         `gorm:"size:64;index;not null" json:"activity_type"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Metadata     datatypes.JSON `json:"metadata"`
	IPAddress    string         `gorm:"size:64" json:"ip_address"`
	UserAgent    string         `gorm:"size:512" json:"user_agent"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (ActivityLogModel) TableName() string { return "activity_logs" }
