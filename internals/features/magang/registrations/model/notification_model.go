package model

import "time"

// NotificationModel mencatat notifikasi email yang di-queue saat intake.
type NotificationModel struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	RegistrationID   uint      `gorm:"index;not null" json:"registration_id"`
	NotificationType string    `gorm:"size:40;not null" json:"notification_type"`
	EmailTo          string    `gorm:"size:255;not null" json:"email_to"`
	Subject          string    `gorm:"size:255" json:"subject"`
	Status           string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (NotificationModel) TableName() string { return "magang_notifications" }
