package service

import (
	"encoding/json"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"magangku_backend/internals/features/activity/activity_logs/model"
)

type Entry struct {
	UserID       *string
	UserEmail    *string
	UserName     *string
	ActivityType string
	Description  string
	Metadata     map[string]any
	IPAddress    string
	UserAgent    string
}

// Log menulis satu baris activity log. Best-effort: kegagalan tidak boleh
// menggagalkan alur utama, cukup dicatat (meniru activity logger lama).
func Log(db *gorm.DB, e Entry) {
	meta := datatypes.JSON([]byte("{}"))
	if e.Metadata != nil {
		if b, err := json.Marshal(e.Metadata); err == nil {
			meta = datatypes.JSON(b)
		}
	}
	row := model.ActivityLogModel{
		UserID:       e.UserID,
		UserEmail:    e.UserEmail,
		UserName:     e.UserName,
		ActivityType: e.ActivityType,
		Description:  e.Description,
		Metadata:     meta,
		IPAddress:    e.IPAddress,
		UserAgent:    e.UserAgent,
	}
	if err := db.Create(&row).Error; err != nil {
		log.Printf("[WARNING] Gagal menulis activity log (%s): %v", e.ActivityType, err)
	}
}

func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
