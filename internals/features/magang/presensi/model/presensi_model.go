package model

import (
	"time"

	"github.com/google/uuid"
)

// PresensiRecordModel: satu baris per hari kerja. Dibuat saat presensi masuk,
// PresensiOut di-patch saat presensi pulang — satu-satunya mutasi in-place.
type PresensiRecordModel struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Name          string    `gorm:"size:255" json:"name"`
	University    string    `gorm:"size:255" json:"university"`
	PresensiDate  string    `gorm:"size:10;index;not null" json:"presensi_date"`
	PresensiTime  *string   `gorm:"size:8" json:"presensi_time"`
	PresensiOut   *string   `gorm:"size:8" json:"presensi_out"`
	ImageURL      *string   `gorm:"size:512" json:"image_url"`
	ImageFilename *string   `gorm:"size:255" json:"image_filename"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PresensiRecordModel) TableName() string { return "presensi_records" }

// DerivedStatus: "masuk" selama belum presensi pulang, "lengkap" setelahnya.
func (p PresensiRecordModel) DerivedStatus() string {
	if p.PresensiOut != nil && *p.PresensiOut != "" {
		return "lengkap"
	}
	return "masuk"
}
