package model

import "time"

// DocumentModel: satu baris per file yang berhasil diunggah saat intake.
// Tidak pernah dimutasi setelah dibuat.
type DocumentModel struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RegistrationID uint      `gorm:"index;not null" json:"registration_id"`
	DocumentType   string    `gorm:"size:40;not null" json:"document_type"`
	FileName       string    `gorm:"size:255;not null" json:"file_name"`
	FilePath       string    `gorm:"size:512;not null" json:"file_path"`
	FileSize       int64     `json:"file_size"`
	FileType       string    `gorm:"size:100" json:"file_type"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DocumentModel) TableName() string { return "magang_documents" }
