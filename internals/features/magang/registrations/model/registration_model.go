package model

import "time"

// Status pendaftaran. Transisi hanya pending→approved / pending→rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type RegistrationModel struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	NamaLengkap     string  `gorm:"size:255;not null" json:"nama_lengkap"`
	Email           string  `gorm:"size:255;not null" json:"email"`
	Telepon         string  `gorm:"size:50;not null" json:"telepon"`
	Institusi       string  `gorm:"size:255;not null" json:"institusi"`
	Jurusan         string  `gorm:"size:255" json:"jurusan"`
	Semester        string  `gorm:"size:20" json:"semester"`
	DurasiMagang    string  `gorm:"size:50" json:"durasi_magang"`
	TanggalMulai    string  `gorm:"size:10" json:"tanggal_mulai"`
	TanggalSelesai  string  `gorm:"size:10" json:"tanggal_selesai"`
	Deskripsi       string  `gorm:"type:text" json:"deskripsi"`
	KodePendaftaran string  `gorm:"size:40;uniqueIndex;not null" json:"kode_pendaftaran"`
	DivisionID      *uint   `gorm:"index" json:"division_id"`
	Status          string  `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Documents []DocumentModel `gorm:"foreignKey:RegistrationID" json:"documents,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RegistrationModel) TableName() string { return "magang_registrations" }
