package model

import "time"

// DivisionModel: divisi magang dengan kuota slot.
// AvailableSlots nullable; bila NULL dianggap sama dengan TotalSlots.
type DivisionModel struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	NamaDivisi     string    `gorm:"size:255;uniqueIndex;not null" json:"nama_divisi"`
	TotalSlots     int       `gorm:"not null;default:0" json:"total_slots"`
	AvailableSlots *int      `json:"available_slots"`
	Description    *string   `json:"description"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DivisionModel) TableName() string { return "magang_divisions" }

// EffectiveAvailable: available_slots dengan fallback ke total_slots.
func (d DivisionModel) EffectiveAvailable() int {
	if d.AvailableSlots != nil {
		return *d.AvailableSlots
	}
	return d.TotalSlots
}
