package dto

import "strings"

type CreateDivisionRequest struct {
	NamaDivisi  string  `json:"nama_divisi" validate:"required"`
	TotalSlots  *int    `json:"total_slots" validate:"required,gte=0"`
	Description *string `json:"description"`
}

func (r *CreateDivisionRequest) Normalize() {
	r.NamaDivisi = strings.TrimSpace(r.NamaDivisi)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
}

// UpdateDivisionRequest: patch parsial, hanya field yang dikirim yang diubah.
type UpdateDivisionRequest struct {
	ID             *uint   `json:"id"`
	NamaDivisi     *string `json:"nama_divisi"`
	TotalSlots     *int    `json:"total_slots" validate:"omitempty,gte=0"`
	AvailableSlots *int    `json:"available_slots" validate:"omitempty,gte=0"`
	Description    *string `json:"description"`
	IsActive       *bool   `json:"is_active"`
}
