package dto

import "strings"

// CreateUserRequest: payload provisioning akun peserta/admin oleh admin.
type CreateUserRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Name       string `json:"name" validate:"required"`
	University string `json:"university" validate:"required"`
	Division   string `json:"division" validate:"required"`
	Role       string `json:"role" validate:"omitempty,oneof=user admin"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *CreateUserRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)
	r.University = strings.TrimSpace(r.University)
	r.Division = strings.TrimSpace(r.Division)
	r.Role = strings.TrimSpace(strings.ToLower(r.Role))
}

type ChangePasswordRequest struct {
	UserID      string `json:"user_id" validate:"required,uuid"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
