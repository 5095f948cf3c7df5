package dto

import (
	"errors"
	"regexp"
	"strings"
)

// Regex email sederhana (bentuk local@domain.tld), sama dengan form lama.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IntakeRequest: field form pendaftaran magang (multipart).
type IntakeRequest struct {
	NamaLengkap    string
	Email          string
	Telepon        string
	Institusi      string
	Jurusan        string
	Semester       string
	DurasiMagang   string
	DivisionID     uint
	TanggalMulai   string
	TanggalSelesai string
	Deskripsi      string

	// DocumentTypes: override jenis dokumen per file (urutan sama dengan
	// file bukti). Kosong = pakai heuristik nama file.
	DocumentTypes []string
}

var (
	ErrMissingFields = errors.New("Field wajib harus diisi: nama_lengkap, email, telepon, institusi, division_id")
	ErrInvalidEmail  = errors.New("Format email tidak valid")
)

// Validate: cek field wajib + format email. Tidak ada side effect.
func (r *IntakeRequest) Validate() error {
	r.NamaLengkap = strings.TrimSpace(r.NamaLengkap)
	r.Email = strings.TrimSpace(r.Email)
	r.Telepon = strings.TrimSpace(r.Telepon)
	r.Institusi = strings.TrimSpace(r.Institusi)

	if r.NamaLengkap == "" || r.Email == "" || r.Telepon == "" || r.Institusi == "" || r.DivisionID == 0 {
		return ErrMissingFields
	}
	if !emailRegex.MatchString(r.Email) {
		return ErrInvalidEmail
	}
	return nil
}

type IntakeResult struct {
	ID              uint   `json:"id"`
	KodePendaftaran string `json:"kode_pendaftaran"`
	NamaLengkap     string `json:"nama_lengkap"`
	Email           string `json:"email"`
	UploadedFiles   int    `json:"uploaded_files"`
}

type UpdateStatusRequest struct {
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason"`
	ChangedBy       string `json:"changed_by"`
	Password        string `json:"password"`
}

type TransitionResult struct {
	ID              uint   `json:"id"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}
