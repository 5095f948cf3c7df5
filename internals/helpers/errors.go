package helper

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// IsUniqueViolation mendeteksi pelanggaran unique constraint (mis. nama divisi
// duplikat). Cek via translated error GORM dan kode 23505 dari driver pq
// untuk path raw Exec yang tidak lewat translasi.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
