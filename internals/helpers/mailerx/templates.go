package mailerx

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"magangku_backend/internals/configs"
)

var hariIndo = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var bulanIndo = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatTanggalIndo meniru toLocaleDateString('id-ID', {weekday:'long', ...}).
func FormatTanggalIndo(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", hariIndo[t.Weekday()], t.Day(), bulanIndo[t.Month()-1], t.Year())
}

// ReapplyDate: pendaftar boleh mendaftar ulang 3 hari setelah penolakan.
func ReapplyDate(now time.Time) time.Time { return now.AddDate(0, 0, 3) }

var approvalTmpl = template.Must(template.New("approval").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family:'Segoe UI',Tahoma,sans-serif;color:#333;background:#f4f4f4;margin:0;">
  <div style="max-width:600px;margin:20px auto;background:#fff;border-radius:10px;overflow:hidden;">
    <div style="background:#00786F;color:#fff;padding:30px 20px;text-align:center;">
      <h1 style="margin:0;font-size:24px;">🎉 Selamat! Pendaftaran Magang Disetujui</h1>
    </div>
    <div style="padding:30px 20px;">
      <p>Yth. <strong>{{.Nama}}</strong>,</p>
      <p>Pendaftaran magang Anda telah <strong>DISETUJUI</strong> oleh tim DPMPTSP Provinsi Jawa Tengah.</p>
      <div style="background:#f0f9f8;border-left:4px solid #00786F;padding:15px;margin:20px 0;">
        <strong>Kode Pendaftaran:</strong> {{.Kode}}<br>
        <strong>Status:</strong> <span style="color:#28a745;">Disetujui</span><br>
        <strong>Tanggal Persetujuan:</strong> {{.Tanggal}}
      </div>
      <div style="background:#e8f5e9;border-left:4px solid #4caf50;padding:15px;margin:20px 0;">
        <h3 style="margin-top:0;color:#2e7d32;">🔐 Akun Anda Telah Dibuat</h3>
        <strong>Email:</strong> {{.Email}}<br>
        <strong>Password:</strong> <code>{{.Password}}</code><br>
        <p style="color:#f57c00;"><strong>⚠️ PENTING:</strong> Simpan password ini dengan aman dan ubah setelah login pertama.</p>
        <a href="{{.BaseURL}}/login" style="display:inline-block;padding:12px 30px;background:#00786F;color:#fff;text-decoration:none;border-radius:5px;font-weight:bold;">Login Sekarang</a>
      </div>
      <p>Salam hormat,<br><strong>Tim DPMPTSP Provinsi Jawa Tengah</strong></p>
    </div>
    <div style="background:#f8f8f8;padding:20px;text-align:center;font-size:12px;color:#666;">
      Email ini dikirim secara otomatis. Mohon tidak membalas email ini.
    </div>
  </div>
</body>
</html>`))

var rejectionTmpl = template.Must(template.New("rejection").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family:'Segoe UI',Tahoma,sans-serif;color:#333;background:#f4f4f4;margin:0;">
  <div style="max-width:600px;margin:20px auto;background:#fff;border-radius:10px;overflow:hidden;">
    <div style="background:#dc3545;color:#fff;padding:30px 20px;text-align:center;">
      <h1 style="margin:0;font-size:24px;">📋 Informasi Pendaftaran Magang</h1>
    </div>
    <div style="padding:30px 20px;">
      <p>Yth. <strong>{{.Nama}}</strong>,</p>
      <p>Terima kasih telah mendaftar untuk program magang di DPMPTSP Provinsi Jawa Tengah.</p>
      <div style="background:#f8f9fa;border-left:4px solid #6c757d;padding:15px;margin:20px 0;">
        <strong>Kode Pendaftaran:</strong> {{.Kode}}<br>
        <strong>Status:</strong> <span style="color:#dc3545;">Belum Dapat Diproses</span><br>
        <strong>Tanggal Review:</strong> {{.Tanggal}}
      </div>
      <p>Saat ini kami <strong>belum dapat memproses</strong> pendaftaran Anda dengan alasan berikut:</p>
      <div style="background:#fff3cd;border-left:4px solid #ffc107;padding:15px;margin:20px 0;">
        <h3 style="margin-top:0;color:#856404;">📝 Alasan:</h3>
        <p style="margin:0;white-space:pre-line;">{{.Reason}}</p>
      </div>
      <div style="background:#d1ecf1;border-left:4px solid #17a2b8;padding:15px;margin:20px 0;">
        <h3 style="margin-top:0;color:#0c5460;">🔄 Kesempatan Mendaftar Kembali</h3>
        <p>Anda dapat <strong>mendaftar kembali</strong> mulai tanggal:</p>
        <p style="font-size:18px;font-weight:bold;color:#0c5460;margin:10px 0;">{{.ReapplyDate}}</p>
      </div>
      <p style="text-align:center;"><a href="{{.BaseURL}}/laporan" style="display:inline-block;padding:12px 30px;background:#17a2b8;color:#fff;text-decoration:none;border-radius:5px;font-weight:bold;">Daftar Ulang</a></p>
      <p>Salam hormat,<br><strong>Tim DPMPTSP Provinsi Jawa Tengah</strong></p>
    </div>
    <div style="background:#f8f8f8;padding:20px;text-align:center;font-size:12px;color:#666;">
      Email ini dikirim secara otomatis. Mohon tidak membalas email ini.
    </div>
  </div>
</body>
</html>`))

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family:Arial,sans-serif;color:#333;margin:0;">
  <div style="max-width:600px;margin:0 auto;padding:20px;background:#f9f9f9;">
    <div style="background:#0d9488;color:#fff;padding:30px;text-align:center;border-radius:8px 8px 0 0;">
      <h1 style="margin:0;font-size:22px;">Pendaftaran Magang Diterima</h1>
    </div>
    <div style="background:#fff;padding:30px;">
      <p>Yth. <strong>{{.Nama}}</strong>,</p>
      <p>Pendaftaran magang Anda telah kami terima dan sedang dalam proses verifikasi.
      Hasil seleksi akan dikirimkan melalui email ini.</p>
      <p>Salam hormat,<br><strong>Tim DPMPTSP Provinsi Jawa Tengah</strong></p>
    </div>
    <div style="padding:20px;text-align:center;font-size:12px;color:#666;">
      Email ini dikirim secara otomatis. Mohon tidak membalas email ini.
    </div>
  </div>
</body>
</html>`))

func renderApproval(nama, email, kode, password string, now time.Time) (string, error) {
	var buf bytes.Buffer
	err := approvalTmpl.Execute(&buf, map[string]any{
		"Nama":     nama,
		"Email":    email,
		"Kode":     kode,
		"Password": password,
		"Tanggal":  FormatTanggalIndo(now),
		"BaseURL":  configs.BaseURL,
	})
	return buf.String(), err
}

func renderRejection(nama, kode, reason string, now time.Time) (string, error) {
	var buf bytes.Buffer
	err := rejectionTmpl.Execute(&buf, map[string]any{
		"Nama":        nama,
		"Kode":        kode,
		"Reason":      reason,
		"Tanggal":     FormatTanggalIndo(now),
		"ReapplyDate": FormatTanggalIndo(ReapplyDate(now)),
		"BaseURL":     configs.BaseURL,
	})
	return buf.String(), err
}

func renderConfirmation(nama string) (string, error) {
	var buf bytes.Buffer
	err := confirmationTmpl.Execute(&buf, map[string]any{"Nama": nama})
	return buf.String(), err
}
