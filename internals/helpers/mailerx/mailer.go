package mailerx

import (
	"errors"
	"fmt"
	"sync"
	"time"

	gomail "gopkg.in/gomail.v2"

	"magangku_backend/internals/configs"
)

// ErrNotConfigured dikembalikan bila kredensial SMTP belum diset.
// Endpoint pengirim email membalas 500 untuk error ini.
var ErrNotConfigured = errors.New("SMTP tidak dikonfigurasi")

const senderName = "DPMPTSP Jawa Tengah"

// Mailer mengirim notifikasi HTML ke pendaftar.
type Mailer interface {
	SendConfirmation(toEmail, nama string) error
	SendApproval(toEmail, nama, kodePendaftaran, password string) error
	SendRejection(toEmail, nama, kodePendaftaran, reason string) error
}

// --------------------------------------------------
// Implementasi SMTP (gomail)
// --------------------------------------------------

type SMTPMailer struct{}

func NewSMTPMailer() *SMTPMailer { return &SMTPMailer{} }

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	user, pass, host, port := configs.SMTPConfig()
	if user == "" || pass == "" {
		return ErrNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", user, senderName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(host, port, user, pass)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("kirim email ke %s: %w", to, err)
	}
	return nil
}

func (m *SMTPMailer) SendConfirmation(toEmail, nama string) error {
	body, err := renderConfirmation(nama)
	if err != nil {
		return err
	}
	return m.send(toEmail, "Konfirmasi Pendaftaran Magang - DPMPTSP Jawa Tengah", body)
}

func (m *SMTPMailer) SendApproval(toEmail, nama, kodePendaftaran, password string) error {
	body, err := renderApproval(nama, toEmail, kodePendaftaran, password, time.Now())
	if err != nil {
		return err
	}
	return m.send(toEmail, "🎉 Pendaftaran Magang Anda Disetujui - DPMPTSP Jawa Tengah", body)
}

func (m *SMTPMailer) SendRejection(toEmail, nama, kodePendaftaran, reason string) error {
	body, err := renderRejection(nama, kodePendaftaran, reason, time.Now())
	if err != nil {
		return err
	}
	return m.send(toEmail, "Informasi Pendaftaran Magang - DPMPTSP Jawa Tengah", body)
}

// --------------------------------------------------
// Mock untuk test
// --------------------------------------------------

type SentMail struct {
	Kind     string // confirmation | approval | rejection
	To       string
	Nama     string
	Kode     string
	Password string
	Reason   string
}

type MockMailer struct {
	mu       sync.Mutex
	Sent     []SentMail
	FailNext bool
}

func (m *MockMailer) record(mail SentMail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailNext {
		m.FailNext = false
		return fmt.Errorf("mock mailer gagal")
	}
	m.Sent = append(m.Sent, mail)
	return nil
}

func (m *MockMailer) SendConfirmation(toEmail, nama string) error {
	return m.record(SentMail{Kind: "confirmation", To: toEmail, Nama: nama})
}

func (m *MockMailer) SendApproval(toEmail, nama, kode, password string) error {
	return m.record(SentMail{Kind: "approval", To: toEmail, Nama: nama, Kode: kode, Password: password})
}

func (m *MockMailer) SendRejection(toEmail, nama, kode, reason string) error {
	return m.record(SentMail{Kind: "rejection", To: toEmail, Nama: nama, Kode: kode, Reason: reason})
}
