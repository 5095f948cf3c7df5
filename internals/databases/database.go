package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"magangku_backend/internals/configs"
	activityModel "magangku_backend/internals/features/activity/activity_logs/model"
	divisionModel "magangku_backend/internals/features/magang/divisions/model"
	presensiModel "magangku_backend/internals/features/magang/presensi/model"
	registrationModel "magangku_backend/internals/features/magang/registrations/model"
	userModel "magangku_backend/internals/features/users/user/model"
)

// Connect membuka koneksi PostgreSQL dan mengembalikan handle-nya.
// Handle di-inject ke routes/controller, bukan disimpan sebagai global.
func Connect() (*gorm.DB, error) {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=magangku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gagal konek DB: %w", err)
	}
	log.Println("✅ DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUp(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond) // beri waktu server naik
		sqlDB, err := db.DB()
		if err != nil {
			log.Printf("warm-up err: %v", err)
			return
		}
		if err := sqlDB.Ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

// Migrate menjalankan AutoMigrate untuk semua tabel portal.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.UserProfileModel{},
		&divisionModel.DivisionModel{},
		&registrationModel.RegistrationModel{},
		&registrationModel.DocumentModel{},
		&registrationModel.StatusHistoryModel{},
		&registrationModel.NotificationModel{},
		&presensiModel.PresensiRecordModel{},
		&activityModel.ActivityLogModel{},
	)
}
