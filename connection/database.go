package connection

import (
	"fmt"
	"os"
	"time"

	"optifind/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DBConnection() (*gorm.DB, error) {
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "require"
	}
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=optifind",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	// PreferSimpleProtocol keeps the driver compatible with PgBouncer
	// transaction pooling (the Supabase default).
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Kategori{},
		&model.Status{},
		&model.Barang{},
		&model.RefreshToken{},
	); err != nil {
		return err
	}
	return SeedReferenceData(db)
}

// SeedReferenceData inserts the fixed status rows and the default
// category list. Safe to run on every start.
func SeedReferenceData(db *gorm.DB) error {
	statuses := []model.Status{
		{StatusID: model.StatusSudahDitemukan, Nama: "Sudah Ditemukan"},
		{StatusID: model.StatusBelumDitemukan, Nama: "Belum Ditemukan"},
		{StatusID: model.StatusSudahDikembalikan, Nama: "Sudah Dikembalikan"},
		{StatusID: model.StatusBelumDikembalikan, Nama: "Belum Dikembalikan"},
	}
	for _, status := range statuses {
		if err := db.Where("status_id = ?", status.StatusID).
			FirstOrCreate(&model.Status{}, status).Error; err != nil {
			return err
		}
	}

	categories := []string{"Elektronik", "Dompet", "Kunci", "Aksesoris", "Dokumen", "Pakaian", "Lainnya"}
	for _, nama := range categories {
		if err := db.Where("nama = ?", nama).
			FirstOrCreate(&model.Kategori{}, model.Kategori{Nama: nama}).Error; err != nil {
			return err
		}
	}
	return nil
}
