package services

import (
	"fmt"
	"testing"

	"optifind/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Kategori{},
		&model.Status{},
		&model.Barang{},
		&model.RefreshToken{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	statuses := []model.Status{
		{StatusID: model.StatusSudahDitemukan, Nama: "Sudah Ditemukan"},
		{StatusID: model.StatusBelumDitemukan, Nama: "Belum Ditemukan"},
		{StatusID: model.StatusSudahDikembalikan, Nama: "Sudah Dikembalikan"},
		{StatusID: model.StatusBelumDikembalikan, Nama: "Belum Dikembalikan"},
	}
	if err := db.Create(&statuses).Error; err != nil {
		t.Fatalf("seed statuses: %v", err)
	}

	for _, nama := range []string{"Elektronik", "Dompet", "Kunci"} {
		if err := db.Create(&model.Kategori{Nama: nama}).Error; err != nil {
			t.Fatalf("seed kategori %q: %v", nama, err)
		}
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) *model.User {
	t.Helper()
	user := model.User{
		Name:           username,
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: "x",
		Role:           role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	return &user
}
