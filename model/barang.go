// model/barang.go
package model

import (
	"time"
)

const (
	TypeLost  = "lost"
	TypeFound = "found"
)

type Barang struct {
	BarangID   int        `gorm:"column:barang_id;primaryKey;autoIncrement"`
	Nama       string     `gorm:"column:nama;type:varchar(255);not null"`
	Type       string     `gorm:"column:type;type:varchar(10);not null"`
	KategoriID int        `gorm:"column:kategori_id;not null"`
	UserID     *int       `gorm:"column:user_id"`
	StatusID   int        `gorm:"column:status_id;not null"`
	Tanggal    *time.Time `gorm:"column:tanggal"`
	Lokasi     string     `gorm:"column:lokasi;type:varchar(255)"`
	Kontak     string     `gorm:"column:kontak;type:varchar(100)"`
	Deskripsi  string     `gorm:"column:deskripsi;type:text"`
	Foto       string     `gorm:"column:foto;type:varchar(512)"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	// Relations
	Kategori Kategori `gorm:"foreignKey:KategoriID;references:KategoriID;constraint:OnUpdate:CASCADE"`
	Status   Status   `gorm:"foreignKey:StatusID;references:StatusID;constraint:OnUpdate:CASCADE"`
	User     *User    `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE"`
}

func (Barang) TableName() string {
	return "barang"
}
