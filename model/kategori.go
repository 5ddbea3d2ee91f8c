package model

type Kategori struct {
	KategoriID int    `gorm:"column:kategori_id;primaryKey;autoIncrement"`
	Nama       string `gorm:"column:nama;type:varchar(100);uniqueIndex;not null"`
}

func (Kategori) TableName() string {
	return "kategori"
}
