package services

import (
	"optifind/model"

	"gorm.io/gorm"
)

func GetUserdata(db *gorm.DB, userID uint) (*model.User, error) {
	var user model.User
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetKategoriList(db *gorm.DB) ([]model.Kategori, error) {
	var kategori []model.Kategori
	if err := db.Order("kategori_id").Find(&kategori).Error; err != nil {
		return nil, err
	}
	return kategori, nil
}

func GetStatusList(db *gorm.DB) ([]model.Status, error) {
	var status []model.Status
	if err := db.Order("status_id").Find(&status).Error; err != nil {
		return nil, err
	}
	return status, nil
}
