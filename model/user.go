// model/user.go
package model

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	UserID         int       `gorm:"column:user_id;primaryKey;autoIncrement"`
	Name           string    `gorm:"column:name;type:varchar(100);not null"`
	Username       string    `gorm:"column:username;type:varchar(100);uniqueIndex;not null"`
	Email          string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Kontak         string    `gorm:"column:kontak;type:varchar(100)"`
	HashedPassword string    `gorm:"column:hashed_password;type:varchar(255);not null"`
	Role           string    `gorm:"column:role;type:varchar(10);default:'user';not null"`
	CreateAt       time.Time `gorm:"column:create_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
