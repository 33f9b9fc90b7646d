package models

import "gorm.io/gorm"

type Item struct {
	gorm.Model
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	CategoryID  uint   `gorm:"not null;index"`
	UserID      uint   `gorm:"not null;index"`
}
