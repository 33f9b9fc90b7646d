package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	Items       []Item `gorm:"constraint:OnDelete:CASCADE;"`
}
