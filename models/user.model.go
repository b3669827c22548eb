package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name          string `gorm:"not null" json:"name"`
	Email         string `gorm:"unique;not null" json:"email"`
	Location      string `gorm:"default:''" json:"location"`
	Address       string `gorm:"default:''" json:"address"`
	ContactNumber string `gorm:"size:20;default:''" json:"contact_number"`
}
