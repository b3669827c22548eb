package models

import (
	"gorm.io/gorm"
)

// AdminUser logs in with password + OTP. A single OTP is kept on the row
// and overwritten on every issuance.
type AdminUser struct {
	gorm.Model
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Otp      string `gorm:"size:6" json:"-"`
}
