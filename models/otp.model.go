package models

import (
	"gorm.io/gorm"
)

// OTP rows carry no expiry: a code stays redeemable until the login that
// consumes it deletes it, or the pruning job sweeps it. Several codes may
// be outstanding for the same user; verification matches the (user, code)
// pair, not the latest row.
type OTP struct {
	gorm.Model
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Code   string `gorm:"size:6;not null" json:"code"`
}
