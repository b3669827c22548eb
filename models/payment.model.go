package models

import (
	"time"
)

const (
	PaymentStatusSuccess = "Success"
	PaymentStatusPending = "Pending"
	PaymentStatusFailed  = "Failed"
)

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusSuccess, PaymentStatusPending, PaymentStatusFailed:
		return true
	}
	return false
}

// Payment records the outcome of an externally confirmed charge. This
// service never executes the charge itself beyond handing it to the
// gateway; rows are only removed when the owning user is deleted.
type Payment struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	UserID                 uint      `gorm:"not null;index" json:"user_id"`
	Name                   string    `gorm:"not null" json:"name"`
	AmountPaid             float64   `gorm:"not null" json:"amount_paid"`
	TransactionID          string    `gorm:"not null;index" json:"transaction_id"`
	Status                 string    `gorm:"size:10;not null" json:"status"`
	PaymentDate            string    `gorm:"not null" json:"payment_date"`
	Signature              string    `gorm:"default:''" json:"signature,omitempty"`
	TermsAccepted          bool      `gorm:"default:false" json:"terms_accepted"`
	PaymentDetailsAccepted bool      `gorm:"default:false" json:"payment_details_accepted"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"-"`
}
