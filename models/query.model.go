package models

import (
	"time"
)

// Query types and statuses are closed sets; anything outside them is
// rejected at the boundary and never reaches storage.
const (
	QueryTypeTechnical = "technical"
	QueryTypeService   = "service"
	QueryTypeOther     = "other"

	QueryStatusNew        = "new"
	QueryStatusInProgress = "in_progress"
	QueryStatusResolved   = "resolved"
)

func ValidQueryType(t string) bool {
	switch t {
	case QueryTypeTechnical, QueryTypeService, QueryTypeOther:
		return true
	}
	return false
}

func ValidQueryStatus(s string) bool {
	switch s {
	case QueryStatusNew, QueryStatusInProgress, QueryStatusResolved:
		return true
	}
	return false
}

// Query is a support ticket. Amount and PaymentLink are set together when
// an admin moves the ticket to in_progress and are retained untouched on
// the move to resolved. Pointers so listings serialize absent values as
// explicit nulls instead of zero values.
type Query struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title       string    `gorm:"not null" json:"title"`
	QueryType   string    `gorm:"size:20;not null" json:"query_type"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Status      string    `gorm:"size:20;default:'new'" json:"status"`
	Amount      *float64  `json:"amount"`
	PaymentLink *string   `json:"payment_link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}
