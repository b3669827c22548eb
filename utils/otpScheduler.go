package utils

import (
	"crm/database"
	"crm/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Verification never checks OTP age; pruning is the only thing that retires
// an unconsumed code. Codes younger than this stay redeemable.
const otpRetention = 24 * time.Hour

// InitializeOTPScheduler starts the hourly job that sweeps stale OTP rows.
func InitializeOTPScheduler() *cron.Cron {
	log.Println("[OTP-SCHEDULER] Initializing OTP pruning scheduler...")

	c := cron.New()

	c.AddFunc("0 * * * *", func() {
		PruneStaleOTPs()
	})

	c.Start()
	log.Println("[OTP-SCHEDULER] OTP pruning scheduler started - runs hourly")
	return c
}

// PruneStaleOTPs hard-deletes OTP records older than the retention window.
func PruneStaleOTPs() {
	cutoff := time.Now().Add(-otpRetention)

	result := database.Database.Db.Unscoped().
		Where("created_at < ?", cutoff).
		Delete(&models.OTP{})
	if result.Error != nil {
		log.Printf("[OTP-SCHEDULER] Error pruning OTPs: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[OTP-SCHEDULER] Pruned %d stale OTP records", result.RowsAffected)
	}
}
