// scheduler/scheduler.go
package scheduler

import (
	"log"
	"time"

	"optifind/model"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartScheduler runs housekeeping jobs in the background. Currently
// one job: dropping expired refresh tokens every night at 03:00.
func StartScheduler(db *gorm.DB) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 3 * * *", func() {
		PurgeExpiredRefreshTokens(db)
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started")
}

func PurgeExpiredRefreshTokens(db *gorm.DB) {
	result := db.Where("expires_at < ?", time.Now()).Delete(&model.RefreshToken{})
	if result.Error != nil {
		log.Printf("Failed to purge expired refresh tokens: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Purged %d expired refresh tokens", result.RowsAffected)
	}
}
