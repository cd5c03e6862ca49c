package services

import (
	"context"
	"log"
	"time"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/repositories"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/domain"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronService runs the nightly housekeeping jobs: event lifecycle
// refresh, scheduled announcement publishing and refresh token cleanup.
type CronService struct {
	db        *gorm.DB
	tokenRepo repositories.RefreshTokenRepository
	cron      *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(db *gorm.DB) *CronService {
	return &CronService{
		db:        db,
		tokenRepo: repositories.NewRefreshTokenRepository(db),
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
	}
}

// Start schedules the housekeeping run at 00:05 daily
func (s *CronService) Start() {
	_, err := s.cron.AddFunc("5 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
		defer cancel()
		s.RunHousekeeping(ctx)
	})
	if err != nil {
		log.Fatalf("❌ Failed to schedule housekeeping: %v", err)
	}

	s.cron.Start()
	log.Println("🚀 CronService started (housekeeping daily at 00:05)")
}

// Stop stops the scheduler, waiting for a running job to finish
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	log.Println("🛑 CronService stopped")
}

// RunHousekeeping executes all nightly jobs once
func (s *CronService) RunHousekeeping(ctx context.Context) {
	if err := s.RefreshEventStatuses(ctx); err != nil {
		log.Printf("❌ Event status refresh error: %v", err)
	}
	if err := s.PublishDueAnnouncements(ctx); err != nil {
		log.Printf("❌ Scheduled publish error: %v", err)
	}
	if err := s.PurgeExpiredTokens(ctx); err != nil {
		log.Printf("❌ Token purge error: %v", err)
	}
}

// RefreshEventStatuses moves events through Upcoming → Ongoing →
// Completed based on their dates. Cancelled events never move.
func (s *CronService) RefreshEventStatuses(ctx context.Context) error {
	now := time.Now()

	// Started events with no end date, or an end date still ahead
	err := s.db.WithContext(ctx).Table("events").
		Where("status = ? AND start_date <= ? AND (end_date IS NULL OR end_date >= ?)",
			string(domain.EventUpcoming), now, now).
		Update("status", string(domain.EventOngoing)).Error
	if err != nil {
		return err
	}

	// Events whose end date has passed
	return s.db.WithContext(ctx).Table("events").
		Where("status IN ? AND end_date IS NOT NULL AND end_date < ?",
			[]string{string(domain.EventUpcoming), string(domain.EventOngoing)}, now).
		Update("status", string(domain.EventCompleted)).Error
}

// PublishDueAnnouncements publishes drafts whose scheduled publish
// time has arrived
func (s *CronService) PublishDueAnnouncements(ctx context.Context) error {
	return s.db.WithContext(ctx).Table("announcements").
		Where("status = ? AND published_at IS NOT NULL AND published_at <= ?",
			string(domain.AnnouncementDraft), time.Now()).
		Update("status", string(domain.AnnouncementPublished)).Error
}

// PurgeExpiredTokens removes refresh tokens past their expiry
func (s *CronService) PurgeExpiredTokens(ctx context.Context) error {
	return s.tokenRepo.DeleteExpired(ctx)
}
