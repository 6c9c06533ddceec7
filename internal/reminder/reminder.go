package reminder

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/schedule"
	"github.com/gabrielbarbershop/booking-api/internal/models"
	"github.com/gabrielbarbershop/booking-api/internal/notify"
	"github.com/gabrielbarbershop/booking-api/internal/timezone"
)

// Service manda lembrete por e-mail para quem tem horário Pending no dia
// seguinte. Roda uma vez por dia via cron.
type Service struct {
	db     *gorm.DB
	notify *notify.Service
	tz     string
}

func NewService(db *gorm.DB, notifier *notify.Service, tz string) *Service {
	return &Service{
		db:     db,
		notify: notifier,
		tz:     tz,
	}
}

func (s *Service) StartScheduler() {
	c := cron.New(cron.WithLocation(timezone.Location(s.tz)))

	if _, err := c.AddFunc("0 9 * * *", s.SendDailyReminders); err != nil {
		log.Printf("reminder: failed to register cron: %v", err)
		return
	}

	c.Start()
	log.Println("Reminder scheduler started")
}

func (s *Service) SendDailyReminders() {
	loc := timezone.Location(s.tz)
	now := time.Now().In(loc)

	tomorrow := time.Date(
		now.Year(), now.Month(), now.Day(),
		0, 0, 0, 0, loc,
	).Add(24 * time.Hour)
	end := tomorrow.Add(24 * time.Hour)

	var appointments []models.Appointment
	if err := s.db.
		Preload("User").
		Preload("Service").
		Where(
			"status = ? AND slot_time >= ? AND slot_time < ?",
			string(domain.StatusPending), tomorrow, end,
		).
		Find(&appointments).Error; err != nil {

		log.Printf("reminder: failed to list appointments: %v", err)
		return
	}

	for _, ap := range appointments {
		if ap.User.Email == "" {
			continue
		}
		s.notify.Reminder(&ap.User, ap.Service.Name, ap.SlotTime)
	}

	log.Printf("reminder: %d reminders dispatched", len(appointments))
}
