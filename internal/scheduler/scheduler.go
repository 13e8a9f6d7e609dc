package scheduler

import (
	"log"
	"time"

	"github.com/example/husnabot/internal/database"
	"github.com/go-co-op/gocron"
)

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	userRepo  *database.UserRepository
	stateRepo *database.MemoryStateRepository
}

// Notifier interface for sending notifications
type Notifier interface {
	SendReminders(userID int64, count int) error
}

// New creates a new scheduler instance
func New(notifier Notifier) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		notifier:  notifier,
		userRepo:  database.NewUserRepository(),
		stateRepo: database.NewMemoryStateRepository(),
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Hourly check for users whose reminder hour has come around.
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndSendReminders notifies every user with due reviews whose
// configured notification hour matches the current hour.
func (s *Scheduler) checkAndSendReminders() {
	currentHour := time.Now().Hour()

	users, err := s.userRepo.GetUsersForNotification(currentHour)
	if err != nil {
		log.Printf("Error getting users for notification: %v", err)
		return
	}

	for _, user := range users {
		count, err := s.stateRepo.CountDue(user.ID)
		if err != nil {
			log.Printf("Error counting due names for user %d: %v", user.ID, err)
			continue
		}
		if count == 0 {
			continue
		}
		if err := s.notifier.SendReminders(user.ID, count); err != nil {
			log.Printf("Error sending reminder to user %d: %v", user.ID, err)
		}
	}
}

// RunManualCheck forces a reminder check for a specific user
func (s *Scheduler) RunManualCheck(userID int64) error {
	count, err := s.stateRepo.CountDue(userID)
	if err != nil {
		return err
	}
	if count > 0 {
		return s.notifier.SendReminders(userID, count)
	}
	return nil
}
