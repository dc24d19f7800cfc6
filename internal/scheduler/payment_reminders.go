package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/reforco/internal/entities"
	"github.com/mrlokans/reforco/internal/services"
)

// DefaultReminderSchedule runs the reminder check every morning at 08:00.
const DefaultReminderSchedule = "0 8 * * *"

var scheduleParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ReminderSource lists the students whose payment is overdue on a given day.
type ReminderSource interface {
	DueReminders(ctx context.Context, today time.Time) ([]services.Reminder, error)
}

// RunResult describes the latest reminder check.
type RunResult struct {
	RanAt     time.Time
	Reminders []services.Reminder
	Err       error
}

// PaymentReminderScheduler periodically logs the students whose monthly
// payment day has passed without a payment record.
type PaymentReminderScheduler struct {
	source   ReminderSource
	schedule string
	now      func() time.Time

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
	last       *RunResult
}

// NewPaymentReminderScheduler creates a scheduler instance. An empty
// schedule falls back to DefaultReminderSchedule.
func NewPaymentReminderScheduler(source ReminderSource, schedule string) *PaymentReminderScheduler {
	if schedule == "" {
		schedule = DefaultReminderSchedule
	}
	return &PaymentReminderScheduler{
		source:   source,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithParser(scheduleParser)),
	}
}

// Start registers the job and starts the cron loop. It stops on its own
// when ctx is cancelled.
func (s *PaymentReminderScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminder job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := NextRunTime(s.schedule, s.now())
	log.Printf("Payment reminders: started with schedule '%s' (%s). Next run: %v",
		s.schedule, Describe(s.schedule), nextRun)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running check to finish and stops the scheduler.
func (s *PaymentReminderScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	cancel := s.cancelFunc
	s.isRunning = false
	s.cancelFunc = nil
	s.mu.Unlock()

	// The job records its result under mu, so wait outside the lock.
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.cron.Remove(s.entryID)
	if cancel != nil {
		cancel()
	}

	log.Printf("Payment reminders: stopped")
}

// RunNow performs one check immediately and returns its outcome.
func (s *PaymentReminderScheduler) RunNow(ctx context.Context) RunResult {
	return s.run(ctx)
}

// IsRunning returns whether the scheduler is active.
func (s *PaymentReminderScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// LastResult returns the outcome of the latest check, or nil before the first one.
func (s *PaymentReminderScheduler) LastResult() *RunResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// GetNextRunTime returns when the next check will occur.
func (s *PaymentReminderScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *PaymentReminderScheduler) run(ctx context.Context) RunResult {
	today := s.now()
	result := RunResult{RanAt: today}

	reminders, err := s.source.DueReminders(ctx, today)
	if err != nil {
		log.Printf("Payment reminders: check failed: %v", err)
		result.Err = err
	} else {
		result.Reminders = reminders
		if len(reminders) == 0 {
			log.Printf("Payment reminders: no overdue payments for %s", entities.MonthYear(today))
		}
		for _, r := range reminders {
			log.Printf("Payment reminders: %s (%s, class %s) owes %s, due %s, %d day(s) late",
				r.Student.Name, r.Student.ID, r.Student.ClassID, r.MonthYear, r.DueDate, r.DaysLate)
		}
	}

	s.mu.Lock()
	s.last = &result
	s.mu.Unlock()
	return result
}

// ValidateSchedule validates a five-field cron schedule string.
func ValidateSchedule(schedule string) error {
	_, err := scheduleParser.Parse(schedule)
	return err
}

// Describe returns a human-readable description of common schedules.
func Describe(schedule string) string {
	switch schedule {
	case "0 8 * * *":
		return "Daily at 08:00"
	case "0 0 * * *":
		return "Daily at midnight"
	case "0 * * * *":
		return "Every hour at :00"
	case "0 8 * * 1-5":
		return "Weekdays at 08:00"
	default:
		return "Custom schedule: " + schedule
	}
}

// NextRunTime calculates when schedule next fires after from.
func NextRunTime(schedule string, from time.Time) (*time.Time, error) {
	sched, err := scheduleParser.Parse(schedule)
	if err != nil {
		return nil, err
	}
	next := sched.Next(from)
	return &next, nil
}
