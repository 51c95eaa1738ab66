package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/samuelerdtman/la-palabra-del-dia/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type UserLister interface {
	Users(ctx context.Context) ([]models.User, error)
}

type WordCounter interface {
	CountWords(ctx context.Context, owner primitive.ObjectID, known bool) (int, error)
}

type Notifier interface {
	Push(ctx context.Context, userKey, message string) error
}

// Scheduler runs the daily reminder sweep. Accounts without a pushover key
// are skipped; one broken account does not stop the sweep.
type Scheduler struct {
	cron     *gocron.Scheduler
	users    UserLister
	words    WordCounter
	notifier Notifier
	log      *zap.Logger
}

func New(users UserLister, words WordCounter, notifier Notifier, log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:     gocron.NewScheduler(time.UTC),
		users:    users,
		words:    words,
		notifier: notifier,
		log:      log,
	}
}

func (s *Scheduler) Start(hour int) error {
	_, err := s.cron.Every(1).Day().At(fmt.Sprintf("%02d:00", hour)).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		s.sendReminders(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminders: %w", err)
	}

	s.cron.StartAsync()
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) sendReminders(ctx context.Context) {
	users, err := s.users.Users(ctx)
	if err != nil {
		s.log.Error("reminder sweep: failed to list accounts", zap.Error(err))
		return
	}

	for _, user := range users {
		if user.PushoverID == "" {
			continue
		}

		unknown, err := s.words.CountWords(ctx, user.ID, false)
		if err != nil {
			s.log.Error("reminder sweep: failed to count words",
				zap.String("user_id", user.ID.Hex()), zap.Error(err))
			continue
		}
		if unknown == 0 {
			continue
		}

		if err := s.notifier.Push(ctx, user.PushoverID, reminderMessage(unknown, user.WordsPerDay)); err != nil {
			s.log.Error("reminder sweep: failed to push",
				zap.String("user_id", user.ID.Hex()), zap.Error(err))
		}
	}
}

// reminderMessage caps the suggested batch at the account's words_per_day
// setting when one is set.
func reminderMessage(unknown, perDay int) string {
	batch := unknown
	if perDay > 0 && perDay < unknown {
		batch = perDay
	}
	if batch == 1 {
		return "You have 1 word waiting for practice today."
	}
	return fmt.Sprintf("You have %d words waiting for practice today.", batch)
}
