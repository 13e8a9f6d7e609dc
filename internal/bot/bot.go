package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/example/husnabot/internal/catalog"
	"github.com/example/husnabot/internal/database"
	"github.com/example/husnabot/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// activeSession tracks a user's practice session between updates. At most
// one session exists per user; it is discarded once completed.
type activeSession struct {
	Items     []models.SessionItem
	Idx       int
	Correct   int
	StartedAt time.Time
	// AwaitingText is set while the current item expects a typed answer
	// rather than a rating button.
	AwaitingText bool
}

func (s *activeSession) current() *models.SessionItem {
	if s.Idx < 0 || s.Idx >= len(s.Items) {
		return nil
	}
	return &s.Items[s.Idx]
}

// Bot represents the Telegram bot application
type Bot struct {
	api        *tgbotapi.BotAPI
	config     *BotConfig
	provider   *catalog.Provider
	userRepo   *database.UserRepository
	nameRepo   *database.NameRepository
	stateRepo  *database.MemoryStateRepository
	resultRepo *database.SessionResultRepository
	statsRepo  *database.StatisticsRepository
	sessions   map[int64]*activeSession
}

// New creates a new bot instance and seeds the catalog table when empty.
func New(token string) (*Bot, error) {
	if database.DB == nil {
		return nil, fmt.Errorf("database connection is not established")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %v", err)
	}

	b := &Bot{
		api:        api,
		config:     DefaultConfig(),
		provider:   catalog.NewProvider(),
		userRepo:   database.NewUserRepository(),
		nameRepo:   database.NewNameRepository(),
		stateRepo:  database.NewMemoryStateRepository(),
		resultRepo: database.NewSessionResultRepository(),
		statsRepo:  database.NewStatisticsRepository(),
		sessions:   make(map[int64]*activeSession),
	}

	if err := b.nameRepo.Seed(b.provider.Names(context.Background())); err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %v", err)
	}

	log.Printf("Authorized on account %s", api.Self.UserName)
	return b, nil
}

// Start runs the update loop until the context is cancelled. Updates are
// processed sequentially, so session state needs no locking.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(update)
		}
	}
}

// Stop shuts the update channel down
func (b *Bot) Stop(ctx context.Context) error {
	b.api.StopReceivingUpdates()
	return nil
}

// catalogNames returns the current catalog snapshot, preferring the
// database and falling back to the provider when the table is unreadable
// or empty.
func (b *Bot) catalogNames(ctx context.Context) []models.Name {
	names, err := b.nameRepo.GetAll()
	if err != nil || len(names) == 0 {
		if err != nil {
			log.Printf("Failed to load catalog from database: %v", err)
		}
		return b.provider.Names(ctx)
	}
	return names
}

// SendReminders notifies a user about due reviews. Implements the
// scheduler's Notifier interface.
func (b *Bot) SendReminders(userID int64, count int) error {
	text := fmt.Sprintf("You have %d name(s) due for review. Send /learn to start a session.", count)
	msg := tgbotapi.NewMessage(userID, text)
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send reminder to user %d: %v", userID, err)
	}
	return nil
}

// send is a small helper that logs delivery failures instead of
// propagating them; losing one message must not break the session flow.
func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}
