package bot

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/example/husnabot/internal/catalog"
	"github.com/example/husnabot/internal/matching"
	"github.com/example/husnabot/internal/session"
	"github.com/example/husnabot/internal/spaced_repetition"
	"github.com/example/husnabot/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleUpdate routes one Telegram update.
func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
		return
	}
	if update.Message == nil || update.Message.From == nil {
		return
	}

	msg := update.Message
	user, err := b.ensureUser(msg)
	if err != nil {
		log.Printf("Failed to register user %d: %v", msg.From.ID, err)
		return
	}

	switch {
	case msg.Document != nil:
		b.handleImportDocument(user, msg)
	case msg.IsCommand():
		b.handleCommand(user, msg)
	default:
		b.handleText(user, msg)
	}
}

// ensureUser registers the sender on first contact.
func (b *Bot) ensureUser(msg *tgbotapi.Message) (*models.User, error) {
	from := msg.From
	return b.userRepo.GetOrCreate(&models.User{
		ID:        from.ID,
		Username:  from.UserName,
		FirstName: from.FirstName,
		LastName:  from.LastName,
		IsAdmin:   isAdmin(from.ID),
	})
}

// isAdmin checks the sender against the ADMIN_USER_IDS environment list.
func isAdmin(userID int64) bool {
	for _, part := range strings.Split(os.Getenv("ADMIN_USER_IDS"), ",") {
		if id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64); err == nil && id == userID {
			return true
		}
	}
	return false
}

func (b *Bot) handleCommand(user *models.User, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.send(tgbotapi.NewMessage(msg.Chat.ID,
			"Welcome! I will help you memorize the 99 names and their meanings.\n\n"+
				"/learn — start a practice session\n"+
				"/stats — your progress\n"+
				"/settings — reminders and session length\n"+
				"/cancel — abandon the current session\n"+
				"/reset — forget all progress and start over"))
	case "learn":
		b.startSession(user, msg.Chat.ID)
	case "stats":
		b.handleStats(user, msg.Chat.ID)
	case "settings":
		b.handleSettings(user, msg.Chat.ID)
	case "cancel":
		delete(b.sessions, user.ID)
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "Session cancelled."))
	case "reset":
		delete(b.sessions, user.ID)
		if err := b.stateRepo.Clear(user.ID); err != nil {
			log.Printf("Failed to reset progress for user %d: %v", user.ID, err)
			b.send(tgbotapi.NewMessage(msg.Chat.ID, "Could not reset your progress, try again later."))
			return
		}
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "Progress reset. Every name is new again."))
	default:
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "Unknown command. Try /learn, /stats or /settings."))
	}
}

// startSession composes a practice session from the user's memory states.
func (b *Bot) startSession(user *models.User, chatID int64) {
	if _, ok := b.sessions[user.ID]; ok {
		b.send(tgbotapi.NewMessage(chatID, "A session is already running. Finish it or send /cancel first."))
		return
	}

	names := b.catalogNames(context.Background())
	if len(names) == 0 {
		b.send(tgbotapi.NewMessage(chatID, "The catalog is empty. Ask an admin to import it."))
		return
	}

	minutes := user.SessionMinutes
	if minutes <= 0 {
		minutes = b.config.DefaultSessionMinutes
	}
	states := b.stateRepo.GetAllForUser(user.ID)
	items := session.Compose(names, states, time.Now(), minutes*60)

	b.sessions[user.ID] = &activeSession{Items: items, StartedAt: time.Now()}
	b.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("Session started: %d item(s). Let's go!", len(items))))
	b.presentCurrent(user.ID, chatID)
}

// presentCurrent shows the current session item. New names are presented
// as full cards with a self-rating; seen names ask for a typed recall of
// the transliteration given the meaning.
func (b *Bot) presentCurrent(userID, chatID int64) {
	sess, ok := b.sessions[userID]
	if !ok {
		return
	}
	item := sess.current()
	if item == nil {
		b.finishSession(userID, chatID)
		return
	}

	position := fmt.Sprintf("[%d/%d] ", sess.Idx+1, len(sess.Items))

	if item.Type == models.ItemNew {
		sess.AwaitingText = false
		text := fmt.Sprintf("%sNew name:\n\n%s  (%s)\n%s\n\nHow well did you already know it?",
			position, item.Name.Transliteration, item.Name.Arabic, item.Name.Meaning)
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ReplyMarkup = ratingKeyboard()
		b.send(msg)
		return
	}

	sess.AwaitingText = true
	text := fmt.Sprintf("%sWhich name means %q?\nType the transliteration.",
		position, item.Name.Meaning)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Show answer", "reveal"),
		),
	)
	b.send(msg)
}

// handleText treats free text as a recall answer when a session expects one.
func (b *Bot) handleText(user *models.User, msg *tgbotapi.Message) {
	sess, ok := b.sessions[user.ID]
	if !ok || !sess.AwaitingText {
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "Send /learn to start a practice session."))
		return
	}
	item := sess.current()
	if item == nil {
		return
	}

	correct := matching.Matches(msg.Text, item.Name)
	quality := spaced_repetition.QualityFromMatch(correct)

	var feedback string
	if correct {
		feedback = fmt.Sprintf("Correct! %s (%s) — %s",
			item.Name.Transliteration, item.Name.Arabic, item.Name.Meaning)
	} else {
		feedback = fmt.Sprintf("Not quite. The answer is %s (%s) — %s",
			item.Name.Transliteration, item.Name.Arabic, item.Name.Meaning)
	}
	b.send(tgbotapi.NewMessage(msg.Chat.ID, feedback))

	b.recordReview(user.ID, msg.Chat.ID, quality)
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	// Always answer the callback so the client stops the spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
	if cb.Message == nil {
		return
	}
	userID := cb.From.ID
	chatID := cb.Message.Chat.ID

	switch {
	case strings.HasPrefix(cb.Data, "rate:"):
		quality, err := strconv.Atoi(strings.TrimPrefix(cb.Data, "rate:"))
		if err != nil {
			return
		}
		b.recordReview(userID, chatID, quality)

	case cb.Data == "reveal":
		sess, ok := b.sessions[userID]
		if !ok {
			return
		}
		item := sess.current()
		if item == nil {
			return
		}
		sess.AwaitingText = false
		text := fmt.Sprintf("%s  (%s)\n%s\n\nHow well did you recall it?",
			item.Name.Transliteration, item.Name.Arabic, item.Name.Meaning)
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ReplyMarkup = ratingKeyboard()
		b.send(msg)

	case strings.HasPrefix(cb.Data, "minutes:"):
		b.updateSetting(userID, chatID, cb.Data)

	case strings.HasPrefix(cb.Data, "notify:"):
		b.updateSetting(userID, chatID, cb.Data)
	}
}

// recordReview applies one rating to the current item, persists the new
// memory state and advances the session.
func (b *Bot) recordReview(userID, chatID int64, quality int) {
	sess, ok := b.sessions[userID]
	if !ok {
		return
	}
	item := sess.current()
	if item == nil {
		return
	}

	now := time.Now()
	state := item.State
	if state.UserID == 0 {
		// First exposure: no stored state yet.
		state = spaced_repetition.NewState(userID, item.Name.ID, now)
	}
	updated := spaced_repetition.Review(state, quality, now)
	if err := b.stateRepo.Put(&updated); err != nil {
		log.Printf("Failed to persist memory state for user %d name %d: %v", userID, item.Name.ID, err)
	}

	if quality >= spaced_repetition.PassThreshold {
		sess.Correct++
	}
	sess.Idx++
	b.presentCurrent(userID, chatID)
}

// finishSession stores the summary and reports it to the user.
func (b *Bot) finishSession(userID, chatID int64) {
	sess, ok := b.sessions[userID]
	if !ok {
		return
	}
	delete(b.sessions, userID)

	now := time.Now()
	result := session.Summarize(userID, sess.Items, sess.Correct, now.Sub(sess.StartedAt), now)
	if err := b.resultRepo.Create(&result); err != nil {
		log.Printf("Failed to store session result for user %d: %v", userID, err)
	}

	b.send(tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"Session complete!\n\nReviews: %d\nNew: %d\nReinforcement: %d\nCorrect: %d/%d",
		result.ReviewCount, result.NewCount, result.ReinforcementCount,
		result.CorrectCount, len(sess.Items))))
}

func (b *Bot) handleStats(user *models.User, chatID int64) {
	stats, err := b.statsRepo.GetUserStatistics(user.ID, time.Now())
	if err != nil {
		log.Printf("Failed to load statistics for user %d: %v", user.ID, err)
		b.send(tgbotapi.NewMessage(chatID, "Could not load statistics, try again later."))
		return
	}

	text := fmt.Sprintf(
		"Your progress:\n\n"+
			"Names started: %d of %d\n"+
			"Due now: %d\n"+
			"Mastered: %d\n"+
			"Learning: %d | Young: %d | Mature: %d\n"+
			"Average ease: %.2f\n"+
			"Sessions completed: %d",
		stats.Started, stats.TotalNames,
		stats.DueNow,
		stats.Mastered,
		stats.ByStage[models.StageLearning], stats.ByStage[models.StageYoung], stats.ByStage[models.StageMature],
		stats.AverageEase,
		stats.SessionsTotal)

	recent, err := b.resultRepo.GetRecentByUser(user.ID, b.config.RecentSessions)
	if err != nil {
		log.Printf("Failed to load recent sessions for user %d: %v", user.ID, err)
	}
	if len(recent) > 0 {
		text += "\n\nRecent sessions:"
		for _, r := range recent {
			total := r.ReviewCount + r.NewCount + r.ReinforcementCount
			text += fmt.Sprintf("\n%s: %d/%d correct",
				r.CompletedAt.Format("Jan 2"), r.CorrectCount, total)
		}
	}
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) handleSettings(user *models.User, chatID int64) {
	notify := "off"
	if user.NotificationEnabled {
		notify = "on"
	}
	text := fmt.Sprintf("Session length: %d min\nReminders: %s (hour %d)",
		user.SessionMinutes, notify, user.NotificationHour)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("5 min", "minutes:5"),
			tgbotapi.NewInlineKeyboardButtonData("10 min", "minutes:10"),
			tgbotapi.NewInlineKeyboardButtonData("15 min", "minutes:15"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Reminders on", "notify:on"),
			tgbotapi.NewInlineKeyboardButtonData("Reminders off", "notify:off"),
		),
	)
	b.send(msg)
}

// updateSetting applies one settings callback.
func (b *Bot) updateSetting(userID, chatID int64, data string) {
	user, err := b.userRepo.GetByTelegramID(userID)
	if err != nil || user == nil {
		log.Printf("Failed to load user %d for settings update: %v", userID, err)
		return
	}

	switch {
	case strings.HasPrefix(data, "minutes:"):
		if m, err := strconv.Atoi(strings.TrimPrefix(data, "minutes:")); err == nil && m > 0 {
			user.SessionMinutes = m
		}
	case data == "notify:on":
		user.NotificationEnabled = true
	case data == "notify:off":
		user.NotificationEnabled = false
	}

	if err := b.userRepo.UpdateSettings(user); err != nil {
		log.Printf("Failed to update settings for user %d: %v", userID, err)
		return
	}
	b.send(tgbotapi.NewMessage(chatID, "Settings saved."))
}

// handleImportDocument lets an admin replace the catalog by uploading an
// .xlsx or .csv file.
func (b *Bot) handleImportDocument(user *models.User, msg *tgbotapi.Message) {
	if !user.IsAdmin {
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "Only admins can import the catalog."))
		return
	}

	ext := strings.ToLower(filepath.Ext(msg.Document.FileName))
	if ext != ".xlsx" && ext != ".csv" {
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "Please upload an .xlsx or .csv file."))
		return
	}

	path, err := b.downloadDocument(msg.Document, ext)
	if err != nil {
		log.Printf("Failed to download import file: %v", err)
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "Could not download the file, try again."))
		return
	}
	defer os.Remove(path)

	config := catalog.DefaultImportConfig()
	config.FilePath = path
	result, err := catalog.ImportNames(config)
	if err != nil {
		log.Printf("Catalog import failed: %v", err)
		b.send(tgbotapi.NewMessage(msg.Chat.ID, fmt.Sprintf("Import failed: %v", err)))
		return
	}

	text := fmt.Sprintf("Import finished: %d processed, %d imported, %d skipped.",
		result.TotalProcessed, result.Imported, result.Skipped)
	if len(result.Errors) > 0 {
		text += fmt.Sprintf("\nFirst error: %s", result.Errors[0])
	}
	b.send(tgbotapi.NewMessage(msg.Chat.ID, text))
}

// downloadDocument fetches a Telegram document into a temp file.
func (b *Bot) downloadDocument(doc *tgbotapi.Document, ext string) (string, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: doc.FileID})
	if err != nil {
		return "", fmt.Errorf("failed to resolve file: %v", err)
	}

	resp, err := http.Get(file.Link(b.api.Token))
	if err != nil {
		return "", fmt.Errorf("failed to fetch file: %v", err)
	}
	defer resp.Body.Close()

	tmp, err := os.CreateTemp("", "catalog-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %v", err)
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to save file: %v", err)
	}
	return tmp.Name(), nil
}

// ratingKeyboard builds the 0-5 self-assessment keyboard.
func ratingKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("0 (blank)", "rate:0"),
			tgbotapi.NewInlineKeyboardButtonData("1", "rate:1"),
			tgbotapi.NewInlineKeyboardButtonData("2", "rate:2"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("3", "rate:3"),
			tgbotapi.NewInlineKeyboardButtonData("4", "rate:4"),
			tgbotapi.NewInlineKeyboardButtonData("5 (easy)", "rate:5"),
		),
	)
}
