package database

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/husnabot/pkg/models"
)

// setupTestDB swaps the global connection for an in-memory database with
// the full schema applied.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	prev := DB
	DB = db
	require.NoError(t, initializeSchema())

	t.Cleanup(func() {
		db.Close()
		DB = prev
	})
}

func sampleName(id int64, transliteration string, aliases ...string) models.Name {
	return models.Name{
		ID:              id,
		Number:          int(id),
		Transliteration: transliteration,
		Arabic:          "ٱسم",
		Meaning:         "meaning of " + transliteration,
		Aliases:         aliases,
	}
}

func TestNameRepositorySeedAndGetAll(t *testing.T) {
	setupTestDB(t)
	repo := NewNameRepository()

	seed := []models.Name{
		sampleName(2, "Ar-Rahim", "Rahim", "Raheem"),
		sampleName(1, "Ar-Rahman", "Rahman"),
	}
	require.NoError(t, repo.Seed(seed))

	names, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, "Ar-Rahman", names[0].Transliteration, "catalog comes back in traditional order")
	assert.Equal(t, []string{"Rahim", "Raheem"}, names[1].Aliases)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNameRepositorySeedSkipsNonEmptyTable(t *testing.T) {
	setupTestDB(t)
	repo := NewNameRepository()

	require.NoError(t, repo.Seed([]models.Name{sampleName(1, "Ar-Rahman")}))
	require.NoError(t, repo.Seed([]models.Name{
		sampleName(1, "Overwritten"),
		sampleName(2, "Ar-Rahim"),
	}))

	names, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "Ar-Rahman", names[0].Transliteration)
}

func TestNameRepositoryUpsert(t *testing.T) {
	setupTestDB(t)
	repo := NewNameRepository()

	n := sampleName(1, "Ar-Rahman", "Rahman")
	require.NoError(t, repo.Upsert(&n))

	n.Meaning = "The Most Merciful"
	n.Aliases = []string{"Rahman", "Rahmaan"}
	require.NoError(t, repo.Upsert(&n))

	got, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "The Most Merciful", got.Meaning)
	assert.Equal(t, []string{"Rahman", "Rahmaan"}, got.Aliases)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count, "upsert by number must not duplicate rows")
}

func TestMemoryStateRepositoryPutAndGet(t *testing.T) {
	setupTestDB(t)
	repo := NewMemoryStateRepository()

	reviewed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	state := &models.MemoryState{
		UserID:             1,
		NameID:             7,
		Interval:           3,
		EaseFactor:         2.6,
		ConsecutiveCorrect: 2,
		LastQuality:        5,
		LastReviewed:       &reviewed,
		NextReview:         reviewed.AddDate(0, 0, 3),
	}
	require.NoError(t, repo.Put(state))

	got, err := repo.GetByUserAndName(1, 7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.Interval)
	assert.Equal(t, 2.6, got.EaseFactor)
	assert.Equal(t, 2, got.ConsecutiveCorrect)
	require.NotNil(t, got.LastReviewed)
	assert.True(t, got.LastReviewed.Equal(reviewed))

	// A second Put for the same pair replaces the row.
	state.Interval = 7
	state.ConsecutiveCorrect = 3
	require.NoError(t, repo.Put(state))

	got, err = repo.GetByUserAndName(1, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Interval)

	var rows int
	require.NoError(t, DB.Get(&rows, "SELECT COUNT(*) FROM memory_states"))
	assert.Equal(t, 1, rows)
}

func TestMemoryStateRepositoryMissingState(t *testing.T) {
	setupTestDB(t)
	repo := NewMemoryStateRepository()

	got, err := repo.GetByUserAndName(1, 99)
	require.NoError(t, err)
	assert.Nil(t, got, "an unseen name has no state and no error")
}

func TestMemoryStateRepositoryGetAllForUser(t *testing.T) {
	setupTestDB(t)
	repo := NewMemoryStateRepository()

	for _, nameID := range []int64{1, 2, 3} {
		st := models.MemoryState{
			UserID:     1,
			NameID:     nameID,
			Interval:   int(nameID),
			EaseFactor: 2.5,
			NextReview: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, repo.Put(&st))
	}
	other := models.MemoryState{UserID: 2, NameID: 1, Interval: 1, EaseFactor: 2.5, NextReview: time.Now()}
	require.NoError(t, repo.Put(&other))

	states := repo.GetAllForUser(1)
	require.Len(t, states, 3)
	assert.Equal(t, 2, states[2].Interval)
}

func TestMemoryStateRepositoryGetAllForUserDegrades(t *testing.T) {
	setupTestDB(t)
	repo := NewMemoryStateRepository()

	_, err := DB.Exec("DROP TABLE memory_states")
	require.NoError(t, err)

	states := repo.GetAllForUser(1)
	assert.NotNil(t, states)
	assert.Empty(t, states, "a read failure must look like an empty state set")
}

func TestMemoryStateRepositoryCountDue(t *testing.T) {
	setupTestDB(t)
	repo := NewMemoryStateRepository()

	past := models.MemoryState{UserID: 1, NameID: 1, Interval: 1, EaseFactor: 2.5,
		NextReview: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	future := models.MemoryState{UserID: 1, NameID: 2, Interval: 1, EaseFactor: 2.5,
		NextReview: time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.Put(&past))
	require.NoError(t, repo.Put(&future))

	count, err := repo.CountDue(1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryStateRepositoryClear(t *testing.T) {
	setupTestDB(t)
	repo := NewMemoryStateRepository()

	st := models.MemoryState{UserID: 1, NameID: 1, Interval: 1, EaseFactor: 2.5, NextReview: time.Now()}
	require.NoError(t, repo.Put(&st))
	require.NoError(t, repo.Clear(1))

	states := repo.GetAllForUser(1)
	assert.Empty(t, states)
}

func TestUserRepositoryGetOrCreate(t *testing.T) {
	setupTestDB(t)
	repo := NewUserRepository()

	missing, err := repo.GetByTelegramID(12345)
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := repo.GetOrCreate(&models.User{ID: 12345, Username: "learner", FirstName: "A"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(12345), created.ID)
	assert.True(t, created.NotificationEnabled, "notifications default to on")
	assert.Equal(t, 9, created.NotificationHour)
	assert.Equal(t, 10, created.SessionMinutes)

	again, err := repo.GetOrCreate(&models.User{ID: 12345, Username: "changed"})
	require.NoError(t, err)
	assert.Equal(t, "learner", again.Username, "existing users are returned as stored")
}

func TestUserRepositoryUpdateSettings(t *testing.T) {
	setupTestDB(t)
	repo := NewUserRepository()

	user, err := repo.GetOrCreate(&models.User{ID: 5, Username: "learner"})
	require.NoError(t, err)

	user.NotificationEnabled = false
	user.NotificationHour = 20
	user.SessionMinutes = 15
	require.NoError(t, repo.UpdateSettings(user))

	got, err := repo.GetByTelegramID(5)
	require.NoError(t, err)
	assert.False(t, got.NotificationEnabled)
	assert.Equal(t, 20, got.NotificationHour)
	assert.Equal(t, 15, got.SessionMinutes)

	unknown := models.User{ID: 999}
	assert.Error(t, repo.UpdateSettings(&unknown))
}

func TestUserRepositoryGetUsersForNotification(t *testing.T) {
	setupTestDB(t)
	repo := NewUserRepository()

	morning, err := repo.GetOrCreate(&models.User{ID: 1, Username: "morning"})
	require.NoError(t, err)
	evening, err := repo.GetOrCreate(&models.User{ID: 2, Username: "evening"})
	require.NoError(t, err)
	muted, err := repo.GetOrCreate(&models.User{ID: 3, Username: "muted"})
	require.NoError(t, err)

	evening.NotificationHour = 20
	require.NoError(t, repo.UpdateSettings(evening))
	muted.NotificationEnabled = false
	muted.NotificationHour = 20
	require.NoError(t, repo.UpdateSettings(muted))

	users, err := repo.GetUsersForNotification(20)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "evening", users[0].Username)

	users, err = repo.GetUsersForNotification(morning.NotificationHour)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "morning", users[0].Username)
}

func TestSessionResultRepositoryCreateAndGetRecent(t *testing.T) {
	setupTestDB(t)
	repo := NewSessionResultRepository()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		res := models.SessionResult{
			UserID:          1,
			ReviewCount:     i,
			CorrectCount:    i,
			DurationSeconds: 300,
			CompletedAt:     base.AddDate(0, 0, i),
		}
		require.NoError(t, repo.Create(&res))
		assert.NotEmpty(t, res.ID, "an identifier is assigned on create")
	}

	results, err := repo.GetRecentByUser(1, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 2, results[0].ReviewCount, "latest session comes first")
	assert.Equal(t, 1, results[1].ReviewCount)
}

func TestStatisticsRepositoryGetUserStatistics(t *testing.T) {
	setupTestDB(t)

	nameRepo := NewNameRepository()
	require.NoError(t, nameRepo.Seed([]models.Name{
		sampleName(1, "Ar-Rahman"),
		sampleName(2, "Ar-Rahim"),
		sampleName(3, "Al-Malik"),
		sampleName(4, "Al-Quddus"),
	}))

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	reviewed := now.AddDate(0, 0, -1)
	stateRepo := NewMemoryStateRepository()

	due := models.MemoryState{UserID: 1, NameID: 1, Interval: 1, EaseFactor: 2.5,
		ConsecutiveCorrect: 1, LastReviewed: &reviewed, NextReview: now.AddDate(0, 0, -1)}
	mastered := models.MemoryState{UserID: 1, NameID: 2, Interval: 40, EaseFactor: 2.7,
		ConsecutiveCorrect: 6, LastQuality: 5, LastReviewed: &reviewed, NextReview: now.AddDate(0, 0, 30)}
	require.NoError(t, stateRepo.Put(&due))
	require.NoError(t, stateRepo.Put(&mastered))

	resultRepo := NewSessionResultRepository()
	require.NoError(t, resultRepo.Create(&models.SessionResult{UserID: 1, CompletedAt: now}))

	stats, err := NewStatisticsRepository().GetUserStatistics(1, now)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalNames)
	assert.Equal(t, 2, stats.Started)
	assert.Equal(t, 1, stats.DueNow)
	assert.Equal(t, 1, stats.Mastered)
	assert.Equal(t, 1, stats.SessionsTotal)
	assert.Equal(t, 2, stats.ByStage[models.StageNew])
	assert.Equal(t, 1, stats.ByStage[models.StageLearning])
	assert.Equal(t, 1, stats.ByStage[models.StageMature])
	assert.InDelta(t, 2.6, stats.AverageEase, 1e-9)
}
