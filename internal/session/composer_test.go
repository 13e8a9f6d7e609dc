package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/husnabot/pkg/models"
)

func composerNow() time.Time {
	return time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
}

func catalogOf(n int) []models.Name {
	names := make([]models.Name, 0, n)
	for i := 1; i <= n; i++ {
		names = append(names, models.Name{ID: int64(i), Number: i})
	}
	return names
}

// dueState builds a reviewed state due the given number of days ago.
func dueState(nameID int64, overdueDays int, streak int) models.MemoryState {
	reviewed := composerNow().AddDate(0, 0, -overdueDays-1)
	return models.MemoryState{
		UserID:             1,
		NameID:             nameID,
		Interval:           1,
		EaseFactor:         models.DefaultEaseFactor,
		ConsecutiveCorrect: streak,
		LastReviewed:       &reviewed,
		NextReview:         composerNow().AddDate(0, 0, -overdueDays),
	}
}

// futureState builds a reviewed state that is not yet due.
func futureState(nameID int64, inDays int, streak int) models.MemoryState {
	st := dueState(nameID, 0, streak)
	st.NextReview = composerNow().AddDate(0, 0, inDays)
	return st
}

func TestComposeCapsItems(t *testing.T) {
	names := catalogOf(99)
	states := make(map[int64]models.MemoryState, len(names))
	for _, n := range names {
		states[n.ID] = dueState(n.ID, 1, 5)
	}

	items := Compose(names, states, composerNow(), 3600)
	assert.LessOrEqual(t, len(items), MaxItems)
	assert.NotEmpty(t, items)
}

func TestComposeShortDuration(t *testing.T) {
	names := catalogOf(99)
	states := make(map[int64]models.MemoryState, len(names))
	for _, n := range names {
		states[n.ID] = dueState(n.ID, 1, 5)
	}

	// 5 minutes of 45-second items leaves room for 6.
	items := Compose(names, states, composerNow(), 300)
	assert.LessOrEqual(t, len(items), 6)
	assert.NotEmpty(t, items)
}

func TestComposeReviewShareAndNewCap(t *testing.T) {
	names := catalogOf(99)
	states := make(map[int64]models.MemoryState)
	for i := int64(1); i <= 40; i++ {
		states[i] = dueState(i, 1, 5)
	}

	items := Compose(names, states, composerNow(), 900) // room for 20

	var reviews, news int
	for _, it := range items {
		switch it.Type {
		case models.ItemReview:
			reviews++
		case models.ItemNew:
			news++
		}
	}
	assert.Equal(t, 14, reviews, "review slots are 70% of a 20-item session")
	assert.Equal(t, MaxNewItems, news)
}

func TestComposeMostOverdueFirst(t *testing.T) {
	names := catalogOf(3)
	states := map[int64]models.MemoryState{
		1: dueState(1, 1, 5),
		2: dueState(2, 10, 5),
		3: dueState(3, 5, 5),
	}

	items := Compose(names, states, composerNow(), 600)
	require.Len(t, items, 3)
	assert.Equal(t, int64(2), items[0].Name.ID)
	assert.Equal(t, int64(3), items[1].Name.ID)
	assert.Equal(t, int64(1), items[2].Name.ID)
	for _, it := range items {
		assert.Equal(t, models.ItemReview, it.Type)
	}
}

func TestComposeGroupsByType(t *testing.T) {
	names := catalogOf(30)
	states := make(map[int64]models.MemoryState)
	for i := int64(1); i <= 5; i++ {
		states[i] = dueState(i, int(i), 5)
	}
	// Weak but not due: reinforcement candidates.
	for i := int64(6); i <= 10; i++ {
		states[i] = futureState(i, 3, int(i-6))
	}

	items := Compose(names, states, composerNow(), 900)
	require.NotEmpty(t, items)

	lastType := items[0].Type
	for _, it := range items {
		require.GreaterOrEqual(t, it.Type, lastType, "types must be grouped in review, new, reinforcement order")
		lastType = it.Type
	}

	var news, reinforcements int
	for _, it := range items {
		switch it.Type {
		case models.ItemNew:
			news++
		case models.ItemReinforcement:
			reinforcements++
		}
	}
	assert.Equal(t, MaxNewItems, news)
	assert.Equal(t, 3, reinforcements, "only streaks below the ceiling qualify")
}

func TestComposeReinforcementWeakestFirst(t *testing.T) {
	names := catalogOf(3)
	states := map[int64]models.MemoryState{
		1: futureState(1, 5, 2),
		2: futureState(2, 5, 0),
		3: futureState(3, 5, 1),
	}

	items := Compose(names, states, composerNow(), 600)
	require.Len(t, items, 3)
	assert.Equal(t, int64(2), items[0].Name.ID)
	assert.Equal(t, int64(3), items[1].Name.ID)
	assert.Equal(t, int64(1), items[2].Name.ID)
	for _, it := range items {
		assert.Equal(t, models.ItemReinforcement, it.Type)
	}
}

func TestComposeNoDuplicates(t *testing.T) {
	names := catalogOf(50)
	states := make(map[int64]models.MemoryState)
	for i := int64(1); i <= 10; i++ {
		states[i] = dueState(i, 1, 1)
	}

	items := Compose(names, states, composerNow(), 900)
	seen := make(map[int64]bool)
	for _, it := range items {
		require.False(t, seen[it.Name.ID], "name %d selected twice", it.Name.ID)
		seen[it.Name.ID] = true
	}
}

// Nothing due, nothing new, nothing weak: the fallback still produces a
// short all-new session.
func TestComposeFallback(t *testing.T) {
	names := catalogOf(99)
	states := make(map[int64]models.MemoryState, len(names))
	for _, n := range names {
		states[n.ID] = futureState(n.ID, 10, 5)
	}

	items := Compose(names, states, composerNow(), 600)
	require.Len(t, items, 10)
	for _, it := range items {
		assert.Equal(t, models.ItemNew, it.Type)
	}
}

func TestComposeFallbackDegenerateDuration(t *testing.T) {
	names := catalogOf(99)
	states := map[int64]models.MemoryState{}
	for _, n := range names {
		states[n.ID] = futureState(n.ID, 10, 5)
	}

	items := Compose(names, states, composerNow(), 30)
	assert.Len(t, items, 1, "even a tiny duration yields one item")
}

func TestComposeEmptyCatalog(t *testing.T) {
	items := Compose(nil, nil, composerNow(), 600)
	assert.Empty(t, items)
}

func TestSummarize(t *testing.T) {
	items := []models.SessionItem{
		{Type: models.ItemReview},
		{Type: models.ItemReview},
		{Type: models.ItemNew},
		{Type: models.ItemReinforcement},
	}
	completed := composerNow()

	res := Summarize(7, items, 3, 250*time.Second, completed)
	assert.Equal(t, int64(7), res.UserID)
	assert.Equal(t, 2, res.ReviewCount)
	assert.Equal(t, 1, res.NewCount)
	assert.Equal(t, 1, res.ReinforcementCount)
	assert.Equal(t, 3, res.CorrectCount)
	assert.Equal(t, 250, res.DurationSeconds)
	assert.Equal(t, completed, res.CompletedAt)
}
