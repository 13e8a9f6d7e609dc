// Package session composes bounded practice sessions from the full catalog
// and the user's memory states. Composition is a pure computation over one
// snapshot: the caller supplies the catalog, the states and the clock, and
// gets back an ordered list of session items.
package session

import (
	"sort"
	"time"

	"github.com/example/husnabot/pkg/models"
)

const (
	// MaxItems caps a session regardless of the requested duration.
	MaxItems = 20
	// SecondsPerItem is the coarse time budget assumed per item.
	SecondsPerItem = 45
	// ReviewShare is the fraction of the session reserved for due reviews.
	ReviewShare = 0.7
	// MaxNewItems bounds first exposures per session.
	MaxNewItems = 3
	// ReinforceStreakCeiling: states below this streak qualify for
	// reinforcement slots.
	ReinforceStreakCeiling = 3
)

// Priority bases per item type. Reviews and reinforcements decrease from
// their base with list position; new items share one fixed priority.
const (
	reviewPriorityBase    = 300
	newItemPriority       = 200
	reinforcePriorityBase = 100
)

// Compose selects and orders a practice session: most-overdue reviews
// first, then up to MaxNewItems unseen names, then reinforcement of weak
// names, within a time-budgeted item cap. Items are grouped by type
// (review, new, reinforcement) with priority deciding the order inside
// each group; types are never interleaved.
//
// A non-empty catalog always yields a non-empty session: when the policy
// selects nothing, Compose falls back to a short all-new session.
func Compose(names []models.Name, states map[int64]models.MemoryState, now time.Time, targetDurationSeconds int) []models.SessionItem {
	maxItems := targetDurationSeconds / SecondsPerItem
	if maxItems > MaxItems {
		maxItems = MaxItems
	}

	items := make([]models.SessionItem, 0, maxItems)
	selected := make(map[int64]bool)

	// Due reviews, most overdue first. Iterating the catalog slice keeps
	// the tie-break stable on input order.
	due := make([]models.SessionItem, 0)
	for _, n := range names {
		st, ok := states[n.ID]
		if !ok || !st.Due(now) {
			continue
		}
		due = append(due, models.SessionItem{Name: n, State: st, Type: models.ItemReview})
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].State.NextReview.Before(due[j].State.NextReview)
	})

	reviewCap := int(float64(maxItems) * ReviewShare)
	if len(due) > reviewCap {
		due = due[:reviewCap]
	}
	for i := range due {
		due[i].Priority = reviewPriorityBase - i
		selected[due[i].Name.ID] = true
	}
	items = append(items, due...)

	// First exposures fill part of the remaining capacity.
	newBudget := maxItems - len(items)
	if newBudget > MaxNewItems {
		newBudget = MaxNewItems
	}
	for _, n := range names {
		if newBudget <= 0 {
			break
		}
		if _, seen := states[n.ID]; seen || selected[n.ID] {
			continue
		}
		items = append(items, models.SessionItem{
			Name:     n,
			Type:     models.ItemNew,
			Priority: newItemPriority,
		})
		selected[n.ID] = true
		newBudget--
	}

	// Reinforcement of weak names fills whatever is left, weakest first.
	if remaining := maxItems - len(items); remaining > 0 {
		weak := make([]models.SessionItem, 0)
		for _, n := range names {
			st, ok := states[n.ID]
			if !ok || selected[n.ID] || st.ConsecutiveCorrect >= ReinforceStreakCeiling {
				continue
			}
			weak = append(weak, models.SessionItem{Name: n, State: st, Type: models.ItemReinforcement})
		}
		sort.SliceStable(weak, func(i, j int) bool {
			return weak[i].State.ConsecutiveCorrect < weak[j].State.ConsecutiveCorrect
		})
		if len(weak) > remaining {
			weak = weak[:remaining]
		}
		for i := range weak {
			weak[i].Priority = reinforcePriorityBase - i
			selected[weak[i].Name.ID] = true
		}
		items = append(items, weak...)
	}

	// The construction above already yields the final order; the sort
	// states the contract explicitly and guards future insertions.
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Type != items[j].Type {
			return items[i].Type < items[j].Type
		}
		return items[i].Priority > items[j].Priority
	})

	if len(items) == 0 && len(names) > 0 {
		return fallbackSession(names, targetDurationSeconds)
	}
	return items
}

// fallbackSession builds a trivial all-new session so the user is never
// shown an empty one. At least one item is returned even for a degenerate
// duration.
func fallbackSession(names []models.Name, targetDurationSeconds int) []models.SessionItem {
	count := targetDurationSeconds / 60
	if count > 10 {
		count = 10
	}
	if count < 1 {
		count = 1
	}
	if count > len(names) {
		count = len(names)
	}

	items := make([]models.SessionItem, 0, count)
	for _, n := range names[:count] {
		items = append(items, models.SessionItem{
			Name:     n,
			Type:     models.ItemNew,
			Priority: newItemPriority,
		})
	}
	return items
}

// Summarize tallies a finished session into a result record. The caller
// stamps the identifier and persists it.
func Summarize(userID int64, items []models.SessionItem, correct int, duration time.Duration, completedAt time.Time) models.SessionResult {
	res := models.SessionResult{
		UserID:          userID,
		CorrectCount:    correct,
		DurationSeconds: int(duration.Seconds()),
		CompletedAt:     completedAt,
	}
	for _, it := range items {
		switch it.Type {
		case models.ItemReview:
			res.ReviewCount++
		case models.ItemNew:
			res.NewCount++
		case models.ItemReinforcement:
			res.ReinforcementCount++
		}
	}
	return res
}
