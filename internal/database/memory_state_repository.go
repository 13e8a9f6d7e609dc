package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/example/husnabot/pkg/models"
)

// MemoryStateRepository is the state store for per-(user, name) learning
// records. Absence of a record is never an error: a missing state simply
// means the name is new for that user.
type MemoryStateRepository struct{}

// NewMemoryStateRepository creates a new repository instance
func NewMemoryStateRepository() *MemoryStateRepository {
	return &MemoryStateRepository{}
}

// GetAllForUser returns every memory state of a user keyed by name ID.
// Retrieval failures degrade to an empty map: states are reconstructable
// (every name defaults to new), so a read error must not take the session
// flow down with it.
func (r *MemoryStateRepository) GetAllForUser(userID int64) map[int64]models.MemoryState {
	var states []models.MemoryState
	err := DB.Select(&states, DB.Rebind("SELECT * FROM memory_states WHERE user_id = ?"), userID)
	if err != nil {
		log.Printf("Failed to load memory states for user %d, treating all names as new: %v", userID, err)
		return map[int64]models.MemoryState{}
	}

	byName := make(map[int64]models.MemoryState, len(states))
	for _, st := range states {
		byName[st.NameID] = st
	}
	return byName
}

// GetByUserAndName returns one memory state, or nil when none exists yet
func (r *MemoryStateRepository) GetByUserAndName(userID, nameID int64) (*models.MemoryState, error) {
	var state models.MemoryState
	err := DB.Get(&state, DB.Rebind("SELECT * FROM memory_states WHERE user_id = ? AND name_id = ?"), userID, nameID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get memory state: %v", err)
	}
	return &state, nil
}

// Put inserts or replaces the memory state for a (user, name) pair
func (r *MemoryStateRepository) Put(state *models.MemoryState) error {
	query := DB.Rebind(`
		INSERT INTO memory_states (
			user_id, name_id, "interval", ease_factor,
			consecutive_correct, last_quality, last_reviewed, next_review
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, name_id) DO UPDATE SET
			"interval" = EXCLUDED."interval",
			ease_factor = EXCLUDED.ease_factor,
			consecutive_correct = EXCLUDED.consecutive_correct,
			last_quality = EXCLUDED.last_quality,
			last_reviewed = EXCLUDED.last_reviewed,
			next_review = EXCLUDED.next_review,
			updated_at = CURRENT_TIMESTAMP
	`)
	_, err := DB.Exec(query,
		state.UserID,
		state.NameID,
		state.Interval,
		state.EaseFactor,
		state.ConsecutiveCorrect,
		state.LastQuality,
		state.LastReviewed,
		state.NextReview,
	)
	if err != nil {
		return fmt.Errorf("failed to put memory state: %v", err)
	}
	return nil
}

// CountDue returns how many states of a user are due at the given time
func (r *MemoryStateRepository) CountDue(userID int64) (int, error) {
	var count int
	err := DB.Get(&count,
		DB.Rebind("SELECT COUNT(*) FROM memory_states WHERE user_id = ? AND next_review <= CURRENT_TIMESTAMP"),
		userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count due states: %v", err)
	}
	return count, nil
}

// Clear removes every memory state of a user, resetting all names to new
func (r *MemoryStateRepository) Clear(userID int64) error {
	_, err := DB.Exec(DB.Rebind("DELETE FROM memory_states WHERE user_id = ?"), userID)
	if err != nil {
		return fmt.Errorf("failed to clear memory states: %v", err)
	}
	return nil
}
