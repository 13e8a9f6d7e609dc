package database

import (
	"fmt"

	"github.com/example/husnabot/pkg/models"
	"github.com/google/uuid"
)

// SessionResultRepository handles database operations for completed
// practice sessions
type SessionResultRepository struct{}

// NewSessionResultRepository creates a new repository instance
func NewSessionResultRepository() *SessionResultRepository {
	return &SessionResultRepository{}
}

// Create persists a session summary. An ID is assigned when the caller
// left it empty; results are written once and never updated.
func (r *SessionResultRepository) Create(result *models.SessionResult) error {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	query := DB.Rebind(`
		INSERT INTO session_results (
			id, user_id, review_count, new_count, reinforcement_count,
			correct_count, duration_seconds, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := DB.Exec(query,
		result.ID,
		result.UserID,
		result.ReviewCount,
		result.NewCount,
		result.ReinforcementCount,
		result.CorrectCount,
		result.DurationSeconds,
		result.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session result: %v", err)
	}
	return nil
}

// GetRecentByUser returns the latest session summaries for a user
func (r *SessionResultRepository) GetRecentByUser(userID int64, limit int) ([]models.SessionResult, error) {
	var results []models.SessionResult
	query := DB.Rebind(`
		SELECT * FROM session_results
		WHERE user_id = ?
		ORDER BY completed_at DESC
		LIMIT ?
	`)
	if err := DB.Select(&results, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to get session results: %v", err)
	}
	return results, nil
}
