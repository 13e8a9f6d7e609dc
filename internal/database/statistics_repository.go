package database

import (
	"fmt"
	"time"

	"github.com/example/husnabot/pkg/models"
)

// StatisticsRepository aggregates a user's learning progress for display
type StatisticsRepository struct{}

// NewStatisticsRepository creates a new repository instance
func NewStatisticsRepository() *StatisticsRepository {
	return &StatisticsRepository{}
}

// UserStatistics summarizes where a user stands with the catalog
type UserStatistics struct {
	TotalNames    int
	Started       int
	DueNow        int
	Mastered      int
	AverageEase   float64
	SessionsTotal int
	ByStage       map[models.Stage]int
}

// GetUserStatistics computes the summary shown by /stats. Stage buckets are
// derived in Go from the stored numeric fields so the derivation stays in
// one place (the MemoryState.Stage method).
func (r *StatisticsRepository) GetUserStatistics(userID int64, now time.Time) (*UserStatistics, error) {
	stats := &UserStatistics{ByStage: make(map[models.Stage]int)}

	if err := DB.Get(&stats.TotalNames, "SELECT COUNT(*) FROM names"); err != nil {
		return nil, fmt.Errorf("failed to count names: %v", err)
	}

	var states []models.MemoryState
	err := DB.Select(&states, DB.Rebind("SELECT * FROM memory_states WHERE user_id = ?"), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load memory states: %v", err)
	}

	stats.Started = len(states)
	stats.ByStage[models.StageNew] = stats.TotalNames - stats.Started

	var easeSum float64
	for _, st := range states {
		stats.ByStage[st.Stage()]++
		easeSum += st.EaseFactor
		if st.Due(now) {
			stats.DueNow++
		}
		if st.IsMastered() {
			stats.Mastered++
		}
	}
	if len(states) > 0 {
		stats.AverageEase = easeSum / float64(len(states))
	} else {
		stats.AverageEase = models.DefaultEaseFactor
	}

	err = DB.Get(&stats.SessionsTotal,
		DB.Rebind("SELECT COUNT(*) FROM session_results WHERE user_id = ?"), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %v", err)
	}

	return stats, nil
}
