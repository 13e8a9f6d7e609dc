package models

import "time"

// Stage buckets a memory state by maturity. It is always derived from the
// numeric fields (see MemoryState.Stage) and never stored independently.
type Stage int

const (
	StageNew      Stage = iota // Never reviewed
	StageLearning              // Streak still inside the fixed early intervals
	StageYoung                 // Interval below 21 days
	StageMature                // Interval of 21 days or more
)

var stageNames = [...]string{
	StageNew:      "new",
	StageLearning: "learning",
	StageYoung:    "young",
	StageMature:   "mature",
}

// String returns the stage name ("new", "learning", "young", "mature").
func (s Stage) String() string {
	if s < StageNew || s > StageMature {
		return "unknown"
	}
	return stageNames[s]
}

// DefaultEaseFactor is the SM-2 starting ease for a name never reviewed.
const DefaultEaseFactor = 2.5

// MinEaseFactor is the SM-2 floor below which ease never drops.
const MinEaseFactor = 1.3

// MatureIntervalDays is the interval at which a state counts as mature.
const MatureIntervalDays = 21

// MemoryState tracks a user's recall history for a single name using the
// SM-2 algorithm. One record exists per (user, name) pair, created lazily on
// first exposure and mutated only by the spaced repetition scheduler.
type MemoryState struct {
	ID                 int64      `json:"id" db:"id"`
	UserID             int64      `json:"user_id" db:"user_id"`
	NameID             int64      `json:"name_id" db:"name_id"`
	Interval           int        `json:"interval" db:"interval"`                       // Days until the next scheduled review
	EaseFactor         float64    `json:"ease_factor" db:"ease_factor"`                 // SM-2 EF parameter, >= 1.3
	ConsecutiveCorrect int        `json:"consecutive_correct" db:"consecutive_correct"` // Quality >= 3 streak since last lapse
	LastQuality        int        `json:"last_quality" db:"last_quality"`
	LastReviewed       *time.Time `json:"last_reviewed" db:"last_reviewed"` // nil before first review
	NextReview         time.Time  `json:"next_review" db:"next_review"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}

// Stage derives the maturity bucket from the numeric fields.
func (m MemoryState) Stage() Stage {
	switch {
	case m.LastReviewed == nil:
		return StageNew
	case m.ConsecutiveCorrect < 3:
		return StageLearning
	case m.Interval < MatureIntervalDays:
		return StageYoung
	default:
		return StageMature
	}
}

// Due reports whether the state is due for review at the given time.
func (m MemoryState) Due(now time.Time) bool {
	return !m.NextReview.After(now)
}

// IsMastered reports whether the name can be considered learned: a long
// streak, a comfortable last recall and a mature interval.
func (m MemoryState) IsMastered() bool {
	return m.ConsecutiveCorrect >= 5 && m.LastQuality >= 4 && m.Interval >= 30
}
