package models

import (
	"fmt"
	"time"
)

// SessionItemType classifies why an item was placed into a session.
type SessionItemType int

const (
	ItemReview        SessionItemType = iota // Scheduled review of a seen name
	ItemNew                                  // First exposure to a name
	ItemReinforcement                        // Extra practice for a weak name
)

var sessionItemTypeNames = [...]string{
	ItemReview:        "review",
	ItemNew:           "new",
	ItemReinforcement: "reinforcement",
}

// String returns the type name ("review", "new", "reinforcement").
// For invalid values it returns "SessionItemType(n)".
func (t SessionItemType) String() string {
	if t < ItemReview || t > ItemReinforcement {
		return fmt.Sprintf("SessionItemType(%d)", int(t))
	}
	return sessionItemTypeNames[t]
}

// SessionItem is one ordered entry of a composed practice session. It lives
// only for the duration of the session and is never persisted; only the
// MemoryState updates it leads to are written back.
type SessionItem struct {
	Name     Name
	State    MemoryState // Snapshot at composition time; zero-valued for new items
	Type     SessionItemType
	Priority int // Higher is shown earlier within the same type
}

// SessionResult summarizes a completed practice session. Written once at
// session end, never mutated.
type SessionResult struct {
	ID                 string    `json:"id" db:"id"` // UUID
	UserID             int64     `json:"user_id" db:"user_id"`
	ReviewCount        int       `json:"review_count" db:"review_count"`
	NewCount           int       `json:"new_count" db:"new_count"`
	ReinforcementCount int       `json:"reinforcement_count" db:"reinforcement_count"`
	CorrectCount       int       `json:"correct_count" db:"correct_count"`
	DurationSeconds    int       `json:"duration_seconds" db:"duration_seconds"`
	CompletedAt        time.Time `json:"completed_at" db:"completed_at"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}
