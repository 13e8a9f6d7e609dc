package models

import "time"

// Name represents one of the divine names to be learned.
// Reference data: created at catalog load and never mutated afterwards.
type Name struct {
	ID              int64     `json:"id" db:"id"`
	Number          int       `json:"number" db:"number"` // Position in the traditional list (1-99)
	Transliteration string    `json:"transliteration" db:"transliteration"`
	Arabic          string    `json:"arabic" db:"arabic"`
	Meaning         string    `json:"meaning" db:"meaning"`
	Aliases         []string  `json:"aliases" db:"-"` // Alternative transliterations accepted as answers
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Candidates returns every string an answer may be matched against:
// the canonical transliteration plus all aliases.
func (n Name) Candidates() []string {
	out := make([]string, 0, len(n.Aliases)+1)
	out = append(out, n.Transliteration)
	out = append(out, n.Aliases...)
	return out
}
