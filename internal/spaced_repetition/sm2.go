// Package spaced_repetition implements the SM-2 review scheduling used by
// the bot. Every function is pure: state goes in, updated state comes out,
// and the current time is always supplied by the caller so reviews can be
// replayed in tests. Persistence belongs to the caller.
package spaced_repetition

import (
	"math"
	"time"

	"github.com/example/husnabot/pkg/models"
)

const (
	// PassThreshold is the lowest quality that counts as a correct recall.
	PassThreshold = 3
	// MaxInterval caps the review interval at one year.
	MaxInterval = 365
	// LapseFactor shrinks the interval on a failed recall. A soft reset:
	// long-mature names fall back part of the way instead of all the way
	// to day one.
	LapseFactor = 0.2
)

// earlyIntervals are the fixed intervals (in days) for the first three
// consecutive correct recalls. After that the interval grows by the ease
// factor.
var earlyIntervals = [...]int{1, 3, 7}

// NewState synthesizes the default memory state for a name the user has
// never reviewed. The state is due immediately.
func NewState(userID, nameID int64, now time.Time) models.MemoryState {
	return models.MemoryState{
		UserID:     userID,
		NameID:     nameID,
		Interval:   1,
		EaseFactor: models.DefaultEaseFactor,
		NextReview: now,
	}
}

// QualityFromMatch maps a free-text matcher verdict onto the 0-5 quality
// scale: a correct recall rates 4, an incorrect one 2.
func QualityFromMatch(correct bool) int {
	if correct {
		return 4
	}
	return 2
}

// Review applies one review event and returns the updated state. The input
// state is not mutated. Quality outside 0..5 is clamped to the nearest
// bound rather than rejected, so the function stays total.
func Review(state models.MemoryState, quality int, now time.Time) models.MemoryState {
	if quality < 0 {
		quality = 0
	}
	if quality > 5 {
		quality = 5
	}

	next := state
	if next.LastReviewed == nil {
		// First-ever review enters the computation with no streak.
		next.ConsecutiveCorrect = 0
	}
	next.EaseFactor = nextEase(state.EaseFactor, quality)

	if quality >= PassThreshold {
		next.ConsecutiveCorrect++
		next.Interval = successInterval(state.Interval, next.ConsecutiveCorrect, next.EaseFactor)
		next.NextReview = now.AddDate(0, 0, next.Interval)
	} else {
		next.ConsecutiveCorrect = 0
		next.Interval = lapseInterval(state.Interval)
		next.NextReview = now.AddDate(0, 0, 1)
	}

	reviewed := now
	next.LastReviewed = &reviewed
	next.LastQuality = quality
	return next
}

// nextEase applies the SM-2 ease update, floored at 1.3. Quality 5 grows
// the ease the most, quality 3 leaves it roughly flat, failures shrink it.
// A zero ease (state never initialized) starts from the default.
func nextEase(ease float64, quality int) float64 {
	if ease == 0 {
		ease = models.DefaultEaseFactor
	}
	q := float64(quality)
	ease += 0.1 - (5-q)*(0.08+(5-q)*0.02)
	if ease < models.MinEaseFactor {
		ease = models.MinEaseFactor
	}
	return ease
}

// successInterval returns the interval after a correct recall: fixed steps
// for the first three of a streak, ease-factor growth afterwards.
func successInterval(oldInterval, streak int, ease float64) int {
	if streak <= len(earlyIntervals) {
		return earlyIntervals[streak-1]
	}
	interval := int(math.Round(float64(oldInterval) * ease))
	if interval < 1 {
		interval = 1
	}
	if interval > MaxInterval {
		interval = MaxInterval
	}
	return interval
}

// lapseInterval soft-resets the interval to 20% of its value, never below
// one day.
func lapseInterval(oldInterval int) int {
	interval := int(math.Floor(float64(oldInterval) * LapseFactor))
	if interval < 1 {
		interval = 1
	}
	return interval
}
