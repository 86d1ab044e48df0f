package session

import (
	"math"
	"time"

	"github.com/abhisek/conceptswipe/internal/deck"
)

// Stats holds the counters of a review session.
type Stats struct {
	Accepted       int
	Rejected       int
	Archived       int
	ElapsedSeconds int
}

// Total is the number of resolved cards.
func (s Stats) Total() int {
	return s.Accepted + s.Rejected + s.Archived
}

// Elapsed returns ElapsedSeconds as a duration.
func (s Stats) Elapsed() time.Duration {
	return time.Duration(s.ElapsedSeconds) * time.Second
}

// MasteryRate is accepted/total in [0, 1]. It is undefined (ok=false)
// when nothing has been resolved.
func (s Stats) MasteryRate() (float64, bool) {
	total := s.Total()
	if total == 0 {
		return 0, false
	}
	return float64(s.Accepted) / float64(total), true
}

// MasteryPercent is MasteryRate scaled to a rounded percentage.
func (s Stats) MasteryPercent() (int, bool) {
	rate, ok := s.MasteryRate()
	if !ok {
		return 0, false
	}
	return int(math.Round(rate * 100)), true
}

// Throughput is cards per minute. It is undefined when no time has
// elapsed or nothing has been resolved.
func (s Stats) Throughput() (float64, bool) {
	total := s.Total()
	if total == 0 || s.ElapsedSeconds <= 0 {
		return 0, false
	}
	return float64(total) / (float64(s.ElapsedSeconds) / 60), true
}

// CardsPerMinute is Throughput rounded to a whole number.
func (s Stats) CardsPerMinute() (int, bool) {
	tp, ok := s.Throughput()
	if !ok {
		return 0, false
	}
	return int(math.Round(tp)), true
}

// Record is the immutable result of a completed review session.
type Record struct {
	SessionID     string
	Stats         Stats
	TotalCards    int
	ArchivedCards []deck.Card
	CompletedAt   time.Time
}

// Retention labels how much of the session is likely to stick.
type Retention string

const (
	RetentionHigh     Retention = "High"
	RetentionGood     Retention = "Good"
	RetentionBuilding Retention = "Building"
)

// RetentionOf derives the retention label: any archived card means High,
// more accepted than rejected means Good, otherwise Building.
func RetentionOf(s Stats) Retention {
	switch {
	case s.Archived > 0:
		return RetentionHigh
	case s.Accepted > s.Rejected:
		return RetentionGood
	default:
		return RetentionBuilding
	}
}

// PerformanceMessage returns an encouragement line for a mastery percent.
func PerformanceMessage(percent int) string {
	switch {
	case percent >= 80:
		return "🔥 Outstanding! You're a learning machine!"
	case percent >= 60:
		return "🎯 Great job! You're building solid knowledge!"
	case percent >= 40:
		return "💪 Good progress! Keep up the momentum!"
	default:
		return "🌱 Every step counts! You're growing!"
	}
}
