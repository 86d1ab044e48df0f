package gesture

import (
	"fmt"
	"strings"
)

// Classification is the discrete outcome of a resolved gesture.
type Classification int

const (
	Reject  Classification = iota + 1 // Not interested / skip
	Accept                            // Understood / liked
	Archive                           // Saved for later study
)

// String returns the lower-case name of the classification.
func (c Classification) String() string {
	switch c {
	case Reject:
		return "reject"
	case Accept:
		return "accept"
	case Archive:
		return "archive"
	default:
		return fmt.Sprintf("classification(%d)", int(c))
	}
}

// Valid reports whether c is one of the three known classifications.
func (c Classification) Valid() bool {
	return c == Reject || c == Accept || c == Archive
}

// ParseClassification accepts the canonical names plus short aliases.
func ParseClassification(s string) (Classification, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reject", "r", "skip", "left":
		return Reject, nil
	case "accept", "a", "love", "right":
		return Accept, nil
	case "archive", "s", "save", "up":
		return Archive, nil
	default:
		return 0, fmt.Errorf("unknown classification %q", s)
	}
}

// Tap resolves a direct command (button press, key) without thresholds.
func Tap(c Classification) (Classification, bool) {
	if !c.Valid() {
		return 0, false
	}
	return c, true
}
