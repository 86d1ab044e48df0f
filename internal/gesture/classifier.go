package gesture

import (
	"errors"
	"math"
)

// DragVector is the pointer displacement since the drag began.
type DragVector struct {
	DX float64
	DY float64
}

// Thresholds configures the classifier.
type Thresholds struct {
	// Horizontal is the |DX| that must be strictly exceeded for accept/reject.
	Horizontal float64

	// Vertical is the |DY| that must be strictly exceeded (upward) for archive.
	Vertical float64

	// RotationFactor converts DX into a tilt angle in degrees.
	RotationFactor float64
}

// DefaultThresholds returns the stock thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{Horizontal: 100, Vertical: 100, RotationFactor: 0.1}
}

// ErrInvalidThresholds is returned by New for non-positive thresholds.
var ErrInvalidThresholds = errors.New("gesture thresholds must be positive and finite")

// Hint is presentation feedback for an in-progress drag.
type Hint struct {
	Rotation float64
	Offset   DragVector

	// Leaning is what a release at Offset would produce; valid only if Armed.
	Leaning Classification
	Armed   bool
}

// rule is one entry in the ordered classification table.
type rule struct {
	name  string
	match func(t Thresholds, v DragVector) bool
	class Classification
}

// rules are evaluated in order; the first match wins. Upward drags take
// priority over horizontal ones.
var rules = []rule{
	{
		name:  "up",
		match: func(t Thresholds, v DragVector) bool { return math.Abs(v.DY) > t.Vertical && v.DY < 0 },
		class: Archive,
	},
	{
		name:  "right",
		match: func(t Thresholds, v DragVector) bool { return math.Abs(v.DX) > t.Horizontal && v.DX > 0 },
		class: Accept,
	},
	{
		name:  "left",
		match: func(t Thresholds, v DragVector) bool { return math.Abs(v.DX) > t.Horizontal && v.DX < 0 },
		class: Reject,
	},
}

// Classifier maps drag vectors to classifications. It holds no mutable
// state and is safe for concurrent use.
type Classifier struct {
	t Thresholds
}

// New creates a classifier with the given thresholds.
func New(t Thresholds) (*Classifier, error) {
	for _, f := range []float64{t.Horizontal, t.Vertical} {
		if !(f > 0) || math.IsInf(f, 0) {
			return nil, ErrInvalidThresholds
		}
	}
	if math.IsNaN(t.RotationFactor) || math.IsInf(t.RotationFactor, 0) {
		return nil, ErrInvalidThresholds
	}
	return &Classifier{t: t}, nil
}

// Default returns a classifier using DefaultThresholds.
func Default() *Classifier {
	return &Classifier{t: DefaultThresholds()}
}

// Thresholds returns the classifier's configuration.
func (c *Classifier) Thresholds() Thresholds { return c.t }

// OnDragUpdate computes display feedback for a drag in progress.
func (c *Classifier) OnDragUpdate(v DragVector) Hint {
	h := Hint{Offset: v}
	if finite(v) {
		h.Rotation = v.DX * c.t.RotationFactor
	}
	h.Leaning, h.Armed = c.OnDragEnd(v)
	return h
}

// OnDragEnd classifies a released drag. The second result is false when
// the gesture is cancelled (below thresholds or not a finite vector).
func (c *Classifier) OnDragEnd(v DragVector) (Classification, bool) {
	if !finite(v) {
		return 0, false
	}
	for _, r := range rules {
		if r.match(c.t, v) {
			return r.class, true
		}
	}
	return 0, false
}

func finite(v DragVector) bool {
	return !math.IsNaN(v.DX) && !math.IsNaN(v.DY) && !math.IsInf(v.DX, 0) && !math.IsInf(v.DY, 0)
}
