package gesture

import (
	"errors"
)

// ErrCaptureActive is returned by Begin while another capture is live.
var ErrCaptureActive = errors.New("gesture capture already active")

// Pad hands out at most one live Capture at a time. A Pad and its
// captures belong to the goroutine that delivers pointer events and must
// not be shared.
type Pad struct {
	cl   *Classifier
	live *Capture
}

// NewPad creates a pad backed by cl.
func NewPad(cl *Classifier) *Pad {
	return &Pad{cl: cl}
}

// Active reports whether a capture is currently held.
func (p *Pad) Active() bool {
	return p.live != nil
}

// Begin starts a capture at the given pointer position. The returned
// capture must be ended, cancelled or released; Release is safe to defer.
func (p *Pad) Begin(x, y float64) (*Capture, error) {
	if p.live != nil {
		return nil, ErrCaptureActive
	}
	c := &Capture{pad: p, originX: x, originY: y}
	p.live = c
	return c, nil
}

// Cancel releases any live capture without classifying it.
func (p *Pad) Cancel() {
	if p.live != nil {
		p.live.Release()
	}
}

func (p *Pad) release(c *Capture) {
	if p.live == c {
		p.live = nil
	}
}

// Capture is one pointer drag from press to release.
type Capture struct {
	pad              *Pad
	originX, originY float64
	last             DragVector
	done             bool
}

// Vector returns the displacement from the press position to (x, y).
func (c *Capture) Vector(x, y float64) DragVector {
	return DragVector{DX: x - c.originX, DY: y - c.originY}
}

// Move reports display feedback for the pointer at (x, y). It has no
// effect on session state.
func (c *Capture) Move(x, y float64) Hint {
	if c.done {
		return Hint{}
	}
	c.last = c.Vector(x, y)
	return c.pad.cl.OnDragUpdate(c.last)
}

// Last returns the most recent vector passed through Move or End.
func (c *Capture) Last() DragVector { return c.last }

// End classifies the drag released at (x, y) and releases the capture.
func (c *Capture) End(x, y float64) (Classification, bool) {
	if c.done {
		return 0, false
	}
	c.last = c.Vector(x, y)
	defer c.Release()
	return c.pad.cl.OnDragEnd(c.last)
}

// Cancel abandons the drag. Nothing is classified.
func (c *Capture) Cancel() {
	c.Release()
}

// Release frees the pad. Calling it more than once is harmless.
func (c *Capture) Release() {
	if c.done {
		return
	}
	c.done = true
	c.pad.release(c)
}
