package share

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/abhisek/conceptswipe/internal/session"
)

// ErrUnavailable is returned when the platform has no clipboard.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard copies session summaries to the system clipboard.
type Clipboard struct {
	write       func(string) error
	unsupported bool
}

// NewClipboard returns a Clipboard backed by the system clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll, unsupported: clipboard.Unsupported}
}

// Share copies Summary(rec) and returns the copied text.
func (c *Clipboard) Share(rec *session.Record) (string, error) {
	if c.unsupported {
		return "", ErrUnavailable
	}
	text := Summary(rec)
	if err := c.write(text); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return text, nil
}

// Available reports whether the platform has a clipboard.
func (c *Clipboard) Available() bool { return !c.unsupported }
