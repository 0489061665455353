// Package input decodes keyboard input and edits the command line.
package input

import (
	"context"
	"errors"
)

// KeyKind identifies a decoded key.
type KeyKind int

const (
	KeyRune      KeyKind = iota // Printable character in Key.Rune
	KeyEnter                    // Submit the line
	KeyBackspace                // Delete before the cursor
	KeyDelete                   // Delete at the cursor
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyInterrupt // Ctrl+C
)

// Key is one decoded key press.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Source yields key presses. Next blocks until a key is available, the
// context is done, or the source fails.
type Source interface {
	Next(ctx context.Context) (Key, error)
}

// ErrClosed is returned by a source whose underlying input has gone away.
var ErrClosed = errors.New("input closed")
