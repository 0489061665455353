package input

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// TcellSource converts tcell key events into keys.
type TcellSource struct {
	events chan tcell.Event
}

// NewTcellSource starts polling screen for events. Polling ends when the
// screen is finalised.
func NewTcellSource(screen tcell.Screen) *TcellSource {
	s := &TcellSource{events: make(chan tcell.Event, 64)}
	go func() {
		defer close(s.events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			s.events <- ev
		}
	}()
	return s
}

// Next returns the next key event that maps onto a Key. Other events,
// such as resizes and mouse input, are skipped.
func (s *TcellSource) Next(ctx context.Context) (Key, error) {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return Key{}, ErrClosed
			}
			if kev, isKey := ev.(*tcell.EventKey); isKey {
				if k, ok := FromTcell(kev); ok {
					return k, nil
				}
			}
		case <-ctx.Done():
			return Key{}, ctx.Err()
		}
	}
}

// FromTcell maps a tcell key event onto a Key.
func FromTcell(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return Key{Kind: KeyRune, Rune: ev.Rune()}, true
	case tcell.KeyEnter:
		return Key{Kind: KeyEnter}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Key{Kind: KeyBackspace}, true
	case tcell.KeyDelete:
		return Key{Kind: KeyDelete}, true
	case tcell.KeyLeft:
		return Key{Kind: KeyLeft}, true
	case tcell.KeyRight:
		return Key{Kind: KeyRight}, true
	case tcell.KeyHome:
		return Key{Kind: KeyHome}, true
	case tcell.KeyEnd:
		return Key{Kind: KeyEnd}, true
	case tcell.KeyCtrlC:
		return Key{Kind: KeyInterrupt}, true
	}
	return Key{}, false
}
