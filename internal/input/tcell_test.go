package input

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Key
		ok   bool
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), Key{KeyRune, 'd'}, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Key{Kind: KeyEnter}, true},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), Key{Kind: KeyBackspace}, true},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), Key{Kind: KeyDelete}, true},
		{"home", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), Key{Kind: KeyHome}, true},
		{"end", tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone), Key{Kind: KeyEnd}, true},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Key{Kind: KeyLeft}, true},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), Key{Kind: KeyRight}, true},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Key{Kind: KeyInterrupt}, true},
		{"up is unmapped", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Key{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FromTcell(tc.ev)
			if got != tc.want || ok != tc.ok {
				t.Errorf("FromTcell = %+v, %v; want %+v, %v", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestTcellSource(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	src := NewTcellSource(screen)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	k, err := src.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if k != (Key{Kind: KeyRune, Rune: 'q'}) {
		t.Errorf("Next = %+v, want rune q (unmapped keys skipped)", k)
	}

	screen.Fini()
	if _, err := src.Next(ctx); !errors.Is(err, ErrClosed) {
		t.Errorf("Next after Fini = %v, want ErrClosed", err)
	}
}
