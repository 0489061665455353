package draw

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

var tcellStyles = map[Class]tcell.Style{
	ClassEmpty:      tcell.StyleDefault,
	ClassAsteroid:   tcell.StyleDefault.Foreground(tcell.ColorGray),
	ClassProjectile: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	ClassShip:       tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	ClassBanner:     tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
}

// TcellSurface draws frames onto a tcell screen. The play area starts at the
// top-left cell; the input line sits below it.
type TcellSurface struct {
	mu     sync.Mutex
	screen tcell.Screen
	width  int
	height int
}

// NewTcellSurface wraps an initialised screen for a play area of width x height.
func NewTcellSurface(screen tcell.Screen, width, height int) *TcellSurface {
	return &TcellSurface{
		screen: screen,
		width:  width,
		height: height,
	}
}

// Present copies the frame into the screen and shows it.
func (s *TcellSurface) Present(f *Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			cell := f.At(x, y)
			s.screen.SetContent(x, y, cell.Rune, nil, tcellStyles[cell.Class])
		}
	}
	s.screen.Show()
	return nil
}

// ShowInput draws the input line and moves the cursor onto it.
func (s *TcellSurface) ShowInput(line string, cursor int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := InputRow(s.height)
	x := 0
	for _, r := range line {
		s.screen.SetContent(x, row, r, nil, tcell.StyleDefault)
		x++
	}
	for ; x < s.width; x++ {
		s.screen.SetContent(x, row, ' ', nil, tcell.StyleDefault)
	}
	s.screen.ShowCursor(cursor, row)
	s.screen.Show()
	return nil
}
