package draw

import (
	"math"
	"strings"

	"github.com/tomz197/textasteroids/internal/physics"
	"github.com/tomz197/textasteroids/internal/world"
)

// Class tags a cell with what drew it, so surfaces can style it.
type Class uint8

const (
	ClassEmpty Class = iota
	ClassAsteroid
	ClassProjectile
	ClassShip
	ClassBanner
)

// Glyphs used by Render.
const (
	GlyphEmpty      = ' '
	GlyphAsteroid   = '#'
	GlyphProjectile = '*'
)

// Cell is one character position of a frame.
type Cell struct {
	Rune  rune
	Class Class
}

// BannerRow is the first frame row of the game over banner.
const BannerRow = 6

// Banner is shown in place of the ship once it has been destroyed.
var Banner = [...]string{
	"=========================GAME OVER=========================",
	"            You got blown up by an asteroid!               ",
	"                                                           ",
	"                   press [enter] to exit                   ",
}

// Frame is a character grid the size of the play area.
type Frame struct {
	width  int
	height int
	cells  []Cell // Flat slice: [y * width + x]
}

// NewFrame creates a blank frame.
func NewFrame(width, height int) *Frame {
	f := &Frame{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	f.Clear()
	return f
}

// Width returns the frame width in cells.
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in cells.
func (f *Frame) Height() int { return f.height }

// Clear resets every cell to a blank.
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = Cell{Rune: GlyphEmpty}
	}
}

// Set writes a cell. Coordinates outside the frame are clipped.
func (f *Frame) Set(x, y int, r rune, class Class) {
	if x >= 0 && x < f.width && y >= 0 && y < f.height {
		f.cells[y*f.width+x] = Cell{Rune: r, Class: class}
	}
}

// At returns the cell at (x, y), or a blank cell outside the frame.
func (f *Frame) At(x, y int) Cell {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Cell{Rune: GlyphEmpty}
	}
	return f.cells[y*f.width+x]
}

// Row returns row y as plain text.
func (f *Frame) Row(y int) string {
	var sb strings.Builder
	sb.Grow(f.width)
	for x := 0; x < f.width; x++ {
		sb.WriteRune(f.At(x, y).Rune)
	}
	return sb.String()
}

// String returns the whole frame as newline-separated rows.
func (f *Frame) String() string {
	rows := make([]string, f.height)
	for y := range rows {
		rows[y] = f.Row(y)
	}
	return strings.Join(rows, "\n")
}

// WriteText writes s starting at (x, y), clipped to the frame.
func (f *Frame) WriteText(x, y int, s string, class Class) {
	for _, r := range s {
		f.Set(x, y, r, class)
		x++
	}
}

// Render redraws the frame from a world snapshot: asteroids, then
// projectiles, then either the ship or the game over banner.
func Render(f *Frame, snap world.Snapshot) {
	f.Clear()

	for _, a := range snap.Asteroids {
		drawDisc(f, a.Position, a.Radius)
	}
	for _, p := range snap.Projectiles {
		f.Set(p.Position.X, p.Position.Y, GlyphProjectile, ClassProjectile)
	}

	if snap.GameOver() {
		for i, line := range Banner {
			f.WriteText(0, BannerRow+i, line, ClassBanner)
		}
		return
	}
	f.Set(snap.Ship.Position.X, snap.Ship.Position.Y, ShipGlyph(snap.Ship.Rotation), ClassShip)
}

// drawDisc fills every cell of the half-open square [c-r, c+r) whose
// distance from c is below r.
func drawDisc(f *Frame, c physics.Point, radius float64) {
	r := int(radius)
	for y := c.Y - r; y < c.Y+r; y++ {
		for x := c.X - r; x < c.X+r; x++ {
			if physics.Distance(physics.Point{X: x, Y: y}, c) < radius {
				f.Set(x, y, GlyphAsteroid, ClassAsteroid)
			}
		}
	}
}

// shipTolerance is how close the heading must be to an axis to pick its glyph.
const shipTolerance = math.Pi / 4

// ShipGlyph returns the character for a ship heading: A up, V down, < left,
// > right, and X when the heading is diagonal.
func ShipGlyph(rotation float64) rune {
	switch {
	case closeTo(rotation, -math.Pi/2):
		return 'A'
	case closeTo(rotation, math.Pi/2):
		return 'V'
	case closeTo(rotation, math.Pi) || closeTo(rotation, -math.Pi):
		return '<'
	case closeTo(rotation, 0):
		return '>'
	default:
		return 'X'
	}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < shipTolerance
}
