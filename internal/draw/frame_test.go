package draw

import (
	"math"
	"strings"
	"testing"

	"github.com/tomz197/textasteroids/internal/object"
	"github.com/tomz197/textasteroids/internal/world"
)

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
		want     rune
	}{
		{"up", -math.Pi / 2, 'A'},
		{"up, nearly diagonal", -math.Pi/2 + math.Pi/8, 'A'},
		{"down", math.Pi / 2, 'V'},
		{"left", math.Pi, '<'},
		{"left, negative side", -math.Pi + 0.1, '<'},
		{"right", 0, '>'},
		{"right, slightly down", math.Pi / 8, '>'},
		{"diagonal down-right", math.Pi / 4, 'X'},
		{"diagonal up-right", -math.Pi / 4, 'X'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShipGlyph(tc.rotation); got != tc.want {
				t.Errorf("ShipGlyph(%v) = %q, want %q", tc.rotation, got, tc.want)
			}
		})
	}
}

func TestFrameClipping(t *testing.T) {
	f := NewFrame(4, 2)
	f.Set(-1, 0, 'x', ClassShip)
	f.Set(4, 0, 'x', ClassShip)
	f.Set(0, 2, 'x', ClassShip)
	f.WriteText(2, 1, "abcdef", ClassBanner)

	if got := f.String(); got != "    \n  ab" {
		t.Errorf("frame = %q", got)
	}
	if c := f.At(10, 10); c.Rune != GlyphEmpty || c.Class != ClassEmpty {
		t.Errorf("At outside frame = %+v", c)
	}
}

func TestRenderAsteroidDisc(t *testing.T) {
	f := NewFrame(10, 10)
	snap := world.Snapshot{
		Ship:      object.Ship{Position: object.Point{X: 9, Y: 9}, Rotation: 0},
		Asteroids: []object.Asteroid{{Position: object.Point{X: 4, Y: 4}, Radius: 2}},
	}

	Render(f, snap)

	want := []string{
		"          ",
		"          ",
		"          ",
		"   ###    ",
		"   ###    ",
		"   ###    ",
		"          ",
		"          ",
		"          ",
		"         >",
	}
	for y, row := range want {
		if got := f.Row(y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}
	if c := f.At(4, 4); c.Class != ClassAsteroid {
		t.Errorf("asteroid cell class = %v", c.Class)
	}
}

func TestRenderClipsDiscAtEdge(t *testing.T) {
	f := NewFrame(5, 5)
	snap := world.Snapshot{
		Ship:      object.Ship{Position: object.Point{X: 4, Y: 4}, Rotation: math.Pi / 2},
		Asteroids: []object.Asteroid{{Position: object.Point{X: 0, Y: 0}, Radius: 2}},
	}

	Render(f, snap)

	if got := f.Row(0); got != "##   " {
		t.Errorf("row 0 = %q", got)
	}
	if got := f.Row(1); got != "##   " {
		t.Errorf("row 1 = %q", got)
	}
}

func TestRenderLayering(t *testing.T) {
	f := NewFrame(10, 10)
	snap := world.Snapshot{
		Ship:        object.Ship{Position: object.Point{X: 5, Y: 5}, Rotation: -math.Pi / 2},
		Asteroids:   []object.Asteroid{{Position: object.Point{X: 5, Y: 5}, Radius: 2}},
		Projectiles: []object.Projectile{{Position: object.Point{X: 4, Y: 5}}, {Position: object.Point{X: 0, Y: 0}}},
	}

	Render(f, snap)

	if c := f.At(5, 5); c.Rune != 'A' || c.Class != ClassShip {
		t.Errorf("ship cell = %+v, want A over the asteroid", c)
	}
	if c := f.At(4, 5); c.Rune != GlyphProjectile {
		t.Errorf("projectile cell = %q, want * over the asteroid", c.Rune)
	}
	if c := f.At(0, 0); c.Rune != GlyphProjectile || c.Class != ClassProjectile {
		t.Errorf("lone projectile cell = %+v", c)
	}
}

func TestRenderClearsPreviousFrame(t *testing.T) {
	f := NewFrame(10, 10)
	Render(f, world.Snapshot{Ship: object.Ship{Position: object.Point{X: 1, Y: 1}}})
	Render(f, world.Snapshot{Ship: object.Ship{Position: object.Point{X: 2, Y: 1}}})

	if got := f.Row(1); got != "  >       " {
		t.Errorf("row 1 = %q", got)
	}
}

func TestRenderGameOver(t *testing.T) {
	f := NewFrame(60, 31)
	snap := world.Snapshot{
		Ship:   object.Ship{Position: object.Point{X: 30, Y: 20}, Rotation: -math.Pi / 2},
		Status: world.StatusDestroyed,
	}

	Render(f, snap)

	if got := f.Row(20); strings.TrimSpace(got) != "" {
		t.Errorf("destroyed ship still drawn: %q", got)
	}
	for i, line := range Banner {
		if got := f.Row(BannerRow + i); got[:len(line)] != line {
			t.Errorf("banner row %d = %q, want %q", i, got, line)
		}
	}
	if got := f.Row(BannerRow); !strings.Contains(got, "GAME OVER") {
		t.Errorf("banner missing: %q", got)
	}
	if c := f.At(0, BannerRow); c.Class != ClassBanner {
		t.Errorf("banner class = %v", c.Class)
	}
}
