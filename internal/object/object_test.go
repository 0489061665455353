package object

import (
	"math"
	"testing"
)

func TestScreenWrap(t *testing.T) {
	s := NewScreen(60, 31)

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside", Point{X: 10, Y: 10}, Point{X: 10, Y: 10}},
		{"right edge", Point{X: 60, Y: 5}, Point{X: 0, Y: 5}},
		{"left edge", Point{X: -1, Y: 5}, Point{X: 59, Y: 5}},
		{"bottom edge", Point{X: 5, Y: 31}, Point{X: 5, Y: 0}},
		{"top edge", Point{X: 5, Y: -2}, Point{X: 5, Y: 29}},
		{"several widths", Point{X: 185, Y: -70}, Point{X: 5, Y: 23}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Wrap(tc.in); got != tc.want {
				t.Errorf("Wrap(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestScreenContains(t *testing.T) {
	s := NewScreen(60, 31)
	inside := []Point{{X: 0, Y: 0}, {X: 59, Y: 30}, {X: 30, Y: 15}}
	outside := []Point{{X: -1, Y: 0}, {X: 60, Y: 0}, {X: 0, Y: 31}, {X: 0, Y: -1}}

	for _, p := range inside {
		if !s.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	for _, p := range outside {
		if s.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
}

func TestShipStepWrapsToStart(t *testing.T) {
	s := NewScreen(60, 31)
	velocities := []Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -3, Y: 2}, {X: 7, Y: -5}, {X: 61, Y: 32}}

	for _, v := range velocities {
		ship := NewShip(s)
		start := ship.Position
		ship.Velocity = v

		// After width*height ticks every velocity has made whole laps.
		for i := 0; i < s.Width*s.Height; i++ {
			ship.Step(s)
			if !s.Contains(ship.Position) {
				t.Fatalf("velocity %v: position %v left the play area", v, ship.Position)
			}
		}
		if ship.Position != start {
			t.Errorf("velocity %v: position %v after full laps, want %v", v, ship.Position, start)
		}
	}
}

func TestShipRotationStaysNormalized(t *testing.T) {
	s := NewScreen(60, 31)
	ship := NewShip(s)

	for turn := 0; turn < 40; turn++ {
		if turn%3 == 2 {
			ship.Turn(-RotationStep)
		} else {
			ship.Turn(RotationStep)
		}
		ship.Step(s)
		if ship.Rotation <= -math.Pi || ship.Rotation > math.Pi {
			t.Fatalf("turn %d: rotation %v outside (-π, π]", turn, ship.Rotation)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{math.Pi + 0.5, -math.Pi + 0.5},
		{-math.Pi - 0.5, math.Pi - 0.5},
		{3*math.Pi + 0.5, -math.Pi + 0.5},
		{-7*math.Pi/2 - 0.25, math.Pi/2 - 0.25},
	}

	for _, tc := range tests {
		if got := NormalizeAngle(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestShipFireFacingUp(t *testing.T) {
	ship := NewShip(NewScreen(60, 31))
	ship.Position = Point{X: 30, Y: 16}

	p := ship.Fire(ProjectileSpeed)
	if p.Velocity != (Point{X: 0, Y: -2}) {
		t.Fatalf("projectile velocity = %v, want {0 -2}", p.Velocity)
	}
	p.Step()
	if p.Position != (Point{X: 30, Y: 14}) {
		t.Errorf("projectile position after 1 step = %v, want {30 14}", p.Position)
	}
}

func TestProjectileVelocityTruncates(t *testing.T) {
	tests := []struct {
		angle float64
		want  Point
	}{
		{0, Point{X: 2, Y: 0}},
		{math.Pi / 2, Point{X: 0, Y: 2}},
		{math.Pi, Point{X: -2, Y: 0}},
		{math.Pi / 4, Point{X: 1, Y: 1}}, // 1.414 truncates to 1
		{-3 * math.Pi / 4, Point{X: -1, Y: -1}},
	}

	for _, tc := range tests {
		p := NewProjectile(Point{}, tc.angle, ProjectileSpeed)
		if p.Velocity != tc.want {
			t.Errorf("angle %v: velocity %v, want %v", tc.angle, p.Velocity, tc.want)
		}
	}
}

func TestAsteroidDamage(t *testing.T) {
	a := NewAsteroid(Point{}, Point{}, 2, 25)
	if a.Damage(10) {
		t.Fatal("asteroid destroyed with health left")
	}
	if a.Health != 15 {
		t.Errorf("health = %d, want 15", a.Health)
	}
	if !a.Damage(15) || !a.IsDestroyed() {
		t.Error("asteroid should be destroyed at zero health")
	}

	b := NewAsteroid(Point{}, Point{}, 2, 25)
	if !b.Damage(0) {
		t.Error("zero damage should destroy outright")
	}
}

func TestAsteroidSpawnerCadence(t *testing.T) {
	s := NewScreen(60, 31)
	spawner := NewAsteroidSpawner(SpawnerOptions{Seed: 0})

	var spawnedAt []int
	for tick := 0; tick < 25; tick++ {
		a := spawner.Update(s)
		if a == nil {
			continue
		}
		spawnedAt = append(spawnedAt, tick)

		if a.Position.Y != 0 {
			t.Errorf("tick %d: y = %d, want 0", tick, a.Position.Y)
		}
		if a.Position.X < 0 || a.Position.X > s.Width {
			t.Errorf("tick %d: x = %d outside [0, %d]", tick, a.Position.X, s.Width)
		}
		if a.Velocity.Y != 1 {
			t.Errorf("tick %d: vy = %d, want 1", tick, a.Velocity.Y)
		}
		if a.Velocity.X < -2 || a.Velocity.X > 2 {
			t.Errorf("tick %d: vx = %d outside [-2, 2]", tick, a.Velocity.X)
		}
		if a.Radius != DefaultAsteroidRadius {
			t.Errorf("tick %d: radius = %v, want %v", tick, a.Radius, DefaultAsteroidRadius)
		}
		if a.Health < DefaultAsteroidHealthMin || a.Health > DefaultAsteroidHealthMax {
			t.Errorf("tick %d: health = %d outside default range", tick, a.Health)
		}
	}

	want := []int{0, 5, 10, 15, 20}
	if len(spawnedAt) != len(want) {
		t.Fatalf("spawned at ticks %v, want %v", spawnedAt, want)
	}
	for i := range want {
		if spawnedAt[i] != want[i] {
			t.Fatalf("spawned at ticks %v, want %v", spawnedAt, want)
		}
	}
}

func TestAsteroidSpawnerDeterministic(t *testing.T) {
	s := NewScreen(60, 31)
	a := NewAsteroidSpawner(SpawnerOptions{Seed: 42, TicksPerAsteroid: 1})
	b := NewAsteroidSpawner(SpawnerOptions{Seed: 42, TicksPerAsteroid: 1})

	for i := 0; i < 20; i++ {
		x, y := a.Update(s), b.Update(s)
		if x.Position != y.Position || x.Velocity != y.Velocity || x.Health != y.Health {
			t.Fatalf("spawn %d differs for equal seeds: %+v vs %+v", i, x, y)
		}
	}
}
