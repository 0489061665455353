// Package world owns the simulated entities and enforces their lifecycle:
// ship wrap-around, expiry of everything else, spawn cadence, and collisions.
package world

import (
	"math"

	"github.com/tomz197/textasteroids/internal/config"
	"github.com/tomz197/textasteroids/internal/object"
	"github.com/tomz197/textasteroids/internal/physics"
)

// Status is the ship's lifecycle state.
type Status int

const (
	StatusFlying    Status = iota // Ship is controllable
	StatusDestroyed               // Ship hit an asteroid; terminal
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusFlying:
		return "flying"
	case StatusDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// World holds the simulation state of one game.
// It is not safe for concurrent use; the caller serialises access.
type World struct {
	Screen      object.Screen
	Ship        *object.Ship
	Asteroids   []*object.Asteroid
	Projectiles []*object.Projectile

	status          Status
	tick            uint64
	spawner         *object.AsteroidSpawner
	projectileSpeed float64
	damage          int

	// Reused each tick for broad-phase collision detection
	asteroidGrid *physics.SpatialGrid
}

// Snapshot is an immutable copy of the world for rendering.
// Entities marked destroyed are left out.
type Snapshot struct {
	Screen      object.Screen
	Ship        object.Ship
	Asteroids   []object.Asteroid
	Projectiles []object.Projectile
	Status      Status
	Tick        uint64
}

// GameOver reports whether the snapshot was taken after the ship was destroyed.
func (s Snapshot) GameOver() bool {
	return s.Status == StatusDestroyed
}

// New creates a world from validated settings.
func New(cfg config.Game) *World {
	screen := object.NewScreen(cfg.Width, cfg.Height)

	// Cell size must cover the largest interaction distance (asteroid + projectile).
	cellSize := int(math.Ceil(cfg.AsteroidRadius + object.ProjectileRadius))

	return &World{
		Screen: screen,
		Ship:   object.NewShip(screen),
		spawner: object.NewAsteroidSpawner(object.SpawnerOptions{
			TicksPerAsteroid: cfg.TicksPerAsteroid,
			Radius:           cfg.AsteroidRadius,
			HealthMin:        cfg.HealthMin,
			HealthMax:        cfg.HealthMax,
			Seed:             cfg.Seed,
		}),
		projectileSpeed: cfg.ProjectileSpeed,
		damage:          cfg.ProjectileDamage,
		asteroidGrid:    physics.NewSpatialGrid(cfg.Width, cfg.Height, cellSize),
	}
}

// Status returns the ship's lifecycle state.
func (w *World) Status() Status {
	return w.status
}

// GameOver reports whether the ship has been destroyed.
func (w *World) GameOver() bool {
	return w.status == StatusDestroyed
}

// Tick returns the number of completed Step calls.
func (w *World) Tick() uint64 {
	return w.tick
}

// StepResult reports what happened during one Step.
type StepResult struct {
	Spawned       *object.Asteroid // Asteroid added by the spawner, if any
	ShipDestroyed bool             // Ship was destroyed during this step
	Hits          int              // Projectile-asteroid overlaps detected
}

// Step runs one simulation tick in its fixed order:
// projectiles, asteroids and spawner, ship and its collisions, then
// projectile collisions. Entities marked by the last stage are removed by the
// sweeps of the following Step.
func (w *World) Step() StepResult {
	var res StepResult

	w.AdvanceProjectiles()
	res.Spawned = w.AdvanceAsteroids()

	w.AdvanceShip()
	res.ShipDestroyed = w.CheckShipCollisions()

	res.Hits = w.CheckProjectileCollisions()

	w.tick++
	return res
}

// AdvanceProjectiles moves every live projectile and sweeps the expired ones.
func (w *World) AdvanceProjectiles() {
	for _, p := range w.Projectiles {
		if !p.IsDestroyed() {
			p.Step()
		}
	}
	w.Projectiles = sweep(w.Projectiles, w.Screen)
}

// AdvanceAsteroids moves every live asteroid, sweeps the expired ones and
// lets the spawner add a new one. Returns the spawned asteroid, if any.
func (w *World) AdvanceAsteroids() *object.Asteroid {
	for _, a := range w.Asteroids {
		if !a.IsDestroyed() {
			a.Step()
		}
	}
	w.Asteroids = sweep(w.Asteroids, w.Screen)

	spawned := w.spawner.Update(w.Screen)
	if spawned != nil {
		w.Asteroids = append(w.Asteroids, spawned)
	}
	return spawned
}

// AdvanceShip moves the ship one tick. A destroyed ship stays put.
func (w *World) AdvanceShip() {
	if w.GameOver() {
		return
	}
	w.Ship.Step(w.Screen)
}

// Fire launches a projectile from the ship along its heading.
func (w *World) Fire() *object.Projectile {
	p := w.Ship.Fire(w.projectileSpeed)
	w.Projectiles = append(w.Projectiles, p)
	return p
}

// Thrust changes the ship velocity by (dx, dy).
func (w *World) Thrust(dx, dy int) {
	w.Ship.Thrust(dx, dy)
}

// Turn changes the ship angular velocity by delta radians per tick.
func (w *World) Turn(delta float64) {
	w.Ship.Turn(delta)
}

// AddAsteroid places an asteroid directly into the world.
func (w *World) AddAsteroid(a *object.Asteroid) {
	w.Asteroids = append(w.Asteroids, a)
}

// Snapshot copies the live state for rendering.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Screen:      w.Screen,
		Ship:        *w.Ship,
		Asteroids:   make([]object.Asteroid, 0, len(w.Asteroids)),
		Projectiles: make([]object.Projectile, 0, len(w.Projectiles)),
		Status:      w.status,
		Tick:        w.tick,
	}
	for _, a := range w.Asteroids {
		if !a.IsDestroyed() {
			snap.Asteroids = append(snap.Asteroids, *a)
		}
	}
	for _, p := range w.Projectiles {
		if !p.IsDestroyed() {
			snap.Projectiles = append(snap.Projectiles, *p)
		}
	}
	return snap
}

// bounded is an entity removed once it leaves the play area or is destroyed.
type bounded interface {
	object.Destructible
	GetPosition() object.Point
}

// sweep drops destroyed and out-of-bounds entities in place.
func sweep[T bounded](items []T, screen object.Screen) []T {
	kept := items[:0] // reuse backing array
	for _, it := range items {
		if it.IsDestroyed() || !screen.Contains(it.GetPosition()) {
			continue
		}
		kept = append(kept, it)
	}
	clear(items[len(kept):])
	return kept
}
