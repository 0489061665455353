package world

import (
	"github.com/tomz197/textasteroids/internal/object"
	"github.com/tomz197/textasteroids/internal/physics"
)

// CheckShipCollisions destroys the ship if it overlaps any live asteroid.
// Returns true only on the tick the ship is destroyed.
func (w *World) CheckShipCollisions() bool {
	if w.GameOver() {
		return false
	}

	pos := w.Ship.GetPosition()
	for _, a := range w.Asteroids {
		if a.IsDestroyed() {
			continue
		}
		if physics.CirclesOverlap(pos, physics.CellRadius, a.GetPosition(), a.GetRadius()) {
			w.status = StatusDestroyed
			return true
		}
	}
	return false
}

// CheckProjectileCollisions marks every overlapping live projectile/asteroid
// pair. The projectile is always consumed; the asteroid is destroyed outright
// or damaged, depending on the configured projectile damage.
// Marked entities stay in place until the next sweep. Returns the number of
// overlapping pairs.
func (w *World) CheckProjectileCollisions() int {
	if len(w.Projectiles) == 0 || len(w.Asteroids) == 0 {
		return 0
	}

	populateGrid(w.Asteroids, w.asteroidGrid)

	hits := 0
	for _, p := range w.Projectiles {
		if p.IsDestroyed() {
			continue
		}
		pos := p.GetPosition()
		hit := false
		w.asteroidGrid.QueryAround(pos, func(i int) bool {
			a := w.Asteroids[i]
			if a.IsDestroyed() {
				return false
			}
			if physics.CirclesOverlap(pos, object.ProjectileRadius, a.GetPosition(), a.GetRadius()) {
				a.Damage(w.damage)
				hit = true
				hits++
			}
			return false // one projectile may hit several asteroids
		})
		if hit {
			p.MarkDestroyed()
		}
	}
	return hits
}

// populateGrid clears and re-inserts all live asteroids into the spatial grid.
func populateGrid(asteroids []*object.Asteroid, grid *physics.SpatialGrid) {
	grid.Clear()
	for i, a := range asteroids {
		if !a.IsDestroyed() {
			grid.Insert(a.GetPosition(), i)
		}
	}
}
