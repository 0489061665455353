package object

// Asteroid is a destructible space rock drifting through the play area.
type Asteroid struct {
	Position  Point   // Centre cell
	Velocity  Point   // Cells per tick
	Radius    float64 // Collision/draw radius, fixed at spawn
	Health    int     // Remaining hit points when damage is enabled
	destroyed bool    // Marked for removal on the next sweep
}

// NewAsteroid creates an asteroid at position p.
func NewAsteroid(p, velocity Point, radius float64, health int) *Asteroid {
	return &Asteroid{
		Position: p,
		Velocity: velocity,
		Radius:   radius,
		Health:   health,
	}
}

// Step moves the asteroid by its velocity. Asteroids never wrap.
func (a *Asteroid) Step() {
	a.Position = a.Position.Add(a.Velocity)
}

// Damage subtracts amount from the asteroid's health and marks it destroyed
// once health reaches zero. A non-positive amount destroys it outright.
// Returns true if the asteroid is now destroyed.
func (a *Asteroid) Damage(amount int) bool {
	if amount <= 0 {
		a.destroyed = true
		return true
	}
	a.Health -= amount
	if a.Health <= 0 {
		a.destroyed = true
	}
	return a.destroyed
}

// MarkDestroyed marks the asteroid for removal (implements Destructible).
func (a *Asteroid) MarkDestroyed() {
	a.destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for destruction (implements Destructible).
func (a *Asteroid) IsDestroyed() bool {
	return a.destroyed
}

// GetPosition returns the asteroid's centre.
func (a *Asteroid) GetPosition() Point {
	return a.Position
}

// GetRadius returns the asteroid's collision radius.
func (a *Asteroid) GetRadius() float64 {
	return a.Radius
}
