package object

import "math"

// RotationStep is the angular velocity change applied by one turn command.
const RotationStep = math.Pi / 8

// Ship is the player-controlled spaceship.
type Ship struct {
	Position        Point   // Grid cell occupied by the ship
	Velocity        Point   // Cells per tick, accumulated without decay
	Rotation        float64 // Radians in (-π, π]; -π/2 points up
	AngularVelocity float64 // Radians per tick
}

// NewShip creates a ship at the centre of the play area, pointing up.
func NewShip(screen Screen) *Ship {
	return &Ship{
		Position: screen.Center(),
		Rotation: -math.Pi / 2,
	}
}

// Step advances the ship by one tick: translate, wrap, rotate.
func (s *Ship) Step(screen Screen) {
	s.Position = screen.Wrap(s.Position.Add(s.Velocity))
	s.Rotation = NormalizeAngle(s.Rotation + s.AngularVelocity)
}

// Thrust adds dx, dy to the ship velocity.
func (s *Ship) Thrust(dx, dy int) {
	s.Velocity.X += dx
	s.Velocity.Y += dy
}

// Turn adds delta to the ship angular velocity.
func (s *Ship) Turn(delta float64) {
	s.AngularVelocity += delta
}

// Fire creates a projectile at the ship position heading along its rotation.
func (s *Ship) Fire(speed float64) *Projectile {
	return NewProjectile(s.Position, s.Rotation, speed)
}

// GetPosition returns the ship's cell.
func (s *Ship) GetPosition() Point {
	return s.Position
}

// NormalizeAngle maps an angle into (-π, π].
// Angles within one turn of the range take a single 2π correction.
func NormalizeAngle(a float64) float64 {
	if a > -math.Pi && a <= math.Pi {
		return a
	}
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
