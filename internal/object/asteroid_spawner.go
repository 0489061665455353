package object

import "math/rand"

// Spawner defaults.
const (
	DefaultTicksPerAsteroid  = 5
	DefaultAsteroidRadius    = 2.0
	DefaultAsteroidHealthMin = 10
	DefaultAsteroidHealthMax = 50
	asteroidMaxSpeedX        = 2
	asteroidSpeedY           = 1
)

// AsteroidSpawner drops one asteroid from the top edge every few ticks.
type AsteroidSpawner struct {
	every     int
	ticks     int
	rng       *rand.Rand
	radius    float64
	healthMin int
	healthMax int
}

// SpawnerOptions configures an AsteroidSpawner.
type SpawnerOptions struct {
	TicksPerAsteroid int
	Radius           float64
	HealthMin        int
	HealthMax        int
	Seed             int64
}

// NewAsteroidSpawner creates a spawner. Zero option fields take the defaults.
// The same seed always yields the same asteroid field.
func NewAsteroidSpawner(opts SpawnerOptions) *AsteroidSpawner {
	s := &AsteroidSpawner{
		every:     opts.TicksPerAsteroid,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		radius:    opts.Radius,
		healthMin: opts.HealthMin,
		healthMax: opts.HealthMax,
	}
	if s.every < 1 {
		s.every = DefaultTicksPerAsteroid
	}
	if s.radius <= 0 {
		s.radius = DefaultAsteroidRadius
	}
	if s.healthMin == 0 && s.healthMax == 0 {
		s.healthMin = DefaultAsteroidHealthMin
		s.healthMax = DefaultAsteroidHealthMax
	}
	if s.healthMax < s.healthMin {
		s.healthMax = s.healthMin
	}
	return s
}

// Update advances the spawn cadence by one tick. It returns a new asteroid on
// the first call and on every TicksPerAsteroid-th call after it, nil otherwise.
func (s *AsteroidSpawner) Update(screen Screen) *Asteroid {
	var asteroid *Asteroid
	if s.ticks == 0 {
		x := s.rng.Intn(screen.Width + 1) // top edge, right border included
		vx := s.rng.Intn(2*asteroidMaxSpeedX+1) - asteroidMaxSpeedX
		health := s.healthMin + s.rng.Intn(s.healthMax-s.healthMin+1)
		asteroid = NewAsteroid(Point{X: x, Y: 0}, Point{X: vx, Y: asteroidSpeedY}, s.radius, health)
	}
	s.ticks = (s.ticks + 1) % s.every
	return asteroid
}

// TicksPerAsteroid returns the spawn period in ticks.
func (s *AsteroidSpawner) TicksPerAsteroid() int {
	return s.every
}
