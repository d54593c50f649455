package engine

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/snakeio/constants"
)

// Particle is one explosion fragment in logical pixel space
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
}

// Alive reports whether the particle still moves and draws
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Explosion is the transient burst played after a bomb is eaten
type Explosion struct {
	CenterX, CenterY float64
	Frame            int
	MaxFrames        int
	Particles        []Particle
}

// NewExplosion bursts particles from the pixel center of cell
func NewExplosion(r *rand.Rand, cell Point) Explosion {
	cx := float64(cell.X*constants.TileSize) + constants.TileSize/2
	cy := float64(cell.Y*constants.TileSize) + constants.TileSize/2

	particles := make([]Particle, constants.ExplosionParticleCount)
	for i := range particles {
		angle := r.Float64() * math.Pi * 2
		speed := constants.ExplosionSpeedMin + r.Float64()*constants.ExplosionSpeedRange
		particles[i] = Particle{
			X:    cx,
			Y:    cy,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle) * speed,
			Life: constants.ExplosionLifeMin + r.IntN(constants.ExplosionLifeRange),
		}
	}

	return Explosion{
		CenterX:   cx,
		CenterY:   cy,
		MaxFrames: constants.ExplosionMaxFrames,
		Particles: particles,
	}
}

// Step advances the frame counter and integrates every live particle under gravity
func (e *Explosion) Step() {
	e.Frame++
	for i := range e.Particles {
		p := &e.Particles[i]
		if !p.Alive() {
			continue
		}
		p.X += p.VX
		p.Y += p.VY
		p.VY += constants.ExplosionGravity
		p.Life--
	}
}

// Done reports whether the frame budget is exhausted
func (e *Explosion) Done() bool {
	return e.Frame > e.MaxFrames
}

// Progress returns the elapsed fraction of the frame budget in [0, 1]
func (e *Explosion) Progress() float64 {
	if e.MaxFrames <= 0 {
		return 1
	}
	return min(1, float64(e.Frame)/float64(e.MaxFrames))
}

// clone copies the particle slice so snapshots stay immutable
func (e *Explosion) clone() Explosion {
	c := *e
	c.Particles = make([]Particle, len(e.Particles))
	copy(c.Particles, e.Particles)
	return c
}
