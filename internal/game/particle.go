package game

import "math"

type ParticleKind uint8

const (
	ParticleExhaust ParticleKind = iota
	ParticleDust
	ParticleSpark
)

// Particle lives in the virtual frame so trails stay pinned to the world as
// the view rotates underneath them.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Size    float64
	Life    float64
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

// ParticleSystem is a fixed-capacity pool with circular overwrite: when
// full, new particles replace the oldest slots.
type ParticleSystem struct {
	Max    int
	P      []Particle
	seed   uint64
	ovrIdx int

	exhaustAcc float64
	dustAcc    float64
	spawnSeq   uint64
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if seed == 0 {
		seed = 1
	}
	return &ParticleSystem{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		seed: seed,
	}
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

func (ps *ParticleSystem) Update(dt float64) {
	for i := range ps.P {
		p := &ps.P[i]
		if p.Life >= p.MaxLife {
			continue
		}
		p.Life += dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
	}
}

// SpawnExhaust emits engine trail behind the ship, rate scaled by speed and
// widened by turn rate so hard corrections read visually.
func (ps *ParticleSystem) SpawnExhaust(nav *Nav, dt float64) {
	rate := 60.0 + 300.0*math.Abs(nav.TurnRate)
	ps.exhaustAcc += rate * dt
	count := int(ps.exhaustAcc)
	if count <= 0 {
		return
	}
	ps.exhaustAcc -= float64(count)

	back := nav.ShipHeading + math.Pi
	for i := 0; i < count; i++ {
		ps.spawnSeq++
		r := NewRand(ps.seed ^ ps.spawnSeq*0x9E3779B185EBCA87)
		spread := r.RangeF(-0.35, 0.35)
		sp := r.RangeF(18.0, 40.0)
		ps.Add(Particle{
			X:       nav.ShipPos.X + math.Sin(back)*2.0,
			Y:       nav.ShipPos.Y + math.Cos(back)*2.0,
			VX:      math.Sin(back+spread) * sp,
			VY:      math.Cos(back+spread) * sp,
			Size:    r.RangeF(0.8, 1.8),
			MaxLife: r.RangeF(0.25, 0.65),
			Col:     lerpRGB(Palette.Exhaust, Palette.ShipTrail, r.Float64()),
			Kind:    ParticleExhaust,
		})
	}
}

// SpawnDust seeds slow ambient motes around the ship for a sense of speed.
func (ps *ParticleSystem) SpawnDust(nav *Nav, dt float64) {
	ps.dustAcc += 22.0 * dt
	count := int(ps.dustAcc)
	if count <= 0 {
		return
	}
	ps.dustAcc -= float64(count)

	for i := 0; i < count; i++ {
		ps.spawnSeq++
		r := NewRand(ps.seed ^ ps.spawnSeq*0xC2B2AE3D27D4EB4F)
		ahead := r.RangeF(20.0, 150.0)
		side := r.RangeF(-80.0, 80.0)
		ps.Add(Particle{
			X:       nav.ShipPos.X + math.Sin(nav.ShipHeading)*ahead + math.Cos(nav.ShipHeading)*side,
			Y:       nav.ShipPos.Y + math.Cos(nav.ShipHeading)*ahead - math.Sin(nav.ShipHeading)*side,
			VX:      r.RangeF(-3.0, 3.0),
			VY:      r.RangeF(-3.0, 3.0),
			Size:    r.RangeF(0.4, 1.0),
			MaxLife: r.RangeF(0.8, 2.0),
			Col:     RGB{R: 150, G: 140, B: 170},
			Kind:    ParticleDust,
		})
	}
}

// SpawnAlertSparks bursts sparks around the ship; fired on alert escalation.
func (ps *ParticleSystem) SpawnAlertSparks(nav *Nav, count int) {
	for i := 0; i < count; i++ {
		ps.spawnSeq++
		r := NewRand(ps.seed ^ ps.spawnSeq*0xBF58476D1CE4E5B9)
		ang := r.RangeF(0, 2*math.Pi)
		sp := r.RangeF(25.0, 70.0)
		ps.Add(Particle{
			X:       nav.ShipPos.X,
			Y:       nav.ShipPos.Y,
			VX:      math.Sin(ang) * sp,
			VY:      math.Cos(ang) * sp,
			Size:    r.RangeF(0.6, 1.4),
			MaxLife: r.RangeF(0.3, 0.8),
			Col:     Palette.HazardHot,
			Kind:    ParticleSpark,
		})
	}
}

// RenderData splits particles into glow (additive) and normal buffers in
// scene-frame coordinates. Format: [x, y, size, r, g, b, a, rot] per sprite.
func (ps *ParticleSystem) RenderData(origin Vec2, camHeading float64, glowBuf, normBuf []float32) ([]float32, []float32) {
	glowBuf = glowBuf[:0]
	normBuf = normBuf[:0]

	for i := range ps.P {
		p := &ps.P[i]
		if p.Life >= p.MaxLife || p.MaxLife <= 0 {
			continue
		}
		t := p.Life / p.MaxLife

		a := 1.0 - t
		if p.Kind == ParticleDust {
			a *= 0.5
		}
		if a <= 0 {
			continue
		}

		sc := SceneFromVirtual(Vec2{X: p.X, Y: p.Y}, origin, camHeading)

		rc := float32(p.Col.R) / 255.0
		gc := float32(p.Col.G) / 255.0
		bc := float32(p.Col.B) / 255.0
		ac := float32(a)

		if p.Kind == ParticleExhaust || p.Kind == ParticleSpark {
			// Additive: pre-multiply by alpha.
			rc *= ac
			gc *= ac
			bc *= ac
			glowBuf = append(glowBuf, float32(sc.X), float32(-sc.Y), float32(p.Size), rc, gc, bc, ac, 0)
		} else {
			normBuf = append(normBuf, float32(sc.X), float32(-sc.Y), float32(p.Size), rc, gc, bc, ac, 0)
		}
	}
	return glowBuf, normBuf
}
