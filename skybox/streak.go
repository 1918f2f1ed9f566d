package skybox

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/orrery/geom"
	"github.com/gogpu/orrery/noise"
)

const streakSalt = 0x7f4a7c15

// streak is a short bright segment moving along a great circle. The head
// starts at origin at the beginning of each cycle and advances toward
// tangent.
type streak struct {
	origin  geom.Vec3
	tangent geom.Vec3
	normal  geom.Vec3
	offset  float32 // cycle phase offset in [0, 1)
}

func newStreak(seed uint32, i int32) streak {
	s := seed ^ streakSalt
	z := noise.Signed(noise.Hash(s, i, 0, 0))
	phi := noise.Hash(s, i, 1, 0) * 2 * math32.Pi
	r := math32.Sqrt(max(0, 1-z*z))
	sinPhi, cosPhi := math32.Sincos(phi)
	origin := geom.XYZ(r*cosPhi, z, r*sinPhi).NormalizeOr(geom.XYZ(1, 0, 0))

	b := geom.NewBasis(origin, geom.XYZ(0, 1, 0))
	sinA, cosA := math32.Sincos(noise.Hash(s, i, 2, 0) * 2 * math32.Pi)
	tangent := b.Right.Mul(cosA).Add(b.Up.Mul(sinA)).Normalize()

	return streak{
		origin:  origin,
		tangent: tangent,
		normal:  origin.Cross(tangent).Normalize(),
		offset:  noise.Hash(s, i, 3, 0),
	}
}

// phase returns the position of t within the streak's cycle in [0, 1).
func (s *streak) phase(t, cycle float32) float32 {
	x := t/cycle + s.offset
	return x - math32.Floor(x)
}

// headAngle returns the angle of the head along the great circle and
// whether the streak is visible at t.
func (g *Generator) headAngle(s *streak, t float32) (float32, bool) {
	p := s.phase(t, g.cfg.CycleLength)
	if p >= g.cfg.VisibleFraction {
		return 0, false
	}
	return p / g.cfg.VisibleFraction * g.cfg.StreakTravel, true
}

// point returns the direction at angle a along the streak's circle.
func (s *streak) point(a float32) geom.Vec3 {
	sin, cos := math32.Sincos(a)
	return s.origin.Mul(cos).Add(s.tangent.Mul(sin))
}

// streakIntensity returns the brightest streak contribution at d in [0, 1].
func (g *Generator) streakIntensity(d geom.Vec3, t float32) float32 {
	var best float32
	for i := range g.streaks {
		s := &g.streaks[i]
		head, ok := g.headAngle(s, t)
		if !ok {
			continue
		}
		off := math32.Abs(d.Dot(s.normal))
		if off >= g.cfg.StreakWidth {
			continue
		}
		along := math32.Atan2(d.Dot(s.tangent), d.Dot(s.origin))
		behind := head - along
		if behind < 0 || behind > g.cfg.StreakLength {
			continue
		}
		k := 1 - behind/g.cfg.StreakLength
		best = max(best, k*k*(1-off/g.cfg.StreakWidth))
	}
	return best
}
