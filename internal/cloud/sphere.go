package cloud

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sphere is a 3D sphere primitive. Value type; freely copyable.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// BoundingSphere returns a sphere that contains every sphere in the
// set: the per-axis extremes of center +/- radius form a box, the box
// midpoint is the center, and the radius is the largest center
// distance plus that sphere's radius. This is intentionally the cheap
// box-midpoint construction rather than the minimal enclosing sphere;
// the renderer only needs a valid coarse bound, and the reference
// setup uses exactly this method. An empty set yields the zero Sphere.
func BoundingSphere(spheres []Sphere) Sphere {
	if len(spheres) == 0 {
		return Sphere{}
	}

	inf := float32(math.Inf(1))
	lo := mgl32.Vec3{inf, inf, inf}
	hi := mgl32.Vec3{-inf, -inf, -inf}
	for _, s := range spheres {
		for k := 0; k < 3; k++ {
			if s.Center[k]-s.Radius < lo[k] {
				lo[k] = s.Center[k] - s.Radius
			}
			if s.Center[k]+s.Radius > hi[k] {
				hi[k] = s.Center[k] + s.Radius
			}
		}
	}

	center := lo.Add(hi).Mul(0.5)
	var radius float32
	for _, s := range spheres {
		if d := s.Center.Sub(center).Len() + s.Radius; d > radius {
			radius = d
		}
	}
	return Sphere{Center: center, Radius: radius}
}
