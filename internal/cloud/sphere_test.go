package cloud

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const boundsTol = 1e-4

// TestBoundingSphereEmpty verifies an empty set yields the zero Sphere
func TestBoundingSphereEmpty(t *testing.T) {
	b := BoundingSphere(nil)
	if b.Radius != 0 || b.Center != (mgl32.Vec3{}) {
		t.Errorf("BoundingSphere(nil) = %+v, expected zero Sphere", b)
	}
}

// TestBoundingSphereSingle verifies a single sphere bounds itself
func TestBoundingSphereSingle(t *testing.T) {
	s := Sphere{Center: mgl32.Vec3{1, 2, 3}, Radius: 4}
	b := BoundingSphere([]Sphere{s})
	if b.Center != s.Center {
		t.Errorf("bounding center = %v, expected %v", b.Center, s.Center)
	}
	if b.Radius != s.Radius {
		t.Errorf("bounding radius = %f, expected %f", b.Radius, s.Radius)
	}
}

// TestBoundingSphereKnown checks the box-midpoint construction on a
// hand-computed pair: centers (0,0,0) and (10,0,0), both radius 1,
// give center (5,0,0) and radius 6.
func TestBoundingSphereKnown(t *testing.T) {
	set := []Sphere{
		{Center: mgl32.Vec3{0, 0, 0}, Radius: 1},
		{Center: mgl32.Vec3{10, 0, 0}, Radius: 1},
	}
	b := BoundingSphere(set)
	if b.Center != (mgl32.Vec3{5, 0, 0}) {
		t.Errorf("bounding center = %v, expected (5, 0, 0)", b.Center)
	}
	if b.Radius != 6 {
		t.Errorf("bounding radius = %f, expected 6", b.Radius)
	}
}

// TestBoundingSphereContainment verifies every input sphere lies
// inside the bound, over random sets and generated clouds.
func TestBoundingSphereContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(555))

	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(30)
		set := make([]Sphere, n)
		for i := range set {
			set[i] = Sphere{
				Center: mgl32.Vec3{
					rng.Float32()*40 - 20,
					rng.Float32()*40 - 20,
					rng.Float32()*40 - 20,
				},
				Radius: rng.Float32() * 5,
			}
		}
		assertContained(t, set, BoundingSphere(set))
	}

	for seed := uint64(0); seed < 10; seed++ {
		set := NewLayout(seed).Generate(DefaultParams(10, 25))
		assertContained(t, set, BoundingSphere(set))
	}
}

func assertContained(t *testing.T, set []Sphere, b Sphere) {
	t.Helper()
	for i, s := range set {
		d := s.Center.Sub(b.Center).Len() + s.Radius
		if d > b.Radius+boundsTol {
			t.Errorf("sphere %d (center %v, radius %f) outside bound (center %v, radius %f): dist+r = %f",
				i, s.Center, s.Radius, b.Center, b.Radius, d)
		}
	}
}
