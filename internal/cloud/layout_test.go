package cloud

import (
	"math"
	"testing"
)

// Containment checks allow a little slack for the float32 narrowing of
// the float64 placement math.
const layoutTol = 1e-4

// TestGenerateCount verifies the sphere count, including the clamp of
// non-positive counts to a single base sphere.
func TestGenerateCount(t *testing.T) {
	for _, n := range []int{1, 2, 20, 64} {
		got := NewLayout(1).Generate(DefaultParams(10, n))
		if len(got) != n {
			t.Errorf("Generate with Count=%d produced %d spheres", n, len(got))
		}
	}

	for _, n := range []int{0, -3} {
		got := NewLayout(1).Generate(DefaultParams(10, n))
		if len(got) != 1 {
			t.Errorf("Generate with Count=%d produced %d spheres, expected 1", n, len(got))
		}
	}
}

// TestGenerateDeterministic verifies same seed yields the same sequence
func TestGenerateDeterministic(t *testing.T) {
	p := DefaultParams(10, 30)
	a := NewLayout(99).Generate(p)
	b := NewLayout(99).Generate(p)

	if len(a) != len(b) {
		t.Fatalf("same-seed clouds differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("sphere %d differs between same-seed clouds: %+v vs %+v", i, a[i], b[i])
		}
	}

	c := NewLayout(100).Generate(p)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Errorf("different seeds produced identical clouds")
	}
}

// TestGenerateContainment verifies every sphere's vertical span stays
// in [0, L] and its horizontal span in [0, L] x [0, L], across domain
// scales and seeds.
func TestGenerateContainment(t *testing.T) {
	for _, l := range []float64{1, 10, 100} {
		for seed := uint64(0); seed < 20; seed++ {
			spheres := NewLayout(seed).Generate(DefaultParams(l, 40))
			tol := layoutTol * l
			for i, s := range spheres {
				r := float64(s.Radius)
				y := float64(s.Center.Y())
				if y-r < -tol || y+r > l+tol {
					t.Errorf("L=%g seed=%d sphere %d: vertical span [%f, %f] outside [0, %g]",
						l, seed, i, y-r, y+r, l)
				}
				for axis, c := range []float64{float64(s.Center.X()), float64(s.Center.Z())} {
					if c-r < -tol || c+r > l+tol {
						t.Errorf("L=%g seed=%d sphere %d axis %d: span [%f, %f] outside [0, %g]",
							l, seed, i, axis, c-r, c+r, l)
					}
				}
			}
		}
	}
}

// TestGenerateRadii verifies radii are non-negative and never exceed
// the domain half-width.
func TestGenerateRadii(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		spheres := NewLayout(seed).Generate(DefaultParams(10, 40))
		for i, s := range spheres {
			if s.Radius < 0 {
				t.Errorf("seed=%d sphere %d: negative radius %f", seed, i, s.Radius)
			}
			if s.Radius > 5+layoutTol {
				t.Errorf("seed=%d sphere %d: radius %f exceeds L/2", seed, i, s.Radius)
			}
		}
	}
}

// TestGenerateBaseSphere verifies the base sphere follows the
// documented construction: centered horizontally, bottom resting at a
// height in [0, delta/2), radius the min of the cap and the remaining
// vertical room. The resting height is recovered from the output
// rather than replayed through the generator.
func TestGenerateBaseSphere(t *testing.T) {
	const l = 10.0
	p := DefaultParams(l, 1)
	delta := l * p.DeltaRatio

	for seed := uint64(0); seed < 50; seed++ {
		spheres := NewLayout(seed).Generate(p)
		if len(spheres) != 1 {
			t.Fatalf("seed=%d: expected exactly the base sphere, got %d spheres", seed, len(spheres))
		}
		base := spheres[0]

		if base.Center.X() != l/2 || base.Center.Z() != l/2 {
			t.Errorf("seed=%d: base sphere at (%f, %f), expected horizontal center (5, 5)",
				seed, base.Center.X(), base.Center.Z())
		}

		baseY := float64(base.Center.Y() - base.Radius)
		if baseY < -layoutTol || baseY >= delta/2+layoutTol {
			t.Errorf("seed=%d: base resting height %f outside [0, %f)", seed, baseY, delta/2)
		}

		want := math.Min(l*p.BaseRadiusRatio, math.Min(l/2, (l-baseY)/2))
		if diff := math.Abs(float64(base.Radius) - want); diff > layoutTol {
			t.Errorf("seed=%d: base radius %f, expected %f from resting height %f",
				seed, base.Radius, want, baseY)
		}
	}
}

// TestGenerateBaseFirst verifies the base sphere leads the sequence
// regardless of count: the first sphere of a large cloud sits at the
// horizontal center.
func TestGenerateBaseFirst(t *testing.T) {
	spheres := NewLayout(5).Generate(DefaultParams(10, 30))
	base := spheres[0]
	if base.Center.X() != 5 || base.Center.Z() != 5 {
		t.Errorf("first sphere at (%f, %f), expected base at horizontal center",
			base.Center.X(), base.Center.Z())
	}
}

func BenchmarkGenerate(b *testing.B) {
	p := DefaultParams(10, 64)
	layout := NewLayout(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		layout.Generate(p)
	}
}
