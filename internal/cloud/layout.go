package cloud

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"cloudmarch/internal/profiling"
)

// Params controls the shape of a generated cloud. All ratios are
// relative to DomainSize, the side length of the cubic domain the
// cloud must stay inside.
type Params struct {
	DomainSize      float64 // L, side length of the cubic domain
	Count           int     // total sphere count, clamped to >= 1
	DeltaRatio      float64 // height of the ground band puffs rest in
	SigmaRatio      float64 // stddev of the horizontal scatter
	Alpha           float64 // Beta-distribution shape for radius picks
	Beta            float64 // Alpha < Beta biases radii small
	BaseRadiusRatio float64 // cap on the base sphere radius
}

// DefaultParams returns the reference shape parameters for a cloud of
// n spheres in a domain of side length l.
func DefaultParams(l float64, n int) Params {
	return Params{
		DomainSize:      l,
		Count:           n,
		DeltaRatio:      0.1,
		SigmaRatio:      0.2,
		Alpha:           2,
		Beta:            5,
		BaseRadiusRatio: 0.3,
	}
}

// Layout draws cloud sphere sets from an owned random stream. Generate
// advances the stream sequentially, so a Layout must not be shared
// across goroutines without external synchronization; independent
// Layouts are fully isolated.
type Layout struct {
	src rand.Source
}

// NewLayout returns a Layout with a stream seeded by seed. The same
// seed reproduces the same sphere sequence.
func NewLayout(seed uint64) *Layout {
	return NewLayoutFromSource(rand.NewSource(seed))
}

// NewLayoutFromSource wraps an existing source, letting tests inject a
// deterministic stream.
func NewLayoutFromSource(src rand.Source) *Layout {
	return &Layout{src: src}
}

// betaRand draws Beta(a, b) as g1/(g1+g2) from two Gamma(shape, 1)
// draws. The ratio construction is exact in distribution.
func (l *Layout) betaRand(a, b float64) float64 {
	g1 := distuv.Gamma{Alpha: a, Beta: 1, Src: l.src}.Rand()
	g2 := distuv.Gamma{Alpha: b, Beta: 1, Src: l.src}.Rand()
	return g1 / (g1 + g2)
}

// Generate produces an ordered sphere set approximating a cumulus
// silhouette: a base sphere anchored at the domain's horizontal center
// near the ground, then Count-1 puffs scattered around it. Every
// sphere fits inside [0,L]^3 by construction; radii are capped by the
// distance to the nearest horizontal boundary and by the vertical room
// left above the sphere's resting height.
func (l *Layout) Generate(p Params) []Sphere {
	defer profiling.Track("cloud.Generate")()

	n := p.Count
	if n < 1 {
		n = 1
	}
	L := p.DomainSize

	uniform01 := distuv.Uniform{Min: 0, Max: 1, Src: l.src}
	sigma := L * p.SigmaRatio
	gaussX := distuv.Normal{Mu: L / 2, Sigma: sigma, Src: l.src}
	gaussZ := distuv.Normal{Mu: L / 2, Sigma: sigma, Src: l.src}
	delta := L * p.DeltaRatio

	spheres := make([]Sphere, 0, n)

	// Base sphere: bottom rests at a uniform height in the lower half
	// of the ground band, radius capped by the domain sides and by the
	// vertical room above the resting height.
	baseY := uniform01.Rand() * (delta / 2)
	baseRadius := math.Min(L*p.BaseRadiusRatio, math.Min(L/2, (L-baseY)/2))
	spheres = append(spheres, Sphere{
		Center: mgl32.Vec3{float32(L / 2), float32(baseY + baseRadius), float32(L / 2)},
		Radius: float32(baseRadius),
	})

	for i := 0; i < n-1; i++ {
		x := clamp(gaussX.Rand(), 0, L)
		z := clamp(gaussZ.Rand(), 0, L)
		dx := math.Min(x, L-x)
		dz := math.Min(z, L-z)
		yBase := uniform01.Rand() * delta

		maxRadiusY := (L - yBase) / 2
		dMax := math.Min(math.Min(dx, dz), maxRadiusY)

		minRadius := math.Max(0.05*L, baseRadius*0.2)
		maxRadius := math.Min(dMax, L/2)

		t := l.betaRand(p.Alpha, p.Beta)
		radius := minRadius + t*(maxRadius-minRadius)
		if maxRadius < minRadius {
			// Degenerate span near a boundary: take the largest radius
			// the domain still admits instead of a reversed interval.
			radius = math.Max(0, maxRadius)
		}

		spheres = append(spheres, Sphere{
			Center: mgl32.Vec3{float32(x), float32(yBase + radius), float32(z)},
			Radius: float32(radius),
		})
	}
	return spheres
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
