package noise

import (
	"math"
	"math/rand"
)

// Seeded 2D gradient (Perlin) noise. Each Field owns its permutation
// table; the table is immutable after construction, so a Field is safe
// for concurrent sampling.

// Field evaluates a deterministic 2D gradient-noise function.
type Field struct {
	// 256-entry permutation doubled to 512 so perm[i+1] never wraps.
	perm [512]int
}

// New builds a Field for the given seed. The identity permutation
// [0..255] is Fisher-Yates shuffled by a source seeded with seed, so
// the same seed always yields the same table and the same noise field.
func New(seed int64) *Field {
	f := &Field{}
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < 256; i++ {
		f.perm[i] = i
	}
	for i := 255; i > 0; i-- {
		j := rng.Intn(i + 1)
		f.perm[i], f.perm[j] = f.perm[j], f.perm[i]
	}
	for i := 0; i < 256; i++ {
		f.perm[i+256] = f.perm[i]
	}
	return f
}

// fade is the quintic ease 6t^5 - 15t^4 + 10t^3. Zero first and second
// derivative at t=0 and t=1, which keeps cell boundaries seam-free.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// grad maps the low 3 bits of a corner hash to one of 8 symmetric
// gradient directions and returns the dot product with (x, y).
func grad(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Sample evaluates the field at (x, y). Output is approximately in
// [-1, 1]; the 8-direction gradient scheme can overshoot slightly, so
// callers needing a hard bound must clamp.
func (f *Field) Sample(x, y float64) float64 {
	xf := math.Floor(x)
	yf := math.Floor(y)
	// Masking the two's-complement int keeps negatives in 0..255.
	xi := int(xf) & 255
	yi := int(yf) & 255
	x -= xf
	y -= yf

	u := fade(x)
	v := fade(y)

	// Hash the four cell corners through the permutation table.
	a := f.perm[xi] + yi
	b := f.perm[xi+1] + yi

	return lerp(
		lerp(grad(f.perm[a], x, y), grad(f.perm[b], x-1, y), u),
		lerp(grad(f.perm[a+1], x, y-1), grad(f.perm[b+1], x-1, y-1), u),
		v)
}
