package noise

import (
	"runtime"
	"sync"

	"cloudmarch/internal/profiling"
)

// DefaultFrequency is the lattice frequency used when rasterizing the
// detail texture for the viewer.
const DefaultFrequency = 8.0

// Rasterize samples the field over a width x height grid and returns a
// row-major buffer of one grayscale byte per texel. Pixel (i, j) maps
// to (i/width*frequency, j/height*frequency); each sample is remapped
// from [-1, 1] to [0, 255] with clamping. Non-positive dimensions
// yield nil.
//
// Rows write to disjoint slices, so they are striped across a small
// worker pool; the buffer is bit-identical to a serial loop.
func (f *Field) Rasterize(width, height int, frequency float64) []byte {
	defer profiling.Track("noise.Rasterize")()

	if width <= 0 || height <= 0 {
		return nil
	}
	buf := make([]byte, width*height)

	workers := runtime.NumCPU()
	if workers > height {
		workers = height
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(first int) {
			defer wg.Done()
			for j := first; j < height; j += workers {
				f.rasterizeRow(buf[j*width:(j+1)*width], j, width, height, frequency)
			}
		}(w)
	}
	wg.Wait()
	return buf
}

func (f *Field) rasterizeRow(row []byte, j, width, height int, frequency float64) {
	y := float64(j) / float64(height) * frequency
	for i := 0; i < width; i++ {
		x := float64(i) / float64(width) * frequency
		v := (f.Sample(x, y) + 1) / 2
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		row[i] = byte(v * 255)
	}
}
