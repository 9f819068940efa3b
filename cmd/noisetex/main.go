// Command noisetex rasterizes a seeded gradient-noise texture to a
// grayscale BMP or PNG file.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"cloudmarch/internal/noise"
)

func main() {
	seed := flag.Int64("seed", 0, "noise seed")
	width := flag.Int("width", 256, "texture width in texels")
	height := flag.Int("height", 256, "texture height in texels")
	freq := flag.Float64("freq", noise.DefaultFrequency, "noise lattice frequency")
	out := flag.String("o", "noise.png", "output file (.bmp or .png)")
	flag.Parse()

	buf := noise.New(*seed).Rasterize(*width, *height, *freq)
	if buf == nil {
		log.Fatalf("invalid texture dimensions %dx%d", *width, *height)
	}

	img := &image.Gray{
		Pix:    buf,
		Stride: *width,
		Rect:   image.Rect(0, 0, *width, *height),
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("could not create output file: %v", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(*out)); ext {
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".png":
		err = png.Encode(f, img)
	default:
		log.Fatalf("unsupported output format %q (want .bmp or .png)", ext)
	}
	if err != nil {
		log.Fatalf("could not encode %s: %v", *out, err)
	}

	log.Printf("wrote %dx%d noise texture (seed %d, frequency %g) to %s",
		*width, *height, *seed, *freq, *out)
}
