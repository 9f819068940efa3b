package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"cloudmarch/internal/cloud"
	"cloudmarch/internal/config"
	"cloudmarch/internal/noise"
	"cloudmarch/internal/profiling"
	"cloudmarch/pkg/preset"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	seedFlag := flag.Int64("seed", 0, "generation seed")
	domainFlag := flag.Float64("domain", 10, "cloud domain side length")
	spheresFlag := flag.Int("spheres", 20, "cloud sphere count")
	texFlag := flag.Int("texsize", 256, "noise texture side length in texels")
	freqFlag := flag.Float64("freq", noise.DefaultFrequency, "noise lattice frequency")
	fpsFlag := flag.Int("fps", 120, "frame rate cap, 0 for uncapped")
	presetFlag := flag.String("preset", "", "generation preset under <assets>/presets")
	assetsFlag := flag.String("assets", "assets", "assets directory")
	flag.Parse()

	shape := cloud.DefaultParams(*domainFlag, *spheresFlag)
	if *presetFlag != "" {
		p, err := preset.NewLoader(*assetsFlag).Load(*presetFlag)
		if err != nil {
			log.Fatalf("could not load preset %q: %v", *presetFlag, err)
		}
		shape = p.Params()
		if p.Seed != nil {
			config.SetSeed(*p.Seed)
		}
		if p.TextureSize != nil {
			config.SetTextureSize(*p.TextureSize)
		}
		if p.Frequency != nil {
			config.SetFrequency(*p.Frequency)
		}
		config.SetDomainSize(shape.DomainSize)
		config.SetSphereCount(shape.Count)
	}

	// Explicitly passed flags win over preset values.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "seed":
			config.SetSeed(*seedFlag)
		case "domain":
			config.SetDomainSize(*domainFlag)
		case "spheres":
			config.SetSphereCount(*spheresFlag)
		case "texsize":
			config.SetTextureSize(*texFlag)
		case "freq":
			config.SetFrequency(*freqFlag)
		}
	})
	config.SetFPSLimit(*fpsFlag)
	shape.DomainSize = config.GetDomainSize()
	shape.Count = config.GetSphereCount()

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	scene, err := buildScene(*assetsFlag, shape)
	if err != nil {
		log.Fatalf("scene setup failed: %v", err)
	}

	runLoop(window, scene)
}

func runLoop(window *glfw.Window, scene *Scene) {
	limiter := NewFPSLimiter()
	frames := 0
	lastTitle := time.Now()

	for !window.ShouldClose() {
		profiling.Reset()
		drawFrame(window, scene)
		glfw.PollEvents()
		limiter.Wait()

		frames++
		if time.Since(lastTitle) >= time.Second {
			window.SetTitle(fmt.Sprintf("cloudmarch | %d fps | %s", frames, profiling.TopN(2)))
			frames = 0
			lastTitle = time.Now()
		}
	}
}
