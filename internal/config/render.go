package config

import "sync"

// RenderSettings holds viewer render configuration
type RenderSettings struct {
	mu        sync.RWMutex
	fpsLimit  int
	winWidth  int
	winHeight int
}

var globalRenderSettings = &RenderSettings{
	fpsLimit:  120, // default cap; 0 means uncapped
	winWidth:  900,
	winHeight: 600,
}

// GetFPSLimit returns the current frame rate cap (0 = uncapped)
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRenderSettings.fpsLimit = limit
}

// GetWindowSize returns the initial window dimensions
func GetWindowSize() (int, int) {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.winWidth, globalRenderSettings.winHeight
}

// SetWindowSize sets the initial window dimensions
func SetWindowSize(width, height int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if width < 320 {
		width = 320
	}
	if height < 240 {
		height = 240
	}

	globalRenderSettings.winWidth = width
	globalRenderSettings.winHeight = height
}
