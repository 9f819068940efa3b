package config

import "sync"

// MaxSphereCount matches the uniform array size in the ray-march shader.
const MaxSphereCount = 64

// CloudGenSettings holds procedural generation configuration
type CloudGenSettings struct {
	mu          sync.RWMutex
	seed        int64
	domainSize  float64
	sphereCount int
	textureSize int
	frequency   float64
}

var globalCloudGenSettings = &CloudGenSettings{
	seed:        0,
	domainSize:  10.0, // cubic domain side length
	sphereCount: 20,
	textureSize: 256,
	frequency:   8.0,
}

// GetSeed returns the generation seed
func GetSeed() int64 {
	globalCloudGenSettings.mu.RLock()
	defer globalCloudGenSettings.mu.RUnlock()
	return globalCloudGenSettings.seed
}

// SetSeed sets the generation seed
func SetSeed(seed int64) {
	globalCloudGenSettings.mu.Lock()
	defer globalCloudGenSettings.mu.Unlock()
	globalCloudGenSettings.seed = seed
}

// GetDomainSize returns the cloud domain side length
func GetDomainSize() float64 {
	globalCloudGenSettings.mu.RLock()
	defer globalCloudGenSettings.mu.RUnlock()
	return globalCloudGenSettings.domainSize
}

// SetDomainSize sets the cloud domain side length
func SetDomainSize(size float64) {
	globalCloudGenSettings.mu.Lock()
	defer globalCloudGenSettings.mu.Unlock()

	if size <= 0 {
		size = 10.0
	}
	globalCloudGenSettings.domainSize = size
}

// GetSphereCount returns the number of cloud spheres to generate
func GetSphereCount() int {
	globalCloudGenSettings.mu.RLock()
	defer globalCloudGenSettings.mu.RUnlock()
	return globalCloudGenSettings.sphereCount
}

// SetSphereCount sets the number of cloud spheres to generate
func SetSphereCount(count int) {
	globalCloudGenSettings.mu.Lock()
	defer globalCloudGenSettings.mu.Unlock()

	// Clamp to what the shader's uniform array can hold
	if count < 1 {
		count = 1
	}
	if count > MaxSphereCount {
		count = MaxSphereCount
	}

	globalCloudGenSettings.sphereCount = count
}

// GetTextureSize returns the noise texture side length in texels
func GetTextureSize() int {
	globalCloudGenSettings.mu.RLock()
	defer globalCloudGenSettings.mu.RUnlock()
	return globalCloudGenSettings.textureSize
}

// SetTextureSize sets the noise texture side length in texels
func SetTextureSize(size int) {
	globalCloudGenSettings.mu.Lock()
	defer globalCloudGenSettings.mu.Unlock()

	if size < 16 {
		size = 16
	}
	if size > 4096 {
		size = 4096
	}

	globalCloudGenSettings.textureSize = size
}

// GetFrequency returns the noise lattice frequency
func GetFrequency() float64 {
	globalCloudGenSettings.mu.RLock()
	defer globalCloudGenSettings.mu.RUnlock()
	return globalCloudGenSettings.frequency
}

// SetFrequency sets the noise lattice frequency
func SetFrequency(freq float64) {
	globalCloudGenSettings.mu.Lock()
	defer globalCloudGenSettings.mu.Unlock()

	if freq <= 0 {
		freq = 8.0
	}
	globalCloudGenSettings.frequency = freq
}
