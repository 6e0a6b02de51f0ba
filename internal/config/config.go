package config

import "sync"

// RenderSettings holds render configuration
type RenderSettings struct {
	mu        sync.RWMutex
	fpsLimit  int
	pixelSize int
}

var globalRenderSettings = &RenderSettings{
	fpsLimit:  60, // default value
	pixelSize: 2,
}

// GetFPSLimit returns the frame rate cap; 0 means uncapped
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
	if limit > 480 {
		limit = 480
	}

	globalRenderSettings.fpsLimit = limit
}

// GetPixelSize returns how many screen pixels one framebuffer texel covers
func GetPixelSize() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.pixelSize
}

// SetPixelSize sets the framebuffer-to-screen magnification
func SetPixelSize(size int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if size < 1 {
		size = 1
	}
	if size > 8 {
		size = 8
	}

	globalRenderSettings.pixelSize = size
}
