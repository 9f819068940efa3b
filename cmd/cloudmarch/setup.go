package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"cloudmarch/internal/config"
)

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	width, height := config.GetWindowSize()
	window, err := glfw.CreateWindow(width, height, "cloudmarch", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("could not init OpenGL: %w", err)
	}

	// Disable V-Sync; the FPS limiter paces frames instead
	glfw.SwapInterval(0)

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	return window, nil
}
