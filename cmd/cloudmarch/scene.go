package main

import (
	"log"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"cloudmarch/internal/cloud"
	"cloudmarch/internal/config"
	"cloudmarch/internal/graphics"
	"cloudmarch/internal/noise"
	"cloudmarch/internal/profiling"
)

// Fullscreen triangle; covers the viewport with three vertices.
var fullscreenTriangle = []float32{
	-1, -1,
	3, -1,
	-1, 3,
}

// Scene holds the GPU state for the ray-marched cloud: the shader, the
// fullscreen triangle and the static noise texture. Sphere data is
// uploaded once as uniforms at build time.
type Scene struct {
	shader   *graphics.Shader
	vao      uint32
	vbo      uint32
	noiseTex uint32
}

func buildScene(assetsPath string, shape cloud.Params) (*Scene, error) {
	defer profiling.Track("scene.Build")()

	seed := config.GetSeed()
	texSize := config.GetTextureSize()

	field := noise.New(seed)
	pixels := field.Rasterize(texSize, texSize, config.GetFrequency())

	spheres := cloud.NewLayout(uint64(seed)).Generate(shape)
	bounding := cloud.BoundingSphere(spheres)

	shader, err := graphics.NewShader(
		filepath.Join(assetsPath, "shaders", "cloud.vert"),
		filepath.Join(assetsPath, "shaders", "cloud.frag"),
	)
	if err != nil {
		return nil, err
	}

	s := &Scene{shader: shader}

	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(fullscreenTriangle)*4, gl.Ptr(fullscreenTriangle), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	// Single-channel noise texture, repeat-wrapped so the shader can
	// tile it over the horizontal plane.
	gl.GenTextures(1, &s.noiseTex)
	gl.BindTexture(gl.TEXTURE_2D, s.noiseTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(texSize), int32(texSize), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	packed := make([]float32, 0, len(spheres)*4)
	for _, sp := range spheres {
		packed = append(packed, sp.Center.X(), sp.Center.Y(), sp.Center.Z(), sp.Radius)
	}
	camera := bounding.Center.Add(mgl32.Vec3{0, 0.35 * bounding.Radius, 3.2 * bounding.Radius})

	shader.Use()
	shader.SetInt("uNoiseTex", 0)
	shader.SetVector4Array("uSpheres", packed)
	shader.SetInt("uSphereCount", int32(len(spheres)))
	shader.SetVector4("uBounding", bounding.Center.X(), bounding.Center.Y(), bounding.Center.Z(), bounding.Radius)
	shader.SetFloat("uDomainSize", float32(shape.DomainSize))
	shader.SetVector3("uCameraPos", camera.X(), camera.Y(), camera.Z())

	log.Printf("generated %d cloud spheres (bounding radius %.2f) and a %dx%d noise texture | %s",
		len(spheres), bounding.Radius, texSize, texSize, profiling.TopN(3))
	return s, nil
}

func drawFrame(window *glfw.Window, s *Scene) {
	defer profiling.Track("render.Frame")()

	w, h := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	s.shader.Use()
	s.shader.SetVector2("uResolution", float32(w), float32(h))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.noiseTex)

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)

	window.SwapBuffers()
}
