package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Terrain patch program.
	terrainProg uint32
	terrainVAO  uint32
	terrainVBO  uint32

	trUViewOffset int32
	trUZoom       int32
	trUResolution int32
	trUTex        int32

	// Sprite program (particles, hazard markers).
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32

	spUViewOffset int32
	spUZoom       int32
	spUResolution int32

	// Glow program — shares spriteVAO, additive blend only.
	glowProg        uint32
	glowUViewOffset int32
	glowUZoom       int32
	glowUResolution int32

	// Ship program — shares spriteVAO.
	shipProg        uint32
	shipUViewOffset int32
	shipUZoom       int32
	shipUResolution int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	terrainProg, err := linkProgram(terrainVertSrc, terrainFragSrc)
	if err != nil {
		return nil, fmt.Errorf("terrain program: %w", err)
	}
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		gl.DeleteProgram(terrainProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(terrainProg)
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}
	shipProg, err := linkProgram(spriteVertSrc, shipFragSrc)
	if err != nil {
		gl.DeleteProgram(terrainProg)
		gl.DeleteProgram(spriteProg)
		gl.DeleteProgram(glowProg)
		return nil, fmt.Errorf("ship program: %w", err)
	}

	r := &Renderer{
		terrainProg: terrainProg,
		spriteProg:  spriteProg,
		glowProg:    glowProg,
		shipProg:    shipProg,
	}

	// Terrain VAO/VBO: streaming quad, 6 vertices of pos(2)+uv(2).
	var tVAO, tVBO uint32
	gl.GenVertexArrays(1, &tVAO)
	gl.GenBuffers(1, &tVBO)
	gl.BindVertexArray(tVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, tVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, glOffset(2*4))
	r.terrainVAO = tVAO
	r.terrainVBO = tVBO

	gl.UseProgram(terrainProg)
	r.trUViewOffset = gl.GetUniformLocation(terrainProg, gl.Str("uViewOffset\x00"))
	r.trUZoom = gl.GetUniformLocation(terrainProg, gl.Str("uZoom\x00"))
	r.trUResolution = gl.GetUniformLocation(terrainProg, gl.Str("uResolution\x00"))
	r.trUTex = gl.GetUniformLocation(terrainProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.trUTex, 0)

	// Sprite VAO/VBO: streaming point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxParticleRender*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(spriteProg)
	r.spUViewOffset = gl.GetUniformLocation(spriteProg, gl.Str("uViewOffset\x00"))
	r.spUZoom = gl.GetUniformLocation(spriteProg, gl.Str("uZoom\x00"))
	r.spUResolution = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))

	gl.UseProgram(glowProg)
	r.glowUViewOffset = gl.GetUniformLocation(glowProg, gl.Str("uViewOffset\x00"))
	r.glowUZoom = gl.GetUniformLocation(glowProg, gl.Str("uZoom\x00"))
	r.glowUResolution = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	gl.UseProgram(shipProg)
	r.shipUViewOffset = gl.GetUniformLocation(shipProg, gl.Str("uViewOffset\x00"))
	r.shipUZoom = gl.GetUniformLocation(shipProg, gl.Str("uZoom\x00"))
	r.shipUResolution = gl.GetUniformLocation(shipProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.terrainVBO, r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.terrainVAO, r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.terrainProg, r.spriteProg, r.glowProg, r.shipProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawSprites renders a [x y size r g b a rot] buffer with the solid sprite
// program; additive selects additive blending instead of alpha.
func (r *Renderer) DrawSprites(buf []float32, cam *Camera, fbW, fbH int, additive bool) {
	r.drawSpriteBuf(r.spriteProg, r.spUViewOffset, r.spUZoom, r.spUResolution, buf, cam, fbW, fbH, additive)
}

// DrawGlowSprites renders a buffer with the radial glow program, additively.
func (r *Renderer) DrawGlowSprites(buf []float32, cam *Camera, fbW, fbH int) {
	r.drawSpriteBuf(r.glowProg, r.glowUViewOffset, r.glowUZoom, r.glowUResolution, buf, cam, fbW, fbH, true)
}

// DrawShipSprites renders a buffer with the dart silhouette program.
func (r *Renderer) DrawShipSprites(buf []float32, cam *Camera, fbW, fbH int) {
	r.drawSpriteBuf(r.shipProg, r.shipUViewOffset, r.shipUZoom, r.shipUResolution, buf, cam, fbW, fbH, false)
}

func (r *Renderer) drawSpriteBuf(prog uint32, uOff, uZoom, uRes int32, buf []float32, cam *Camera, fbW, fbH int, additive bool) {
	n := len(buf) / 8
	if n == 0 {
		return
	}
	if n > MaxParticleRender {
		n = MaxParticleRender
		buf = buf[:n*8]
	}

	gl.UseProgram(prog)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	ox, oy := cam.EffectiveOffset()
	gl.Uniform2f(uOff, float32(ox), float32(-oy))
	gl.Uniform1f(uZoom, float32(cam.Zoom))
	gl.Uniform2f(uRes, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*4, gl.Ptr(buf))
	gl.DrawArrays(gl.POINTS, 0, int32(n))

	gl.Disable(gl.BLEND)
}
