package game

import "github.com/go-gl/gl/v4.1-core/gl"

// EnsurePatchTexture creates the GL texture for the patch on first use.
func (r *Renderer) EnsurePatchTexture(p *TerrainPatch) {
	if p.Tex != 0 {
		return
	}
	gl.GenTextures(1, &p.Tex)
	gl.BindTexture(gl.TEXTURE_2D, p.Tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		PatchTexSize, PatchTexSize, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(p.Pixels),
	)
	p.NeedsUpload = false
}

// UploadPatch pushes the freshly re-shaded patch pixels to the GPU.
func (r *Renderer) UploadPatch(p *TerrainPatch) {
	r.EnsurePatchTexture(p)
	gl.BindTexture(gl.TEXTURE_2D, p.Tex)
	gl.TexSubImage2D(
		gl.TEXTURE_2D, 0, 0, 0,
		PatchTexSize, PatchTexSize,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(p.Pixels),
	)
	p.NeedsUpload = false
}

// DrawPatch draws the terrain patch rotated into the scene frame. The four
// quad corners run through SceneFromVirtual — the same transform the
// simulation-side sampler inverts — so the texture lands exactly where the
// registry believes its cells are.
func (r *Renderer) DrawPatch(p *TerrainPatch, origin Vec2, camHeading float64, cam *Camera, fbW, fbH int) {
	if p.Tex == 0 && !p.NeedsUpload {
		return
	}
	if p.NeedsUpload {
		r.UploadPatch(p)
	}

	corner := func(vx, vy float64) (float32, float32) {
		sc := SceneFromVirtual(Vec2{X: vx, Y: vy}, origin, camHeading)
		return float32(sc.X), float32(-sc.Y)
	}
	x00, y00 := corner(p.OriginX, p.OriginY)
	x10, y10 := corner(p.OriginX+PatchSpan, p.OriginY)
	x01, y01 := corner(p.OriginX, p.OriginY+PatchSpan)
	x11, y11 := corner(p.OriginX+PatchSpan, p.OriginY+PatchSpan)

	quad := [24]float32{
		x00, y00, 0, 0,
		x10, y10, 1, 0,
		x11, y11, 1, 1,
		x00, y00, 0, 0,
		x11, y11, 1, 1,
		x01, y01, 0, 1,
	}

	gl.UseProgram(r.terrainProg)
	gl.BindVertexArray(r.terrainVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.terrainVBO)

	ox, oy := cam.EffectiveOffset()
	gl.Uniform2f(r.trUViewOffset, float32(ox), float32(-oy))
	gl.Uniform1f(r.trUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.trUResolution, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.Tex)

	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(quad)*4, gl.Ptr(&quad[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}
