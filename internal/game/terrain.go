package game

import "math"

// Scene frame convention: the scene origin sits at the nav-derived
// SceneOrigin virtual position, scene +Y points along the camera heading
// (forward, up-screen), scene +X to the ship's right.

// SceneFromVirtual maps a virtual coordinate into the camera-centered scene
// frame for the given origin and camera heading.
func SceneFromVirtual(v, origin Vec2, camHeading float64) Vec2 {
	dx := v.X - origin.X
	dy := v.Y - origin.Y
	c := math.Cos(camHeading)
	s := math.Sin(camHeading)
	return Vec2{
		X: dx*c - dy*s,
		Y: dx*s + dy*c,
	}
}

// VirtualFromScene is the exact inverse: rotate the scene coordinate by
// -camHeading (forward axis convention folded into the matrix), then add
// the origin. The terrain sampler recovers virtual coordinates through
// this; it must mirror SceneFromVirtual bit-for-bit in structure.
func VirtualFromScene(sc, origin Vec2, camHeading float64) Vec2 {
	c := math.Cos(camHeading)
	s := math.Sin(camHeading)
	return Vec2{
		X: origin.X + sc.X*c + sc.Y*s,
		Y: origin.Y - sc.X*s + sc.Y*c,
	}
}

// TerrainHeight returns the terrain height at a virtual coordinate: value
// noise remapped to [0,1], curved, scaled, then attenuated to a flat floor
// inside the corridor around the canyon centerline.
func TerrainHeight(v Vec2) float64 {
	n := noise2D(v.X*TerrainNoiseFreq, v.Y*TerrainNoiseFreq)
	h := math.Pow((n+1)*0.5, TerrainHeightPow) * TerrainHeightScale

	lateral := math.Abs(v.X - CanyonX(v.Y))
	return h * smoothstep(CorridorInnerWidth, CorridorOuterWidth, lateral)
}

// TerrainPatch is the single finite tessellated patch: a square RGBA texture
// in virtual space, re-centered (grid-snapped) on the scene origin each
// frame and fully re-shaded on the CPU. Shading calls the same height and
// hazard functions the simulation uses, so the flashing cells on screen are
// exactly the registry's cells.
type TerrainPatch struct {
	OriginX, OriginY float64 // virtual coords of texel (0,0), snapped to the cell grid
	Pixels           []uint8 // RGBA8, PatchTexSize x PatchTexSize

	Tex         uint32 // GL texture id (created lazily by the renderer)
	NeedsUpload bool
}

func NewTerrainPatch() *TerrainPatch {
	return &TerrainPatch{
		Pixels: make([]uint8, PatchTexSize*PatchTexSize*4),
	}
}

// Rebuild re-centers the patch on the scene origin and re-shades every
// texel. Snapping the origin to the 4-unit cell grid keeps texels from
// swimming as the ship advances.
func (p *TerrainPatch) Rebuild(origin Vec2, reg *HazardRegistry, now float64) {
	p.OriginX = floorTo(origin.X-PatchSpan/2, HazardCellSize)
	p.OriginY = floorTo(origin.Y-PatchSpan/2, HazardCellSize)

	i := 0
	for ty := 0; ty < PatchTexSize; ty++ {
		vy := p.OriginY + (float64(ty)+0.5)*PatchScale
		for tx := 0; tx < PatchTexSize; tx++ {
			vx := p.OriginX + (float64(tx)+0.5)*PatchScale
			v := Vec2{X: vx, Y: vy}

			col := terrainShade(v)

			if flash := reg.HazardAt(v, now); flash > 0 {
				hazCol := lerpRGB(Palette.HazardCool, Palette.HazardHot, clampF(flash, 0, 1))
				col = lerpRGB(col, hazCol, clampF(flash, 0, 1)*0.85)
			} else if reg.Band.Contains(vy) {
				// Faint wash over the whole band so its extent reads even
				// between flashing cells.
				col = lerpRGB(col, Palette.BandGlow, 0.10)
			}

			p.Pixels[i] = col.R
			p.Pixels[i+1] = col.G
			p.Pixels[i+2] = col.B
			p.Pixels[i+3] = 255
			i += 4
		}
	}
	p.NeedsUpload = true
}

// terrainShade maps height to the canyon palette, with a hash dither so
// large flats don't band.
func terrainShade(v Vec2) RGB {
	h := TerrainHeight(v) / TerrainHeightScale

	var col RGB
	switch {
	case h < 0.02:
		// Corridor floor: alternate cell shading makes forward motion legible.
		cx := floorDiv(int(math.Floor(v.X)), int(HazardCellSize))
		cy := floorDiv(int(math.Floor(v.Y)), int(HazardCellSize))
		if (cx+cy)&1 == 0 {
			col = Palette.Floor
		} else {
			col = Palette.FloorAlt
		}
	case h < 0.25:
		col = lerpRGB(Palette.WallLow, Palette.WallMid, (h-0.02)/0.23)
	case h < 0.65:
		col = lerpRGB(Palette.WallMid, Palette.WallHigh, (h-0.25)/0.40)
	default:
		col = lerpRGB(Palette.WallHigh, Palette.Rim, clampF((h-0.65)/0.35, 0, 1))
	}

	d := hashUnit(terrainNoiseSeed^0xD17, int(math.Floor(v.X)), int(math.Floor(v.Y)))
	return col.Mul(uint8(236 + d*19))
}
