package game

// Canyon centerline: x = A1*sin(k1*y) + A2*sin(k2*y).
// The same constants steer the ship and shape the terrain; they live only
// in path.go's evaluation.
const (
	CanyonAmp1  = 200.0
	CanyonFreq1 = 0.002
	CanyonAmp2  = 50.0
	CanyonFreq2 = 0.005
)

// Flight tuning (virtual units, seconds, radians).
const (
	BaseSpeed       = 60.0
	SpeedMultiplier = 2.5
	SteerGain       = 0.02 // lateral error to heading correction
	HeadingRate     = 2.0  // ship heading approach rate, 1/s
	CameraLagRate   = 1.5  // camera heading approach rate, 1/s
	SceneRearOffset = 20.0 // scene origin sits this far behind the ship
	MaxFrameDt      = 0.1  // dt clamp, guards the exponential integrators
)

// Hazard zones. A zone covers 16x16 virtual units as a 4x4 grid of 4-unit
// cells; the ring holds at most 4 zones, oldest overwritten.
const (
	HazardCellSize    = 4.0
	HazardGridDim     = 4
	HazardZoneSpan    = HazardCellSize * HazardGridDim // 16
	HazardRingSize    = 4
	HazardZoneLife    = 20.0
	HazardFadeEdge    = 2.0 // ramp in/out duration at both ends of the window
	ZoneSpawnMinGap   = 10.0
	ZoneSpawnMaxGap   = 20.0
	ZoneSpawnMinDist  = 300.0
	ZoneSpawnMaxDist  = 500.0
	ZoneLateralJitter = 30.0
)

// Global hazard band.
const (
	BandMinInterval   = 45.0
	BandMaxInterval   = 75.0
	BandLeadDist      = 300.0
	BandMinLength     = 200.0
	BandMaxLength     = 400.0
	BandHazardProb    = 0.8
	AlertApproachDist = 250.0
)

// Terrain sampling.
const (
	TerrainNoiseFreq   = 0.012
	TerrainHeightPow   = 1.5
	TerrainHeightScale = 90.0
	CorridorInnerWidth = 20.0  // flat floor half-width around the centerline
	CorridorOuterWidth = 100.0 // walls fully risen beyond this lateral distance
)

// Terrain patch: one finite texture re-centered on the scene origin each
// frame. PatchTexSize texels at PatchScale units each.
const (
	PatchTexSize = 176
	PatchScale   = 2.0
	PatchSpan    = PatchTexSize * PatchScale // 352 virtual units
)

// Window defaults.
const (
	WindowWidth  = 960
	WindowHeight = 720
	ViewZoom     = 2.4 // screen pixels per virtual unit
)

// Particles.
const (
	MaxParticles      = 4000
	MaxParticleRender = 6000
)

// Font atlas layout (rasterized at init from the in-code 5x7 glyph table).
const (
	FontGlyphW = 5
	FontGlyphH = 7
	FontCellW  = 6 // glyph + 1 px gap
	FontCellH  = 8
	FontCols   = 32
	FontRows   = 3
	FontAtlasW = FontCellW * FontCols
	FontAtlasH = FontCellH * FontRows
)
