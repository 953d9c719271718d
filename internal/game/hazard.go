package game

import "math"

// bandHashSeed keys the global band's per-cell classification. A package
// constant so classification is reproducible from cell coordinates alone.
const bandHashSeed = 0xDA17C3B00C4A5

// HazardZone is a 16x16-unit area at a grid-aligned origin, subdivided into
// a 4x4 grid of 4-unit cells. Pattern bit i (row i/4, col i%4) marks cell i
// hazardous. A zone is live while age is in [0, HazardZoneLife).
type HazardZone struct {
	X, Y      float64
	SpawnTime float64
	Pattern   uint16
}

// Active reports whether the zone is inside its 20-second window at now.
func (z *HazardZone) Active(now float64) bool {
	age := now - z.SpawnTime
	return age >= 0 && age < HazardZoneLife
}

// GlobalBand is the single long hazardous stretch [StartY, EndY] of the
// corridor. A zero-value band (EndY <= StartY) means none is armed.
type GlobalBand struct {
	StartY, EndY float64
}

func (b GlobalBand) Contains(y float64) bool {
	return b.EndY > b.StartY && y >= b.StartY && y <= b.EndY
}

// HazardRegistry owns the 4-slot zone ring and the global band. Spawning is
// schedule-driven from one seedable Rand so runs are reproducible.
type HazardRegistry struct {
	Zones     [HazardRingSize]HazardZone
	Band      GlobalBand
	zoneIndex int
	spawned   int // total zones ever spawned; ring holds min(spawned, 4)

	nextSpawnTime  float64
	nextGlobalTime float64
	rng            *Rand
	events         *EventBus
}

func NewHazardRegistry(seed uint64, events *EventBus) *HazardRegistry {
	r := &HazardRegistry{
		rng:    NewRand(seed),
		events: events,
	}
	// First zone arrives quickly, first band on the normal schedule.
	r.nextSpawnTime = r.rng.RangeF(2.0, 6.0)
	r.nextGlobalTime = r.rng.RangeF(BandMinInterval, BandMaxInterval)
	return r
}

// Update spawns zones and re-arms the band when their timers fire. shipY is
// the ship's forward coordinate; now is simulation time.
func (r *HazardRegistry) Update(now, shipY float64) {
	if now >= r.nextSpawnTime {
		r.spawnZone(now, shipY)
		r.nextSpawnTime = now + r.rng.RangeF(ZoneSpawnMinGap, ZoneSpawnMaxGap)
	}
	if now >= r.nextGlobalTime {
		r.armBand(shipY)
		r.nextGlobalTime = now + r.rng.RangeF(BandMinInterval, BandMaxInterval)
	}
}

// spawnZone places a new zone ahead of the ship near the centerline and
// inserts it at the ring cursor. The 5th spawn silently evicts the oldest;
// the 4-slot bound is a deliberate capacity invariant.
func (r *HazardRegistry) spawnZone(now, shipY float64) {
	spawnY := floorTo(shipY+r.rng.RangeF(ZoneSpawnMinDist, ZoneSpawnMaxDist), HazardCellSize)
	spawnX := floorTo(CanyonX(spawnY)+r.rng.RangeF(-ZoneLateralJitter, ZoneLateralJitter), HazardCellSize)

	z := HazardZone{
		X:         spawnX,
		Y:         spawnY,
		SpawnTime: now,
		Pattern:   r.randomPattern(),
	}
	r.Zones[r.zoneIndex] = z
	r.zoneIndex = (r.zoneIndex + 1) % HazardRingSize
	r.spawned++

	if r.events != nil {
		r.events.Emit(Event{Type: EventZoneSpawned, X: z.X, Y: z.Y})
	}
}

// randomPattern sets 1..16 distinct cell bits, drawn without replacement.
func (r *HazardRegistry) randomPattern() uint16 {
	var cells [16]int
	for i := range cells {
		cells[i] = i
	}
	n := r.rng.Range(1, 16)
	var pat uint16
	remaining := 16
	for i := 0; i < n; i++ {
		j := r.rng.Intn(remaining)
		pat |= 1 << uint(cells[j])
		remaining--
		cells[j] = cells[remaining]
	}
	return pat
}

// armBand replaces the current band outright, expired or not. Whether an
// unexpired band should survive its timer is left as-is from the source
// behavior: it does not.
func (r *HazardRegistry) armBand(shipY float64) {
	startY := floorTo(shipY+BandLeadDist, HazardCellSize)
	length := r.rng.RangeF(BandMinLength, BandMaxLength)
	r.Band = GlobalBand{StartY: startY, EndY: startY + length}

	if r.events != nil {
		r.events.Emit(Event{Type: EventBandArmed, Y: r.Band.StartY})
	}
}

// LiveZones appends the zones currently inside their window to dst.
func (r *HazardRegistry) LiveZones(now float64, dst []HazardZone) []HazardZone {
	count := r.spawned
	if count > HazardRingSize {
		count = HazardRingSize
	}
	for i := 0; i < count; i++ {
		if r.Zones[i].Active(now) {
			dst = append(dst, r.Zones[i])
		}
	}
	return dst
}

// ---- Shared flicker/classification formulas ------------------------------
//
// These functions are the single authority for hazard visuals: the registry
// and the terrain sampler both call them, so the flashing on screen is
// pixel-exact against the zone bookkeeping.

// zoneFade is the 20-second lifetime envelope: smoothstep ramp over the
// first and last 2 seconds, zero outside [0, 20).
func zoneFade(age float64) float64 {
	if age < 0 || age >= HazardZoneLife {
		return 0
	}
	in := smoothstep(0, HazardFadeEdge, age)
	out := 1 - smoothstep(HazardZoneLife-HazardFadeEdge, HazardZoneLife, age)
	return in * out
}

// ZoneFlicker returns the flash intensity for cell cellIdx of a zone with
// the given age at simulation time now. Strictly positive inside the open
// lifetime window: the sinusoid blend is floored before the fade envelope.
func ZoneFlicker(cellIdx int, age, now float64) float64 {
	fade := zoneFade(age)
	if fade <= 0 {
		return 0
	}
	slow := 0.5 + 0.5*math.Sin(now*2.4+float64(cellIdx)*0.7)
	fast := 0.5 + 0.5*math.Sin(now*17.0)
	blend := 0.65*slow + 0.35*fast
	return fade * (0.25 + 0.75*blend)
}

// BandCellHazard classifies the 4x4-unit cell at grid coordinates (cx, cy)
// inside the global band. Deterministic from coordinates alone.
func BandCellHazard(cx, cy int) bool {
	return hashUnit(bandHashSeed, cx, cy) < BandHazardProb
}

// BandFlicker returns the flash intensity of a hazardous band cell: a
// hash-seeded sinusoid, unrelated to the local-zone envelope.
func BandFlicker(cx, cy int, now float64) float64 {
	phase := hashUnit(bandHashSeed^0x51DE, cx, cy) * 2 * math.Pi
	rate := 5.0 + 6.0*hashUnit(bandHashSeed^0xF11C, cx, cy)
	return 0.35 + 0.65*(0.5+0.5*math.Sin(now*rate+phase))
}

// HazardAt returns the combined flash intensity at a virtual coordinate:
// local-zone flicker where a set cell covers it, plus band flicker when the
// coordinate lies in a hazardous band cell. The terrain sampler shades every
// texel through this; tests probe it directly.
func (r *HazardRegistry) HazardAt(v Vec2, now float64) float64 {
	intensity := 0.0

	count := r.spawned
	if count > HazardRingSize {
		count = HazardRingSize
	}
	for i := 0; i < count; i++ {
		z := &r.Zones[i]
		age := now - z.SpawnTime
		if age < 0 || age >= HazardZoneLife {
			continue
		}
		col := int(math.Floor((v.X - z.X) / HazardCellSize))
		row := int(math.Floor((v.Y - z.Y) / HazardCellSize))
		if col < 0 || col >= HazardGridDim || row < 0 || row >= HazardGridDim {
			continue
		}
		idx := row*HazardGridDim + col
		if z.Pattern&(1<<uint(idx)) == 0 {
			continue
		}
		if f := ZoneFlicker(idx, age, now); f > intensity {
			intensity = f
		}
	}

	if r.Band.Contains(v.Y) {
		cx := floorDiv(int(math.Floor(v.X)), int(HazardCellSize))
		cy := floorDiv(int(math.Floor(v.Y)), int(HazardCellSize))
		if BandCellHazard(cx, cy) {
			if f := BandFlicker(cx, cy, now); f > intensity {
				intensity = f
			}
		}
	}

	return intensity
}
