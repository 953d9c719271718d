package game

import (
	"math"
	"math/bits"
	"testing"
)

func TestZoneRingEvictsOldest(t *testing.T) {
	r := NewHazardRegistry(7, nil)

	var seen []HazardZone
	for i := 0; i < 5; i++ {
		r.spawnZone(float64(i), float64(i)*100)
		seen = append(seen, r.Zones[(r.zoneIndex+HazardRingSize-1)%HazardRingSize])
	}

	live := r.LiveZones(4.5, nil)
	if len(live) != HazardRingSize {
		t.Fatalf("after 5 spawns ring holds %d zones, want %d", len(live), HazardRingSize)
	}
	// Spawn #1 must be gone; #2..#5 retained.
	for _, z := range live {
		if z == seen[0] {
			t.Fatalf("oldest zone survived eviction: %+v", z)
		}
	}
	for _, want := range seen[1:] {
		found := false
		for _, z := range live {
			if z == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("zone %+v evicted too early", want)
		}
	}
}

func TestSpawnPlacement(t *testing.T) {
	r := NewHazardRegistry(99, nil)
	for i := 0; i < 200; i++ {
		shipY := float64(i) * 37.0
		r.spawnZone(float64(i), shipY)
		z := r.Zones[(r.zoneIndex+HazardRingSize-1)%HazardRingSize]

		if math.Mod(z.X, HazardCellSize) != 0 || math.Mod(z.Y, HazardCellSize) != 0 {
			t.Fatalf("zone origin (%v,%v) not on the %v-unit cell grid", z.X, z.Y, float64(HazardCellSize))
		}
		ahead := z.Y - shipY
		if ahead < ZoneSpawnMinDist-HazardCellSize || ahead > ZoneSpawnMaxDist {
			t.Fatalf("zone spawned %v ahead of ship, want about [%v,%v]", ahead, float64(ZoneSpawnMinDist), float64(ZoneSpawnMaxDist))
		}
		if lat := math.Abs(z.X - CanyonX(z.Y)); lat > ZoneLateralJitter+HazardCellSize {
			t.Fatalf("zone %v units off the centerline, jitter limit %v", lat, float64(ZoneLateralJitter))
		}
		if n := bits.OnesCount16(z.Pattern); n < 1 || n > 16 {
			t.Fatalf("pattern %016b has %d cells set", z.Pattern, n)
		}
	}
}

func TestZoneFlickerLifetimeWindow(t *testing.T) {
	for _, age := range []float64{-1, -0.001, HazardZoneLife, HazardZoneLife + 5} {
		if f := ZoneFlicker(3, age, 12.34); f != 0 {
			t.Fatalf("flicker %v at age %v, want 0 outside the window", f, age)
		}
	}
	for age := 0.01; age < HazardZoneLife; age += 0.37 {
		for now := 0.0; now < 3; now += 0.11 {
			if f := ZoneFlicker(5, age, now); f <= 0 {
				t.Fatalf("flicker %v at age %v now %v, want strictly positive", f, age, now)
			}
		}
	}
}

func TestBandCellHazardDeterministicAndDense(t *testing.T) {
	hot := 0
	const n = 200
	for cx := -n / 2; cx < n/2; cx++ {
		for cy := 0; cy < n; cy++ {
			a := BandCellHazard(cx, cy)
			if a != BandCellHazard(cx, cy) {
				t.Fatalf("classification of cell (%d,%d) not stable", cx, cy)
			}
			if a {
				hot++
			}
		}
	}
	frac := float64(hot) / (n * n)
	if frac < BandHazardProb-0.02 || frac > BandHazardProb+0.02 {
		t.Fatalf("hazardous cell fraction %v, want about %v", frac, float64(BandHazardProb))
	}
}

func TestBandFlickerDeterministic(t *testing.T) {
	for _, now := range []float64{0, 1.5, 100.25} {
		if BandFlicker(3, -7, now) != BandFlicker(3, -7, now) {
			t.Fatalf("band flicker not stable at now=%v", now)
		}
	}
	if BandFlicker(0, 0, 1) == BandFlicker(1, 0, 1) && BandFlicker(0, 0, 2) == BandFlicker(1, 0, 2) {
		t.Fatal("adjacent band cells flash identically; phases are not decorrelated")
	}
}

func TestArmBandReplacesOutright(t *testing.T) {
	r := NewHazardRegistry(11, nil)
	r.armBand(1000)
	first := r.Band
	if !first.Contains(first.StartY) {
		t.Fatalf("armed band %+v does not contain its own start", first)
	}
	if first.StartY != floorTo(1000+BandLeadDist, HazardCellSize) {
		t.Fatalf("band starts at %v, want %v ahead of the ship", first.StartY, float64(BandLeadDist))
	}
	if l := first.EndY - first.StartY; l < BandMinLength || l > BandMaxLength {
		t.Fatalf("band length %v outside [%v,%v]", l, float64(BandMinLength), float64(BandMaxLength))
	}

	r.armBand(5000)
	if r.Band == first {
		t.Fatal("re-arming did not replace the previous band")
	}
	if first.Contains(r.Band.StartY) && r.Band.Contains(first.StartY) {
		t.Fatal("old and new band overlap completely; replacement failed")
	}
}

func TestHazardAtRespectsPatternAndWindow(t *testing.T) {
	r := &HazardRegistry{spawned: 1}
	// One zone at the origin with only cell 0 (row 0, col 0) set.
	r.Zones[0] = HazardZone{X: 0, Y: 0, SpawnTime: 0, Pattern: 1}

	now := 5.0
	inCell := Vec2{X: 2, Y: 2}
	if f := r.HazardAt(inCell, now); f <= 0 {
		t.Fatalf("no flash at %v inside the set cell", inCell)
	}
	outCell := Vec2{X: 6, Y: 2} // cell 1, not in the pattern
	if f := r.HazardAt(outCell, now); f != 0 {
		t.Fatalf("flash %v in an unset cell", f)
	}
	outside := Vec2{X: -1, Y: 2}
	if f := r.HazardAt(outside, now); f != 0 {
		t.Fatalf("flash %v outside the zone footprint", f)
	}
	if f := r.HazardAt(inCell, HazardZoneLife+0.1); f != 0 {
		t.Fatalf("flash %v after the zone expired", f)
	}

	// The flash the sampler sees must be the shared formula verbatim.
	want := ZoneFlicker(0, now, now)
	if got := r.HazardAt(inCell, now); got != want {
		t.Fatalf("sampler flash %v, formula says %v", got, want)
	}
}

func TestHazardAtInsideBand(t *testing.T) {
	r := &HazardRegistry{Band: GlobalBand{StartY: 100, EndY: 300}}
	now := 8.0

	// Find a hazardous and a clear cell inside the band.
	var hot, cold *Vec2
	for cx := 0; cx < 64 && (hot == nil || cold == nil); cx++ {
		cy := floorDiv(128, int(HazardCellSize))
		v := Vec2{X: float64(cx) * HazardCellSize, Y: 128}
		if BandCellHazard(floorDiv(int(v.X), int(HazardCellSize)), cy) {
			if hot == nil {
				c := v
				hot = &c
			}
		} else if cold == nil {
			c := v
			cold = &c
		}
	}
	if hot == nil || cold == nil {
		t.Fatal("could not find both cell classes inside the band")
	}

	if f := r.HazardAt(*hot, now); f <= 0 {
		t.Fatalf("no flash at hazardous band cell %v", *hot)
	}
	if f := r.HazardAt(*cold, now); f != 0 {
		t.Fatalf("flash %v at clear band cell %v", f, *cold)
	}
	outside := Vec2{X: hot.X, Y: 400}
	if f := r.HazardAt(outside, now); f != 0 {
		t.Fatalf("flash %v outside the band extent", f)
	}
}

func TestRegistryUpdateSchedules(t *testing.T) {
	r := NewHazardRegistry(4242, nil)
	dt := 1.0 / 60.0
	now := 0.0
	shipY := 0.0
	lastSpawnCount := 0
	lastSpawnAt := 0.0
	for i := 0; i < 60*120; i++ { // two simulated minutes
		now += dt
		shipY += BaseSpeed * SpeedMultiplier * dt
		r.Update(now, shipY)
		if r.spawned > lastSpawnCount {
			if lastSpawnCount > 0 {
				gap := now - lastSpawnAt
				if gap < ZoneSpawnMinGap-dt || gap > ZoneSpawnMaxGap+dt {
					t.Fatalf("spawn gap %v outside [%v,%v]", gap, float64(ZoneSpawnMinGap), float64(ZoneSpawnMaxGap))
				}
			}
			lastSpawnCount = r.spawned
			lastSpawnAt = now
		}
	}
	if lastSpawnCount < 4 {
		t.Fatalf("only %d zones spawned in two minutes", lastSpawnCount)
	}
	if r.Band.EndY <= r.Band.StartY {
		t.Fatal("no global band armed in two minutes")
	}
}
