package game

import "testing"

func simFingerprint(s *Simulation) [2]interface{} {
	return [2]interface{}{*s.Nav, struct {
		Zones   [HazardRingSize]HazardZone
		Band    GlobalBand
		Spawned int
		Level   AlertLevel
		Time    float64
	}{s.Hazards.Zones, s.Hazards.Band, s.Hazards.spawned, s.Alert.Level, s.Time}}
}

func TestSimulationDeterministicPerSeed(t *testing.T) {
	a := NewSimulation(123456)
	b := NewSimulation(123456)
	for i := 0; i < 1000; i++ {
		dt := 1.0 / 60.0
		if i%13 == 0 {
			dt = 1.0 / 24.0
		}
		a.Update(dt)
		b.Update(dt)
	}
	if simFingerprint(a) != simFingerprint(b) {
		t.Fatal("same seed, same dt sequence, different state")
	}

	c := NewSimulation(654321)
	for i := 0; i < 1000; i++ {
		c.Update(1.0 / 60.0)
	}
	if c.Hazards.Zones == a.Hazards.Zones {
		t.Fatal("different seeds produced identical zone layouts")
	}
}

func TestSimulationZeroDt(t *testing.T) {
	s := NewSimulation(9)
	for i := 0; i < 300; i++ {
		s.Update(1.0 / 60.0)
	}
	before := simFingerprint(s)
	beforeTurn := s.Nav.TurnRate
	s.Update(0)
	after := simFingerprint(s)
	// TurnRate is recomputed from unchanged inputs; mask it for comparison.
	s.Nav.TurnRate = beforeTurn
	if simFingerprint(s) != before {
		t.Fatalf("Update(0) mutated state:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestSimulationNegativeDtClamped(t *testing.T) {
	s := NewSimulation(9)
	s.Update(1.0 / 60.0)
	time := s.Time
	y := s.Nav.ShipPos.Y
	s.Update(-5)
	if s.Time != time || s.Nav.ShipPos.Y != y {
		t.Fatalf("negative dt moved the clock (%v->%v) or the ship (%v->%v)", time, s.Time, y, s.Nav.ShipPos.Y)
	}
}

func TestSimulationLargeDtClamped(t *testing.T) {
	a := NewSimulation(77)
	b := NewSimulation(77)
	a.Update(10)         // a frame hitch
	b.Update(MaxFrameDt) // must behave as the clamp
	if simFingerprint(a) != simFingerprint(b) {
		t.Fatal("oversized dt not clamped to the frame cap")
	}
}

// End-to-end: fly for three simulated minutes and watch the event bus. The
// schedules guarantee zones, at least one band and a full alert cycle.
func TestSimulationEmitsLifecycleEvents(t *testing.T) {
	s := NewSimulation(2024)
	var zones, bands int
	var levels []AlertLevel
	s.Events.Subscribe(EventZoneSpawned, func(e Event) { zones++ })
	s.Events.Subscribe(EventBandArmed, func(e Event) { bands++ })
	s.Events.Subscribe(EventAlertChanged, func(e Event) {
		levels = append(levels, AlertLevel(e.Data))
	})

	for i := 0; i < 60*180; i++ {
		s.Update(1.0 / 60.0)
	}

	if zones < 8 {
		t.Fatalf("only %d zone spawns in three minutes", zones)
	}
	if bands < 1 {
		t.Fatal("no band armed in three minutes")
	}
	sawApproach, sawActive, sawClear := false, false, false
	for i, l := range levels {
		switch l {
		case AlertApproaching:
			sawApproach = true
		case AlertActive:
			sawActive = true
		case AlertNone:
			if i > 0 {
				sawClear = true
			}
		}
	}
	if !sawApproach || !sawActive || !sawClear {
		t.Fatalf("incomplete alert cycle: transitions %v", levels)
	}
}
