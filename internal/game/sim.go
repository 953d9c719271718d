package game

// Simulation owns every piece of core state: navigation, hazard registry,
// alert monitor and the clock. All mutation happens inside Update, once per
// frame; the renderer reads afterwards within the same frame.
type Simulation struct {
	Nav     *Nav
	Hazards *HazardRegistry
	Alert   *AlertMonitor
	Events  *EventBus
	Time    float64
}

func NewSimulation(seed uint64) *Simulation {
	events := NewEventBus()
	return &Simulation{
		Nav:     NewNav(),
		Hazards: NewHazardRegistry(seed, events),
		Alert:   NewAlertMonitor(events),
		Events:  events,
	}
}

// Update advances the simulation by dt seconds. dt is clamped to MaxFrameDt
// so frame hitches cannot destabilize the exponential integrators. With
// dt=0 nothing observable changes except the clock.
func (s *Simulation) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameDt {
		dt = MaxFrameDt
	}
	s.Time += dt

	s.Nav.Update(dt)
	s.Hazards.Update(s.Time, s.Nav.ShipPos.Y)
	s.Alert.Update(s.Nav.ShipPos.Y, s.Hazards.Band)
}
