package game

// AlertLevel classifies the ship's proximity to the global hazard band.
type AlertLevel int

const (
	AlertNone AlertLevel = iota
	AlertApproaching
	AlertActive
)

func (l AlertLevel) String() string {
	switch l {
	case AlertApproaching:
		return "APPROACHING"
	case AlertActive:
		return "ACTIVE"
	}
	return "NONE"
}

// AlertMonitor recomputes the alert level every tick (level-triggered) and
// emits EventAlertChanged only on transitions, so downstream consumers see
// edges. No hysteresis beyond the fixed approach distance: oscillation
// across a boundary is accepted behavior.
type AlertMonitor struct {
	Level  AlertLevel
	events *EventBus
}

func NewAlertMonitor(events *EventBus) *AlertMonitor {
	return &AlertMonitor{events: events}
}

// Classify derives the level for shipY against band, statelessly.
func Classify(shipY float64, band GlobalBand) AlertLevel {
	if band.EndY <= band.StartY {
		return AlertNone
	}
	switch {
	case shipY >= band.StartY && shipY <= band.EndY:
		return AlertActive
	case shipY >= band.StartY-AlertApproachDist && shipY < band.StartY:
		return AlertApproaching
	}
	return AlertNone
}

// Update recomputes the level and surfaces a change if one occurred.
func (m *AlertMonitor) Update(shipY float64, band GlobalBand) AlertLevel {
	level := Classify(shipY, band)
	if level != m.Level {
		m.Level = level
		if m.events != nil {
			m.events.Emit(Event{Type: EventAlertChanged, Y: shipY, Data: int(level)})
		}
	}
	return m.Level
}
