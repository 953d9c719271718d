package game

import "math"

// Vec2 is a point in the unbounded virtual frame (lateral X, forward Y).
type Vec2 struct {
	X, Y float64
}

// Nav owns the ship's virtual position and heading, the lagged camera
// heading, and the derived scene origin. It is the only writer of any of
// them; everything else reads.
type Nav struct {
	ShipPos       Vec2
	ShipHeading   float64 // radians, true direction of travel
	CameraHeading float64 // trails ShipHeading, rendering transforms only
	SceneOrigin   Vec2    // virtual position of the scene/render frame origin
	TurnRate      float64 // steer target minus pre-update heading, banking readout
}

// NewNav seats the ship on the centerline at y=0, headed along the canyon.
func NewNav() *Nav {
	n := &Nav{}
	n.reseat(0)
	return n
}

// reseat places the ship on the centerline at forward coordinate y with
// matching headings. Used at startup and as the NaN recovery path.
func (n *Nav) reseat(y float64) {
	n.ShipPos = Vec2{X: CanyonX(y), Y: y}
	h := math.Atan(CanyonSlope(y))
	n.ShipHeading = h
	n.CameraHeading = h
	n.TurnRate = 0
	n.deriveSceneOrigin()
}

// Update advances the ship by one tick. dt must already be clamped to
// MaxFrameDt; the integration is deterministic for identical dt sequences.
func (n *Nav) Update(dt float64) {
	canyonX := CanyonX(n.ShipPos.Y)
	slope := CanyonSlope(n.ShipPos.Y)

	target := math.Atan(slope)
	steer := target + (canyonX-n.ShipPos.X)*SteerGain

	// Banking readout uses the pre-update heading.
	n.TurnRate = steer - n.ShipHeading

	// Exponential approach: ship chases the steer target, camera chases the
	// ship at a lower rate so it trails without ever leading.
	n.ShipHeading += (steer - n.ShipHeading) * dt * HeadingRate
	n.CameraHeading += (n.ShipHeading - n.CameraHeading) * dt * CameraLagRate

	speed := BaseSpeed * SpeedMultiplier
	n.ShipPos.X += math.Sin(n.ShipHeading) * speed * dt
	n.ShipPos.Y += math.Cos(n.ShipHeading) * speed * dt

	if !finite(n.ShipPos.X) || !finite(n.ShipPos.Y) || !finite(n.ShipHeading) || !finite(n.CameraHeading) {
		// Non-finite state would desynchronize the terrain sampler from the
		// flight path; reset on the centerline instead of propagating.
		y := n.ShipPos.Y
		if !finite(y) {
			y = 0
		}
		n.reseat(y)
		return
	}

	n.deriveSceneOrigin()
}

func (n *Nav) deriveSceneOrigin() {
	n.SceneOrigin = Vec2{
		X: n.ShipPos.X - SceneRearOffset*math.Sin(n.CameraHeading),
		Y: n.ShipPos.Y - SceneRearOffset*math.Cos(n.CameraHeading),
	}
}

// Speed returns the ship's forward speed in virtual units per second.
func (n *Nav) Speed() float64 {
	return BaseSpeed * SpeedMultiplier
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
