package game

// Camera is the render-side view state: zoom plus screen shake. The view
// direction itself comes from Nav.CameraHeading; the camera never feeds
// back into the simulation.
type Camera struct {
	Zoom float64 // screen pixels per virtual unit

	// Screen shake, in scene units.
	ShakeX, ShakeY float64
	ShakeTimer     float64
	ShakeIntensity float64
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	rr := NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// EffectiveOffset returns the scene-frame offset with shake applied.
func (c *Camera) EffectiveOffset() (float64, float64) {
	return c.ShakeX, c.ShakeY
}
