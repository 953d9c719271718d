package game

import "math"

// CanyonX returns the corridor centerline's lateral offset at forward
// coordinate y. Steering, terrain attenuation and zone placement all call
// this one function; any second copy of the formula would desynchronize the
// flight path from the visually safe corridor.
func CanyonX(y float64) float64 {
	return CanyonAmp1*math.Sin(y*CanyonFreq1) + CanyonAmp2*math.Sin(y*CanyonFreq2)
}

// CanyonSlope returns d/dy of CanyonX.
func CanyonSlope(y float64) float64 {
	return CanyonAmp1*CanyonFreq1*math.Cos(y*CanyonFreq1) +
		CanyonAmp2*CanyonFreq2*math.Cos(y*CanyonFreq2)
}
