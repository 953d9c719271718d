package game

import (
	"fmt"
	"math"
)

// RenderHUD draws the read-only overlay: alert banner, heading, forward
// distance and speed. It consumes simulation outputs and never writes back.
func RenderHUD(r *Renderer, sim *Simulation, fbW, fbH int) {
	white := RGB{R: 235, G: 235, B: 235}
	grey := RGB{R: 140, G: 140, B: 150}
	yellow := RGB{R: 255, G: 225, B: 90}
	red := RGB{R: 255, G: 70, B: 50}

	nav := sim.Nav
	now := sim.Time

	// Top-left: heading and bank readouts.
	hdg := math.Mod(nav.ShipHeading*180/math.Pi, 360)
	r.DrawString(fmt.Sprintf("HDG %+07.2f", hdg), 10, 10, 2.0, white)
	r.DrawString(fmt.Sprintf("BNK %+06.3f", nav.TurnRate), 10, 30, 1.5, grey)

	// Top-right: forward distance and speed.
	distStr := fmt.Sprintf("DST %07.0f", nav.ShipPos.Y)
	r.DrawString(distStr, fbW-TextWidth(distStr, 2.0)-10, 10, 2.0, white)
	spdStr := fmt.Sprintf("SPD %03.0f", nav.Speed())
	r.DrawString(spdStr, fbW-TextWidth(spdStr, 1.5)-10, 30, 1.5, grey)

	// Center banner, driven by the alert classification.
	switch sim.Alert.Level {
	case AlertApproaching:
		if math.Sin(now*6) > -0.2 {
			msg := "WARNING"
			r.DrawString(msg, fbW/2-TextWidth(msg, 4.0)/2, fbH/5, 4.0, yellow)
			ahead := sim.Hazards.Band.StartY - nav.ShipPos.Y
			sub := fmt.Sprintf("DANGER ZONE IN %03.0f", ahead)
			r.DrawString(sub, fbW/2-TextWidth(sub, 1.5)/2, fbH/5+40, 1.5, yellow)
		}
	case AlertActive:
		if math.Sin(now*14) > 0 {
			msg := "DANGER"
			r.DrawString(msg, fbW/2-TextWidth(msg, 5.0)/2, fbH/5, 5.0, red)
		}
	}

	r.FlushText(fbW, fbH)
}
