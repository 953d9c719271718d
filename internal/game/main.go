package game

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	// Initialize audio system.
	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	} else {
		go func() {
			time.Sleep(100 * time.Millisecond) // let audio context initialize
			StartEngineHum()
		}()
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("CANYON_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(
		float32(Palette.Sky.R)/255.0,
		float32(Palette.Sky.G)/255.0,
		float32(Palette.Sky.B)/255.0,
		1.0,
	)

	// Simulation and presentation state.
	sim := NewSimulation(seed)
	patch := NewTerrainPatch()
	particles := NewParticleSystem(MaxParticles, seed^0xBEAD)
	cam := &Camera{Zoom: ViewZoom}

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}

	// Presentation reacts to simulation edges; nothing flows back in.
	sim.Events.Subscribe(EventAlertChanged, func(e Event) {
		switch AlertLevel(e.Data) {
		case AlertApproaching:
			PlaySound(SoundAlertRise)
		case AlertActive:
			PlaySound(SoundAlertSiren)
			cam.AddShake(2.2, 0.7)
			particles.SpawnAlertSparks(sim.Nav, 40)
		case AlertNone:
			PlaySound(SoundAllClear)
		}
	})
	sim.Events.Subscribe(EventZoneSpawned, func(e Event) {
		PlaySound(SoundZonePing)
	})

	var glowBuf, normBuf []float32
	var markerBuf []float32
	liveZones := make([]HazardZone, 0, HazardRingSize)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDt {
			dt = MaxFrameDt
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		// Simulation step, then cosmetics, then a read-only render pass.
		sim.Update(dt)

		particles.SpawnExhaust(sim.Nav, dt)
		particles.SpawnDust(sim.Nav, dt)
		particles.Update(dt)
		cam.UpdateShake(dt, seed^uint64(now*1000))

		origin := sim.Nav.SceneOrigin
		heading := sim.Nav.CameraHeading
		patch.Rebuild(origin, sim.Hazards, sim.Time)

		rend.BeginFrame(fbW, fbH)
		rend.DrawPatch(patch, origin, heading, cam, fbW, fbH)

		// Glow markers over live hazard zones.
		markerBuf = markerBuf[:0]
		liveZones = sim.Hazards.LiveZones(sim.Time, liveZones[:0])
		for i := range liveZones {
			z := &liveZones[i]
			age := sim.Time - z.SpawnTime
			pulse := zoneFade(age) * (0.55 + 0.45*math.Sin(sim.Time*3.1))
			if pulse <= 0 {
				continue
			}
			center := Vec2{X: z.X + HazardZoneSpan/2, Y: z.Y + HazardZoneSpan/2}
			sc := SceneFromVirtual(center, origin, heading)
			k := float32(pulse)
			markerBuf = append(markerBuf,
				float32(sc.X), float32(-sc.Y), 26.0,
				1.0*k*0.35, 0.25*k*0.35, 0.1*k*0.35, 1, 0,
			)
		}
		if len(markerBuf) > 0 {
			rend.DrawGlowSprites(markerBuf, cam, fbW, fbH)
		}

		// Particles: two passes (glow + normal).
		glowBuf, normBuf = particles.RenderData(origin, heading, glowBuf, normBuf)
		if len(normBuf) > 0 {
			rend.DrawSprites(normBuf, cam, fbW, fbH, false)
		}
		if len(glowBuf) > 0 {
			rend.DrawGlowSprites(glowBuf, cam, fbW, fbH)
		}

		// Ship: dart silhouette plus engine glow, banked by the turn rate.
		shipSc := SceneFromVirtual(sim.Nav.ShipPos, origin, heading)
		sx := float32(shipSc.X)
		sy := float32(-shipSc.Y)
		bank := float32(sim.Nav.ShipHeading - heading + sim.Nav.TurnRate*0.8)
		shipBuf := []float32{
			sx, sy, 7.0,
			float32(Palette.Ship.R) / 255, float32(Palette.Ship.G) / 255, float32(Palette.Ship.B) / 255, 1, bank,
		}
		engineGlow := []float32{
			sx, sy, 10.0, 0.25, 0.45, 0.8, 1, 0,
		}
		rend.DrawGlowSprites(engineGlow, cam, fbW, fbH)
		rend.DrawShipSprites(shipBuf, cam, fbW, fbH)

		// Alert vignette: additive wash around the ship.
		switch sim.Alert.Level {
		case AlertApproaching:
			k := float32(0.12 + 0.08*math.Sin(sim.Time*6))
			rend.DrawGlowSprites([]float32{sx, sy, 180.0, 0.5 * k, 0.4 * k, 0.05 * k, 1, 0}, cam, fbW, fbH)
		case AlertActive:
			k := float32(0.16 + 0.12*math.Sin(sim.Time*14))
			rend.DrawGlowSprites([]float32{sx, sy, 220.0, 0.7 * k, 0.08 * k, 0.05 * k, 1, 0}, cam, fbW, fbH)
		}

		RenderHUD(rend, sim, fbW, fbH)

		window.SwapBuffers()
	}
}
