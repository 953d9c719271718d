package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound cues.
type SoundKind int

const (
	SoundAlertRise SoundKind = iota // None -> Approaching
	SoundAlertSiren                 // -> Active
	SoundAllClear                   // -> None
	SoundZonePing                   // hazard zone spawned
)

// AudioSystem manages procedural sound cues and the ambient engine loop.
type AudioSystem struct {
	ctx          *oto.Context
	ready        chan struct{}
	enginePlayer oto.Player
}

var globalAudio *AudioSystem

var sfxVolume float64 = 0.55

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated cue.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// StartEngineHum starts the looping ambient engine drone.
func StartEngineHum() {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if globalAudio.enginePlayer != nil {
		return
	}
	player := globalAudio.ctx.NewPlayer(&engineReader{})
	player.SetVolume(0.16)
	player.Play()
	globalAudio.enginePlayer = player
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound cues ----------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundAlertRise:
		return genAlertRise()
	case SoundAlertSiren:
		return genAlertSiren()
	case SoundAllClear:
		return genAllClear()
	case SoundZonePing:
		return genZonePing()
	}
	return nil
}

// genAlertRise: two ascending chirps — the proximity warning.
func genAlertRise() []byte {
	n := int(0.60 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		// Two chirps, each 0.25s with a short gap.
		seg := math.Mod(p*2, 1.0)
		env := adsr(seg, 0.08, 0.2, 0.6, 0.35)
		freq := 520 + 360*seg
		s := fm(t, freq, 2.0, 1.2) * env * 0.45
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genAlertSiren: hard two-tone siren for band entry.
func genAlertSiren() []byte {
	n := int(1.1 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.04, 0.1, 0.8, 0.25)
		var freq float64 = 880
		if math.Mod(t*5, 1.0) > 0.5 {
			freq = 660
		}
		s := fm(t, freq, 1.0, 0.8) * env * 0.5
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genAllClear: soft descending resolve.
func genAllClear() []byte {
	n := int(0.5 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.05, 0.3, 0.4, 0.4)
		freq := 620 - 220*p
		s := fm(t, freq, 0.5, 0.6) * env * 0.35
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genZonePing: short sonar-style ping when a hazard zone spawns ahead.
func genZonePing() []byte {
	n := int(0.22 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 9)
		s := math.Sin(2*math.Pi*1180*t) * env * 0.3
		s += math.Sin(2*math.Pi*1770*t) * env * 0.08
		putStereoF32(buf, i, s)
	}
	return buf
}

// engineReader streams an endless engine drone: two detuned low
// oscillators plus filtered noise, slowly breathing.
type engineReader struct {
	frame uint64
	seed  uint64
	lp    float64
}

func (m *engineReader) Read(p []byte) (int, error) {
	if m.seed == 0 {
		m.seed = 0x9E3779B97F4A7C15
	}
	frames := len(p) / 8
	for i := 0; i < frames; i++ {
		t := float64(m.frame) / SampleRate
		m.frame++

		breathe := 0.85 + 0.15*math.Sin(2*math.Pi*t/7.3)
		s := math.Sin(2*math.Pi*55*t) * 0.35
		s += math.Sin(2*math.Pi*55.7*t) * 0.30
		m.lp = m.lp*0.94 + lcg(&m.seed)*0.06
		s += m.lp * 0.5
		putStereoF32(p, i, softSat(s*breathe))
	}
	return frames * 8, nil
}
