package game

import (
	"math"
	"sync/atomic"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// AudioSystem manages the procedural wind loop.
type AudioSystem struct {
	ctx        *oto.Context
	ready      chan struct{}
	windPlayer oto.Player
}

var globalAudio *AudioSystem

// windBits holds the target wind level (0..1) as float64 bits. The frame
// loop writes it on the main thread; the oto mixer goroutine reads it.
var windBits uint64

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// StartWind begins the endless wind loop once the audio context is ready.
func StartWind() {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if globalAudio.windPlayer != nil {
		return
	}
	player := globalAudio.ctx.NewPlayer(&windReader{seed: 0x5EED})
	player.SetVolume(0.5)
	globalAudio.windPlayer = player
	player.Play()
}

// ShutdownAudio stops the wind loop. Safe to call without InitAudio and
// safe to call more than once.
func ShutdownAudio() {
	if globalAudio == nil || globalAudio.windPlayer == nil {
		return
	}
	globalAudio.windPlayer.Close()
	globalAudio.windPlayer = nil
}

// SetWindLevel maps the ride velocity to wind loudness. Called once per frame.
func SetWindLevel(velocity float64) {
	if globalAudio == nil {
		return
	}
	n := (velocity - MinVelocity) / (MaxVelocity - MinVelocity)
	atomic.StoreUint64(&windBits, math.Float64bits(clampF(n, 0, 1)))
}

// windReader synthesizes endless filtered noise. Loudness and filter cutoff
// follow the wind level, so the ride howls on fast drops and breathes on the
// climbs. The gain is smoothed per sample to avoid zipper noise.
type windReader struct {
	seed uint64
	lp   float64 // one-pole lowpass state
	gain float64 // smoothed toward the target level
}

func (r *windReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	target := math.Float64frombits(atomic.LoadUint64(&windBits))
	for i := 0; i < samples; i++ {
		r.gain += (target - r.gain) * 0.0004
		n := lcg(&r.seed)*2 - 1
		r.lp += (n - r.lp) * (0.02 + 0.10*r.gain)
		s := r.lp * (0.15 + 0.85*r.gain)
		putStereoF32(p, i, softSat(s*1.6))
	}
	return samples * 8, nil
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

// softSat is a gentle tanh-like limiter keeping samples inside [-1,1].
func softSat(x float64) float64 {
	if x > 1.5 {
		return 1
	}
	if x < -1.5 {
		return -1
	}
	return x - (x*x*x)/6.75
}
