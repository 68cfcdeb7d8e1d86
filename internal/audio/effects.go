package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a wave whose frequency slides linearly from freq to
// endFreq over its duration. A negative duration streams forever.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    float64
}

// NewOscillator creates a fixed-pitch oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator that glides from freq to endFreq.
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := -1
	if duration >= 0 {
		samples = rate.N(duration)
	}
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration >= 0 && o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			// Sample-and-hold noise; freq sets how often a new value is drawn.
			if o.freq <= 0 || o.phase+o.step() >= 1 {
				o.noise = rand.Float64()*2 - 1
			}
			val = o.noise
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.step()
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) step() float64 {
	freq := o.freq
	if o.duration > 0 {
		t := float64(o.position) / float64(o.duration)
		freq = o.freq + (o.endFreq-o.freq)*t
	}
	return freq / float64(o.rate)
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// tremolo modulates the amplitude of an endless stream at rate Hz.
type tremolo struct {
	streamer beep.Streamer
	freq     float64
	depth    float64
	phase    float64
	rate     beep.SampleRate
}

func (t *tremolo) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = t.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - t.depth*(0.5+0.5*math.Sin(2*math.Pi*t.phase))
		samples[i][0] *= vol
		samples[i][1] *= vol
		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
	}
	return n, ok
}

func (t *tremolo) Err() error { return t.streamer.Err() }

// newVolume wraps s with a linear volume; 0 or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func shaped(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(s, d, attack, release, rate)
}

// explosion is a burst of low noise; larger rocks boom longer.
func explosion(d time.Duration, pitch float64, rate beep.SampleRate) beep.Streamer {
	noise := NewSweep(pitch, pitch/4, d, WaveNoise, rate)
	return newVolume(shaped(noise, d, 5*time.Millisecond, d*3/4, rate), 0.5)
}

// NewEffect returns a finite streamer for a one-shot sound, or nil for an
// unknown name.
func NewEffect(name string, rate beep.SampleRate) beep.Streamer {
	switch name {
	case Fire:
		d := 120 * time.Millisecond
		return newVolume(shaped(NewSweep(1400, 300, d, WaveSquare, rate), d, 2*time.Millisecond, 80*time.Millisecond, rate), 0.15)
	case SaucerFire:
		d := 150 * time.Millisecond
		return newVolume(shaped(NewSweep(1800, 900, d, WaveSquare, rate), d, 2*time.Millisecond, 100*time.Millisecond, rate), 0.15)
	case Explode1:
		return explosion(700*time.Millisecond, 1200, rate)
	case Explode2:
		return explosion(450*time.Millisecond, 2200, rate)
	case Explode3:
		return explosion(250*time.Millisecond, 4000, rate)
	case ExtraLife:
		note := 60 * time.Millisecond
		var notes []beep.Streamer
		for i := 0; i < 6; i++ {
			notes = append(notes, shaped(NewOscillator(1046.5, note, WaveSquare, rate), note, time.Millisecond, 20*time.Millisecond, rate))
			notes = append(notes, beep.Silence(rate.N(note/2)))
		}
		return newVolume(beep.Seq(notes...), 0.15)
	default:
		return nil
	}
}

// NewLoop returns an endless streamer for a continuous sound, or nil for
// an unknown name.
func NewLoop(name string, rate beep.SampleRate) beep.Streamer {
	switch name {
	case Thrust:
		return newVolume(NewOscillator(600, -1, WaveNoise, rate), 0.2)
	case LargeSaucer:
		return newVolume(&tremolo{streamer: NewOscillator(180, -1, WaveSaw, rate), freq: 4, depth: 0.6, rate: rate}, 0.12)
	case SmallSaucer:
		hum := beep.Mix(
			newVolume(NewOscillator(420, -1, WaveSaw, rate), 0.7),
			newVolume(NewOscillator(840, -1, WaveSine, rate), 0.3),
		)
		return newVolume(&tremolo{streamer: hum, freq: 8, depth: 0.6, rate: rate}, 0.12)
	default:
		return nil
	}
}
