package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays synthesized effects on the default audio device.
// Every method is a no-op until Initialize succeeds, so the game runs
// unchanged on machines without sound.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	loops       map[string]*beep.Ctrl
	initialized bool
	logger      *log.Logger
}

// NewSoundManager creates a sound manager. A nil logger discards output.
func NewSoundManager(logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		loops:  make(map[string]*beep.Ctrl),
		logger: logger,
	}
}

// Initialize opens the audio device. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		sm.logger.Warn("audio disabled", "err", err)
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	for _, ctrl := range sm.loops {
		ctrl.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	clear(sm.loops)
	sm.initialized = false
}

// PlaySound starts a one-shot effect.
func (sm *SoundManager) PlaySound(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := NewEffect(name, sampleRate)
	if s == nil {
		sm.logger.Debug("unknown sound", "name", name)
		return
	}
	sm.add(s)
}

// PlaySoundContinuous loops an effect until StopSound.
func (sm *SoundManager) PlaySoundContinuous(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if ctrl, ok := sm.loops[name]; ok {
		if ctrl.Paused {
			speaker.Lock()
			ctrl.Paused = false
			speaker.Unlock()
		}
		return
	}

	s := NewLoop(name, sampleRate)
	if s == nil {
		sm.logger.Debug("unknown loop", "name", name)
		return
	}
	ctrl := &beep.Ctrl{Streamer: s, Paused: false}
	sm.loops[name] = ctrl
	sm.add(ctrl)
}

// StopSound pauses a looping effect.
func (sm *SoundManager) StopSound(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ctrl, ok := sm.loops[name]
	if !ok || !sm.initialized {
		return
	}
	speaker.Lock()
	ctrl.Paused = true
	speaker.Unlock()
}

func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
