// Package audio plays background music and sound effects through a beep mixer.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const resampleQuality = 4

// ClipSource looks up decoded clips by name.
type ClipSource interface {
	Clip(name string) (*beep.Buffer, bool)
}

// Config holds output settings.
type Config struct {
	SampleRate int
	Buffer     time.Duration
	Volume     float64 // 0..1
}

// Manager owns the mixer. Until Init succeeds it never touches the speaker
// and nothing drains the mixer, so a muted or headless game only remembers
// the music name and drops sound effects.
type Manager struct {
	mu          sync.Mutex
	clips       ClipSource
	logger      *log.Logger
	sampleRate  beep.SampleRate
	buffer      time.Duration
	volume      float64
	mixer       *beep.Mixer
	bgm         *beep.Ctrl
	bgmName     string
	voices      []beep.StreamSeeker
	initialized bool
	streaming   bool // something pulls samples from the mixer
}

// NewManager creates a manager reading clips from clips.
func NewManager(clips ClipSource, cfg Config, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = 100 * time.Millisecond
	}
	return &Manager{
		clips:      clips,
		logger:     logger,
		sampleRate: beep.SampleRate(cfg.SampleRate),
		buffer:     cfg.Buffer,
		volume:     cfg.Volume,
		mixer:      &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(m.buffer)); err != nil {
		return errors.Wrap(err, "unable to initialize speaker")
	}
	speaker.Play(m.mixer)
	m.initialized = true
	m.streaming = true
	m.logger.Debug("audio initialized", "sampleRate", int(m.sampleRate))
	return nil
}

// Close stops all sound and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.mixer.Clear()
	m.bgm = nil
	m.bgmName = ""
	m.voices = nil
	m.initialized = false
	m.streaming = false
}

// lock guards mixer state shared with the speaker goroutine.
func (m *Manager) lock() func() {
	m.mu.Lock()
	if m.initialized {
		speaker.Lock()
		return func() {
			speaker.Unlock()
			m.mu.Unlock()
		}
	}
	return m.mu.Unlock
}

// PlayBGM replaces the current background music with a looping clip.
func (m *Manager) PlayBGM(name string) {
	clip, ok := m.clips.Clip(name)
	if !ok {
		m.logger.Warn("bgm not loaded", "name", name)
		return
	}

	unlock := m.lock()
	defer unlock()

	if m.bgm != nil {
		m.bgm.Streamer = nil
		m.bgm = nil
	}
	m.bgmName = name
	if !m.streaming {
		return
	}
	m.bgm = &beep.Ctrl{Streamer: m.output(beep.Loop(-1, clip.Streamer(0, clip.Len())), clip.Format())}
	m.mixer.Add(m.bgm)
}

// StopBGM silences the background music.
func (m *Manager) StopBGM() {
	unlock := m.lock()
	defer unlock()

	if m.bgm != nil {
		m.bgm.Streamer = nil
		m.bgm = nil
	}
	m.bgmName = ""
}

// PlaySE plays a clip once on top of whatever is playing.
func (m *Manager) PlaySE(name string) {
	clip, ok := m.clips.Clip(name)
	if !ok {
		m.logger.Warn("sound effect not loaded", "name", name)
		return
	}

	unlock := m.lock()
	defer unlock()

	if !m.streaming {
		return
	}
	voice := clip.Streamer(0, clip.Len())
	m.voices = append(m.voices, voice)
	m.mixer.Add(m.output(voice, clip.Format()))
}

// output resamples to the speaker rate and applies the volume.
func (m *Manager) output(s beep.Streamer, format beep.Format) beep.Streamer {
	if format.SampleRate != m.sampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, m.sampleRate, s)
	}
	if m.volume >= 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(m.volume, 1e-6)),
		Silent:   m.volume <= 0,
	}
}

// Update forgets sound effects that have played to the end.
func (m *Manager) Update(dt float64) {
	unlock := m.lock()
	defer unlock()

	if !m.streaming {
		m.voices = nil
		return
	}
	live := m.voices[:0]
	for _, v := range m.voices {
		if v.Position() < v.Len() {
			live = append(live, v)
		}
	}
	for i := len(live); i < len(m.voices); i++ {
		m.voices[i] = nil
	}
	m.voices = live
}

// BGM returns the name of the looping clip, or "".
func (m *Manager) BGM() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bgmName
}

// Playing returns the number of sound effects still playing.
func (m *Manager) Playing() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.voices)
}

// Initialized reports whether the speaker is open.
func (m *Manager) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// Mixer exposes the mixer for tests.
func (m *Manager) Mixer() *beep.Mixer { return m.mixer }
