package audio

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clipMap map[string]*beep.Buffer

func (c clipMap) Clip(name string) (*beep.Buffer, bool) {
	b, ok := c[name]
	return b, ok
}

func silence(rate beep.SampleRate, samples int) *beep.Buffer {
	b := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	b.Append(beep.Silence(samples))
	return b
}

func newHeadlessManager(volume float64) *Manager {
	clips := clipMap{
		"theme":     silence(44100, 100),
		"title":     silence(44100, 100),
		"splash":    silence(44100, 10),
		"explosion": silence(22050, 10),
	}
	return NewManager(clips, Config{SampleRate: 44100, Volume: volume}, log.New(io.Discard))
}

// newTestManager returns a manager whose mixer the test drains by hand.
func newTestManager(volume float64) *Manager {
	m := newHeadlessManager(volume)
	m.streaming = true
	return m
}

func drain(m *Manager, samples int) {
	buf := make([][2]float64, samples)
	m.Mixer().Stream(buf)
}

// drainAll streams until finished voices have reported the end.
func drainAll(m *Manager) {
	for i := 0; i < 3; i++ {
		drain(m, 512)
	}
}

func TestManager_NotInitializedByDefault(t *testing.T) {
	m := newHeadlessManager(1)
	assert.False(t, m.Initialized())
	m.Close()
}

func TestManager_PlaySE(t *testing.T) {
	m := newTestManager(0.8)

	m.PlaySE("splash")
	m.PlaySE("splash")
	assert.Equal(t, 2, m.Playing())
	assert.Equal(t, 2, m.Mixer().Len())

	m.Update(16)
	assert.Equal(t, 2, m.Playing(), "nothing has been streamed yet")

	drainAll(m)
	m.Update(16)
	assert.Equal(t, 0, m.Playing())
	assert.Equal(t, 0, m.Mixer().Len())
}

func TestManager_PlaySE_Resampled(t *testing.T) {
	m := newTestManager(1)

	m.PlaySE("explosion")
	require.Equal(t, 1, m.Playing())

	drainAll(m)
	m.Update(16)
	assert.Equal(t, 0, m.Playing())
}

func TestManager_MissingClip(t *testing.T) {
	m := newTestManager(1)

	m.PlaySE("nope")
	m.PlayBGM("nope")

	assert.Equal(t, 0, m.Playing())
	assert.Equal(t, "", m.BGM())
	assert.Equal(t, 0, m.Mixer().Len())
}

func TestManager_PlayBGM_ReplacesPrevious(t *testing.T) {
	m := newTestManager(1)

	m.PlayBGM("title")
	assert.Equal(t, "title", m.BGM())

	m.PlayBGM("theme")
	assert.Equal(t, "theme", m.BGM())
	assert.Equal(t, 2, m.Mixer().Len())

	drain(m, 1)
	assert.Equal(t, 1, m.Mixer().Len(), "the stopped track leaves the mixer")

	drain(m, 1000)
	assert.Equal(t, 1, m.Mixer().Len(), "music loops")
}

func TestManager_StopBGM(t *testing.T) {
	m := newTestManager(0)

	m.PlayBGM("theme")
	m.StopBGM()
	assert.Equal(t, "", m.BGM())

	drain(m, 1)
	assert.Equal(t, 0, m.Mixer().Len())
}

func TestManager_HeadlessDropsSoundEffects(t *testing.T) {
	m := newHeadlessManager(1)

	for i := 0; i < 100; i++ {
		m.PlaySE("splash")
		m.PlayBGM("theme")
		m.Update(16)
	}

	assert.Equal(t, 0, m.Playing())
	assert.Equal(t, 0, m.Mixer().Len(), "nothing accumulates in an undrained mixer")
	assert.Equal(t, "theme", m.BGM())

	m.StopBGM()
	assert.Equal(t, "", m.BGM())
}
