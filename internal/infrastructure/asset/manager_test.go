package asset

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func wavBytes(t *testing.T, samples int) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	format := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(samples), format))
	require.NoError(t, f.Close())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func quiet() *log.Logger { return log.New(io.Discard) }

func waitReady(t *testing.T, m *Manager) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !m.Ready() {
		require.NoError(t, m.Update())
		if time.Now().After(deadline) {
			t.Fatal("assets did not finish loading")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestManager_EmptyIsReady(t *testing.T) {
	m := NewManager(fstest.MapFS{}, quiet())

	assert.True(t, m.Ready())
	assert.Equal(t, 1.0, m.Progress())
	assert.NoError(t, m.Update())
}

func TestManager_LoadImagesAndClips(t *testing.T) {
	fsys := fstest.MapFS{
		"img/water.png":    {Data: pngBytes(t, 4, 2)},
		"img/ship.png":     {Data: pngBytes(t, 8, 8)},
		"audio/splash.wav": {Data: wavBytes(t, 441)},
	}
	uploads := 0
	m := NewManager(fsys, quiet(), WithTextures(func(img image.Image) *ebiten.Image {
		uploads++
		return nil
	}), WithConcurrency(2))

	m.LoadImage("img/water.png", "water")
	m.LoadImage("img/ship.png", "")
	m.LoadAudio("audio/splash.wav", "splash")

	assert.False(t, m.Ready(), "queued assets are not ready")
	assert.Equal(t, 0.0, m.Progress())

	waitReady(t, m)

	assert.Equal(t, 1.0, m.Progress())
	assert.Equal(t, 2, uploads)

	img, ok := m.Image("water")
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())

	_, ok = m.Image("img/ship.png")
	assert.True(t, ok, "empty name falls back to the path")

	clip, ok := m.Clip("splash")
	require.True(t, ok)
	assert.Equal(t, 441, clip.Len())
	assert.Equal(t, beep.SampleRate(22050), clip.Format().SampleRate)
}

func TestManager_NewBatchResetsProgress(t *testing.T) {
	fsys := fstest.MapFS{
		"a.png": {Data: pngBytes(t, 1, 1)},
		"b.png": {Data: pngBytes(t, 1, 1)},
	}
	m := NewManager(fsys, quiet())

	m.LoadImage("a.png", "a")
	waitReady(t, m)

	m.LoadImage("b.png", "b")
	assert.False(t, m.Ready())
	assert.Equal(t, 0.0, m.Progress(), "progress covers the new batch only")

	waitReady(t, m)
	assert.Equal(t, 1.0, m.Progress())
}

func TestManager_MissingFile(t *testing.T) {
	m := NewManager(fstest.MapFS{}, quiet())
	m.LoadImage("nope.png", "nope")

	var err error
	deadline := time.Now().Add(2 * time.Second)
	for err == nil && !m.Ready() && time.Now().Before(deadline) {
		err = m.Update()
		time.Sleep(time.Millisecond)
	}

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unable to read image asset "nope"`)
	assert.True(t, m.Ready(), "a failed batch is finished")
}

func TestManager_BadImage(t *testing.T) {
	m := NewManager(fstest.MapFS{"bad.png": {Data: []byte("not a png")}}, quiet())
	m.LoadImage("bad.png", "bad")

	var err error
	for i := 0; i < 2000 && err == nil && !m.Ready(); i++ {
		err = m.Update()
		time.Sleep(time.Millisecond)
	}

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unable to decode image "bad.png"`)
}

func TestManager_Unload(t *testing.T) {
	fsys := fstest.MapFS{
		"a.png": {Data: pngBytes(t, 1, 1)},
		"a.wav": {Data: wavBytes(t, 10)},
	}
	m := NewManager(fsys, quiet())
	m.LoadImage("a.png", "a")
	m.LoadAudio("a.wav", "a")
	waitReady(t, m)

	m.Unload(KindImage, "a")
	_, ok := m.Image("a")
	assert.False(t, ok)
	assert.Nil(t, m.Texture("a"))

	_, ok = m.Clip("a")
	assert.True(t, ok, "tables are separate per kind")

	m.Unload(KindAudio, "a")
	_, ok = m.Clip("a")
	assert.False(t, ok)
}

func TestManager_ReloadIsNoop(t *testing.T) {
	fsys := fstest.MapFS{
		"water.png":  {Data: pngBytes(t, 2, 2)},
		"splash.wav": {Data: wavBytes(t, 10)},
	}
	uploads := 0
	m := NewManager(fsys, quiet(), WithTextures(func(img image.Image) *ebiten.Image {
		uploads++
		return nil
	}))

	m.LoadImage("water.png", "water")
	m.LoadImage("water.png", "water")
	m.LoadAudio("splash.wav", "splash")
	assert.Equal(t, 2, m.total, "duplicates in one batch are queued once")
	waitReady(t, m)
	before, _ := m.Image("water")

	m.LoadImage("water.png", "water")
	m.LoadAudio("splash.wav", "splash")
	assert.True(t, m.Ready(), "loaded names are not queued again")
	assert.Equal(t, 1.0, m.Progress())

	waitReady(t, m)
	after, _ := m.Image("water")
	assert.Equal(t, 1, uploads)
	assert.Same(t, before, after)
}

func TestManager_UnloadThenReload(t *testing.T) {
	fsys := fstest.MapFS{
		"water.png":  {Data: pngBytes(t, 2, 2)},
		"splash.wav": {Data: wavBytes(t, 10)},
	}
	m := NewManager(fsys, quiet())
	m.LoadImage("water.png", "water")
	m.LoadAudio("splash.wav", "splash")
	waitReady(t, m)

	m.UnloadImage("water")
	m.UnloadAudio("splash")
	_, ok := m.Image("water")
	assert.False(t, ok)
	_, ok = m.Clip("splash")
	assert.False(t, ok)

	m.LoadImage("water.png", "water")
	m.LoadAudio("splash.wav", "splash")
	assert.False(t, m.Ready(), "unloaded names load again")
	waitReady(t, m)

	_, ok = m.Image("water")
	assert.True(t, ok)
	_, ok = m.Clip("splash")
	assert.True(t, ok)
}

func TestManager_FailedBatchCanRetry(t *testing.T) {
	fsys := fstest.MapFS{"bad.png": {Data: []byte("not a png")}}
	m := NewManager(fsys, quiet())
	m.LoadImage("bad.png", "bad")

	var err error
	for i := 0; i < 2000 && err == nil && !m.Ready(); i++ {
		err = m.Update()
		time.Sleep(time.Millisecond)
	}
	require.Error(t, err)

	fsys["bad.png"] = &fstest.MapFile{Data: pngBytes(t, 1, 1)}
	m.LoadImage("bad.png", "bad")
	assert.False(t, m.Ready(), "a failed name is not left pending")
	waitReady(t, m)
	_, ok := m.Image("bad")
	assert.True(t, ok)
}
