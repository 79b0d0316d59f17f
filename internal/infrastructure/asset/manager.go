// Package asset loads images and audio clips from a file system in the
// background and hands them out by name.
package asset

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io/fs"
	"math"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Kind selects the asset table.
type Kind int

const (
	KindImage Kind = iota
	KindAudio
)

func (k Kind) String() string {
	if k == KindAudio {
		return "audio"
	}
	return "image"
}

// TextureFunc uploads a decoded image to the GPU.
type TextureFunc func(img image.Image) *ebiten.Image

// DefaultConcurrency bounds how many files decode at once.
const DefaultConcurrency = 4

type request struct {
	kind Kind
	path string
	name string
}

// key identifies an asset; images and clips have separate names.
type key struct {
	kind Kind
	name string
}

type loaded struct {
	req  request
	img  image.Image
	clip *beep.Buffer
}

// Manager owns every loaded asset. All methods must be called from the game
// goroutine; only decoding runs in the background.
type Manager struct {
	fsys        fs.FS
	logger      *log.Logger
	newTexture  TextureFunc
	concurrency int

	queue    []request
	pending  map[key]struct{} // queued or decoding
	inFlight bool
	results  chan loaded
	done     chan error
	cancel   context.CancelFunc

	total       int
	merged      int
	lastPercent int

	images   map[string]image.Image
	textures map[string]*ebiten.Image
	clips    map[string]*beep.Buffer
}

// Option configures a Manager.
type Option func(*Manager)

// WithTextures sets how decoded images become textures. Without it the
// manager keeps decoded images only, which suits headless runs.
func WithTextures(fn TextureFunc) Option {
	return func(m *Manager) { m.newTexture = fn }
}

// WithConcurrency bounds parallel decodes.
func WithConcurrency(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.concurrency = n
		}
	}
}

// EbitenTextures uploads images with ebiten.NewImageFromImage.
func EbitenTextures(img image.Image) *ebiten.Image {
	return ebiten.NewImageFromImage(img)
}

// NewManager creates a manager reading from fsys.
func NewManager(fsys fs.FS, logger *log.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	m := &Manager{
		fsys:        fsys,
		logger:      logger,
		concurrency: DefaultConcurrency,
		lastPercent: -1,
		images:      make(map[string]image.Image),
		textures:    make(map[string]*ebiten.Image),
		clips:       make(map[string]*beep.Buffer),
		pending:     make(map[key]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// LoadImage queues a PNG. An empty name uses the path.
func (m *Manager) LoadImage(path, name string) {
	m.enqueue(KindImage, path, name)
}

// LoadAudio queues a WAV clip. An empty name uses the path.
func (m *Manager) LoadAudio(path, name string) {
	m.enqueue(KindAudio, path, name)
}

func (m *Manager) enqueue(kind Kind, path, name string) {
	if name == "" {
		name = path
	}
	k := key{kind: kind, name: name}
	if _, ok := m.pending[k]; ok || m.has(k) {
		return
	}
	if m.Ready() {
		m.total, m.merged, m.lastPercent = 0, 0, -1
	}
	m.queue = append(m.queue, request{kind: kind, path: path, name: name})
	m.pending[k] = struct{}{}
	m.total++
}

func (m *Manager) has(k key) bool {
	switch k.kind {
	case KindImage:
		_, ok := m.images[k.name]
		return ok
	case KindAudio:
		_, ok := m.clips[k.name]
		return ok
	}
	return false
}

// Ready reports that nothing is queued or loading.
func (m *Manager) Ready() bool {
	return len(m.queue) == 0 && !m.inFlight
}

// Progress is the loaded fraction of the current batch in [0, 1].
func (m *Manager) Progress() float64 {
	if m.total == 0 {
		return 1
	}
	return float64(m.merged) / float64(m.total)
}

// Update starts decoding queued files and stores whatever has finished.
// It never blocks. A decode failure aborts the batch and is returned once.
func (m *Manager) Update() error {
	if !m.inFlight && len(m.queue) > 0 {
		m.launch()
	}
	if !m.inFlight {
		return nil
	}

	m.drain()

	select {
	case err := <-m.done:
		m.drain()
		m.inFlight = false
		m.cancel()
		if err != nil {
			m.total, m.merged = 0, 0
			m.pending = make(map[key]struct{}, len(m.queue))
			for _, req := range m.queue {
				m.pending[key{kind: req.kind, name: req.name}] = struct{}{}
			}
			return err
		}
	default:
	}

	m.logProgress()
	return nil
}

func (m *Manager) launch() {
	batch := m.queue
	m.queue = nil
	m.inFlight = true
	m.results = make(chan loaded, len(batch))
	m.done = make(chan error, 1)

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	results, done := m.results, m.done
	fsys, limit := m.fsys, m.concurrency

	go func() {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(limit)
		for _, req := range batch {
			req := req
			g.Go(func() error {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				l, err := decode(fsys, req)
				if err != nil {
					return err
				}
				results <- l
				return nil
			})
		}
		done <- g.Wait()
	}()
}

func (m *Manager) drain() {
	for {
		select {
		case l := <-m.results:
			m.store(l)
		default:
			return
		}
	}
}

func (m *Manager) store(l loaded) {
	switch l.req.kind {
	case KindImage:
		m.images[l.req.name] = l.img
		if m.newTexture != nil {
			m.textures[l.req.name] = m.newTexture(l.img)
		}
	case KindAudio:
		m.clips[l.req.name] = l.clip
	}
	delete(m.pending, key{kind: l.req.kind, name: l.req.name})
	m.merged++
	m.logger.Debug("asset loaded", "kind", l.req.kind, "name", l.req.name)
}

func (m *Manager) logProgress() {
	percent := int(math.Floor(m.Progress() * 100))
	if percent == m.lastPercent {
		return
	}
	m.lastPercent = percent
	m.logger.Info("loading assets", "percent", percent)
}

func decode(fsys fs.FS, req request) (loaded, error) {
	data, err := fs.ReadFile(fsys, req.path)
	if err != nil {
		return loaded{}, errors.Wrapf(err, "unable to read %s asset %q", req.kind, req.name)
	}

	l := loaded{req: req}
	switch req.kind {
	case KindImage:
		l.img, err = png.Decode(bytes.NewReader(data))
		if err != nil {
			return loaded{}, errors.Wrapf(err, "unable to decode image %q", req.path)
		}
	case KindAudio:
		streamer, format, err := wav.Decode(bytes.NewReader(data))
		if err != nil {
			return loaded{}, errors.Wrapf(err, "unable to decode clip %q", req.path)
		}
		defer streamer.Close()
		l.clip = beep.NewBuffer(format)
		l.clip.Append(streamer)
	}
	return l, nil
}

// Texture returns the named texture, or nil when it is not loaded or the
// manager has no texture factory.
func (m *Manager) Texture(name string) *ebiten.Image {
	return m.textures[name]
}

// Image returns the decoded image.
func (m *Manager) Image(name string) (image.Image, bool) {
	img, ok := m.images[name]
	return img, ok
}

// Clip returns the named audio clip.
func (m *Manager) Clip(name string) (*beep.Buffer, bool) {
	clip, ok := m.clips[name]
	return clip, ok
}

// UnloadImage drops an image and disposes its texture.
func (m *Manager) UnloadImage(name string) { m.Unload(KindImage, name) }

// UnloadAudio drops a clip.
func (m *Manager) UnloadAudio(name string) { m.Unload(KindAudio, name) }

// Unload drops a loaded asset and disposes its texture.
func (m *Manager) Unload(kind Kind, name string) {
	switch kind {
	case KindImage:
		if tex, ok := m.textures[name]; ok && tex != nil {
			tex.Deallocate()
		}
		delete(m.textures, name)
		delete(m.images, name)
	case KindAudio:
		delete(m.clips, name)
	}
}
