package battleship

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/battleship/internal/application/scene"
	"github.com/younwookim/battleship/internal/domain/board"
	"github.com/younwookim/battleship/internal/engine/anim"
	"github.com/younwookim/battleship/internal/engine/easing"
	"github.com/younwookim/battleship/internal/infrastructure/config"
	"github.com/younwookim/battleship/internal/infrastructure/graphics"
)

// waterFrames is the number of frames laid out horizontally in the water
// texture.
const waterFrames = 4

const popupTextSize = 32

// popup is a "you sank" message that holds, rises off screen and is removed.
type popup struct {
	label *graphics.Label
	anim  *anim.Animation
	done  bool
}

// Playing is the board scene: the player shoots tiles until the whole fleet
// is sunk.
type Playing struct {
	cfg   *config.BattleshipConfig
	board *board.Board

	tiles      [][]*graphics.Sprite
	frameSize  int
	waterFrame image.Rectangle
	water      *anim.Animation

	fade    *anim.Animation
	popups  []*popup
	cursorX int
	cursorY int
}

// NewPlaying creates the board scene and queues its assets.
func NewPlaying(ctx scene.Context, cfg *config.BattleshipConfig) *Playing {
	a := ctx.Assets()
	a.LoadAudio("audio/bgm/game.wav", bgmGame)
	a.LoadAudio("audio/se/error.wav", seError)
	a.LoadAudio("audio/se/explosion.wav", seExplosion)
	a.LoadAudio("audio/se/water.wav", seSplash)
	a.LoadImage("img/water.png", texWater)
	a.LoadImage("img/water_miss.png", texMiss)
	a.LoadImage("img/water_hit.png", texHit)
	return &Playing{cfg: cfg}
}

// Board returns the board being played.
func (p *Playing) Board() *board.Board { return p.board }

func (p *Playing) Start(ctx scene.Context) error {
	ctx.Audio().PlayBGM(bgmGame)

	bc := p.cfg.Board
	p.board = board.New(bc.Width, bc.Height)
	fleet := make([]*board.Ship, 0, len(p.cfg.Fleet))
	for _, s := range p.cfg.Fleet {
		fleet = append(fleet, board.NewShip(s.Name, s.Length))
	}
	if err := p.board.Place(fleet, ctx.Rand()); err != nil {
		return fmt.Errorf("failed to place fleet: %w", err)
	}

	p.frameSize = int(float64(bc.TileSize) / bc.TileScale)
	p.waterFrame = image.Rect(0, 0, p.frameSize, p.frameSize)

	water := ctx.Assets().Texture(texWater)
	p.tiles = make([][]*graphics.Sprite, bc.Height)
	for y := range p.tiles {
		p.tiles[y] = make([]*graphics.Sprite, bc.Width)
		for x := range p.tiles[y] {
			s := graphics.NewSprite(water)
			s.X, s.Y = float64(x*bc.TileSize), float64(y*bc.TileSize)
			s.ScaleX, s.ScaleY = bc.TileScale, bc.TileScale
			s.Src = &p.waterFrame
			p.tiles[y][x] = s
		}
	}

	p.popups = nil
	p.cursorX, p.cursorY = -1, -1
	p.water = anim.New(0, 0, p.cfg.Timings.WaterFrameMs, easing.Linear, p.nextWaterFrame)
	p.fade = anim.New(1, 0, p.cfg.Timings.FadeMs, easing.InOutSine, nil)
	return nil
}

// nextWaterFrame moves every water tile to the next frame and restarts the
// frame timer.
func (p *Playing) nextWaterFrame(a *anim.Animation, finished bool, _, _ float64) {
	if !finished {
		return
	}
	x := (p.waterFrame.Min.X + p.frameSize) % (p.frameSize * waterFrames)
	p.waterFrame = image.Rect(x, 0, x+p.frameSize, p.frameSize)
	a.Reset(0, 0, p.cfg.Timings.WaterFrameMs, easing.Linear, p.nextWaterFrame)
}

func (p *Playing) Update(ctx scene.Context) error {
	dt := ctx.DeltaTime()
	p.fade.Advance(dt)
	p.water.Advance(dt)
	p.updatePopups(dt)

	mx, my := ctx.Pointer().Position()
	p.cursorX, p.cursorY = board.TileAtPixel(mx, my, p.cfg.Board.TileSize)

	if !p.fade.Finished() || p.board.Cleared() || !ctx.Pointer().Clicked() {
		return nil
	}
	if !p.board.InBounds(p.cursorX, p.cursorY) {
		return nil
	}
	p.shoot(ctx, p.cursorX, p.cursorY)
	return nil
}

func (p *Playing) shoot(ctx scene.Context, tx, ty int) {
	res := p.board.Shoot(tx, ty)
	tile := p.tiles[ty][tx]

	switch res.Outcome {
	case board.AlreadyShot:
		ctx.Audio().PlaySE(seError)
		return
	case board.Miss:
		ctx.Audio().PlaySE(seSplash)
		tile.Texture = ctx.Assets().Texture(texMiss)
	case board.Hit, board.Sunk:
		ctx.Audio().PlaySE(seExplosion)
		tile.Texture = ctx.Assets().Texture(texHit)
	}
	tile.Src = nil

	if res.Outcome == board.Sunk {
		p.addPopup(ctx, fmt.Sprintf("You sank my %s!", res.Ship.Name))
	}
	if p.board.Cleared() {
		p.finish(ctx)
	}
}

func (p *Playing) finish(ctx scene.Context) {
	shots := p.board.Shots()
	sc := p.cfg.Score
	p.fade.Reset(0, 1, p.cfg.Timings.FadeMs, easing.InOutSine, func(_ *anim.Animation, finished bool, _, _ float64) {
		if finished {
			ctx.Scenes().Request(NewScore(ctx, p.cfg, board.Score(shots, sc.PerfectShots, sc.MaxShots)))
		}
	})
}

func (p *Playing) addPopup(ctx scene.Context, msg string) {
	w, h := ctx.ScreenSize()
	l := graphics.NewLabel(msg, popupTextSize)
	l.Color = colorWhite
	l.Align = graphics.AlignCenter
	l.Baseline = graphics.AlignCenter
	l.X, l.Y = float64(w)/2, float64(h)/2

	pp := &popup{label: l}
	t := p.cfg.Timings
	pp.anim = anim.New(0, 0, t.LabelHoldMs, easing.Linear, func(a *anim.Animation, finished bool, _, overrun float64) {
		if !finished {
			return
		}
		a.Reset(l.Y, -l.Y, t.LabelRiseMs-overrun, easing.InSine, func(_ *anim.Animation, finished bool, value, _ float64) {
			l.Y = value
			pp.done = finished
		})
	})
	p.popups = append(p.popups, pp)
}

// updatePopups advances every popup, then drops the ones that left the
// screen.
func (p *Playing) updatePopups(dt float64) {
	for _, pp := range p.popups {
		pp.anim.Advance(dt)
	}
	kept := p.popups[:0]
	for _, pp := range p.popups {
		if !pp.done {
			kept = append(kept, pp)
		}
	}
	for i := len(kept); i < len(p.popups); i++ {
		p.popups[i] = nil
	}
	p.popups = kept
}

func (p *Playing) Draw(ctx scene.Context, screen *ebiten.Image) {
	screen.Fill(colorBlack)
	if p.fade == nil {
		return
	}
	for _, row := range p.tiles {
		for _, s := range row {
			s.Draw(screen)
		}
	}

	if p.board.InBounds(p.cursorX, p.cursorY) {
		ts := float64(p.cfg.Board.TileSize)
		graphics.FillRect(screen, graphics.NewRect(float64(p.cursorX)*ts, float64(p.cursorY)*ts, ts, ts), colorCursor)
	}

	for _, pp := range p.popups {
		drawOutlined(screen, pp.label)
	}

	if !p.fade.Finished() || p.board.Cleared() {
		graphics.Fade(screen, p.fade.Value())
	}
}

// drawOutlined draws l in black around its position, then in its own color.
func drawOutlined(screen *ebiten.Image, l *graphics.Label) {
	x, y, c := l.X, l.Y, l.Color
	l.Color = colorBlack
	for dy := -2.0; dy <= 2; dy += 2 {
		for dx := -2.0; dx <= 2; dx += 2 {
			if dx == 0 && dy == 0 {
				continue
			}
			l.X, l.Y = x+dx, y+dy
			l.Draw(screen)
		}
	}
	l.X, l.Y, l.Color = x, y, c
	l.Draw(screen)
}

func (p *Playing) Terminate(ctx scene.Context) {
	a := ctx.Assets()
	for _, name := range []string{texWater, texMiss, texHit} {
		a.UnloadImage(name)
	}
	for _, name := range []string{bgmGame, seError, seExplosion, seSplash} {
		a.UnloadAudio(name)
	}

	p.board = nil
	p.tiles = nil
	p.popups = nil
	p.water = nil
	p.fade = nil
}
