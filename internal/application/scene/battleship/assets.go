// Package battleship holds the game's scenes: title, credits, playing and
// score. Each scene queues its assets in its constructor and builds its
// elements in Start.
package battleship

import (
	"image/color"

	"github.com/younwookim/battleship/internal/application/scene"
	"github.com/younwookim/battleship/internal/infrastructure/graphics"
)

// Asset names.
const (
	texTitle         = "title"
	texCredits       = "credits"
	texButton        = "button"
	texButtonHovered = "buttonHovered"
	texButtonClicked = "buttonClicked"
	texWater         = "water"
	texMiss          = "miss"
	texHit           = "hit"

	bgmTitle   = "titleBGM"
	bgmCredits = "creditsBGM"
	bgmGame    = "game"
	bgmScore   = "scoreBGM"

	seSelection = "selection"
	seError     = "error"
	seExplosion = "explosion"
	seSplash    = "splash"
)

const (
	buttonWidth  = 128
	buttonHeight = 32
	buttonBorder = 7
	buttonText   = 13
)

var (
	colorWhite  = color.White
	colorBlack  = color.Black
	colorCursor = color.RGBA{R: 64, G: 64, B: 64, A: 64}
)

func loadButtonAssets(a scene.Assets) {
	a.LoadAudio("audio/se/select.wav", seSelection)
	a.LoadImage("img/button.png", texButton)
	a.LoadImage("img/button_hovered.png", texButtonHovered)
	a.LoadImage("img/button_clicked.png", texButtonClicked)
}

func newMenuButton(a scene.Assets, dst graphics.Rect, caption string) *graphics.Button {
	b := graphics.NewButton(dst, a.Texture(texButton), buttonBorder, caption, buttonText)
	b.Textures[graphics.ButtonHovered] = a.Texture(texButtonHovered)
	b.Textures[graphics.ButtonClicked] = a.Texture(texButtonClicked)
	b.Label.Color = colorWhite
	return b
}
