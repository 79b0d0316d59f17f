package board

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Outcome is the result of a shot.
type Outcome int

const (
	Miss Outcome = iota
	Hit
	Sunk
	AlreadyShot
	OutOfBounds
)

func (o Outcome) String() string {
	switch o {
	case Miss:
		return "Miss"
	case Hit:
		return "Hit"
	case Sunk:
		return "Sunk"
	case AlreadyShot:
		return "AlreadyShot"
	case OutOfBounds:
		return "OutOfBounds"
	default:
		return "Unknown"
	}
}

// ShotResult describes one shot. Ship is set for Hit and Sunk.
type ShotResult struct {
	Outcome Outcome
	Ship    *Ship
}

// ErrNoRoom is returned when a ship fits the board in neither orientation.
var ErrNoRoom = errors.New("no room for ship")

// Board is a Width x Height grid of tiles plus the fleet hidden in it.
type Board struct {
	Width  int
	Height int
	Tiles  [][]Tile
	Fleet  []*Ship

	shots  int
	afloat int
}

// New creates an empty board.
func New(width, height int) *Board {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &Board{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (tx, ty) is a tile of the board.
func (b *Board) InBounds(tx, ty int) bool {
	return tx >= 0 && tx < b.Width && ty >= 0 && ty < b.Height
}

// GetTile returns the tile at the given tile coordinates, or nil outside
// the board.
func (b *Board) GetTile(tx, ty int) *Tile {
	if !b.InBounds(tx, ty) {
		return nil
	}
	return &b.Tiles[ty][tx]
}

// TileAtPixel converts screen pixels to tile coordinates. Negative pixels
// map to negative tiles.
func TileAtPixel(px, py, tileSize int) (tx, ty int) {
	return int(math.Floor(float64(px) / float64(tileSize))), int(math.Floor(float64(py) / float64(tileSize)))
}

type point struct{ x, y int }

// spaces lists every top-left position where a ship of the given length fits
// on free tiles, scanning rows top to bottom.
func (b *Board) spaces(length int, vertical bool) []point {
	var out []point
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.fits(x, y, length, vertical) {
				out = append(out, point{x, y})
			}
		}
	}
	return out
}

func (b *Board) fits(x, y, length int, vertical bool) bool {
	for i := 0; i < length; i++ {
		tx, ty := x+i, y
		if vertical {
			tx, ty = x, y+i
		}
		if !b.InBounds(tx, ty) || b.Tiles[ty][tx].Ship != nil {
			return false
		}
	}
	return true
}

// PlaceShip puts a ship at a random free position. The orientation is
// chosen at random; if it has no room the other one is tried.
func (b *Board) PlaceShip(s *Ship, rng *rand.Rand) error {
	vertical := rng.Float64() >= 0.5
	list := b.spaces(s.Length, vertical)
	if len(list) == 0 {
		vertical = !vertical
		list = b.spaces(s.Length, vertical)
	}
	if len(list) == 0 {
		return fmt.Errorf("%w: %s (length %d)", ErrNoRoom, s.Name, s.Length)
	}

	p := list[rng.Intn(len(list))]
	for i := 0; i < s.Length; i++ {
		tx, ty := p.x+i, p.y
		if vertical {
			tx, ty = p.x, p.y+i
		}
		b.Tiles[ty][tx].Ship = s
	}
	b.Fleet = append(b.Fleet, s)
	b.afloat++
	return nil
}

// Place hides every ship of the fleet on the board.
func (b *Board) Place(fleet []*Ship, rng *rand.Rand) error {
	for _, s := range fleet {
		if err := b.PlaceShip(s, rng); err != nil {
			return err
		}
	}
	return nil
}

// Shoot fires at a tile. Only shots at fresh tiles are counted.
func (b *Board) Shoot(tx, ty int) ShotResult {
	tile := b.GetTile(tx, ty)
	if tile == nil {
		return ShotResult{Outcome: OutOfBounds}
	}
	if tile.Shot {
		return ShotResult{Outcome: AlreadyShot}
	}

	b.shots++
	ship := tile.Hit()
	switch {
	case ship == nil:
		return ShotResult{Outcome: Miss}
	case ship.Destroyed():
		b.afloat--
		return ShotResult{Outcome: Sunk, Ship: ship}
	default:
		return ShotResult{Outcome: Hit, Ship: ship}
	}
}

// Shots is the number of counted shots.
func (b *Board) Shots() int { return b.shots }

// Afloat is the number of ships not yet sunk.
func (b *Board) Afloat() int { return b.afloat }

// Cleared reports that the whole fleet has been sunk.
func (b *Board) Cleared() bool {
	return len(b.Fleet) > 0 && b.afloat == 0
}
