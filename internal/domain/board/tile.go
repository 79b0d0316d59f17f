package board

// Tile is one grid cell, optionally covered by a ship.
type Tile struct {
	Ship *Ship
	Shot bool
}

// Hit marks the tile as shot and returns the ship it covers, or nil.
func (t *Tile) Hit() *Ship {
	t.Shot = true
	if t.Ship != nil {
		t.Ship.Hit()
	}
	return t.Ship
}
