// Package board holds the Battleship rules: the grid, the fleet, shooting
// and scoring.
package board

// Ship is one vessel of the fleet. Remaining counts unhit cells.
type Ship struct {
	Name      string
	Length    int
	Remaining int
}

func NewShip(name string, length int) *Ship {
	return &Ship{Name: name, Length: length, Remaining: length}
}

// Hit removes one intact cell.
func (s *Ship) Hit() {
	if s.Remaining > 0 {
		s.Remaining--
	}
}

func (s *Ship) Destroyed() bool {
	return s.Remaining <= 0
}
