package engine

// Snake is an ordered list of cells, head first
type Snake struct {
	cells []Point
}

// NewSnake creates a horizontal snake of length cells with its head at head, tail to the left
func NewSnake(head Point, length int) Snake {
	cells := make([]Point, 0, length+8)
	for i := 0; i < length; i++ {
		cells = append(cells, Point{X: head.X - i, Y: head.Y})
	}
	return Snake{cells: cells}
}

// Head returns the first cell
func (s *Snake) Head() Point {
	return s.cells[0]
}

// Len returns the number of cells
func (s *Snake) Len() int {
	return len(s.cells)
}

// Contains reports whether any cell equals p, tail included
func (s *Snake) Contains(p Point) bool {
	for _, c := range s.cells {
		if c == p {
			return true
		}
	}
	return false
}

// PushHead prepends a new head
func (s *Snake) PushHead(p Point) {
	s.cells = append(s.cells, Point{})
	copy(s.cells[1:], s.cells)
	s.cells[0] = p
}

// PopTail drops the last cell
func (s *Snake) PopTail() {
	if len(s.cells) > 0 {
		s.cells = s.cells[:len(s.cells)-1]
	}
}

// Cells returns a copy of the body
func (s *Snake) Cells() []Point {
	out := make([]Point, len(s.cells))
	copy(out, s.cells)
	return out
}
