package engine

// Cell is either empty or holds a flower of some color.
// The zero value is Empty.
type Cell struct {
	occupied bool
	color    Color
}

var Empty = Cell{}

func Flower(c Color) Cell {
	return Cell{occupied: true, color: c}
}

func (c Cell) IsEmpty() bool {
	return !c.occupied
}

// Color returns the flower color and whether the cell is occupied at all.
func (c Cell) Color() (Color, bool) {
	return c.color, c.occupied
}

func (c Cell) String() string {
	if !c.occupied {
		return "Empty"
	}
	return "Flower(" + c.color.String() + ")"
}
