package engine

type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions is the order in which a flower tries to spread.
var Directions = [4]Direction{Left, Right, Up, Down}

var offsets = [4]Coord{
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
}

func DirToOffset(dir Direction) Coord {
	return offsets[dir]
}
