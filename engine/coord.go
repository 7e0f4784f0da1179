package engine

type Coord struct {
	X int
	Y int
}

func GetNeighbor(dir Direction, from Coord) Coord {
	offset := DirToOffset(dir)
	return Coord{X: from.X + offset.X, Y: from.Y + offset.Y}
}
