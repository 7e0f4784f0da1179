package engine

import (
	"flowers/utils"
	"fmt"
)

// Board is a dense row-major grid of cells. Positions outside the board are
// never stored and read back as Empty.
type Board struct {
	width  int
	height int
	cells  []Cell
}

func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("Invalid board size: %d, %d", width, height))
	}

	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At never fails: anything off the board is Empty.
func (b *Board) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.cells[y*b.width+x]
}

// ColorAt is what the renderer shows at (x, y).
func (b *Board) ColorAt(x, y int) Color {
	if c, ok := b.At(x, y).Color(); ok {
		return c
	}
	return Background
}

// Cell returns the slot at (x, y) for in-place updates.
// Callers must check InBounds first; an off-board position panics.
func (b *Board) Cell(x, y int) *Cell {
	return &b.cells[b.index(x, y)]
}

// Set writes a cell. Callers must check InBounds first; an off-board position panics.
func (b *Board) Set(x, y int, cell Cell) {
	*b.Cell(x, y) = cell
}

func (b *Board) index(x, y int) int {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("Cell position out of bounds: %d, %d (board is %dx%d)", x, y, b.width, b.height))
	}
	return y*b.width + x
}

// Population counts occupied cells with a full scan.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)

	return &Board{
		width:  b.width,
		height: b.height,
		cells:  cells,
	}
}

// clipSpan returns [c-r, c+r] clipped to [0, n). lo > hi when nothing is left.
func clipSpan(c, r, n int) (int, int) {
	if r < 0 {
		return 0, -1
	}
	return max(0, utils.SaturatingAdd(c, -r)), min(n-1, utils.SaturatingAdd(c, r))
}
