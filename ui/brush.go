package ui

import (
	"fmt"

	"gioui.org/io/pointer"
)

// Brush is what the pointer is currently doing to the grid.
type Brush int

const (
	Idle Brush = iota
	Plant
	Clear
)

func (b Brush) String() string {
	switch b {
	case Idle:
		return "Idle"
	case Plant:
		return "Plant"
	case Clear:
		return "Clear"
	default:
		panic(fmt.Sprintf("Invalid brush: %d", int(b)))
	}
}

// brushFor maps held buttons to a brush. Clearing wins over planting.
func brushFor(buttons pointer.Buttons) Brush {
	switch {
	case buttons.Contain(pointer.ButtonSecondary):
		return Clear
	case buttons.Contain(pointer.ButtonPrimary):
		return Plant
	default:
		return Idle
	}
}
