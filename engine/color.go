package engine

import (
	"flowers/utils"
	"fmt"
)

// Color is the 3-channel color carried by a flower. Alpha is left to the renderer.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Background is what an empty cell looks like.
var Background = Color{R: 0, G: 0, B: 0}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Mutate returns a copy of c with every channel shifted by an independent
// uniform offset in [-delta, +delta], saturating at 0 and 255.
func (c Color) Mutate(rng Rand, delta int) Color {
	return Color{
		R: mutateChannel(c.R, rng, delta),
		G: mutateChannel(c.G, rng, delta),
		B: mutateChannel(c.B, rng, delta),
	}
}

func mutateChannel(v uint8, rng Rand, delta int) uint8 {
	if delta <= 0 {
		return v
	}
	offset := RandRange(rng, -delta, delta+1)
	return uint8(utils.Clamp(int(v)+offset, 0, 255))
}

// RandomColor picks each channel uniformly from [0, 255).
func RandomColor(rng Rand) Color {
	return Color{
		R: uint8(rng.IntN(255)),
		G: uint8(rng.IntN(255)),
		B: uint8(rng.IntN(255)),
	}
}
