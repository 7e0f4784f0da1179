// Package snapshot renders a board to an image file.
package snapshot

import (
	"flowers/engine"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Image draws one pixel per cell, empty cells in the background color.
func Image(board *engine.Board) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, board.Width(), board.Height()))

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			img.SetRGBA(x, y, RGBA(board.ColorAt(x, y)))
		}
	}

	return img
}

func RGBA(c engine.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Encode writes the board as "png" or "bmp".
func Encode(w io.Writer, board *engine.Board, format string) error {
	img := Image(board)

	switch format {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported snapshot format %q", format)
	}
}

// Write picks the format from the file extension.
func Write(path string, board *engine.Board) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}

	if err := Encode(file, board, format); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}

	return file.Close()
}
