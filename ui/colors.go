package ui

import "image/color"

var whiteColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var slightDark = color.NRGBA{R: 0, G: 0, B: 0, A: 127}
var slightRed = color.NRGBA{R: 255, G: 0, B: 0, A: 127}
