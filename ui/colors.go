package ui

import "image/color"

var backgroundColor = color.NRGBA{R: 45, G: 109, B: 162, A: 255}
var backgroundDragColor = color.NRGBA{R: 30, G: 72, B: 107, A: 255}
var backgroundSettleColor = color.NRGBA{R: 38, G: 91, B: 135, A: 255}
var tileColor = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
var tileDragColor = color.NRGBA{R: 255, G: 244, B: 179, A: 255}
var letterColor = color.NRGBA{R: 25, G: 25, B: 25, A: 255}
var maroon = color.NRGBA{R: 127, G: 0, B: 0, A: 255}

var slightBlue = color.NRGBA{R: 0, G: 0, B: 255, A: 127}
var slightRed = color.NRGBA{R: 255, G: 0, B: 0, A: 127}
