// Package utils holds small float helpers shared by the ui layer.
package utils

import (
	"math"

	"gioui.org/f32"
)

// Distance returns the euclidean distance between two points.
func Distance(a, b f32.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Lerp rescales a position in the input range onto the output range,
// clamped to the output range.
func Lerp(outputRangeStart, outputRangeEnd, inputRangeStart, inputRangeEnd, inputRangePosition float64) float64 {
	minDest := math.Min(outputRangeStart, outputRangeEnd)
	maxDest := math.Max(outputRangeStart, outputRangeEnd)

	pct := (inputRangePosition - inputRangeStart) / (inputRangeEnd - inputRangeStart)
	rescaled := outputRangeStart + pct*(outputRangeEnd-outputRangeStart)

	return math.Max(minDest, math.Min(maxDest, rescaled))
}
