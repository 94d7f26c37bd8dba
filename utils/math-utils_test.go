package utils

import (
	"testing"

	"gioui.org/f32"
)

func TestDistance(t *testing.T) {
	distanceTests := []struct {
		a, b f32.Point
		want float64
	}{
		{a: f32.Point{}, b: f32.Point{}, want: 0},
		{a: f32.Point{X: 0, Y: 0}, b: f32.Point{X: 3, Y: 4}, want: 5},
		{a: f32.Point{X: -1, Y: -1}, b: f32.Point{X: -1, Y: 9}, want: 10},
	}
	for i, test := range distanceTests {
		if got := Distance(test.a, test.b); got != test.want {
			t.Errorf("Test %v: Distance(%v, %v): wanted %v, got %v", i, test.a, test.b, test.want, got)
		}
	}
}

func TestLerp(t *testing.T) {
	lerpTests := []struct {
		outStart, outEnd float64
		inStart, inEnd   float64
		pos              float64
		want             float64
	}{
		{outStart: 0, outEnd: 10, inStart: 0, inEnd: 100, pos: 50, want: 5},
		{outStart: 0, outEnd: 10, inStart: 0, inEnd: 100, pos: 200, want: 10},
		{outStart: 0, outEnd: 10, inStart: 0, inEnd: 100, pos: -50, want: 0},
		{outStart: 10, outEnd: 0, inStart: 0, inEnd: 100, pos: 0, want: 10},
	}
	for i, test := range lerpTests {
		got := Lerp(test.outStart, test.outEnd, test.inStart, test.inEnd, test.pos)
		if got != test.want {
			t.Errorf("Test %v: wanted %v, got %v", i, test.want, got)
		}
	}
}
