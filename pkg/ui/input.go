// Package ui holds the few immediate mode widgets the viewer needs: sliders, checkboxes
// and buttons grouped in a scrollable side panel.
package ui

import "github.com/hajimehoshi/ebiten/v2"

// Input is the pointer state widgets react to during one Update.
type Input struct {
	X, Y    float64
	Pressed bool    // left button held
	Wheel   float64 // vertical wheel delta
}

// PollInput reads the current mouse state from ebiten.
func PollInput() Input {
	mx, my := ebiten.CursorPosition()
	_, dy := ebiten.Wheel()
	return Input{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Wheel:   dy,
	}
}

// Inside reports whether the pointer is over the rectangle (x, y, w, h).
func (in Input) Inside(x, y, w, h float64) bool {
	return in.X >= x && in.X <= x+w && in.Y >= y && in.Y <= y+h
}
