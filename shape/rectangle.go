// SPDX-License-Identifier: MIT
// Package: selkit/shape

package shape

// Rectangle is an axis-aligned rectangle described by its side lengths.
// No validation is applied: negative or zero sides are stored as given.
type Rectangle struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NewRectangle returns a rectangle with the given width and height.
func NewRectangle(width, height float64) *Rectangle {
	return &Rectangle{Width: width, Height: height}
}

// Area returns Width*Height.
func (r *Rectangle) Area() float64 {
	return r.Width * r.Height
}
