// Package shape holds small geometric value types.
//
// Rectangle is the only shape so far:
//
//	r := shape.NewRectangle(10, 20)
//	r.Area() // 200
//
// Rectangles carry json and yaml tags so they round-trip through the codec
// package unchanged.
package shape
