package shape_test

import (
	"fmt"

	"github.com/katalvlaran/selkit/shape"
)

func ExampleNewRectangle() {
	r := shape.NewRectangle(10, 20)
	fmt.Println(r.Width, r.Height, r.Area())
	// Output:
	// 10 20 200
}
