package envelope_test

import (
	"fmt"

	"github.com/cwbudde/algo-envelope"
)

func ExampleCurve_ValueAt() {
	c := envelope.New(
		envelope.Point{Time: 0, Value: 0},
		envelope.Point{Time: 10, Value: 10},
		envelope.Point{Time: 20, Value: 0},
	)

	fmt.Printf("%.1f\n", c.ValueAt(-5))
	fmt.Printf("%.1f\n", c.ValueAt(5))
	fmt.Printf("%.1f\n", c.ValueAt(15))
	fmt.Printf("%.1f\n", c.ValueAt(25))

	// Output:
	// 0.0
	// 5.0
	// 5.0
	// 0.0
}

func ExampleCurve_FillBuffer() {
	c := envelope.New(
		envelope.Point{Time: 0, Value: 0},
		envelope.Point{Time: 10, Value: 10},
		envelope.Point{Time: 20, Value: 0},
	)

	buf := make([]float64, 4)
	c.FillBuffer(buf, 0, 20)
	fmt.Printf("%.0f\n", buf)

	c.FillBuffer(buf, 0, 20, envelope.WithClamp(0, 8))
	fmt.Printf("%.0f\n", buf)

	// Output:
	// [0 5 10 5]
	// [0 5 8 5]
}
