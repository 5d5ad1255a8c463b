package envelope

// Point is a single (time, value) breakpoint. Points are plain values;
// mutating a curve replaces them wholesale.
type Point struct {
	Time  float64
	Value float64
}
