package envelope

import "sort"

// Curve is an ordered set of breakpoints evaluated by linear interpolation.
//
// Breakpoints are kept sorted ascending by time after every mutating call
// except [Curve.AddPointDeferred] and [Curve.ScaleTimes]. Query methods
// require a non-empty, sorted curve; querying an empty curve panics.
type Curve struct {
	points  []Point
	scratch []float64
}

// New returns a curve holding the given breakpoints, sorted by time.
func New(points ...Point) *Curve {
	c := &Curve{points: append([]Point(nil), points...)}
	c.Sort()
	return c
}

// Len returns the number of breakpoints.
func (c *Curve) Len() int { return len(c.points) }

// Point returns the breakpoint at index i.
func (c *Curve) Point(i int) Point { return c.points[i] }

// Points returns the backing breakpoint slice. The slice aliases the curve's
// storage; callers must not reorder it behind the curve's back.
func (c *Curve) Points() []Point { return c.points }

// Sort restores ascending time order. The sort is stable, so breakpoints
// with equal times keep their insertion order, and sorting an already sorted
// curve changes nothing.
func (c *Curve) Sort() {
	sort.SliceStable(c.points, func(i, j int) bool {
		return c.points[i].Time < c.points[j].Time
	})
}

// AddPoint appends a breakpoint and re-sorts.
func (c *Curve) AddPoint(p Point) {
	c.points = append(c.points, p)
	c.Sort()
}

// AddPointDeferred appends a breakpoint without sorting, for batched
// inserts. The caller must call [Curve.Sort] before the next query; segment
// lookup on an unsorted curve is unreliable.
func (c *Curve) AddPointDeferred(p Point) {
	c.points = append(c.points, p)
}

// AddPoints appends all breakpoints and re-sorts once.
func (c *Curve) AddPoints(points ...Point) {
	c.points = append(c.points, points...)
	c.Sort()
}

// RemovePoint removes the breakpoint at index i.
// Out-of-range indices are ignored.
func (c *Curve) RemovePoint(i int) {
	if i < 0 || i >= len(c.points) {
		return
	}
	c.points = append(c.points[:i], c.points[i+1:]...)
}

// RemovePointsInTimeRange removes every breakpoint with time in [t0, t1]
// inclusive. The relative order of the remaining breakpoints is unchanged.
func (c *Curve) RemovePointsInTimeRange(t0, t1 float64) {
	c.RemovePointsIf(func(p Point) bool {
		return p.Time >= t0 && p.Time <= t1
	})
}

// RemovePointsIf removes every breakpoint for which pred returns true.
func (c *Curve) RemovePointsIf(pred func(Point) bool) {
	kept := c.points[:0]
	for _, p := range c.points {
		if !pred(p) {
			kept = append(kept, p)
		}
	}
	c.points = kept
}

// ScaleTimes multiplies every breakpoint time by factor. The curve is not
// re-sorted; a negative factor reverses the time order and is a caller
// error.
func (c *Curve) ScaleTimes(factor float64) {
	for i := range c.points {
		c.points[i].Time *= factor
	}
}

// ScaleAndShiftValues maps every breakpoint value to value*scale + shift.
// Times are unaffected.
func (c *Curve) ScaleAndShiftValues(scale, shift float64) {
	for i := range c.points {
		c.points[i].Value = c.points[i].Value*scale + shift
	}
}

// PointSafe returns the breakpoint at index i with the curve extended
// beyond both ends: a negative index yields a point 0.1 before the first
// breakpoint carrying the first value, an index past the end yields the last
// breakpoint. Segment lookup at the curve edges can therefore treat the
// curve as flat infinite extensions without special cases.
func (c *Curve) PointSafe(i int) Point {
	if i < 0 {
		first := c.points[0]
		return Point{Time: first.Time - 0.1, Value: first.Value}
	}
	if i >= len(c.points) {
		return c.points[len(c.points)-1]
	}
	return c.points[i]
}
