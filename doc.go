// Package envelope provides a breakpoint envelope for modulating
// audio-rate buffers over time.
//
// A [Curve] holds (time, value) breakpoints sorted by time and evaluates
// between them by linear interpolation. Outside the breakpoint range the
// curve extends flat: times before the first breakpoint yield the first
// value, times after the last yield the last value.
//
// # Usage
//
// Build a curve and query it point-wise or block-wise:
//
//	c := envelope.New(
//	    envelope.Point{Time: 0, Value: 0},
//	    envelope.Point{Time: 0.5, Value: 1},
//	    envelope.Point{Time: 2, Value: 0},
//	)
//	gain := c.ValueAt(0.25)
//
//	buf := make([]float64, blockSize)
//	c.FillBuffer(buf, t, t+blockDuration)
//
// [Curve.FillBuffer] locates the starting segment once and then advances it
// monotonically across the block, so filling a buffer costs one binary
// search plus a linear pass regardless of block size. Both query paths are
// allocation-free and safe to call from an audio callback.
//
// Curves are not internally synchronized. One goroutine may mutate while no
// other evaluates; concurrent evaluation is safe as long as no mutation runs
// at the same time. A UI thread editing breakpoints against a render thread
// should build a new curve and swap it in.
package envelope
