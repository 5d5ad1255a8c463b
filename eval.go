package envelope

import (
	"sort"

	"github.com/cwbudde/algo-envelope/internal/core"
)

// degenerateEpsilon is the minimum usable segment width. Narrower segments
// are evaluated as if the right endpoint sat at the query time, which keeps
// the interpolation fraction finite.
const degenerateEpsilon = 1e-5

// FillOption configures [Curve.FillBuffer].
type FillOption func(*fillConfig)

type fillConfig struct {
	clamp  bool
	lo, hi float64
}

// WithClamp clamps every written sample into [lo, hi] after interpolation.
// The bounds are swapped if given in reverse order.
func WithClamp(lo, hi float64) FillOption {
	return func(cfg *fillConfig) {
		if lo > hi {
			lo, hi = hi, lo
		}
		cfg.clamp = true
		cfg.lo, cfg.hi = lo, hi
	}
}

func applyFillOptions(opts []FillOption) fillConfig {
	var cfg fillConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// segmentIndex returns the index of the left endpoint of the segment
// containing t: lower-bound by time, stepped back one position. The caller
// guarantees t >= c.points[0].Time.
func (c *Curve) segmentIndex(t float64) int {
	i := sort.Search(len(c.points), func(j int) bool {
		return c.points[j].Time >= t
	})
	if i == len(c.points) {
		i--
	}
	if i > 0 {
		i--
	}
	return i
}

// ValueAt returns the curve value at the given time, linearly interpolated
// between the surrounding breakpoints. Times before the first breakpoint
// return the first value, times at or after the last breakpoint return the
// last value. The curve must be non-empty and sorted. O(log n).
func (c *Curve) ValueAt(time float64) float64 {
	first := c.points[0]
	last := c.points[len(c.points)-1]
	if time < first.Time {
		return first.Value
	}
	if time >= last.Time {
		return last.Value
	}

	i := c.segmentIndex(time)
	p0 := c.PointSafe(i)
	p1 := c.PointSafe(i + 1)
	if p1.Time-p0.Time < degenerateEpsilon {
		p1 = Point{Time: time, Value: p1.Value}
	}

	den := p1.Time - p0.Time
	if den <= 0 {
		return p1.Value
	}
	frac := (time - p0.Time) / den
	return p0.Value + frac*(p1.Value-p0.Value)
}

// FillBuffer writes len(buf) envelope samples into buf, evaluated at evenly
// spaced times over the half-open range [t0, t1): sample i is taken at
// t0 + (t1-t0)*i/len(buf). The starting segment is located once and then
// advanced monotonically as the scan crosses segment boundaries, so filling
// a block costs one binary search plus a linear pass, O(log n + len(buf)),
// instead of one search per sample. t0 must not exceed t1.
//
// With [WithClamp] the filled samples are clamped into the given range in a
// second pass, after the interpolation scan. The curve must be non-empty
// and sorted. FillBuffer does not allocate.
func (c *Curve) FillBuffer(buf []float64, t0, t1 float64, opts ...FillOption) {
	// Build the config in a helper so cfg's address is only taken when
	// options are present; otherwise escape analysis would heap-allocate
	// cfg on every call and break the zero-allocation guarantee.
	var cfg fillConfig
	if len(opts) > 0 {
		cfg = applyFillOptions(opts)
	}

	cur := -1
	if t0 >= c.points[0].Time {
		cur = c.segmentIndex(t0)
	}
	p0 := c.PointSafe(cur)
	p1 := c.PointSafe(cur + 1)

	count := len(buf)
	span := t1 - t0
	for i := 0; i < count; i++ {
		t := t0 + span*float64(i)/float64(count)
		if t >= p1.Time {
			cur++
			p0 = c.PointSafe(cur)
			p1 = c.PointSafe(cur + 1)
			if p1.Time-p0.Time < degenerateEpsilon {
				p1 = Point{Time: t1, Value: p1.Value}
			}
		}

		den := p1.Time - p0.Time
		if den <= 0 {
			buf[i] = p1.Value
			continue
		}
		frac := (t - p0.Time) / den
		buf[i] = p0.Value + frac*(p1.Value-p0.Value)
	}

	if cfg.clamp {
		for i := range buf {
			buf[i] = core.Clamp(buf[i], cfg.lo, cfg.hi)
		}
	}
}
