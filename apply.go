package envelope

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-envelope/internal/core"
)

// ApplyGain multiplies buf element-wise by the envelope evaluated over
// [t0, t1), one envelope sample per buffer sample. The envelope is rendered
// into a scratch buffer owned by the curve, so in steady state ApplyGain
// does not allocate; the scratch reuse also means ApplyGain must not run
// concurrently with itself on the same curve.
func (c *Curve) ApplyGain(buf []float64, t0, t1 float64, opts ...FillOption) {
	c.scratch = core.EnsureLen(c.scratch, len(buf))
	c.FillBuffer(c.scratch, t0, t1, opts...)
	vecmath.MulBlockInPlace(buf, c.scratch)
}
