// Package smooth provides ramped parameter values for click-free control
// changes.
//
// A smoothed value moves from its current value to a target over a fixed
// number of samples instead of jumping, which avoids zipper noise when a
// gain or frequency parameter changes mid-block. [Linear] ramps additively
// and suits most parameters; [Multiplicative] ramps geometrically, which
// keeps equal-dB steps for gains and equal-cent steps for frequencies.
package smooth

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Linear ramps additively from the current value to the target.
type Linear struct {
	current float64
	target  float64
	step    float64

	countdown     int
	stepsToTarget int
}

// NewLinear returns a settled ramp holding initial.
func NewLinear(initial float64) *Linear {
	return &Linear{current: initial, target: initial}
}

// Reset sets the ramp length in samples and snaps the current value to the
// target, ending any ramp in progress.
func (l *Linear) Reset(steps int) {
	l.stepsToTarget = steps
	l.SetCurrentAndTarget(l.target)
}

// ResetRate sets the ramp length as a duration in seconds at the given
// sample rate.
func (l *Linear) ResetRate(sampleRate, seconds float64) {
	l.Reset(int(math.Floor(seconds * sampleRate)))
}

// SetTarget starts a ramp from the current value towards v. Setting the
// current target again is a no-op; with a zero ramp length the value snaps
// immediately.
func (l *Linear) SetTarget(v float64) {
	if v == l.target {
		return
	}

	l.target = v
	if l.stepsToTarget <= 0 {
		l.SetCurrentAndTarget(v)
		return
	}

	l.countdown = l.stepsToTarget
	l.step = (l.target - l.current) / float64(l.countdown)
}

// SetCurrentAndTarget jumps both the current value and the target to v,
// ending any ramp.
func (l *Linear) SetCurrentAndTarget(v float64) {
	l.current = v
	l.target = v
	l.countdown = 0
}

// Next advances the ramp one sample and returns the new value.
func (l *Linear) Next() float64 {
	if !l.IsSmoothing() {
		return l.target
	}

	l.countdown--
	l.current += l.step
	return l.current
}

// Skip advances the ramp n samples and returns the new current value. It is
// equivalent to calling Next n times.
func (l *Linear) Skip(n int) float64 {
	if n >= l.countdown {
		l.SetCurrentAndTarget(l.target)
		return l.target
	}

	l.current += l.step * float64(n)
	l.countdown -= n
	return l.current
}

// IsSmoothing reports whether a ramp is in progress.
func (l *Linear) IsSmoothing() bool { return l.countdown > 0 }

// Current returns the current value of the ramp.
func (l *Linear) Current() float64 { return l.current }

// Target returns the value the ramp is moving towards.
func (l *Linear) Target() float64 { return l.target }

// ApplyGain multiplies buf by the ramp, one value per sample. Once the ramp
// settles the remainder of the block is scaled in one vector operation.
func (l *Linear) ApplyGain(buf []float64) {
	i := 0
	for ; i < len(buf) && l.IsSmoothing(); i++ {
		buf[i] *= l.Next()
	}

	if i < len(buf) {
		vecmath.ScaleBlock(buf[i:], buf[i:], l.target)
	}
}

// ApplyGainTo writes src scaled by the ramp into dst. dst and src must have
// the same length.
func (l *Linear) ApplyGainTo(dst, src []float64) {
	i := 0
	for ; i < len(src) && l.IsSmoothing(); i++ {
		dst[i] = src[i] * l.Next()
	}

	if i < len(src) {
		vecmath.ScaleBlock(dst[i:], src[i:], l.target)
	}
}

// Multiplicative ramps geometrically from the current value to the target.
// Values must be nonzero and share a sign; a gain ramped this way moves in
// equal-dB steps.
type Multiplicative struct {
	current float64
	target  float64
	step    float64

	countdown     int
	stepsToTarget int
}

// NewMultiplicative returns a settled ramp holding initial.
// initial must be nonzero.
func NewMultiplicative(initial float64) *Multiplicative {
	return &Multiplicative{current: initial, target: initial}
}

// Reset sets the ramp length in samples and snaps the current value to the
// target, ending any ramp in progress.
func (m *Multiplicative) Reset(steps int) {
	m.stepsToTarget = steps
	m.SetCurrentAndTarget(m.target)
}

// ResetRate sets the ramp length as a duration in seconds at the given
// sample rate.
func (m *Multiplicative) ResetRate(sampleRate, seconds float64) {
	m.Reset(int(math.Floor(seconds * sampleRate)))
}

// SetTarget starts a ramp from the current value towards v. v must be
// nonzero and have the same sign as the current value.
func (m *Multiplicative) SetTarget(v float64) {
	if v == m.target {
		return
	}

	m.target = v
	if m.stepsToTarget <= 0 {
		m.SetCurrentAndTarget(v)
		return
	}

	m.countdown = m.stepsToTarget
	m.step = math.Exp((math.Log(math.Abs(m.target)) - math.Log(math.Abs(m.current))) / float64(m.countdown))
}

// SetCurrentAndTarget jumps both the current value and the target to v,
// ending any ramp.
func (m *Multiplicative) SetCurrentAndTarget(v float64) {
	m.current = v
	m.target = v
	m.countdown = 0
}

// Next advances the ramp one sample and returns the new value.
func (m *Multiplicative) Next() float64 {
	if !m.IsSmoothing() {
		return m.target
	}

	m.countdown--
	m.current *= m.step
	return m.current
}

// Skip advances the ramp n samples and returns the new current value.
func (m *Multiplicative) Skip(n int) float64 {
	if n >= m.countdown {
		m.SetCurrentAndTarget(m.target)
		return m.target
	}

	m.current *= math.Pow(m.step, float64(n))
	m.countdown -= n
	return m.current
}

// IsSmoothing reports whether a ramp is in progress.
func (m *Multiplicative) IsSmoothing() bool { return m.countdown > 0 }

// Current returns the current value of the ramp.
func (m *Multiplicative) Current() float64 { return m.current }

// Target returns the value the ramp is moving towards.
func (m *Multiplicative) Target() float64 { return m.target }
