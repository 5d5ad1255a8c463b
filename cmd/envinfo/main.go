// Command envinfo renders a breakpoint envelope and prints summary
// statistics of the resulting block.
//
// Usage:
//
//	envinfo [flags]
//
// The envelope is given as comma-separated time:value pairs.
//
// Examples:
//
//	envinfo -points 0:0,0.5:1,2:0
//	envinfo -points 0:0,1:1 -t0 0 -t1 4 -count 256
//	envinfo -points 0:-2,1:2 -clamp 0:1
//	envinfo -points 0:0,1:1,2:0 -spectrum
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-envelope"
	"github.com/cwbudde/algo-envelope/internal/chrono"
)

func main() {
	points := flag.String("points", "0:0,1:1", "comma-separated time:value breakpoints")
	t0 := flag.Float64("t0", 0, "start of the rendered time range")
	t1 := flag.Float64("t1", math.NaN(), "end of the rendered time range (default: last breakpoint time)")
	count := flag.Int("count", 128, "number of samples to render")
	clamp := flag.String("clamp", "", "clamp rendered samples into lo:hi")
	spectrum := flag.Bool("spectrum", false, "print the dominant spectral bin of the rendered block")
	burn := flag.Duration("burn", 0, "busy-loop for this long before rendering, to simulate callback load")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: envinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders a breakpoint envelope and prints summary statistics.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  envinfo -points 0:0,0.5:1,2:0\n")
		fmt.Fprintf(os.Stderr, "  envinfo -points 0:0,1:1 -t1 4 -count 256\n")
		fmt.Fprintf(os.Stderr, "  envinfo -points 0:-2,1:2 -clamp 0:1\n")
	}
	flag.Parse()

	curve, err := parsePoints(*points)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *count <= 0 {
		fmt.Fprintf(os.Stderr, "error: count must be > 0: %d\n", *count)
		os.Exit(1)
	}

	end := *t1
	if math.IsNaN(end) {
		end = curve.Point(curve.Len() - 1).Time
	}
	if end < *t0 {
		fmt.Fprintf(os.Stderr, "error: t1 (%g) must not precede t0 (%g)\n", end, *t0)
		os.Exit(1)
	}

	var opts []envelope.FillOption
	if *clamp != "" {
		lo, hi, err := parseClamp(*clamp)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, envelope.WithClamp(lo, hi))
	}

	if *burn > 0 {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		loops := chrono.Burn(rng, *burn)
		fmt.Printf("burned %v in %d loops\n", *burn, loops)
	}

	buf := make([]float64, *count)
	start := time.Now()
	curve.FillBuffer(buf, *t0, end, opts...)
	elapsed := time.Since(start)

	printStats(curve, buf, *t0, end, elapsed)

	if *spectrum {
		if err := printSpectrum(buf); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func parsePoints(spec string) (*envelope.Curve, error) {
	parts := strings.Split(spec, ",")
	if len(parts) == 0 {
		return nil, fmt.Errorf("no breakpoints in %q", spec)
	}

	points := make([]envelope.Point, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		tv := strings.SplitN(part, ":", 2)
		if len(tv) != 2 {
			return nil, fmt.Errorf("breakpoint %q is not of the form time:value", part)
		}
		t, err := strconv.ParseFloat(tv[0], 64)
		if err != nil {
			return nil, fmt.Errorf("breakpoint %q: bad time: %w", part, err)
		}
		v, err := strconv.ParseFloat(tv[1], 64)
		if err != nil {
			return nil, fmt.Errorf("breakpoint %q: bad value: %w", part, err)
		}
		points = append(points, envelope.Point{Time: t, Value: v})
	}

	return envelope.New(points...), nil
}

func parseClamp(spec string) (lo, hi float64, err error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("clamp %q is not of the form lo:hi", spec)
	}
	lo, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("clamp %q: bad lower bound: %w", spec, err)
	}
	hi, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("clamp %q: bad upper bound: %w", spec, err)
	}
	return lo, hi, nil
}

func printStats(curve *envelope.Curve, buf []float64, t0, t1 float64, elapsed time.Duration) {
	min, max := buf[0], buf[0]
	var sum, sumSq float64
	for _, v := range buf {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
		sumSq += v * v
	}
	mean := sum / float64(len(buf))
	rms := math.Sqrt(sumSq / float64(len(buf)))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Breakpoints\t%d\n", curve.Len())
	fmt.Fprintf(tw, "Range\t[%g, %g)\n", t0, t1)
	fmt.Fprintf(tw, "Samples\t%d\n", len(buf))
	fmt.Fprintf(tw, "Min\t%.6f\n", min)
	fmt.Fprintf(tw, "Max\t%.6f\n", max)
	fmt.Fprintf(tw, "Mean\t%.6f\n", mean)
	fmt.Fprintf(tw, "RMS\t%.6f\n", rms)
	fmt.Fprintf(tw, "Render time\t%v\n", elapsed)
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// printSpectrum reports the dominant nonzero frequency bin of the rendered
// block, mostly useful to sanity-check periodic envelope shapes.
func printSpectrum(buf []float64) error {
	fftSize := 1
	for fftSize < len(buf) {
		fftSize *= 2
	}

	in := make([]complex128, fftSize)
	for i, v := range buf {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return fmt.Errorf("fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return fmt.Errorf("fft forward: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	peak := 1
	for i := 2; i < bins; i++ {
		if mag[i] > mag[peak] {
			peak = i
		}
	}

	fmt.Printf("DC magnitude\t%.6f\n", mag[0])
	fmt.Printf("Peak bin\t%d of %d (magnitude %.6f)\n", peak, bins-1, mag[peak])
	return nil
}
