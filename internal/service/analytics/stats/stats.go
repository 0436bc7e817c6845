// Package stats provides the rolling-window statistics used by the
// analytics engine: means, tail slices, least-squares trend slopes, and
// Pearson correlation. All functions are pure and tolerate empty input.
package stats

import "math"

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Tail returns the last n elements of values (all of them if fewer).
// The returned slice aliases the input.
func Tail(values []float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

// Slope fits a first-degree least-squares line over values with
// x = 0..n-1 and returns its slope. Fewer than two points yield 0.
//
//	b = Σ((x-x̄)(y-ȳ)) / Σ((x-x̄)²)
func Slope(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	xMean := float64(n-1) / 2
	yMean := Mean(values)

	var num, den float64
	for i, y := range values {
		dx := float64(i) - xMean
		num += dx * (y - yMean)
		den += dx * dx
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// Pearson returns the Pearson correlation coefficient of two equal-length
// series. It returns 0 when the series differ in length, have fewer than
// two points, or either series is constant (zero variance).
func Pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return 0
	}

	xMean := Mean(xs)
	yMean := Mean(ys)

	var num, xVar, yVar float64
	for i := range xs {
		dx := xs[i] - xMean
		dy := ys[i] - yMean
		num += dx * dy
		xVar += dx * dx
		yVar += dy * dy
	}
	if xVar == 0 || yVar == 0 {
		return 0
	}
	return num / math.Sqrt(xVar*yVar)
}

// Round2 rounds to two decimal places, used when reporting correlation
// strength in insight text.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
