// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recfilter

import "math"

// Weights holds the coefficients of a causal recursive filter:
//
//	y[j] = b0*x[j] - a1*y[j-1] - a2*y[j-2] - ... - ar*y[j-r]
//
// A is immutable after construction; len(A) is the filter order r.
type Weights struct {
	B0 float64
	A  []float64
}

// Order returns the filter order r, i.e. the number of feedback taps.
func (w Weights) Order() int { return len(w.A) }

func (w Weights) validate() error {
	if w.B0 == 0 {
		return ErrInvalidWeights{"b0 must be nonzero"}
	}
	if len(w.A) == 0 {
		return ErrInvalidWeights{"at least one feedback coefficient is required"}
	}
	return nil
}

// FirstOrder builds a first-order recursive filter approximating a Gaussian
// blur of scale sigma, following the van Vliet-Young-Verbeek parametrization.
func FirstOrder(sigma float64) (Weights, error) {
	if sigma <= 0 {
		return Weights{}, ErrInvalidWeights{"sigma must be positive"}
	}
	const d3 = 1.86543
	q := 0.00399341 + 0.4715161*sigma
	d := math.Pow(d3, 1/q)
	b0 := -(1 - d) / d
	a1 := -1 / d
	return Weights{B0: b0, A: []float64{a1}}, nil
}

// SecondOrder builds a second-order recursive filter approximating a
// Gaussian blur of scale sigma, following the van Vliet-Young-Verbeek
// parametrization with a complex-conjugate pole pair.
func SecondOrder(sigma float64) (Weights, error) {
	if sigma <= 0 {
		return Weights{}, ErrInvalidWeights{"sigma must be positive"}
	}
	const (
		d1re = 1.41650
		d1im = 1.00829
	)
	q := 0.00399341 + 0.4715161*sigma
	// d = d1^(1/q) in polar form.
	mod := math.Hypot(d1re, d1im)
	arg := math.Atan2(d1im, d1re)
	mod = math.Pow(mod, 1/q)
	arg = arg / q
	dre := mod * math.Cos(arg)
	dim := mod * math.Sin(arg)
	n2 := dre*dre + dim*dim
	b0 := (1 - 2*dre + n2) / n2
	a1 := -2 * dre / n2
	a2 := 1 / n2
	return Weights{B0: b0, A: []float64{a1, a2}}, nil
}

// OrderK builds a second-order recursive filter from the "weightsk"
// base-1 parametrization, which is inconsistent with the van Vliet-Young
// references but is retained as an additional, explicitly opt-in
// constructor: callers who want it must call OrderK directly, it is never
// reached from the default Filter entry point.
func OrderK(n, k int, eps, theta float64) (Weights, error) {
	if n <= 0 || k <= 0 {
		return Weights{}, ErrInvalidWeights{"n and k must be positive"}
	}
	rho := math.Pow(eps*math.Sin(theta), 1/float64(k*n))
	a1 := -2 * rho * math.Cos(theta)
	a2 := rho * rho
	return Weights{B0: 1, A: []float64{a1, a2}}, nil
}

// DefaultOrderK builds OrderK(n, k, 1e-4, 1.2), the default epsilon and
// theta used when the caller has no reason to override them.
func DefaultOrderK(n, k int) (Weights, error) {
	return OrderK(n, k, 1e-4, 1.2)
}
