// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package naive implements the recursive filter directly over the whole
// image, one row or column at a time, with no block decomposition. It
// exists purely as a test oracle: the block-parallel implementation is
// checked against it for every boundary-extension policy.
package naive

import "gonum.org/v1/gonum/mat"

// Weights mirrors the top-level Weights type without importing the
// parent package, which would create an import cycle from its tests.
type Weights struct {
	B0 float64
	A  []float64
}

// Extension mirrors the top-level Extension enum by value.
type Extension int

const (
	Zero Extension = iota
	Constant
	Periodic
	EvenPeriodic
)

// sample returns data[idx], extending data outside [0, len(data)) per ext.
func sample(data []float64, idx int, ext Extension) float64 {
	n := len(data)
	if idx >= 0 && idx < n {
		return data[idx]
	}
	switch ext {
	case Zero:
		return 0
	case Constant:
		if idx < 0 {
			return data[0]
		}
		return data[n-1]
	case Periodic:
		idx %= n
		if idx < 0 {
			idx += n
		}
		return data[idx]
	case EvenPeriodic:
		if n == 1 {
			return data[0]
		}
		period := 2 * (n - 1)
		idx %= period
		if idx < 0 {
			idx += period
		}
		if idx >= n {
			idx = period - idx
		}
		return data[idx]
	default:
		return 0
	}
}

// fwd runs one causal sweep over dst in place. Out-of-range history is
// read from orig (the pre-sweep values) through sample with the given
// extension, so the boundary never sees already-filtered output.
func fwd(dst []float64, w Weights, ext Extension) {
	orig := append([]float64(nil), dst...)
	r := len(w.A)
	for j := range dst {
		v := w.B0 * orig[j]
		for k := 1; k <= r; k++ {
			if j-k >= 0 {
				v -= w.A[k-1] * dst[j-k]
			} else {
				v -= w.A[k-1] * sample(orig, j-k, ext)
			}
		}
		dst[j] = v
	}
}

// rev runs one anticausal sweep over dst in place, symmetric to fwd:
// out-of-range future values are read from the pre-sweep values orig.
func rev(dst []float64, w Weights, ext Extension) {
	orig := append([]float64(nil), dst...)
	r := len(w.A)
	n := len(dst)
	for j := n - 1; j >= 0; j-- {
		v := w.B0 * orig[j]
		for k := 1; k <= r; k++ {
			if j+k < n {
				v -= w.A[k-1] * dst[j+k]
			} else {
				v -= w.A[k-1] * sample(orig, j+k, ext)
			}
		}
		dst[j] = v
	}
}

// Filter runs the causal-then-anticausal sweep along columns followed by
// the same pair of sweeps along rows, matching the sweep order of the
// block-parallel implementation, with boundary samples produced by ext.
func Filter(image *mat.Dense, w Weights, ext Extension) *mat.Dense {
	out := mat.DenseCopyOf(image)
	rows, cols := out.Dims()

	col := make([]float64, rows)
	for c := 0; c < cols; c++ {
		mat.Col(col, c, out)
		fwd(col, w, ext)
		rev(col, w, ext)
		out.SetCol(c, col)
	}

	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(row, i, out)
		fwd(row, w, ext)
		rev(row, w, ext)
		out.SetRow(i, row)
	}
	return out
}
