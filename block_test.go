// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recfilter

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestDecomposeComposeRoundTrip(t *testing.T) {
	img := mat.NewDense(10, 7, nil)
	for i := 0; i < 10; i++ {
		for j := 0; j < 7; j++ {
			img.Set(i, j, float64(i*7+j))
		}
	}
	grid, err := Decompose(img, 4)
	if err != nil {
		t.Fatal(err)
	}
	if grid.M != 3 || grid.N != 2 {
		t.Errorf("grid dims = %d x %d, want 3 x 2", grid.M, grid.N)
	}
	out := grid.Compose()
	if !mat.EqualApprox(img, out, 1e-12) {
		t.Errorf("Compose(Decompose(img)) != img")
	}
}

func TestDecomposeExactMultiple(t *testing.T) {
	img := mat.NewDense(8, 8, nil)
	grid, err := Decompose(img, 4)
	if err != nil {
		t.Fatal(err)
	}
	if grid.M != 2 || grid.N != 2 {
		t.Errorf("grid dims = %d x %d, want 2 x 2", grid.M, grid.N)
	}
}

func TestDecomposeInvalid(t *testing.T) {
	// mat.NewDense panics on a zero dimension; the zero-value Dense is the
	// empty (0 x 0) image.
	if _, err := Decompose(&mat.Dense{}, 4); err != ErrInvalidDimensions {
		t.Errorf("Decompose with empty image: err = %v, want %v", err, ErrInvalidDimensions)
	}
	if _, err := Decompose(mat.NewDense(5, 5, nil), 0); err != ErrInvalidBlockSide {
		t.Errorf("Decompose with zero block side: err = %v, want %v", err, ErrInvalidBlockSide)
	}
}

func TestGridAtSet(t *testing.T) {
	img := mat.NewDense(4, 4, nil)
	grid, err := Decompose(img, 4)
	if err != nil {
		t.Fatal(err)
	}
	replacement := mat.NewDense(4, 4, nil)
	replacement.Set(0, 0, 42)
	grid.Set(0, 0, replacement)
	if grid.At(0, 0).At(0, 0) != 42 {
		t.Error("Set did not replace the block")
	}
}
