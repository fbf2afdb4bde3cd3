// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recfilter

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRunFinalizePreservesGridShape(t *testing.T) {
	w, err := SecondOrder(1.3)
	if err != nil {
		t.Fatal(err)
	}
	const b = 8
	r := w.Order()
	img := mat.NewDense(16, 24, nil)
	for i := 0; i < 16; i++ {
		for j := 0; j < 24; j++ {
			img.Set(i, j, float64((i+j)%9))
		}
	}
	grid, err := Decompose(img, b)
	if err != nil {
		t.Fatal(err)
	}
	e, err := BuildElementary(w, b)
	if err != nil {
		t.Fatal(err)
	}
	carries := NewCarries(grid.M, grid.N, r, b)
	RunStage1(grid, w, carries, Zero)
	RunVertical(carries, e, Zero, nil, nil, nil)
	RunHorizontal(carries, w, e, Zero, nil, nil, nil)
	out := RunFinalize(grid, w, carries)

	if out.H != grid.H || out.W != grid.W || out.M != grid.M || out.N != grid.N {
		t.Errorf("RunFinalize changed grid shape: got H=%d W=%d M=%d N=%d", out.H, out.W, out.M, out.N)
	}
	composed := out.Compose()
	rows, cols := composed.Dims()
	if rows != 16 || cols != 24 {
		t.Errorf("Compose() dims = %d x %d, want 16 x 24", rows, cols)
	}
}

func TestRunFinalizeDoesNotMutateInput(t *testing.T) {
	w, err := SecondOrder(1.1)
	if err != nil {
		t.Fatal(err)
	}
	const b = 8
	r := w.Order()
	img := mat.NewDense(8, 8, nil)
	img.Set(3, 3, 5)
	grid, err := Decompose(img, b)
	if err != nil {
		t.Fatal(err)
	}
	before := mat.DenseCopyOf(grid.At(0, 0))
	e, err := BuildElementary(w, b)
	if err != nil {
		t.Fatal(err)
	}
	carries := NewCarries(grid.M, grid.N, r, b)
	RunStage1(grid, w, carries, Zero)
	RunVertical(carries, e, Zero, nil, nil, nil)
	RunHorizontal(carries, w, e, Zero, nil, nil, nil)
	RunFinalize(grid, w, carries)

	if !mat.EqualApprox(grid.At(0, 0), before, 1e-12) {
		t.Error("RunFinalize mutated the input grid's blocks")
	}
}
