// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recfilter

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRunStage1Zero(t *testing.T) {
	w, err := SecondOrder(1.5)
	if err != nil {
		t.Fatal(err)
	}
	const b = 8
	r := w.Order()
	img := mat.NewDense(16, 16, nil)
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			img.Set(i, j, float64(i+j))
		}
	}
	grid, err := Decompose(img, b)
	if err != nil {
		t.Fatal(err)
	}
	carries := NewCarries(grid.M, grid.N, r, b)
	RunStage1(grid, w, carries, Zero)

	// Recompute block (0,0)'s own P carry directly (trailing rows, stored
	// nearest-first) and compare.
	blk := mat.DenseCopyOf(grid.At(0, 0))
	F(zeros(r, b), blk, w)
	want := FlipRows(Tail(blk, r))
	if !mat.EqualApprox(carries.P(0, 0), want, 1e-9) {
		t.Errorf("RunStage1: P(0,0) mismatch")
	}
}

func TestRunStage1ConstantSeedsBoundary(t *testing.T) {
	w, err := SecondOrder(1.0)
	if err != nil {
		t.Fatal(err)
	}
	const b = 4
	r := w.Order()
	img := mat.NewDense(8, 8, nil)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			img.Set(i, j, float64(i*8+j))
		}
	}
	grid, err := Decompose(img, b)
	if err != nil {
		t.Fatal(err)
	}
	carries := NewCarries(grid.M, grid.N, r, b)
	RunStage1(grid, w, carries, Constant)

	topRow := mat.Row(nil, 0, grid.At(0, 0))
	for i := 0; i < r; i++ {
		gotRow := mat.Row(nil, i, carries.P(-1, 0))
		for j := range gotRow {
			if gotRow[j] != topRow[j] {
				t.Errorf("P(-1,0) row %d col %d = %v, want %v", i, j, gotRow[j], topRow[j])
			}
		}
	}
}
