// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recfilter

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRunHorizontalZeroLeavesBoundaryZero(t *testing.T) {
	w, err := SecondOrder(1.2)
	if err != nil {
		t.Fatal(err)
	}
	const b = 8
	r := w.Order()
	img := mat.NewDense(8, 24, nil)
	for i := 0; i < 8; i++ {
		for j := 0; j < 24; j++ {
			img.Set(i, j, float64((i*5+j*2)%13))
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

	zero := zeros(b, r)
	for m := 0; m < grid.M; m++ {
		if !mat.EqualApprox(carries.Pt(m, -1), zero, 1e-12) {
			t.Errorf("Zero: Pt(%d,-1) is not zero after RunHorizontal", m)
		}
		if !mat.EqualApprox(carries.Et(m, grid.N), zero, 1e-12) {
			t.Errorf("Zero: Et(%d,N) is not zero after RunHorizontal", m)
		}
	}
}

func TestSweepPtRightSingleStep(t *testing.T) {
	w, err := SecondOrder(1.0)
	if err != nil {
		t.Fatal(err)
	}
	const b = 6
	r := w.Order()
	e, err := BuildElementary(w, b)
	if err != nil {
		t.Fatal(err)
	}
	carries := NewCarries(1, 2, r, b)
	pt0 := zeros(b, r)
	pt0.Set(0, 0, 1)
	carries.SetPt(0, 0, pt0)
	carries.SetPt(0, 1, zeros(b, r))

	sweepPtRight(carries, e, 2, 0)

	want := mulNew(pt0, e.AbFt)
	if !mat.EqualApprox(carries.Pt(0, 1), want, 1e-9) {
		t.Error("sweepPtRight: Pt(0,1) did not accumulate Pt(0,0)*AbFt")
	}
}
