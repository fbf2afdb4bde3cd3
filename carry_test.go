// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recfilter

import "testing"

func TestNewCarriesDims(t *testing.T) {
	c := NewCarries(3, 2, 2, 8)
	if rows, cols := c.P(-1, 0).Dims(); rows != 2 || cols != 8 {
		t.Errorf("P(-1,0) dims = %d x %d, want 2 x 8", rows, cols)
	}
	if rows, cols := c.E(3, 1).Dims(); rows != 2 || cols != 8 {
		t.Errorf("E(3,1) dims = %d x %d, want 2 x 8", rows, cols)
	}
	if rows, cols := c.Pt(0, -1).Dims(); rows != 8 || cols != 2 {
		t.Errorf("Pt(0,-1) dims = %d x %d, want 8 x 2", rows, cols)
	}
	if rows, cols := c.Et(2, 2).Dims(); rows != 8 || cols != 2 {
		t.Errorf("Et(2,2) dims = %d x %d, want 8 x 2", rows, cols)
	}
}

func TestCarriesSetGetRoundTrip(t *testing.T) {
	c := NewCarries(2, 2, 2, 4)
	v := zeros(2, 4)
	v.Set(0, 0, 7)
	c.SetP(0, 1, v)
	if c.P(0, 1).At(0, 0) != 7 {
		t.Error("SetP/P round trip failed")
	}

	vt := zeros(4, 2)
	vt.Set(1, 1, 3)
	c.SetEt(1, 1, vt)
	if c.Et(1, 1).At(1, 1) != 3 {
		t.Error("SetEt/Et round trip failed")
	}
}

func TestCarriesDistinctSlots(t *testing.T) {
	c := NewCarries(2, 2, 1, 4)
	c.P(0, 0).Set(0, 0, 1)
	if c.P(-1, 0).At(0, 0) == 1 {
		t.Error("P(0,0) and P(-1,0) alias the same backing matrix")
	}
	if c.E(0, 0).At(0, 0) == 1 {
		t.Error("P and E alias the same backing matrix")
	}
}
