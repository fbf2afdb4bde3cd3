// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recfilter

import "testing"

func TestBuildCPE(t *testing.T) {
	w, err := SecondOrder(2)
	if err != nil {
		t.Fatal(err)
	}
	e, err := BuildElementary(w, 8)
	if err != nil {
		t.Fatal(err)
	}
	cpe, err := BuildCPE(e)
	if err != nil {
		t.Fatal(err)
	}
	r := w.Order()
	if rows, cols := cpe.SF.Dims(); rows != r || cols != r {
		t.Errorf("SF dims = %d x %d, want %d x %d", rows, cols, r, r)
	}
	if rows, cols := cpe.Residual.Dims(); rows != r || cols != r {
		t.Errorf("Residual dims = %d x %d, want %d x %d", rows, cols, r, r)
	}
}

func TestBuildPE(t *testing.T) {
	w, err := SecondOrder(1.5)
	if err != nil {
		t.Fatal(err)
	}
	e, err := BuildElementary(w, 8)
	if err != nil {
		t.Fatal(err)
	}
	pe, err := BuildPE(w, e, 64, 48)
	if err != nil {
		t.Fatal(err)
	}
	r := w.Order()
	if rows, cols := pe.AhF.Dims(); rows != r || cols != r {
		t.Errorf("AhF dims = %d x %d, want %d x %d", rows, cols, r, r)
	}
	if rows, cols := pe.AwF.Dims(); rows != r || cols != r {
		t.Errorf("AwF dims = %d x %d, want %d x %d", rows, cols, r, r)
	}
}

func TestBuildEPE(t *testing.T) {
	w, err := SecondOrder(1.2)
	if err != nil {
		t.Fatal(err)
	}
	e, err := BuildElementary(w, 8)
	if err != nil {
		t.Fatal(err)
	}
	pe, err := BuildPE(w, e, 32, 32)
	if err != nil {
		t.Fatal(err)
	}
	epe, err := BuildEPE(e, pe)
	if err != nil {
		t.Fatal(err)
	}
	r := w.Order()
	if rows, cols := epe.L.Dims(); rows != r || cols != r {
		t.Errorf("L dims = %d x %d, want %d x %d", rows, cols, r, r)
	}
	if rows, cols := epe.M1w.Dims(); rows != r || cols != r {
		t.Errorf("M1w dims = %d x %d, want %d x %d", rows, cols, r, r)
	}
}

func TestExtensionString(t *testing.T) {
	cases := map[Extension]string{
		Zero:         "Zero",
		Constant:     "Constant",
		Periodic:     "Periodic",
		EvenPeriodic: "EvenPeriodic",
	}
	for ext, want := range cases {
		if got := ext.String(); got != want {
			t.Errorf("Extension(%d).String() = %q, want %q", ext, got, want)
		}
	}
}
