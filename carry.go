// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recfilter

import "gonum.org/v1/gonum/mat"

// Carries holds the four carry grids produced by stage 1 and resolved by
// stages 2-5: P and E carry row prologues/epilogues vertically between
// blocks stacked in the same column; Pt and Et carry column
// prologues/epilogues horizontally between blocks in the same row.
//
// P is indexed m in [-1, M), E is indexed m in [0, M]; Pt is indexed n in
// [-1, N), Et is indexed n in [0, N]. The extra slot at each end holds the
// "outside image" carry set by the boundary policy (zero for Zero,
// nonzero otherwise). Accessors below hide the storage offset.
type Carries struct {
	M, N, R, B int

	p, e   []*mat.Dense // (M+1)*N slots, r x b each
	pt, et []*mat.Dense // M*(N+1) slots, b x r each
}

// NewCarries allocates zeroed carry grids for an M x N block grid with
// filter order r and block side b.
func NewCarries(m, n, r, b int) *Carries {
	c := &Carries{M: m, N: n, R: r, B: b}
	c.p = make([]*mat.Dense, (m+1)*n)
	c.e = make([]*mat.Dense, (m+1)*n)
	for i := range c.p {
		c.p[i] = mat.NewDense(r, b, nil)
		c.e[i] = mat.NewDense(r, b, nil)
	}
	c.pt = make([]*mat.Dense, m*(n+1))
	c.et = make([]*mat.Dense, m*(n+1))
	for i := range c.pt {
		c.pt[i] = mat.NewDense(b, r, nil)
		c.et[i] = mat.NewDense(b, r, nil)
	}
	return c
}

// P returns the forward-row prologue carry at (m, n); m ranges over
// [-1, M).
func (c *Carries) P(m, n int) *mat.Dense { return c.p[(m+1)*c.N+n] }

// SetP replaces the forward-row prologue carry at (m, n).
func (c *Carries) SetP(m, n int, v *mat.Dense) { c.p[(m+1)*c.N+n] = v }

// E returns the reverse-row epilogue carry at (m, n); m ranges over
// [0, M].
func (c *Carries) E(m, n int) *mat.Dense { return c.e[m*c.N+n] }

// SetE replaces the reverse-row epilogue carry at (m, n).
func (c *Carries) SetE(m, n int, v *mat.Dense) { c.e[m*c.N+n] = v }

// Pt returns the forward-column prologue carry at (m, n); n ranges over
// [-1, N).
func (c *Carries) Pt(m, n int) *mat.Dense { return c.pt[m*(c.N+1)+n+1] }

// SetPt replaces the forward-column prologue carry at (m, n).
func (c *Carries) SetPt(m, n int, v *mat.Dense) { c.pt[m*(c.N+1)+n+1] = v }

// Et returns the reverse-column epilogue carry at (m, n); n ranges over
// [0, N].
func (c *Carries) Et(m, n int) *mat.Dense { return c.et[m*(c.N+1)+n] }

// SetEt replaces the reverse-column epilogue carry at (m, n).
func (c *Carries) SetEt(m, n int, v *mat.Dense) { c.et[m*(c.N+1)+n] = v }
