// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recfilter

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuanhaoGong/gpufilter/internal/workpool"
)

// RunFinalize replays stage 6: for each block, independently, it reapplies
// the forward/reverse row sweep and the forward/reverse column sweep
// using the fully resolved neighbouring carries as prologue and
// epilogue, and returns a new grid holding the filtered blocks. This is
// embarrassingly parallel over (m, n), exactly like stage 1.
func RunFinalize(grid *Grid, w Weights, carries *Carries) *Grid {
	out := &Grid{H: grid.H, W: grid.W, B: grid.B, M: grid.M, N: grid.N, blocks: make([]*mat.Dense, grid.M*grid.N)}
	workpool.For(grid.M*grid.N, func(idx int) {
		m, n := idx/grid.N, idx%grid.N
		blk := mat.DenseCopyOf(grid.At(m, n))
		F(carries.P(m-1, n), blk, w)
		R(blk, carries.E(m+1, n), w)
		FT(carries.Pt(m, n-1), blk, w)
		RT(blk, carries.Et(m, n+1), w)
		out.Set(m, n, blk)
	})
	return out
}
