// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recfilter

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuanhaoGong/gpufilter/internal/workpool"
)

// RunStage1 computes, independently for every block of grid, its four
// carries (P, E, Pt, Et) as if the block were surrounded by zero. The
// work is embarrassingly parallel over (m, n): distinct blocks write only
// to their own carry slots.
//
// Under the Constant extension policy, this also seeds the boundary
// carries at the grid's outer edge with an r-fold tile of the original
// block's edge row or column. The tile is taken from the block as
// Decompose produced it, before any forward/reverse sweep has touched it
// — see DESIGN.md for why this reading of the corner-fix ordering was
// frozen over the alternative (tiling the already-scaled block).
func RunStage1(grid *Grid, w Weights, carries *Carries, ext Extension) {
	r := w.Order()
	b := grid.B

	workpool.For(grid.M*grid.N, func(idx int) {
		m, n := idx/grid.N, idx%grid.N
		orig := grid.At(m, n)

		if ext == Constant {
			if m == 0 {
				carries.SetP(-1, n, tileRows(orig, 0, r))
			}
			if m == grid.M-1 {
				carries.SetE(grid.M, n, tileRows(orig, b-1, r))
			}
			if n == 0 {
				carries.SetPt(m, -1, tileCols(orig, 0, r))
			}
			if n == grid.N-1 {
				carries.SetEt(m, grid.N, tileCols(orig, b-1, r))
			}
		}

		// F/FT (fwd's prol and FT's prol) index the boundary nearest-first:
		// row/col 0 is position -1, the slot immediately adjacent to the
		// block. Tail/TailCols return the block's own trailing rows/columns
		// in natural (farthest-first) order, so the extracted P/Pt carries
		// must have their row/column order reversed before being stored —
		// see DESIGN.md. Head/HeadCols need no such reversal: their natural
		// order already puts position +1 first, matching rev's epil
		// convention.
		blk := mat.DenseCopyOf(orig)
		F(zeros(r, b), blk, w)
		carries.SetP(m, n, FlipRows(Tail(blk, r)))
		R(blk, zeros(r, b), w)
		carries.SetE(m, n, Head(blk, r))
		FT(zeros(b, r), blk, w)
		carries.SetPt(m, n, FlipCols(TailCols(blk, r)))
		RT(blk, zeros(b, r), w)
		carries.SetEt(m, n, HeadCols(blk, r))
	})
}

// tileRows returns an r x cols(x) matrix whose every row is a copy of
// x's row at index row.
func tileRows(x *mat.Dense, row, r int) *mat.Dense {
	_, cols := x.Dims()
	line := mat.Row(nil, row, x)
	dst := mat.NewDense(r, cols, nil)
	for i := 0; i < r; i++ {
		dst.SetRow(i, line)
	}
	return dst
}

// tileCols returns a rows(x) x r matrix whose every column is a copy of
// x's column at index col.
func tileCols(x *mat.Dense, col, r int) *mat.Dense {
	rows, _ := x.Dims()
	line := mat.Col(nil, col, x)
	dst := mat.NewDense(rows, r, nil)
	for j := 0; j < r; j++ {
		dst.SetCol(j, line)
	}
	return dst
}
