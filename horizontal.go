// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recfilter

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuanhaoGong/gpufilter/internal/workpool"
)

// RunHorizontal runs stages 4-5: it propagates Pt right across each row
// of blocks and then Et left, using the already-resolved P and E carries
// from RunVertical and whatever boundary fix ext calls for. Rows (fixed
// m) are independent of one another and run in parallel; within a row
// the propagation is strictly sequential in n.
//
// The carry matrices here (Pt, Et: b x r) are right-multiplied by the
// transposed elementary/extension matrices rather than left-multiplied,
// mirroring the row-direction formulas of RunVertical under transposition
// (see Elementary and DESIGN.md).
//
// Before any row propagates, applyVerticalCoupling folds the already-
// resolved vertical carries P/E into every block's local Pt/Et: a block's
// column prologue/epilogue must reflect its left/right neighbor's full
// content, including the vertical-carry contribution RunVertical added to
// that neighbor, not just the neighbor's own local stage-1 sweep. Without
// this, stages 4-5 only see each block in isolation and every grid with
// both m>0 and n>0 blocks comes out wrong under Zero/Periodic/EvenPeriodic.
func RunHorizontal(carries *Carries, w Weights, e *Elementary, ext Extension, cpe *CPE, pe *PE, epe *EPE) {
	applyVerticalCoupling(carries, w, e)

	N := carries.N
	workpool.For(carries.M, func(m int) {
		if ext == Constant {
			applyCPECorner(carries, e, cpe, m)
		}

		switch ext {
		case Zero, Constant:
			sweepPtRight(carries, e, N, m)
			if ext == Constant {
				applyCPERightBoundary(carries, e, cpe, m)
			}
			sweepEtLeft(carries, e, N, m)
		case Periodic:
			acc := zeros(carries.B, e.r)
			for n := 0; n < N; n++ {
				next := mulNew(acc, e.AbFt)
				next.Add(next, carries.Pt(m, n))
				acc = next
			}
			boundary := mulNew(acc, pe.IAwF)
			carries.SetPt(m, -1, boundary)
			sweepPtRight(carries, e, N, m)

			e0z := zeros(carries.B, e.r)
			for n := N - 1; n >= 0; n-- {
				term := mulNew(carries.Pt(m, n-1), e.HARBxAFPt)
				term2 := mulNew(e0z, e.AbRt)
				term.Add(term, term2)
				term.Add(term, carries.Et(m, n))
				e0z = term
			}
			eBoundary := mulNew(e0z, pe.IAwR)
			carries.SetEt(m, N, eBoundary)
			sweepEtLeft(carries, e, N, m)
		case EvenPeriodic:
			tPt := make([]*mat.Dense, N)
			for n := 0; n < N; n++ {
				tPt[n] = mat.DenseCopyOf(carries.Pt(m, n))
			}
			tPtAt := func(n int) *mat.Dense {
				if n < 0 {
					return zeros(carries.B, e.r)
				}
				return tPt[n]
			}
			for n := 0; n < N; n++ {
				tPt[n].Add(tPt[n], mulNew(tPtAt(n-1), e.AbFt))
			}

			e0z := zeros(carries.B, e.r)
			for n := N - 1; n >= 0; n-- {
				term := mulNew(tPtAt(n-1), e.HARBxAFPt)
				term2 := mulNew(e0z, e.AbRt)
				term.Add(term, term2)
				term.Add(term, carries.Et(m, n))
				e0z = term
			}

			ptBoundary := mulNew(e0z, transposeCopy(epe.M1w))
			ptBoundary.Add(ptBoundary, mulNew(tPt[N-1], transposeCopy(epe.M2w)))
			carries.SetPt(m, -1, ptBoundary)

			awfPt := mulNew(ptBoundary, transposeCopy(pe.AwF))
			awfPt.Add(awfPt, tPt[N-1])
			etBoundary := mulNew(awfPt, transposeCopy(epe.L))
			carries.SetEt(m, N, etBoundary)

			sweepPtRight(carries, e, N, m)
			sweepEtLeft(carries, e, N, m)
		}
	})
}

// sweepPtRight runs the standard Pt sweep: Pt[m][n] += Pt[m][n-1] * AbFt
// for n = 0..N-1, reading whatever boundary value currently sits in
// Pt[m][-1].
func sweepPtRight(carries *Carries, e *Elementary, N, m int) {
	for n := 0; n < N; n++ {
		pt := carries.Pt(m, n)
		pt.Add(pt, mulNew(carries.Pt(m, n-1), e.AbFt))
	}
}

// sweepEtLeft runs the standard Et sweep: Et[m][n] += Pt[m][n-1] *
// HARBxAFPt + Et[m][n+1] * AbRt for n = N-1..0, reading whatever
// boundary value currently sits in Et[m][N].
func sweepEtLeft(carries *Carries, e *Elementary, N, m int) {
	for n := N - 1; n >= 0; n-- {
		acc := carries.Et(m, n)
		acc.Add(acc, mulNew(carries.Pt(m, n-1), e.HARBxAFPt))
		acc.Add(acc, mulNew(carries.Et(m, n+1), e.AbRt))
	}
}

// applyVerticalCoupling adds, into every block's locally-computed Pt and
// Et, the contribution of the vertical carries P(m-1,n) and E(m+1,n) that
// RunVertical resolved. P(m-1,n)/E(m+1,n) describe how the column above/
// below pushes values into block (m,n) before any row sweep runs;
// ARBxAFP/ARE (the same elementary matrices the CPE corner fix uses) turn
// that into the b x b correction the block's own column would carry, and
// FT/RT (with zero prologue/epilogue, exactly as stage 1 extracts Pt/Et
// from a local block) turn the correction into the incremental column
// prologue/epilogue it contributes. Run once, before any row's Pt/Et
// sweep, since sweepPtRight/sweepEtLeft propagate whatever sits in Pt(m,n)/
// Et(m,n) onward across the row.
func applyVerticalCoupling(carries *Carries, w Weights, e *Elementary) {
	workpool.For(carries.M*carries.N, func(idx int) {
		m, n := idx/carries.N, idx%carries.N
		correction := mulNew(e.ARBxAFP, carries.P(m-1, n))
		correction.Add(correction, mulNew(e.ARE, carries.E(m+1, n)))

		// Mirrors stage1's own FT-then-RT extraction of Pt/Et from a local
		// block: FT's trailing columns come out farthest-first and must be
		// flipped to the nearest-first order Pt is stored in (see sweep.go
		// and DESIGN.md); RT's leading columns are already nearest-first.
		FT(zeros(carries.B, e.r), correction, w)
		dPt := FlipCols(TailCols(correction, e.r))
		RT(correction, zeros(carries.B, e.r), w)
		dEt := HeadCols(correction, e.r)

		pt := carries.Pt(m, n)
		pt.Add(pt, dPt)
		et := carries.Et(m, n)
		et.Add(et, dEt)
	})
}

// applyCPECorner applies the north-west/south-west corner fix to
// Pt[m][-1] before the standard Pt sweep runs, using the vertical
// carries from the leftmost column of blocks.
func applyCPECorner(carries *Carries, e *Elementary, cpe *CPE, m int) {
	cnw := tileCols(carries.P(m-1, 0), 0, e.r)
	csw := tileCols(carries.E(m+1, 0), 0, e.r)
	corner := carries.Pt(m, -1)
	corner.Add(corner, mulNew(e.ARBxAFP, cnw))
	corner.Add(corner, mulNew(e.ARE, csw))
	fixed := mulNew(corner, transposeCopy(cpe.SFxAbarF))
	carries.SetPt(m, -1, fixed)
}

// applyCPERightBoundary applies the north-east/south-east corner fix to
// Et[m][N] after the standard Pt sweep has resolved Pt[m][N-1], using the
// vertical carries from the rightmost column of blocks.
func applyCPERightBoundary(carries *Carries, e *Elementary, cpe *CPE, m int) {
	N := carries.N
	cne := tileCols(carries.P(m-1, N-1), 0, e.r)
	cse := tileCols(carries.E(m+1, N-1), 0, e.r)
	corner := carries.Et(m, N)
	corner.Add(corner, mulNew(e.ARBxAFP, cne))
	corner.Add(corner, mulNew(e.ARE, cse))

	term := mulNew(carries.Pt(m, N-1), transposeCopy(cpe.SRFxArF))
	term.Add(term, mulNew(corner, transposeCopy(cpe.Residual)))
	carries.SetEt(m, N, term)
}
