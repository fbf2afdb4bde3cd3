// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recfilter

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuanhaoGong/gpufilter/internal/workpool"
)

// RunVertical runs stages 2-3: it propagates P down each column of
// blocks and then E up, applying whatever boundary fix ext calls for.
// Columns (fixed n) are independent of one another and run in parallel;
// within a column the propagation is strictly sequential in m.
func RunVertical(carries *Carries, e *Elementary, ext Extension, cpe *CPE, pe *PE, epe *EPE) {
	M := carries.M
	workpool.For(carries.N, func(n int) {
		switch ext {
		case Zero:
			sweepPDown(carries, e, M, n)
			sweepEUp(carries, e, M, n)
		case Constant:
			p := carries.P(-1, n)
			p.Mul(cpe.SFxAbarF, p)
			sweepPDown(carries, e, M, n)

			eBoundary := mat.NewDense(e.r, carries.B, nil)
			eBoundary.Mul(cpe.SRFxArF, carries.P(M-1, n))
			residual := mulNew(cpe.Residual, carries.E(M, n))
			eBoundary.Add(eBoundary, residual)
			carries.SetE(M, n, eBoundary)
			sweepEUp(carries, e, M, n)
		case Periodic:
			pm1y := zeros(e.r, carries.B)
			for m := 0; m < M; m++ {
				next := mulNew(e.AbF, pm1y)
				next.Add(next, carries.P(m, n))
				pm1y = next
			}
			boundary := mulNew(pe.IAhF, pm1y)
			carries.SetP(-1, n, boundary)
			sweepPDown(carries, e, M, n)

			e0z := zeros(e.r, carries.B)
			for m := M - 1; m >= 0; m-- {
				term := mulNew(e.HARBxAFP, carries.P(m-1, n))
				term2 := mulNew(e.AbR, e0z)
				term.Add(term, term2)
				term.Add(term, carries.E(m, n))
				e0z = term
			}
			eBoundary := mulNew(pe.IAhR, e0z)
			carries.SetE(M, n, eBoundary)
			sweepEUp(carries, e, M, n)
		case EvenPeriodic:
			tP := make([]*mat.Dense, M)
			for m := 0; m < M; m++ {
				tP[m] = mat.DenseCopyOf(carries.P(m, n))
			}
			tPAt := func(m int) *mat.Dense {
				if m < 0 {
					return zeros(e.r, carries.B)
				}
				return tP[m]
			}
			for m := 0; m < M; m++ {
				tP[m].Add(tP[m], mulNew(e.AbF, tPAt(m-1)))
			}

			e0z := zeros(e.r, carries.B)
			for m := M - 1; m >= 0; m-- {
				term := mulNew(e.HARBxAFP, tPAt(m-1))
				term2 := mulNew(e.AbR, e0z)
				term.Add(term, term2)
				term.Add(term, carries.E(m, n))
				e0z = term
			}

			pBoundary := mulNew(epe.M1h, e0z)
			pBoundary.Add(pBoundary, mulNew(epe.M2h, tP[M-1]))
			carries.SetP(-1, n, pBoundary)

			ahfP := mulNew(pe.AhF, pBoundary)
			ahfP.Add(ahfP, tP[M-1])
			eBoundary := mulNew(epe.L, ahfP)
			carries.SetE(M, n, eBoundary)

			sweepPDown(carries, e, M, n)
			sweepEUp(carries, e, M, n)
		}
	})
}

// sweepPDown runs the standard P sweep: P[m][n] += AbF * P[m-1][n] for
// m = 0..M-1, reading whatever boundary value currently sits in
// P[-1][n].
func sweepPDown(carries *Carries, e *Elementary, M, n int) {
	for m := 0; m < M; m++ {
		p := carries.P(m, n)
		p.Add(p, mulNew(e.AbF, carries.P(m-1, n)))
	}
}

// sweepEUp runs the standard E sweep: E[m][n] += HARBxAFP * P[m-1][n] +
// AbR * E[m+1][n] for m = M-1..0, reading whatever boundary value
// currently sits in E[M][n].
func sweepEUp(carries *Carries, e *Elementary, M, n int) {
	for m := M - 1; m >= 0; m-- {
		acc := carries.E(m, n)
		acc.Add(acc, mulNew(e.HARBxAFP, carries.P(m-1, n)))
		acc.Add(acc, mulNew(e.AbR, carries.E(m+1, n)))
	}
}
