// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recfilter

import "gonum.org/v1/gonum/mat"

// Elementary holds the small dense matrices derived once from (weights,
// block side, filter order) that drive carry propagation. All fields are
// read-only after BuildElementary returns and are safe to share across
// goroutines and across an entire image.
//
// The row-sweep (vertical) matrices are computed directly from F/R per
// the construction in the reference algorithm. Their column-sweep
// (horizontal) counterparts are, by a direct consequence of FT/RT being
// F/R applied to the transposed block, the literal transposes of the
// vertical matrices; they are cached here rather than recomputed at every
// use site.
type Elementary struct {
	b, r int

	AFP *mat.Dense // b x r: forward response to unit prologue.
	AFB *mat.Dense // b x b: forward response to unit input.
	ARE *mat.Dense // b x r: reverse response to unit epilogue.
	ARB *mat.Dense // b x b: reverse response to unit input.

	AbF *mat.Dense // r x r: row-flipped tail of AFP, maps an incoming row-prologue to the outgoing one.
	AbR *mat.Dense // r x r: head of ARE, maps an incoming row-epilogue to the outgoing one.

	HARB     *mat.Dense // r x b: head of ARB.
	HARBxAFP *mat.Dense // r x r: HARB * AFP.
	ARBxAFP  *mat.Dense // b x r: ARB * AFP, used by the CPE corner fix.

	// Horizontal counterparts, used by right-multiplying the b x r carries
	// Pt/Et rather than left-multiplying the r x b carries P/E.
	AbFt         *mat.Dense // r x r: transpose of AbF.
	AbRt         *mat.Dense // r x r: transpose of AbR.
	HARBxAFPt    *mat.Dense // r x r: transpose of HARBxAFP.

	// Boundary-fix building blocks shared by CPE/PE/EPE.
	ArF   *mat.Dense // r x r: head of AFP.
	ArR   *mat.Dense // r x r: flip(ArF).
	K     *mat.Dense // r x r: flip(identity).
	AbarF *mat.Dense // r x r: lower-triangular part of ArF, diagonal b0.
	AbarR *mat.Dense // r x r: flip(AbarF).
}

// BuildElementary computes the elementary matrices for the given weights
// and block side b. b must exceed the filter order.
func BuildElementary(w Weights, b int) (*Elementary, error) {
	r := w.Order()
	if b <= r {
		return nil, ErrInvalidBlockSide
	}
	e := &Elementary{b: b, r: r}

	e.AFP = F(identity(r), zeros(b, r), w)
	e.AFB = F(zeros(r, b), identity(b), w)
	e.ARE = R(zeros(b, r), identity(r), w)
	e.ARB = R(identity(b), zeros(r, b), w)

	// AbF maps an incoming row-prologue (nearest-first: row 0 is position
	// -1) to the outgoing one seen by the next block down. AFP's row axis
	// is the block's literal row position, so its trailing r rows are in
	// farthest-first order; FlipRows puts them back into the nearest-first
	// order AbF's caller (P's own storage convention) expects.
	e.AbF = FlipRows(Tail(e.AFP, r))
	e.AbR = Head(e.ARE, r)

	e.HARB = Head(e.ARB, r)
	e.HARBxAFP = mulNew(e.HARB, e.AFP)
	e.ARBxAFP = mulNew(e.ARB, e.AFP)

	e.AbFt = transposeCopy(e.AbF)
	e.AbRt = transposeCopy(e.AbR)
	e.HARBxAFPt = transposeCopy(e.HARBxAFP)

	e.ArF = Head(e.AFP, r)
	e.ArR = Flip(e.ArF)
	e.K = Flip(identity(r))
	e.AbarF = lowerTriWithDiag(e.ArF, w.B0)
	e.AbarR = Flip(e.AbarF)

	return e, nil
}

// mulNew returns a new Dense holding a*b.
func mulNew(a, b *mat.Dense) *mat.Dense {
	ar, _ := a.Dims()
	_, bc := b.Dims()
	dst := mat.NewDense(ar, bc, nil)
	dst.Mul(a, b)
	return dst
}

func transposeCopy(a *mat.Dense) *mat.Dense {
	r, c := a.Dims()
	dst := mat.NewDense(c, r, nil)
	dst.Copy(a.T())
	return dst
}

// lowerTriWithDiag returns a matrix equal to the strictly-lower-triangular
// part of a with the diagonal replaced by diag.
func lowerTriWithDiag(a *mat.Dense, diag float64) *mat.Dense {
	n, _ := a.Dims()
	dst := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				dst.Set(i, j, diag)
			case i > j:
				dst.Set(i, j, a.At(i, j))
			}
		}
	}
	return dst
}
