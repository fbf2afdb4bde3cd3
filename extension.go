// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recfilter

import "gonum.org/v1/gonum/mat"

// Extension names a boundary-extension policy.
type Extension int

const (
	// Zero pads the image with zeros outside its bounds.
	Zero Extension = iota
	// Constant replicates the edge pixel outside the image bounds.
	Constant
	// Periodic wraps the image around, both horizontally and vertically.
	Periodic
	// EvenPeriodic mirrors the image at its edge, then wraps the mirrored
	// copy, giving a continuous (even-symmetric) periodic extension.
	EvenPeriodic
)

func (x Extension) String() string {
	switch x {
	case Zero:
		return "Zero"
	case Constant:
		return "Constant"
	case Periodic:
		return "Periodic"
	case EvenPeriodic:
		return "EvenPeriodic"
	default:
		return "Extension(?)"
	}
}

// CPE holds the matrices used by the Constant (edge-replication) boundary
// fix. All fields are r x r.
type CPE struct {
	SF, SR   *mat.Dense
	SRF      *mat.Dense
	SFxAbarF *mat.Dense
	SRFxArF  *mat.Dense
	Residual *mat.Dense // (SR*AbarR - SRF*ArF) * SF*AbarF
}

// BuildCPE solves the boundary-fix system for the Constant extension. It
// depends only on the elementary matrices (weights, block side), not on
// the image size.
func BuildCPE(e *Elementary) (*CPE, error) {
	r := e.r
	I := identity(r)

	subF := mat.NewDense(r, r, nil)
	subF.Sub(I, e.ArF)
	SF, err := invert(subF, "(I - ArF)")
	if err != nil {
		return nil, err
	}

	subR := mat.NewDense(r, r, nil)
	subR.Sub(I, e.ArR)
	SR, err := invert(subR, "(I - ArR)")
	if err != nil {
		return nil, err
	}

	SRF, err := solveCornerSystem(e.ArF, e.ArR, e.AbarR, r)
	if err != nil {
		return nil, err
	}

	SFxAbarF := mulNew(SF, e.AbarF)
	SRFxArF := mulNew(SRF, e.ArF)
	tmp := mulNew(SR, e.AbarR)
	tmp.Sub(tmp, SRFxArF)
	residual := mulNew(tmp, SFxAbarF)

	return &CPE{
		SF: SF, SR: SR, SRF: SRF,
		SFxAbarF: SFxAbarF, SRFxArF: SRFxArF, Residual: residual,
	}, nil
}

// solveCornerSystem solves sysA*vec(SRF) = vec(AbarR) where
// sysA[r*i+j, r*p+q] = delta(i,p)*delta(j,q) - ArR[j,q]*ArF[p,i], and
// reshapes the r*r solution vector back into an r x r matrix in
// row-major order.
func solveCornerSystem(ArF, ArR, AbarR *mat.Dense, r int) (*mat.Dense, error) {
	n := r * r
	sysA := mat.NewDense(n, n, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			row := r*i + j
			for p := 0; p < r; p++ {
				for q := 0; q < r; q++ {
					col := r*p + q
					v := 0.0
					if i == p && j == q {
						v = 1
					}
					v -= ArR.At(j, q) * ArF.At(p, i)
					sysA.Set(row, col, v)
				}
			}
		}
	}
	rhs := mat.NewDense(n, 1, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			rhs.Set(r*i+j, 0, AbarR.At(i, j))
		}
	}
	sol := mat.NewDense(n, 1, nil)
	if err := sol.Solve(sysA, rhs); err != nil {
		return nil, ErrIllConditioned{Step: "CPE corner system"}
	}
	srf := mat.NewDense(r, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			srf.Set(i, j, sol.At(r*i+j, 0))
		}
	}
	return srf, nil
}

// PE holds the matrices used by the Periodic boundary fix. AhF/AhR model
// the full-height (vertical) wraparound response; AwF/AwR model the
// full-width (horizontal) one. They depend on the true image height and
// width, not on the block side, since periodicity is a property of the
// signal rather than of the block decomposition.
type PE struct {
	AhF, AhR *mat.Dense
	AwF, AwR *mat.Dense

	IAhF, IAhR *mat.Dense
	IAwF, IAwR *mat.Dense
}

// BuildPE builds the Periodic boundary-fix matrices for an image of the
// given (unpadded) height and width.
func BuildPE(w Weights, e *Elementary, height, width int) (*PE, error) {
	r := e.r
	Ir := identity(r)

	ahF := TailCols(FT(Ir, zeros(r, height), w), r)
	ahR := HeadCols(RT(zeros(r, height), Ir, w), r)
	awF := Tail(F(Ir, zeros(width, r), w), r)
	awR := Head(R(zeros(width, r), Ir, w), r)

	I := identity(r)
	p := &PE{AhF: ahF, AhR: ahR, AwF: awF, AwR: awR}

	sub := mat.NewDense(r, r, nil)
	sub.Sub(I, ahF)
	var err error
	if p.IAhF, err = invert(sub, "(I - AhF)"); err != nil {
		return nil, err
	}
	sub = mat.NewDense(r, r, nil)
	sub.Sub(I, ahR)
	if p.IAhR, err = invert(sub, "(I - AhR)"); err != nil {
		return nil, err
	}
	sub = mat.NewDense(r, r, nil)
	sub.Sub(I, awF)
	if p.IAwF, err = invert(sub, "(I - AwF)"); err != nil {
		return nil, err
	}
	sub = mat.NewDense(r, r, nil)
	sub.Sub(I, awR)
	if p.IAwR, err = invert(sub, "(I - AwR)"); err != nil {
		return nil, err
	}
	return p, nil
}

// EPE holds the matrices used by the EvenPeriodic boundary fix, built on
// top of the Periodic matrices. The exact M1w/M2w/M1h/M2h combination is
// not pinned down by an available reference implementation (see
// DESIGN.md); the convention frozen here composes the doubled-period
// self-consistency solve (I - A^2)^-1 with a single extra step through
// AhF/AwF normalized by AbarF^-1, mirroring the structure of the CPE
// residual term.
type EPE struct {
	L                  *mat.Dense
	IA2wF, IA2hF       *mat.Dense
	AbarFInv           *mat.Dense
	M1w, M2w, M1h, M2h *mat.Dense
}

// BuildEPE builds the EvenPeriodic boundary-fix matrices.
func BuildEPE(e *Elementary, p *PE) (*EPE, error) {
	r := e.r
	I := identity(r)

	sub := mat.NewDense(r, r, nil)
	sub.Sub(e.K, e.ArR)
	invKArR, err := invert(sub, "(K - ArR)")
	if err != nil {
		return nil, err
	}
	L := mulNew(invKArR, e.AbarR)

	awF2 := mulNew(p.AwF, p.AwF)
	ahF2 := mulNew(p.AhF, p.AhF)

	sub = mat.NewDense(r, r, nil)
	sub.Sub(I, awF2)
	IA2wF, err := invert(sub, "(I - AwF^2)")
	if err != nil {
		return nil, err
	}
	sub = mat.NewDense(r, r, nil)
	sub.Sub(I, ahF2)
	IA2hF, err := invert(sub, "(I - AhF^2)")
	if err != nil {
		return nil, err
	}

	abarFInv, err := invert(e.AbarF, "AbarF")
	if err != nil {
		return nil, err
	}

	M2h := IA2hF
	M1h := mulNew(mulNew(IA2hF, p.AhF), abarFInv)
	M2w := IA2wF
	M1w := mulNew(mulNew(IA2wF, p.AwF), abarFInv)

	return &EPE{
		L: L, IA2wF: IA2wF, IA2hF: IA2hF, AbarFInv: abarFInv,
		M1w: M1w, M2w: M2w, M1h: M1h, M2h: M2h,
	}, nil
}

// invert returns the inverse of a, or ErrIllConditioned{step} if a is
// singular.
func invert(a *mat.Dense, step string) (*mat.Dense, error) {
	n, _ := a.Dims()
	dst := mat.NewDense(n, n, nil)
	if err := dst.Inverse(a); err != nil {
		return nil, ErrIllConditioned{Step: step}
	}
	return dst, nil
}
