// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recfilter

import "gonum.org/v1/gonum/mat"

// fwd runs one causal sweep over dst in place: dst[j] is replaced by
// b0*dst[j] minus the weighted sum of the r preceding (already filtered)
// values, using prol for the r virtual positions immediately before
// dst[0]. prol[0] holds position -1, prol[1] holds position -2, and so on.
func fwd(dst, prol []float64, w Weights) {
	r := len(w.A)
	for j := range dst {
		v := w.B0 * dst[j]
		for k := 1; k <= r; k++ {
			var x float64
			if j-k < 0 {
				x = prol[k-j-1]
			} else {
				x = dst[j-k]
			}
			v -= w.A[k-1] * x
		}
		dst[j] = v
	}
}

// rev runs one anticausal sweep over dst in place, symmetric to fwd:
// dst[j] is replaced by b0*dst[j] minus the weighted sum of the r
// following (already filtered) values, using epil for the r virtual
// positions immediately after dst[len(dst)-1].
func rev(dst, epil []float64, w Weights) {
	r := len(w.A)
	b := len(dst)
	for j := b - 1; j >= 0; j-- {
		v := w.B0 * dst[j]
		for k := 1; k <= r; k++ {
			var x float64
			if j+k >= b {
				x = epil[j+k-b]
			} else {
				x = dst[j+k]
			}
			v -= w.A[k-1] * x
		}
		dst[j] = v
	}
}

// F applies fwd to every column of block in place, using the matching
// column of prol (r x cols(block)) as that column's prologue. F returns
// block for chaining.
func F(prol, block *mat.Dense, w Weights) *mat.Dense {
	br, bc := block.Dims()
	pr, pc := prol.Dims()
	if pc != bc || pr != w.Order() {
		panic("recfilter: F: prologue shape mismatch")
	}
	col := make([]float64, br)
	pcol := make([]float64, pr)
	for c := 0; c < bc; c++ {
		mat.Col(col, c, block)
		mat.Col(pcol, c, prol)
		fwd(col, pcol, w)
		block.SetCol(c, col)
	}
	return block
}

// R applies rev to every column of block in place, using the matching
// column of epil (r x cols(block)) as that column's epilogue. R returns
// block for chaining.
func R(block, epil *mat.Dense, w Weights) *mat.Dense {
	br, bc := block.Dims()
	er, ec := epil.Dims()
	if ec != bc || er != w.Order() {
		panic("recfilter: R: epilogue shape mismatch")
	}
	col := make([]float64, br)
	ecol := make([]float64, er)
	for c := 0; c < bc; c++ {
		mat.Col(col, c, block)
		mat.Col(ecol, c, epil)
		rev(col, ecol, w)
		block.SetCol(c, col)
	}
	return block
}

// FT applies fwd to every row of block in place, using the matching row
// of prol (rows(block) x r) as that row's prologue. FT returns block for
// chaining.
func FT(prol, block *mat.Dense, w Weights) *mat.Dense {
	br, _ := block.Dims()
	pr, pc := prol.Dims()
	if pr != br || pc != w.Order() {
		panic("recfilter: FT: prologue shape mismatch")
	}
	prow := make([]float64, pc)
	for i := 0; i < br; i++ {
		row := block.RawRowView(i)
		mat.Row(prow, i, prol)
		fwd(row, prow, w)
	}
	return block
}

// RT applies rev to every row of block in place, using the matching row
// of epil (rows(block) x r) as that row's epilogue. RT returns block for
// chaining.
func RT(block, epil *mat.Dense, w Weights) *mat.Dense {
	br, _ := block.Dims()
	er, ec := epil.Dims()
	if er != br || ec != w.Order() {
		panic("recfilter: RT: epilogue shape mismatch")
	}
	erow := make([]float64, ec)
	for i := 0; i < br; i++ {
		row := block.RawRowView(i)
		mat.Row(erow, i, epil)
		rev(row, erow, w)
	}
	return block
}

// Head returns the first n rows of x as a new matrix.
func Head(x *mat.Dense, n int) *mat.Dense {
	_, cols := x.Dims()
	dst := mat.NewDense(n, cols, nil)
	dst.Copy(x.Slice(0, n, 0, cols))
	return dst
}

// Tail returns the last n rows of x as a new matrix.
func Tail(x *mat.Dense, n int) *mat.Dense {
	rows, cols := x.Dims()
	dst := mat.NewDense(n, cols, nil)
	dst.Copy(x.Slice(rows-n, rows, 0, cols))
	return dst
}

// HeadCols returns the first n columns of x as a new matrix.
func HeadCols(x *mat.Dense, n int) *mat.Dense {
	rows, _ := x.Dims()
	dst := mat.NewDense(rows, n, nil)
	dst.Copy(x.Slice(0, rows, 0, n))
	return dst
}

// TailCols returns the last n columns of x as a new matrix.
func TailCols(x *mat.Dense, n int) *mat.Dense {
	rows, cols := x.Dims()
	dst := mat.NewDense(rows, n, nil)
	dst.Copy(x.Slice(0, rows, cols-n, cols))
	return dst
}

// Flip reverses both axes of x, returning a new matrix.
func Flip(x *mat.Dense) *mat.Dense {
	rows, cols := x.Dims()
	dst := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst.Set(i, j, x.At(rows-1-i, cols-1-j))
		}
	}
	return dst
}

// FlipRows reverses the row order of x, leaving each row's contents and
// column positions untouched, and returns a new matrix. Used to convert
// a row-position-ordered Tail slice of a block (row 0 = farthest from the
// block's trailing edge) into the nearest-first order fwd/rev expect of a prologue
// or epilogue (row 0 = the position immediately adjacent to the block).
func FlipRows(x *mat.Dense) *mat.Dense {
	rows, cols := x.Dims()
	dst := mat.NewDense(rows, cols, nil)
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(row, i, x)
		dst.SetRow(rows-1-i, row)
	}
	return dst
}

// FlipCols reverses the column order of x, leaving each column's contents
// and row positions untouched, and returns a new matrix. The column
// analogue of FlipRows, used for the Pt/Et (b x r) carries.
func FlipCols(x *mat.Dense) *mat.Dense {
	rows, cols := x.Dims()
	dst := mat.NewDense(rows, cols, nil)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, x)
		dst.SetCol(cols-1-j, col)
	}
	return dst
}

// zeros returns a newly allocated r x c zero matrix.
func zeros(r, c int) *mat.Dense { return mat.NewDense(r, c, nil) }

// identity returns a newly allocated n x n identity matrix.
func identity(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}
	return d
}
