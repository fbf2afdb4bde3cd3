// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recfilter

import "gonum.org/v1/gonum/mat"

// Grid is a regular M x N grid of b x b blocks decomposed from an H x W
// image. When H or W is not a multiple of b, the trailing blocks are
// zero-padded; Compose trims the padding back off.
type Grid struct {
	H, W int
	B    int
	M, N int

	blocks []*mat.Dense // row-major, length M*N
}

// Decompose splits image into a grid of b x b blocks, zero-padding the
// trailing edges as needed. b must be a positive integer exceeding the
// filter order used downstream; Decompose itself only requires b > 0.
func Decompose(image *mat.Dense, b int) (*Grid, error) {
	h, w := image.Dims()
	if h == 0 || w == 0 {
		return nil, ErrInvalidDimensions
	}
	if b <= 0 {
		return nil, ErrInvalidBlockSide
	}
	m := (h + b - 1) / b
	n := (w + b - 1) / b
	g := &Grid{H: h, W: w, B: b, M: m, N: n, blocks: make([]*mat.Dense, m*n)}
	for mi := 0; mi < m; mi++ {
		for ni := 0; ni < n; ni++ {
			blk := mat.NewDense(b, b, nil)
			rows := min(b, h-mi*b)
			cols := min(b, w-ni*b)
			if rows > 0 && cols > 0 {
				blk.Copy(image.Slice(mi*b, mi*b+rows, ni*b, ni*b+cols))
			}
			g.blocks[mi*n+ni] = blk
		}
	}
	return g, nil
}

// At returns the block at grid position (m, n).
func (g *Grid) At(m, n int) *mat.Dense { return g.blocks[m*g.N+n] }

// Set replaces the block at grid position (m, n).
func (g *Grid) Set(m, n int, block *mat.Dense) { g.blocks[m*g.N+n] = block }

// Compose reassembles the grid into an H x W image, discarding the
// zero-padding added by Decompose.
func (g *Grid) Compose() *mat.Dense {
	out := mat.NewDense(g.H, g.W, nil)
	for mi := 0; mi < g.M; mi++ {
		for ni := 0; ni < g.N; ni++ {
			rows := min(g.B, g.H-mi*g.B)
			cols := min(g.B, g.W-ni*g.B)
			if rows <= 0 || cols <= 0 {
				continue
			}
			blk := g.At(mi, ni)
			dst := out.Slice(mi*g.B, mi*g.B+rows, ni*g.B, ni*g.B+cols).(*mat.Dense)
			dst.Copy(blk.Slice(0, rows, 0, cols))
		}
	}
	return out
}
