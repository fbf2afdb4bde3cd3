// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recfilter

import (
	"io"
	"log"

	"gonum.org/v1/gonum/mat"
)

// DefaultBlockSide is the block side used by a zero-value Config.
const DefaultBlockSide = 32

// Config controls the non-algorithmic parameters of Filter: the block
// decomposition size, the boundary-extension policy, and where diagnostic
// logging goes. The zero value is a ready-to-use configuration: block
// side DefaultBlockSide and the Zero extension.
type Config struct {
	// BlockSide is the side length of the square blocks the image is
	// decomposed into. Zero means DefaultBlockSide.
	BlockSide int

	// Extension selects the boundary-extension policy.
	Extension Extension

	// Logger, if non-nil, receives one summary line (image size, filter
	// order, block side, extension) and one line with the block-grid
	// shape per Filter call. Defaults to a discarding logger.
	Logger *log.Logger
}

func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.New(io.Discard, "", 0)
}

func (c Config) blockSide() int {
	if c.BlockSide <= 0 {
		return DefaultBlockSide
	}
	return c.BlockSide
}

// Filter runs the full block-parallel recursive filter over image with the
// given weights and configuration, returning a new image of the same
// dimensions. image is not modified.
func Filter(image *mat.Dense, w Weights, cfg Config) (*mat.Dense, error) {
	if err := w.validate(); err != nil {
		return nil, err
	}
	h, width := image.Dims()
	if h == 0 || width == 0 {
		return nil, ErrInvalidDimensions
	}

	r := w.Order()
	b := cfg.blockSide()
	if b <= r {
		return nil, ErrInvalidBlockSide
	}
	logger := cfg.logger()
	logger.Printf("recfilter: filtering %dx%d image, order %d, block %d, extension %s", h, width, r, b, cfg.Extension)

	grid, err := Decompose(image, b)
	if err != nil {
		return nil, err
	}
	logger.Printf("recfilter: decomposed into %dx%d grid of blocks", grid.M, grid.N)

	elem, err := BuildElementary(w, b)
	if err != nil {
		return nil, err
	}

	var cpe *CPE
	var pe *PE
	var epe *EPE
	switch cfg.Extension {
	case Constant:
		if cpe, err = BuildCPE(elem); err != nil {
			return nil, err
		}
	case Periodic:
		if pe, err = BuildPE(w, elem, h, width); err != nil {
			return nil, err
		}
	case EvenPeriodic:
		if pe, err = BuildPE(w, elem, h, width); err != nil {
			return nil, err
		}
		if epe, err = BuildEPE(elem, pe); err != nil {
			return nil, err
		}
	}

	carries := NewCarries(grid.M, grid.N, r, b)
	RunStage1(grid, w, carries, cfg.Extension)
	RunVertical(carries, elem, cfg.Extension, cpe, pe, epe)
	RunHorizontal(carries, w, elem, cfg.Extension, cpe, pe, epe)
	out := RunFinalize(grid, w, carries)

	return out.Compose(), nil
}

// FilterGaussian is a convenience wrapper around Filter that builds its
// weights from a Gaussian scale sigma. order selects between FirstOrder
// (1) and SecondOrder (2); 0 defaults to SecondOrder.
func FilterGaussian(image *mat.Dense, sigma float64, order int, cfg Config) (*mat.Dense, error) {
	var w Weights
	var err error
	switch order {
	case 1:
		w, err = FirstOrder(sigma)
	case 0, 2:
		w, err = SecondOrder(sigma)
	default:
		return nil, ErrInvalidWeights{Reason: "order must be 1 or 2"}
	}
	if err != nil {
		return nil, err
	}
	return Filter(image, w, cfg)
}
