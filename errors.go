// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recfilter

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions signifies that the input image had a zero height or
// width.
var ErrInvalidDimensions = errors.New("recfilter: invalid image dimensions")

// ErrInvalidBlockSide signifies that the requested block side was not
// larger than the filter order.
var ErrInvalidBlockSide = errors.New("recfilter: block side must exceed filter order")

// ErrInvalidWeights signifies that a weight tuple had the wrong arity or a
// zero forward coefficient.
type ErrInvalidWeights struct {
	Reason string
}

func (e ErrInvalidWeights) Error() string {
	return fmt.Sprintf("recfilter: invalid weights: %s", e.Reason)
}

// ErrIllConditioned signifies that an extension-matrix builder required a
// matrix inversion that failed for the chosen (weights, block side,
// extension) combination.
type ErrIllConditioned struct {
	// Step names the inversion that failed, e.g. "(I - ArF)".
	Step string
}

func (e ErrIllConditioned) Error() string {
	return fmt.Sprintf("recfilter: ill-conditioned weights: %s is singular", e.Step)
}
