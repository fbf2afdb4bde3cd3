// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recfilter implements a block-parallel algorithm for causal and
// anticausal recursive digital filtering of 2-D images.
//
// A naive recursive (IIR) filter is inherently sequential along each row
// and column: the output at position j depends on the output at j-1. This
// package instead decomposes an image into a grid of square blocks,
// computes a small per-block linear summary of how each block would
// respond to an incoming boundary value (its "carry"), propagates those
// carries across the grid with dense linear algebra over matrices no
// larger than the filter order or the block side, and finally replays a
// local causal/anticausal sweep inside every block using the resolved
// carries as prologue and epilogue. The result is bit-identical (to
// floating point tolerance) to the naive sequential filter, but the bulk
// of the work — the per-block sweeps of stage 1 and stage 6 — is
// embarrassingly parallel.
//
// The filter order r (the number of feedback taps) is expected to be 1 or
// 2 in practice (first- and second-order Gaussian approximations), though
// the carry algebra itself places no hard limit on r.
//
// Four boundary-extension policies are supported: Zero (pad with zeros),
// Constant (replicate the edge pixel), Periodic (wrap around), and
// EvenPeriodic (mirror then wrap). See Extension for details.
package recfilter
