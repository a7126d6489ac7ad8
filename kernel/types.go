// SPDX-License-Identifier: MIT

// Package kernel: domain types.
// This file holds ONLY the Marginalisation classification and the Kernel
// record itself; construction, replacement and reversal live in kernel.go
// and fields.go, sentinels in errors.go, per the package conventions.

package kernel

import (
	"fmt"

	"gorgonia.org/tensor"
)

// Marginalisation classifies how much covariance between spatial positions a
// record tracks. Let k_{ij}(x, y) denote the covariance between spatial
// positions i and j for inputs x and y. A record with a given value stores:
//
//	OverAll:             k(x, x) — no spatial axes at all,
//	                     Var1/Var2 shaped (batch,), NNGP/NTK (batch₁, batch₂).
//	OverPixelsAndPoints: an intermediate, same-position layout used while a
//	                     layer decides between the pixel and point regimes.
//	OverPixels:          k_{ii}(x, y) — same-position covariances only,
//	                     one axis per spatial dimension.
//	OverPoints:          k_{ij}(x, x) — full spatial covariance of a single
//	                     batch, two axes per spatial dimension.
//	No:                  k_{ij}(x, y) — nothing marginalised, two batch axes
//	                     and two axes per spatial dimension.
//
// The ordinal encodes relative information content: everything tracked by a
// lower value is recoverable from any higher value, so the integer
// comparisons `<`, `<=`, `==` express strict/non-strict set inclusion.
type Marginalisation int

const (
	// OverAll tracks no covariance between distinct spatial positions.
	OverAll Marginalisation = iota

	// OverPixelsAndPoints tracks same-position covariance in the pixel
	// layout while point-layout axes are still being assembled.
	OverPixelsAndPoints

	// OverPixels tracks covariance between identical spatial positions only.
	OverPixels

	// OverPoints tracks covariance between all pairs of spatial positions
	// within one input batch.
	OverPoints

	// No marginalises nothing: all pairs of positions across both batches.
	No
)

// marginalisationNames indexes String() by ordinal.
var marginalisationNames = [...]string{
	"OverAll",
	"OverPixelsAndPoints",
	"OverPixels",
	"OverPoints",
	"No",
}

// Valid reports whether m is one of the five defined classifications.
func (m Marginalisation) Valid() bool {
	return m >= OverAll && m <= No
}

// String implements fmt.Stringer. Unknown ordinals render with their value.
func (m Marginalisation) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Marginalisation(%d)", int(m))
	}
	return marginalisationNames[m]
}

// Kernel carries the analytic NNGP and NTK covariances of one network layer.
//
// The record is a value: every operation copies it and returns a fresh
// Kernel, nothing mutates the receiver, and any number of readers may share
// one concurrently. Tensors are held by reference and treated as frozen by
// convention — layer transforms always allocate their outputs.
//
// Marginal and Cross are stored as plain ordinals (int), never as
// Marginalisation, so equality, ordering and any external serialization are
// independent of the enum's in-memory representation.
type Kernel struct {
	// Var1 holds the self-covariance of the first input batch, laid out
	// according to Marginal: (batch,) for fully-connected networks, with
	// spatial axes appended per the Marginalisation table otherwise.
	Var1 tensor.Tensor

	// NNGP holds the covariance between the two input batches (the Neural
	// Network Gaussian Process kernel), laid out according to Cross.
	NNGP tensor.Tensor

	// Var2 is Var1 for the second input batch; nil when only one batch is
	// being processed.
	Var2 tensor.Tensor

	// NTK holds the Neural Tangent Kernel, the covariance of output
	// gradients; same shape as NNGP. Nil when only the NNGP is requested.
	NTK tensor.Tensor

	// IsGaussian reports whether the layer's output channels are i.i.d.
	// Gaussian with covariance NNGP, conditioned on fixed layer inputs and
	// i.i.d. Gaussian weights and biases. True after affine layers, false
	// after nonlinearities.
	IsGaussian bool

	// IsReversed reports whether the spatial axis-pairs of Var1, NNGP,
	// Var2 and NTK are in reversed order. Meaningful only when Marginal
	// and Cross are at least OverPoints and No respectively; it is false
	// and ignored otherwise.
	IsReversed bool

	// Marginal is the ordinal of the Marginalisation describing the axis
	// layout of Var1 and Var2.
	Marginal int

	// Cross is the ordinal of the Marginalisation describing the axis
	// layout of NNGP and NTK.
	Cross int

	// Shape1 is the shape of the random variable underlying the first
	// input batch, prior to and independent of any marginalisation.
	Shape1 tensor.Shape

	// Shape2 is Shape1 for the second input batch.
	Shape2 tensor.Shape

	// X1IsX2 reports whether both input batches are the same data, which
	// lets consumers skip the symmetric half of their work.
	X1IsX2 bool

	// IsInput reports whether this record describes the network's input
	// layer; consumers use it to suppress input-layer dropout.
	IsInput bool

	// Mask1 optionally marks masked positions of the first batch: a boolean
	// tensor broadcastable against Shape1, true where the input is
	// invisible. Nil means no masking.
	Mask1 tensor.Tensor

	// Mask2 is Mask1 for the second batch.
	Mask2 tensor.Tensor
}

// Compile-time assertion: Kernel prints itself compactly in diagnostics.
var _ fmt.Stringer = Kernel{}
