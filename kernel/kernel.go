// SPDX-License-Identifier: MIT

// Package kernel - construction and spatial reversal of Kernel records.
//
// Purpose:
//   - Keep the one coercion rule (Marginalisation → stored ordinal) in a
//     single place shared by New and the field overrides.
//   - Delegate every axis permutation to package axes; this file owns no
//     index arithmetic of its own.

package kernel

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/icml2020-attention/neural-tangents/axes"
)

// New returns a fully populated Kernel.
//
// The fourteen parameters mirror the record's fields in declaration order.
// marginal and cross are accepted as Marginalisation values and stored
// coerced to plain ordinals; no other validation is performed — callers are
// trusted to supply internally-consistent tensors, shapes and masks, and
// NTK (when non-nil) must share NNGP's shape.
// Complexity: O(1) — tensors are referenced, not copied.
func New(
	var1, nngp, var2, ntk tensor.Tensor,
	isGaussian, isReversed bool,
	marginal, cross Marginalisation,
	shape1, shape2 tensor.Shape,
	x1IsX2, isInput bool,
	mask1, mask2 tensor.Tensor,
) Kernel {
	return Kernel{
		Var1:       var1,
		NNGP:       nngp,
		Var2:       var2,
		NTK:        ntk,
		IsGaussian: isGaussian,
		IsReversed: isReversed,
		Marginal:   int(marginal), // stored as plain ordinal
		Cross:      int(cross),    // stored as plain ordinal
		Shape1:     shape1,
		Shape2:     shape2,
		X1IsX2:     x1IsX2,
		IsInput:    isInput,
		Mask1:      mask1,
		Mask2:      mask2,
	}
}

// Reverse returns a copy of k whose covariance tensors have their spatial
// axis-pairs in the opposite order, with IsReversed toggled.
//
// Each of Var1, NNGP, Var2 and NTK is permuted by axes.ReverseZipped keyed
// on Shape1: with axis pairs (H,H),(W,W),(D,D) the result carries
// (D,D),(W,W),(H,H); batch axes and within-pair order are untouched. Nil
// tensors pass through as nil. Reversing twice restores the original record.
//
// Meaningful only when Marginal and Cross indicate pairable spatial layouts
// (OverPoints and No respectively, or higher); that precondition is the
// caller's, not enforced here. When Shape1 has no spatial dimensions the
// tensors are returned untouched and only the flag toggles.
// Complexity: O(len(data)) over the four tensors.
func (k Kernel) Reverse() (Kernel, error) {
	var1, err := axes.ReverseZipped(k.Var1, k.Shape1)
	if err != nil {
		return Kernel{}, fmt.Errorf("kernel: Reverse var1: %w", err)
	}
	nngp, err := axes.ReverseZipped(k.NNGP, k.Shape1)
	if err != nil {
		return Kernel{}, fmt.Errorf("kernel: Reverse nngp: %w", err)
	}
	var2, err := axes.ReverseZipped(k.Var2, k.Shape1)
	if err != nil {
		return Kernel{}, fmt.Errorf("kernel: Reverse var2: %w", err)
	}
	ntk, err := axes.ReverseZipped(k.NTK, k.Shape1)
	if err != nil {
		return Kernel{}, fmt.Errorf("kernel: Reverse ntk: %w", err)
	}

	return k.With(
		Var1(var1),
		NNGP(nngp),
		Var2(var2),
		NTK(ntk),
		IsReversed(!k.IsReversed),
	), nil
}

// String renders the record on one line for logs and test failures: the
// four tensor shapes, both layouts by name, and the boolean flags.
func (k Kernel) String() string {
	return fmt.Sprintf(
		"Kernel{var1: %s, nngp: %s, var2: %s, ntk: %s, marginal: %s, cross: %s, "+
			"gaussian: %t, reversed: %t, x1==x2: %t, input: %t}",
		shapeOf(k.Var1), shapeOf(k.NNGP), shapeOf(k.Var2), shapeOf(k.NTK),
		Marginalisation(k.Marginal), Marginalisation(k.Cross),
		k.IsGaussian, k.IsReversed, k.X1IsX2, k.IsInput,
	)
}

// shapeOf formats a possibly-nil tensor's shape for String.
func shapeOf(t tensor.Tensor) string {
	if t == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", []int(t.Shape()))
}
