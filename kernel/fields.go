// SPDX-License-Identifier: MIT

// Package kernel - field overrides for record replacement.
//
// Purpose:
//   - Give every layer transform a way to emit "the previous record with
//     these fields changed" without touching the original: With copies the
//     receiver by value and applies overrides to the copy only.
//   - Funnel Marginal/Cross overrides through the same ordinal coercion as
//     construction, so a stored layout is always a plain int.

package kernel

import "gorgonia.org/tensor"

// Field is a single override applied by Kernel.With to a private copy of
// the record. Fields compose left to right; later overrides win.
type Field func(*Kernel)

// With returns a copy of k with the given overrides applied. Fields not
// named by any override are copied verbatim; the receiver is unmodified.
// Complexity: O(len(fields)).
func (k Kernel) With(fields ...Field) Kernel {
	for _, set := range fields {
		set(&k) // k is already a private copy (value receiver)
	}
	return k
}

// Var1 overrides the self-covariance of the first batch.
func Var1(t tensor.Tensor) Field { return func(k *Kernel) { k.Var1 = t } }

// NNGP overrides the cross-covariance (NNGP kernel).
func NNGP(t tensor.Tensor) Field { return func(k *Kernel) { k.NNGP = t } }

// Var2 overrides the self-covariance of the second batch.
func Var2(t tensor.Tensor) Field { return func(k *Kernel) { k.Var2 = t } }

// NTK overrides the neural tangent kernel.
func NTK(t tensor.Tensor) Field { return func(k *Kernel) { k.NTK = t } }

// IsGaussian overrides the conditional-Gaussianity flag.
func IsGaussian(v bool) Field { return func(k *Kernel) { k.IsGaussian = v } }

// IsReversed overrides the spatial-reversal flag.
func IsReversed(v bool) Field { return func(k *Kernel) { k.IsReversed = v } }

// Marginal overrides the Var1/Var2 layout; the enum is stored as its
// plain ordinal, exactly as in New.
func Marginal(m Marginalisation) Field { return func(k *Kernel) { k.Marginal = int(m) } }

// Cross overrides the NNGP/NTK layout; same ordinal coercion as Marginal.
func Cross(m Marginalisation) Field { return func(k *Kernel) { k.Cross = int(m) } }

// Shape1 overrides the pre-marginalisation shape of the first batch.
func Shape1(s tensor.Shape) Field { return func(k *Kernel) { k.Shape1 = s } }

// Shape2 overrides the pre-marginalisation shape of the second batch.
func Shape2(s tensor.Shape) Field { return func(k *Kernel) { k.Shape2 = s } }

// X1IsX2 overrides the identical-batches flag.
func X1IsX2(v bool) Field { return func(k *Kernel) { k.X1IsX2 = v } }

// IsInput overrides the input-layer flag.
func IsInput(v bool) Field { return func(k *Kernel) { k.IsInput = v } }

// Mask1 overrides the first batch's mask; nil clears it.
func Mask1(t tensor.Tensor) Field { return func(k *Kernel) { k.Mask1 = t } }

// Mask2 overrides the second batch's mask; nil clears it.
func Mask2(t tensor.Tensor) Field { return func(k *Kernel) { k.Mask2 = t } }
