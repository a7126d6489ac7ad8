// SPDX-License-Identifier: MIT

// Package axes - pair-wise spatial axis permutations.
//
// Purpose:
//   - Build the explicit permutation slice for each layout change and hand it
//     to tensor.Transpose exactly once (single materialization per call).
//   - Keep permutation construction deterministic: fixed loop orders, no maps.
//
// Conventions:
//   - Reference input shapes are laid out (batch, s₁ … sₙ, channels), so the
//     spatial-dimension count of a reference shape is rank-2 (never negative).
//   - Covariance tensors carry their batch axes first and their 2n spatial
//     axes last; only the trailing 2n axes ever move.

package axes

import (
	"fmt"

	"gorgonia.org/tensor"
)

// Spatial returns the number of spatial dimensions described by a reference
// input shape laid out (batch, s₁ … sₙ, channels).
// Shapes of rank ≤ 2 (fully-connected inputs) have no spatial dimensions.
// Complexity: O(1).
func Spatial(ref tensor.Shape) int {
	if n := ref.Dims() - 2; n > 0 {
		return n
	}
	return 0
}

// ReverseZipped reverses the order of the trailing spatial axis-pairs of t.
//
// With n = Spatial(ref), the trailing 2n axes of t are read as n adjacent
// pairs (s₁,s₁) … (sₙ,sₙ); the result carries them as (sₙ,sₙ) … (s₁,s₁).
// Leading (batch) axes and the internal order of each pair are preserved,
// so applying ReverseZipped twice restores the original layout.
//
// A nil tensor or a reference shape with no spatial dimensions is a no-op:
// t is returned unchanged. Returns ErrRank when t has fewer than 2n axes.
// Complexity: O(len(data)) via one tensor.Transpose.
func ReverseZipped(t tensor.Tensor, ref tensor.Shape) (tensor.Tensor, error) {
	if t == nil {
		return nil, nil
	}
	n := Spatial(ref)
	if n == 0 {
		return t, nil
	}
	rank := t.Shape().Dims()
	lead := rank - 2*n
	if lead < 0 {
		return nil, fmt.Errorf("axes: ReverseZipped(rank=%d, spatial=%d): %w", rank, n, ErrRank)
	}

	perm := make([]int, 0, rank)
	for i := 0; i < lead; i++ {
		perm = append(perm, i)
	}
	// Reverse pair order; within-pair order stays (even, odd).
	for p := n - 1; p >= 0; p-- {
		perm = append(perm, lead+2*p, lead+2*p+1)
	}

	out, err := tensor.Transpose(t, perm...)
	if err != nil {
		return nil, fmt.Errorf("axes: ReverseZipped: %w", err)
	}
	return out, nil
}

// Zip interleaves the trailing axes of t, starting at startAxis, from the
// grouped layout (..., s₁ … sₙ, s₁ … sₙ) into adjacent pairs
// (..., s₁,s₁, …, sₙ,sₙ). Inverse of Unzip.
//
// A nil tensor or an empty trailing span is a no-op. Returns ErrBadAxis when
// startAxis lies outside [0, rank] and ErrOddAxes when the trailing span has
// odd length. Complexity: O(len(data)) via one tensor.Transpose.
func Zip(t tensor.Tensor, startAxis int) (tensor.Tensor, error) {
	return permuteTrailing(t, startAxis, "Zip", zipPerm)
}

// Unzip separates the trailing axes of t, starting at startAxis, from the
// paired layout (..., s₁,s₁, …, sₙ,sₙ) back into the grouped layout
// (..., s₁ … sₙ, s₁ … sₙ). Inverse of Zip.
//
// Error contract and complexity are identical to Zip.
func Unzip(t tensor.Tensor, startAxis int) (tensor.Tensor, error) {
	return permuteTrailing(t, startAxis, "Unzip", unzipPerm)
}

// zipPerm appends to perm the trailing-axis permutation taking the grouped
// layout to the paired layout. span is even, n = span/2.
func zipPerm(perm []int, startAxis, n int) []int {
	for i := 0; i < n; i++ {
		perm = append(perm, startAxis+i, startAxis+n+i)
	}
	return perm
}

// unzipPerm appends the inverse permutation of zipPerm: first the even
// (left-copy) positions, then the odd (right-copy) positions.
func unzipPerm(perm []int, startAxis, n int) []int {
	for i := 0; i < n; i++ {
		perm = append(perm, startAxis+2*i)
	}
	for i := 0; i < n; i++ {
		perm = append(perm, startAxis+2*i+1)
	}
	return perm
}

// permuteTrailing validates the trailing span, builds the identity prefix,
// delegates the trailing part to build, and applies the permutation.
func permuteTrailing(t tensor.Tensor, startAxis int, op string, build func([]int, int, int) []int) (tensor.Tensor, error) {
	if t == nil {
		return nil, nil
	}
	rank := t.Shape().Dims()
	if startAxis < 0 || startAxis > rank {
		return nil, fmt.Errorf("axes: %s(start=%d, rank=%d): %w", op, startAxis, rank, ErrBadAxis)
	}
	span := rank - startAxis
	if span%2 != 0 {
		return nil, fmt.Errorf("axes: %s(start=%d, rank=%d): %w", op, startAxis, rank, ErrOddAxes)
	}
	if span == 0 {
		return t, nil
	}

	perm := make([]int, 0, rank)
	for i := 0; i < startAxis; i++ {
		perm = append(perm, i)
	}
	perm = build(perm, startAxis, span/2)

	out, err := tensor.Transpose(t, perm...)
	if err != nil {
		return nil, fmt.Errorf("axes: %s: %w", op, err)
	}
	return out, nil
}
