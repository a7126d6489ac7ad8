// SPDX-License-Identifier: MIT

// Package axes provides the spatial-axis bookkeeping used by covariance
// tensors of convolutional networks.
//
// What:
//
//   - For an input batch laid out (batch, s₁ … sₙ, channels), each spatial
//     dimension sᵢ contributes a *pair* of axes to a covariance tensor
//     (one per input copy). Package axes moves between the two canonical
//     layouts of those pairs and reverses their order:
//   - Zip:           (..., s₁ … sₙ, s₁ … sₙ)  →  (..., s₁,s₁, …, sₙ,sₙ)
//   - Unzip:         (..., s₁,s₁, …, sₙ,sₙ)  →  (..., s₁ … sₙ, s₁ … sₙ)
//   - ReverseZipped: (..., s₁,s₁, …, sₙ,sₙ)  →  (..., sₙ,sₙ, …, s₁,s₁)
//
// Why:
//
//   - Sequences of convolution/flip layers reverse the order of kernel
//     spatial dimensions; ReverseZipped performs that reversal once, so a
//     pipeline can defer and cancel self-inverse transpositions.
//   - Zip/Unzip translate between the "grouped" layout produced by outer
//     products and the "interleaved" layout consumed per-pair downstream.
//
// Complexity:
//
//   - Every operation is a single axis permutation delegated to
//     tensor.Transpose: O(len(data)) time, O(len(data)) memory for the
//     materialized result; the permutation itself is O(rank).
//
// Errors:
//
//   - ErrRank:    tensor has fewer axes than the reference shape implies.
//   - ErrOddAxes: trailing axis span cannot be split into pairs.
//   - ErrBadAxis: start axis outside [0, rank].
//
// All operations are nil-transparent: a nil tensor maps to nil with no
// error, so optional covariance slots flow through without branching at
// every call site.
package axes
