// SPDX-License-Identifier: MIT

// Package kernel defines the immutable record carried between the layers of
// an infinite-width kernel computation: the NNGP and NTK covariance tensors
// of a pair of input batches, together with the bookkeeping that describes
// their axis layout.
//
// What:
//
//   - Marginalisation — an ordered five-valued classification of how much
//     cross-spatial-position covariance a record tracks. Ordering is set
//     inclusion: a higher value carries a strict superset of the information
//     of any lower value, so `<` and `==` compare information content.
//   - Kernel — a fourteen-field value type holding the self-covariances
//     (Var1, Var2), the cross-covariances (NNGP, NTK), the layouts of both
//     groups (Marginal, Cross), the pre-marginalisation input shapes
//     (Shape1, Shape2), optional input masks, and the semantic flags
//     (IsGaussian, IsReversed, X1IsX2, IsInput).
//
// Why:
//
//   - Each layer transform consumes the previous layer's Kernel and emits a
//     fresh one; nothing is ever mutated in place, so records can be shared
//     across goroutines without synchronization.
//   - Convolutions flip the order of kernel spatial dimensions; Reverse
//     performs that flip once and records it in IsReversed, letting long
//     layer chains cancel self-inverse transpositions.
//
// Construction & replacement:
//
//   - New takes all fourteen fields positionally and stores Marginal/Cross
//     as plain ordinals, never as the enum type, so comparisons and external
//     encodings are representation-independent.
//   - With copies the receiver and applies field overrides
//     (kernel.Var1(...), kernel.Marginal(...), ...); the same ordinal
//     coercion applies. The receiver is never modified.
//   - Nothing is validated beyond the coercion: producers are trusted to
//     supply internally-consistent shapes, and malformed inputs surface in
//     the axes helpers or downstream numerics.
//
// Complexity:
//
//   - New, With: O(fields) — tensors are referenced, not copied.
//   - Reverse: O(len(data)) over the four covariance tensors.
//
// Errors:
//
//   - ErrUnknownMarginalisation: FromOrdinal on an ordinal outside [0,4].
//   - Reverse propagates the axes package sentinels unchanged (errors.Is).
//
// See package axes for the underlying pair-wise axis permutations.
package kernel
