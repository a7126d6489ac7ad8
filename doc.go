// Package neuraltangents carries the covariance records of infinite-width
// neural-network kernel computations — the NNGP and NTK tensors that flow
// layer to layer through an analytic kernel pipeline.
//
// 🧮 What lives here?
//
//	A small, immutable value layer:
//		• kernel/ — the Kernel record (Var1/Var2 self-covariances, NNGP/NTK
//		  cross-covariances, layouts, shapes, masks, semantic flags) and the
//		  ordered Marginalisation classification of its axis layouts
//		• axes/   — the spatial axis-pair permutations behind it: Zip, Unzip
//		  and ReverseZipped over paired (s,s) covariance axes
//
// ✨ Design:
//
//   - Records are values — every "mutation" returns a fresh Kernel, so any
//     number of goroutines can share one without locks
//   - Layouts are plain ordinals — Marginal/Cross are stored as ints, never
//     as the enum type, keeping comparisons and encodings representation-free
//   - Trusting constructors — shape consistency is the producer's job;
//     faults surface in the axis helpers, matched via errors.Is sentinels
//
// The layer transforms that *compute* these kernels (dense, convolutional,
// nonlinearity, pooling, ...) consume and produce this record but live
// outside this module.
package neuraltangents
