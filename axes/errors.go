// SPDX-License-Identifier: MIT

// Package axes: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// call-site context via %w); tests and callers match them with errors.Is.
// No operation panics on user input.

package axes

import "errors"

var (
	// ErrRank is returned when a tensor does not have enough axes to host
	// the spatial pairs implied by the reference shape.
	ErrRank = errors.New("axes: tensor rank too small for spatial pairs")

	// ErrOddAxes is returned by Zip/Unzip when the trailing axis span past
	// the start axis has odd length and therefore cannot form pairs.
	ErrOddAxes = errors.New("axes: odd number of trailing axes")

	// ErrBadAxis is returned when a start axis lies outside [0, rank].
	ErrBadAxis = errors.New("axes: start axis out of range")
)
