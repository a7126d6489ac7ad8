package axes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"

	"github.com/icml2020-attention/neural-tangents/axes"
)

// rangeTensor builds a dense float64 tensor of the given shape whose backing
// holds 0,1,2,... so every cell value encodes its own row-major position.
func rangeTensor(t *testing.T, shape ...int) *tensor.Dense {
	t.Helper()
	size := 1
	for _, d := range shape {
		size *= d
	}
	return tensor.New(
		tensor.WithShape(shape...),
		tensor.WithBacking(tensor.Range(tensor.Float64, 0, size)),
	)
}

// at reads one cell as float64 and fails the test on any access error.
func at(t *testing.T, d tensor.Tensor, coords ...int) float64 {
	t.Helper()
	v, err := d.(*tensor.Dense).At(coords...)
	require.NoError(t, err, "At(%v) must not error", coords)
	return v.(float64)
}

// TestSpatial_Counts verifies the (batch, s₁…sₙ, channels) convention:
// rank ≤ 2 has no spatial dims, every extra axis adds one.
func TestSpatial_Counts(t *testing.T) {
	assert.Equal(t, 0, axes.Spatial(tensor.Shape{}), "empty shape has no spatial dims")
	assert.Equal(t, 0, axes.Spatial(tensor.Shape{5}), "rank-1 shape has no spatial dims")
	assert.Equal(t, 0, axes.Spatial(tensor.Shape{5, 3}), "fully-connected shape has no spatial dims")
	assert.Equal(t, 1, axes.Spatial(tensor.Shape{5, 8, 3}), "one spatial axis")
	assert.Equal(t, 2, axes.Spatial(tensor.Shape{5, 32, 32, 3}), "NHWC shape has two spatial axes")
	assert.Equal(t, 3, axes.Spatial(tensor.Shape{5, 4, 8, 16, 3}), "NDHWC shape has three spatial axes")
}

// TestReverseZipped_NilAndNoSpatial checks the two no-op regimes:
// nil tensors map to nil, spatial-free reference shapes leave t untouched.
func TestReverseZipped_NilAndNoSpatial(t *testing.T) {
	out, err := axes.ReverseZipped(nil, tensor.Shape{5, 32, 32, 3})
	assert.NoError(t, err, "nil tensor must not error")
	assert.Nil(t, out, "nil tensor maps to nil")

	in := rangeTensor(t, 3, 3)
	out, err = axes.ReverseZipped(in, tensor.Shape{3, 7})
	assert.NoError(t, err, "no spatial dims must not error")
	assert.Same(t, in, out.(*tensor.Dense), "no spatial dims returns the input unchanged")
}

// TestReverseZipped_TwoPairs checks the worked (H,H),(W,W) → (W,W),(H,H)
// permutation cell by cell on a rank-4 covariance tensor with no batch axes.
func TestReverseZipped_TwoPairs(t *testing.T) {
	in := rangeTensor(t, 2, 2, 2, 2) // (H, H', W, W')
	ref := tensor.Shape{1, 4, 4, 1}  // two spatial dims

	out, err := axes.ReverseZipped(in, ref)
	require.NoError(t, err, "well-formed reversal must not error")
	assert.Equal(t, tensor.Shape{2, 2, 2, 2}, out.Shape(), "square pairs keep the shape")

	for h := 0; h < 2; h++ {
		for h2 := 0; h2 < 2; h2++ {
			for w := 0; w < 2; w++ {
				for w2 := 0; w2 < 2; w2++ {
					want := float64(h*8 + h2*4 + w*2 + w2)
					assert.Equal(t, want, at(t, out, w, w2, h, h2),
						"out[w,w',h,h'] must equal in[h,h',w,w'] at (%d,%d,%d,%d)", h, h2, w, w2)
				}
			}
		}
	}
}

// TestReverseZipped_PreservesBatchAxes uses rectangular pairs behind two
// batch axes so both the leading-axis passthrough and the pair reordering
// are visible in the output shape.
func TestReverseZipped_PreservesBatchAxes(t *testing.T) {
	in := rangeTensor(t, 2, 3, 4, 4, 5, 5) // (N1, N2, H, H', W, W')
	ref := tensor.Shape{2, 9, 9, 1}

	out, err := axes.ReverseZipped(in, ref)
	require.NoError(t, err, "reversal with batch axes must not error")
	assert.Equal(t, tensor.Shape{2, 3, 5, 5, 4, 4}, out.Shape(),
		"batch axes stay first, pair order flips")
	assert.Equal(t, at(t, in, 1, 2, 3, 1, 4, 2), at(t, out, 1, 2, 4, 2, 3, 1),
		"cell values follow the pair permutation")
}

// TestReverseZipped_Involution verifies that two reversals restore both the
// shape and the data of the original tensor.
func TestReverseZipped_Involution(t *testing.T) {
	in := rangeTensor(t, 2, 3, 3, 5, 5)
	ref := tensor.Shape{2, 9, 9, 1}

	once, err := axes.ReverseZipped(in, ref)
	require.NoError(t, err)
	twice, err := axes.ReverseZipped(once, ref)
	require.NoError(t, err)

	assert.True(t, in.Shape().Eq(twice.Shape()), "double reversal restores the shape")
	assert.Equal(t, in.Data(), twice.Data(), "double reversal restores the data")
}

// TestReverseZipped_RankTooSmall ensures ErrRank surfaces when the tensor
// cannot host the spatial pairs implied by the reference shape.
func TestReverseZipped_RankTooSmall(t *testing.T) {
	in := rangeTensor(t, 3, 3) // rank 2, needs rank ≥ 4 for two pairs
	_, err := axes.ReverseZipped(in, tensor.Shape{1, 8, 8, 1})
	assert.ErrorIs(t, err, axes.ErrRank, "undersized tensor must report ErrRank")
}

// TestZip_Interleaves checks the grouped→paired permutation cell by cell:
// zipped[s₁,s₁',s₂,s₂'] == grouped[s₁,s₂,s₁',s₂'].
func TestZip_Interleaves(t *testing.T) {
	in := rangeTensor(t, 2, 2, 2, 2) // (s1, s2, s1', s2')

	out, err := axes.Zip(in, 0)
	require.NoError(t, err, "zip of an even span must not error")

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for c := 0; c < 2; c++ {
				for d := 0; d < 2; d++ {
					assert.Equal(t, at(t, in, a, c, b, d), at(t, out, a, b, c, d),
						"zipped[%d,%d,%d,%d] must come from grouped[s1,s2,s1',s2']", a, b, c, d)
				}
			}
		}
	}
}

// TestZipUnzip_RoundTrip verifies Unzip is the exact inverse of Zip,
// leading batch axes untouched.
func TestZipUnzip_RoundTrip(t *testing.T) {
	in := rangeTensor(t, 3, 2, 4, 2, 4) // (N, s1, s2, s1', s2')

	zipped, err := axes.Zip(in, 1)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2, 2, 4, 4}, zipped.Shape(), "zip pairs adjacent copies")

	back, err := axes.Unzip(zipped, 1)
	require.NoError(t, err)
	assert.True(t, in.Shape().Eq(back.Shape()), "round trip restores the shape")
	assert.Equal(t, in.Data(), back.Data(), "round trip restores the data")
}

// TestZip_EmptySpanAndNil covers the no-op regimes shared by Zip and Unzip.
func TestZip_EmptySpanAndNil(t *testing.T) {
	out, err := axes.Zip(nil, 0)
	assert.NoError(t, err)
	assert.Nil(t, out, "nil tensor maps to nil")

	in := rangeTensor(t, 4, 5)
	out, err = axes.Zip(in, 2) // startAxis == rank: empty span
	assert.NoError(t, err)
	assert.Same(t, in, out.(*tensor.Dense), "empty trailing span returns the input unchanged")
}

// TestZipUnzip_Errors pins the sentinel contract: ErrBadAxis for an out of
// range start axis, ErrOddAxes for an unpairable trailing span.
func TestZipUnzip_Errors(t *testing.T) {
	in := rangeTensor(t, 2, 3, 4)

	_, err := axes.Zip(in, -1)
	assert.ErrorIs(t, err, axes.ErrBadAxis, "negative start axis")
	_, err = axes.Unzip(in, 4)
	assert.ErrorIs(t, err, axes.ErrBadAxis, "start axis past rank")

	_, err = axes.Zip(in, 0)
	assert.ErrorIs(t, err, axes.ErrOddAxes, "odd span cannot be paired")
	_, err = axes.Unzip(in, 2)
	assert.ErrorIs(t, err, axes.ErrOddAxes, "odd span cannot be unpaired")
}
