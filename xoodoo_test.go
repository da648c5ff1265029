package xoofff

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCyclicShift pins the lane permutation and in-lane rotation against
// hand-computed planes.
func TestCyclicShift(t *testing.T) {
	assert := assert.New(t)

	plane := [4]uint32{1, 2, 3, 4}

	t.Run("identity", func(t *testing.T) {
		assert.Equal([4]uint32{1, 2, 3, 4}, cyclicShift(&plane, 0, 0))
	})

	t.Run("laneShiftOnly", func(t *testing.T) {
		// Lane i moves to lane i+1; no bit rotation.
		assert.Equal([4]uint32{4, 1, 2, 3}, cyclicShift(&plane, 1, 0))
		assert.Equal([4]uint32{3, 4, 1, 2}, cyclicShift(&plane, 2, 0))
		assert.Equal([4]uint32{2, 3, 4, 1}, cyclicShift(&plane, 3, 0))
	})

	t.Run("rotationOnly", func(t *testing.T) {
		assert.Equal([4]uint32{2, 4, 6, 8}, cyclicShift(&plane, 0, 1))
		assert.Equal([4]uint32{32, 64, 96, 128}, cyclicShift(&plane, 0, 5))
	})

	t.Run("rotationWraps", func(t *testing.T) {
		top := [4]uint32{0x80000000, 0xC0000000, 0, 0}
		assert.Equal([4]uint32{1, 0x80000001, 0, 0}, cyclicShift(&top, 0, 1))
	})

	t.Run("combined", func(t *testing.T) {
		assert.Equal([4]uint32{8, 2, 4, 6}, cyclicShift(&plane, 1, 1))
	})
}

// TestChiInvolution checks that the nonlinear layer is its own inverse,
// which only holds when the three column increments are computed from the
// pre-update state.
func TestChiInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 64; trial++ {
		var state [12]uint32
		for i := range state {
			state[i] = rng.Uint32()
		}
		orig := state
		chi(&state)
		chi(&state)
		assert.Equalf(t, orig, state, "trial %d", trial)
	}
}

// TestThetaLinearity verifies theta(a) ^ theta(b) == theta(a ^ b); the
// parity layer is linear over XOR.
func TestThetaLinearity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 64; trial++ {
		var a, b, sum [12]uint32
		for i := range a {
			a[i] = rng.Uint32()
			b[i] = rng.Uint32()
			sum[i] = a[i] ^ b[i]
		}
		theta(&a)
		theta(&b)
		theta(&sum)
		for i := range sum {
			assert.Equalf(t, sum[i], a[i]^b[i], "trial %d lane %d", trial, i)
		}
	}
}

// TestRhoWest pins the plane movements of the western shuffle.
func TestRhoWest(t *testing.T) {
	state := [12]uint32{
		1, 2, 3, 4,
		10, 20, 30, 40,
		1, 1, 1, 1,
	}
	rhoWest(&state)

	// Plane 0 untouched, plane 1 shifted one lane, plane 2 rotated 11 bits.
	assert.Equal(t, [4]uint32{1, 2, 3, 4}, [4]uint32(state[0:4]))
	assert.Equal(t, [4]uint32{40, 10, 20, 30}, [4]uint32(state[4:8]))
	assert.Equal(t, [4]uint32{1 << 11, 1 << 11, 1 << 11, 1 << 11}, [4]uint32(state[8:12]))
}

// TestRhoEast pins the plane movements of the eastern shuffle.
func TestRhoEast(t *testing.T) {
	state := [12]uint32{
		1, 2, 3, 4,
		10, 20, 30, 40,
		1, 2, 3, 4,
	}
	rhoEast(&state)

	assert.Equal(t, [4]uint32{1, 2, 3, 4}, [4]uint32(state[0:4]))
	assert.Equal(t, [4]uint32{20, 40, 60, 80}, [4]uint32(state[4:8]))
	assert.Equal(t, [4]uint32{3 << 8, 4 << 8, 1 << 8, 2 << 8}, [4]uint32(state[8:12]))
}

// TestPermuteRoundSelection verifies that a reduced-round permutation runs
// the tail of the round-constant schedule, never the head.
func TestPermuteRoundSelection(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for _, rounds := range []int{1, 2, 6, 11, 12} {
		var state [12]uint32
		for i := range state {
			state[i] = rng.Uint32()
		}
		want := state
		for ridx := maxRounds - rounds; ridx < maxRounds; ridx++ {
			round(&want, ridx)
		}

		permute(&state, rounds)
		assert.Equalf(t, want, state, "rounds=%d", rounds)
	}

	// A single round with the head constant instead of the tail one must
	// differ from permute(state, 1).
	var state [12]uint32
	for i := range state {
		state[i] = rng.Uint32()
	}
	head := state
	round(&head, 0)
	tail := state
	permute(&tail, 1)
	assert.NotEqual(t, head, tail)
}

// TestPermuteInjectivitySample spot-checks that the full permutation does
// not collide on a random sample, and changes every sampled input.
func TestPermuteInjectivitySample(t *testing.T) {
	assert := assert.New(t)
	rng := rand.New(rand.NewSource(1234))

	seen := make(map[[12]uint32]struct{}, 256)
	for trial := 0; trial < 256; trial++ {
		var state [12]uint32
		for i := range state {
			state[i] = rng.Uint32()
		}
		in := state
		permute(&state, maxRounds)

		assert.NotEqual(in, state, "permutation left input unchanged")
		_, dup := seen[state]
		assert.False(dup, "output collision on random sample")
		seen[state] = struct{}{}
	}
}

// TestPermuteDeterministic pins permutation determinism across calls.
func TestPermuteDeterministic(t *testing.T) {
	a := [12]uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	b := a
	permute(&a, deckRounds)
	permute(&b, deckRounds)
	assert.Equal(t, a, b)
}

// TestPermuteRoundBounds rejects round counts outside [1, 12].
func TestPermuteRoundBounds(t *testing.T) {
	var state [12]uint32
	assert.Panics(t, func() { permute(&state, 0) })
	assert.Panics(t, func() { permute(&state, 13) })
	assert.NotPanics(t, func() { permute(&state, 1) })
	assert.NotPanics(t, func() { permute(&state, 12) })
}

func BenchmarkXoodoo6(b *testing.B) {
	var state [12]uint32
	for i := range state {
		state[i] = uint32(i) * 0x9e3779b9
	}
	b.SetBytes(BlockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		permute(&state, 6)
	}
}

func BenchmarkXoodoo12(b *testing.B) {
	var state [12]uint32
	for i := range state {
		state[i] = uint32(i) * 0x9e3779b9
	}
	b.SetBytes(BlockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		permute(&state, 12)
	}
}
