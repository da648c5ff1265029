package xoofff

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRollXc pins a single input-mask update against a hand-computed state.
// The first lane picks up s0 ^ (s0 << 13) ^ rotl(s4, 3), the plane is lane-
// shifted by three, and the planes slide up.
func TestRollXc(t *testing.T) {
	state := [12]uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	rollXc(&state)

	// s0 = 1 ^ (1<<13) ^ rotl(5, 3) = 1 ^ 8192 ^ 40 = 8233
	want := [12]uint32{5, 6, 7, 8, 9, 10, 11, 12, 2, 3, 4, 8233}
	assert.Equal(t, want, state)
}

// TestRollXcUsesShiftNotRotate feeds a lane whose top bits would wrap under
// a rotation; the 13-bit term must discard them.
func TestRollXcUsesShiftNotRotate(t *testing.T) {
	state := [12]uint32{0x80000000, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	rollXc(&state)

	// 0x80000000 << 13 drops out entirely; a rotate would have produced
	// 0x80001000 here instead.
	assert.Equal(t, uint32(0x80000000), state[11])
}

// TestRollXe pins a single output-mask update against a hand-computed state.
func TestRollXe(t *testing.T) {
	state := [12]uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	rollXe(&state)

	// t = 5 & 9 = 1
	// s0 = 1 ^ rotl(1, 5) ^ rotl(5, 13) ^ 7 = 1 ^ 32 ^ 40960 ^ 7 = 40998
	want := [12]uint32{5, 6, 7, 8, 9, 10, 11, 12, 2, 3, 4, 40998}
	assert.Equal(t, want, state)
}

// TestRollXeNeverFixesZero shows the all-zero state is not a fixed point of
// the output roll (the injected constant guarantees it), while rollXc does
// fix zero.
func TestRollXeNeverFixesZero(t *testing.T) {
	var zc, ze [12]uint32
	rollXc(&zc)
	rollXe(&ze)

	assert.Equal(t, [12]uint32{}, zc)
	assert.NotEqual(t, [12]uint32{}, ze)
	assert.Equal(t, uint32(0x00000007), ze[11])
}

// TestRollingDiverges checks the two rolls differ on random states; the
// input and output mask schedules must not collapse into each other.
func TestRollingDiverges(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 32; trial++ {
		var state [12]uint32
		for i := range state {
			state[i] = rng.Uint32()
		}
		xc := state
		xe := state
		rollXc(&xc)
		rollXe(&xe)
		assert.NotEqualf(t, xc, xe, "trial %d", trial)
	}
}
