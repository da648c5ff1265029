package xoofff

import "math/bits"

// rollXc is the input-mask rolling function applied between compressed
// blocks. The 13-bit term is a plain left shift with zero fill, not a
// rotate.
func rollXc(state *[12]uint32) {
	state[0] ^= (state[0] << 13) ^ bits.RotateLeft32(state[4], 3)
	b := cyclicShift((*[4]uint32)(state[:4]), 3, 0)

	copy(state[:8], state[4:12])
	copy(state[8:12], b[:])
}

// rollXe is the output-mask rolling function applied between expanded
// blocks. Unlike rollXc it is nonlinear (the AND term) and injects a
// constant, so unlike rollXc it does not map the all-zero state to itself.
func rollXe(state *[12]uint32) {
	t := state[4] & state[8]
	state[0] = t ^ bits.RotateLeft32(state[0], 5) ^ bits.RotateLeft32(state[4], 13) ^ 0x00000007
	b := cyclicShift((*[4]uint32)(state[:4]), 3, 0)

	copy(state[:8], state[4:12])
	copy(state[8:12], b[:])
}
