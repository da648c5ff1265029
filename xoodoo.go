package xoofff

import (
	"fmt"
	"math/bits"
)

// maxRounds is the largest round count the Xoodoo permutation supports.
// permute(state, r) with r < maxRounds runs the *last* r rounds, so the
// round-constant schedule of a reduced-round permutation is a suffix of the
// full one.
const maxRounds = 12

// rc holds the Xoodoo round constants, indexed by absolute round number.
var rc = [maxRounds]uint32{
	0x00000058, 0x00000038, 0x000003c0, 0x000000d0,
	0x00000120, 0x00000014, 0x00000060, 0x0000002c,
	0x00000380, 0x000000f0, 0x000001a0, 0x00000012,
}

// cyclicShift moves the bit at position (x, z) of a 4-lane plane to
// (x+t, z+v): lanes are permuted by t positions and each lane is rotated
// left by v bits. Bit z = 0 is the least significant bit of a lane.
func cyclicShift(plane *[4]uint32, t, v int) [4]uint32 {
	var shifted [4]uint32
	for i := 0; i < 4; i++ {
		shifted[(t+i)&3] = bits.RotateLeft32(plane[i], v)
	}
	return shifted
}

// theta adds the folded column parity of the state onto every plane.
func theta(state *[12]uint32) {
	var p [4]uint32
	for j := 0; j < 4; j++ {
		p[j] = state[j] ^ state[4+j] ^ state[8+j]
	}

	t0 := cyclicShift(&p, 1, 5)
	t1 := cyclicShift(&p, 1, 14)

	var e [4]uint32
	for j := 0; j < 4; j++ {
		e[j] = t0[j] ^ t1[j]
	}

	for i := 0; i < 12; i += 4 {
		state[i+0] ^= e[0]
		state[i+1] ^= e[1]
		state[i+2] ^= e[2]
		state[i+3] ^= e[3]
	}
}

// rhoWest shifts plane 1 by one lane and rotates plane 2 by 11 bits; plane 0
// stays put.
func rhoWest(state *[12]uint32) {
	t0 := cyclicShift((*[4]uint32)(state[4:8]), 1, 0)
	t1 := cyclicShift((*[4]uint32)(state[8:12]), 0, 11)

	copy(state[4:8], t0[:])
	copy(state[8:12], t1[:])
}

// rhoEast rotates plane 1 by one bit and shifts plane 2 by two lanes with an
// 8-bit rotate; plane 0 stays put.
func rhoEast(state *[12]uint32) {
	t0 := cyclicShift((*[4]uint32)(state[4:8]), 0, 1)
	t1 := cyclicShift((*[4]uint32)(state[8:12]), 2, 8)

	copy(state[4:8], t0[:])
	copy(state[8:12], t1[:])
}

// chi is the nonlinear column layer. All three complement-and-mask terms are
// taken from the state before any of them is applied; folding the updates
// into a single pass would read half-updated columns.
func chi(state *[12]uint32) {
	var b0, b1, b2 [4]uint32
	for i := 0; i < 4; i++ {
		b0[i] = ^state[4+i] & state[8+i]
	}
	for i := 0; i < 4; i++ {
		b1[i] = ^state[8+i] & state[i]
	}
	for i := 0; i < 4; i++ {
		b2[i] = ^state[i] & state[4+i]
	}
	for i := 0; i < 4; i++ {
		state[i] ^= b0[i]
		state[4+i] ^= b1[i]
		state[8+i] ^= b2[i]
	}
}

// round applies one Xoodoo round with the constant for absolute round ridx:
// theta, rho_west, iota, chi, rho_east, in that order.
func round(state *[12]uint32, ridx int) {
	theta(state)
	rhoWest(state)
	state[0] ^= rc[ridx] // iota
	chi(state)
	rhoEast(state)
}

// permute runs the Xoodoo[rounds] permutation in place. The rounds executed
// are the last `rounds` of the 12-round schedule.
func permute(state *[12]uint32, rounds int) {
	validateRounds(rounds)
	for ridx := maxRounds - rounds; ridx < maxRounds; ridx++ {
		round(state, ridx)
	}
}

func validateRounds(rounds int) {
	if rounds < 1 || rounds > maxRounds {
		panic(fmt.Sprintf("xoofff: round count %d out of range [1, %d]", rounds, maxRounds))
	}
}
