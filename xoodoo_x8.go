package xoofff

// Eight-lane variant of xoodoo_x4.go.
type u32x8 [8]uint32

func splat8(x uint32) u32x8 {
	var v u32x8
	for i := range v {
		v[i] = x
	}
	return v
}

func (v u32x8) xor(o u32x8) u32x8 {
	for i := range v {
		v[i] ^= o[i]
	}
	return v
}

func (v u32x8) andNot(o u32x8) u32x8 {
	for i := range v {
		v[i] &^= o[i]
	}
	return v
}

func (v u32x8) rotl(n int) u32x8 {
	for i := range v {
		v[i] = v[i]<<n | v[i]>>(32-n)
	}
	return v
}

func cyclicShiftX8(plane *[4]u32x8, t, v int) [4]u32x8 {
	var shifted [4]u32x8
	for i := 0; i < 4; i++ {
		shifted[(t+i)&3] = plane[i].rotl(v)
	}
	return shifted
}

func thetaX8(state *[12]u32x8) {
	var p [4]u32x8
	for j := 0; j < 4; j++ {
		p[j] = state[j].xor(state[4+j]).xor(state[8+j])
	}

	t0 := cyclicShiftX8(&p, 1, 5)
	t1 := cyclicShiftX8(&p, 1, 14)

	var e [4]u32x8
	for j := 0; j < 4; j++ {
		e[j] = t0[j].xor(t1[j])
	}

	for i := 0; i < 12; i += 4 {
		state[i+0] = state[i+0].xor(e[0])
		state[i+1] = state[i+1].xor(e[1])
		state[i+2] = state[i+2].xor(e[2])
		state[i+3] = state[i+3].xor(e[3])
	}
}

func rhoWestX8(state *[12]u32x8) {
	t0 := cyclicShiftX8((*[4]u32x8)(state[4:8]), 1, 0)
	t1 := cyclicShiftX8((*[4]u32x8)(state[8:12]), 0, 11)

	copy(state[4:8], t0[:])
	copy(state[8:12], t1[:])
}

func rhoEastX8(state *[12]u32x8) {
	t0 := cyclicShiftX8((*[4]u32x8)(state[4:8]), 0, 1)
	t1 := cyclicShiftX8((*[4]u32x8)(state[8:12]), 2, 8)

	copy(state[4:8], t0[:])
	copy(state[8:12], t1[:])
}

func chiX8(state *[12]u32x8) {
	var b0, b1, b2 [4]u32x8
	for i := 0; i < 4; i++ {
		b0[i] = state[8+i].andNot(state[4+i])
	}
	for i := 0; i < 4; i++ {
		b1[i] = state[i].andNot(state[8+i])
	}
	for i := 0; i < 4; i++ {
		b2[i] = state[4+i].andNot(state[i])
	}
	for i := 0; i < 4; i++ {
		state[i] = state[i].xor(b0[i])
		state[4+i] = state[4+i].xor(b1[i])
		state[8+i] = state[8+i].xor(b2[i])
	}
}

func roundX8(state *[12]u32x8, ridx int) {
	thetaX8(state)
	rhoWestX8(state)
	state[0] = state[0].xor(splat8(rc[ridx])) // iota
	chiX8(state)
	rhoEastX8(state)
}

func permuteX8(state *[12]u32x8, rounds int) {
	validateRounds(rounds)
	for ridx := maxRounds - rounds; ridx < maxRounds; ridx++ {
		roundX8(state, ridx)
	}
}

func absorbBlocksX8(d *Deck, msg []byte) int {
	const group = 8 * BlockSize

	consumed := 0
	for len(msg)-consumed >= group {
		var masks, st [laneCount]u32x8
		for j := 0; j < 8; j++ {
			for i := 0; i < laneCount; i++ {
				masks[i][j] = d.imask[i]
			}
			rollXc(&d.imask)
		}
		for j := 0; j < 8; j++ {
			w := bytesToLEWords((*[BlockSize]byte)(msg[consumed+j*BlockSize:]))
			for i := 0; i < laneCount; i++ {
				st[i][j] = w[i]
			}
		}

		for i := range st {
			st[i] = st[i].xor(masks[i])
		}
		permuteX8(&st, deckRounds)

		for i := 0; i < laneCount; i++ {
			var x uint32
			for j := 0; j < 8; j++ {
				x ^= st[i][j]
			}
			d.acc[i] ^= x
		}
		consumed += group
	}
	return consumed
}

func squeezeBlocksX8(d *Deck, out []byte) int {
	const group = 8 * BlockSize

	written := 0
	for len(out)-written >= group {
		var st [laneCount]u32x8
		for j := 0; j < 8; j++ {
			for i := 0; i < laneCount; i++ {
				st[i][j] = d.omask[i]
			}
			rollXe(&d.omask)
		}

		permuteX8(&st, deckRounds)

		for j := 0; j < 8; j++ {
			var w [laneCount]uint32
			for i := 0; i < laneCount; i++ {
				w[i] = st[i][j] ^ d.imask[i]
			}
			wordsToLEBytes(&w, (*[BlockSize]byte)(out[written+j*BlockSize:]))
		}
		written += group
	}
	return written
}
