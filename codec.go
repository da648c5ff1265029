package xoofff

import "encoding/binary"

var bo = binary.LittleEndian

// bytesToLEWords loads a 48-byte block into the 12-lane state layout,
// little-endian within each 32-bit lane.
func bytesToLEWords(blk *[BlockSize]byte) [laneCount]uint32 {
	var w [laneCount]uint32
	for i := range w {
		w[i] = bo.Uint32(blk[i*4:])
	}
	return w
}

// wordsToLEBytes is the inverse of bytesToLEWords.
func wordsToLEBytes(w *[laneCount]uint32, blk *[BlockSize]byte) {
	for i, v := range w {
		bo.PutUint32(blk[i*4:], v)
	}
}

// pad10x pads a message of fewer than 48 bytes to a full block: the message
// bytes, a 0x01 terminator, then zeros.
func pad10x(msg []byte) [BlockSize]byte {
	var blk [BlockSize]byte
	copy(blk[:], msg)
	blk[len(msg)] = 0x01
	return blk
}
