// Package xoofff implements the Xoofff deck function: the Farfalle
// construction instantiated with the 384-bit Xoodoo[6] permutation and its
// two rolling functions.
//
// A deck function is a keyed primitive mapping an arbitrary-length input
// sequence to an arbitrary-length pseudorandom output. Input is absorbed in
// 48-byte blocks that are masked, permuted and XOR-accumulated; output is
// squeezed from an evolving output mask, one permuted 48-byte block at a
// time. Both directions are incremental: Absorb and Squeeze may be called
// any number of times with any chunking, and Restart begins a new
// absorb->finalize->squeeze cycle under the same key so that a sequence of
// messages can be chained cheaply through one instance. A Deck holds all of
// its state inline (no heap allocations inside the engine), so Clone is a
// plain value copy and distinct instances can be used on different
// goroutines without coordination. A single Deck is a single-owner mutable
// value and must not be shared across concurrent mutators.
//
// References:
//   - https://ia.cr/2016/1188 (Farfalle)
//   - https://ia.cr/2018/767 (Xoodoo and Xoofff)
package xoofff

import "fmt"

// Block configuration constants. Xoodoo is a 384-bit permutation, so the
// deck consumes and produces data in 48-byte blocks of 12 little-endian
// 32-bit lanes, and always runs the 6-round variant.
const (
	BlockSize = 48

	laneCount  = BlockSize / 4
	deckRounds = 6
)

// Deck is an incremental Xoofff instance. The zero value is not usable;
// create instances with New.
type Deck struct {
	imask [laneCount]uint32 // input mask (rolled once per compressed block)
	omask [laneCount]uint32 // output mask (rolled once per expanded block)
	acc   [laneCount]uint32 // XOR accumulator of compressed blocks

	iblk [BlockSize]byte // partial input block
	oblk [BlockSize]byte // current output block
	ioff int             // bytes buffered in iblk, always < BlockSize
	ooff int             // read offset into oblk, <= BlockSize

	finalized bool
}

// New derives a Deck from a key of fewer than 48 bytes. The key is padded
// with pad10*, loaded little-endian and permuted under Xoodoo[6] to form the
// initial input mask.
func New(key []byte) Deck {
	if len(key) >= BlockSize {
		panic(fmt.Sprintf("xoofff: key length %d exceeds maximum %d", len(key), BlockSize-1))
	}

	padded := pad10x(key)
	masked := bytesToLEWords(&padded)
	permute(&masked, deckRounds)

	return Deck{imask: masked}
}

// Clone returns an independent copy of the deck. The copy and the original
// evolve separately from the moment of the call.
func (d *Deck) Clone() Deck {
	return *d
}

// Absorb consumes message bytes into the deck state. It may be called any
// number of times before Finalize; the cumulative effect depends only on the
// concatenation of the absorbed bytes, never on the chunking. Absorbing an
// empty slice has no effect. On a finalized deck, Absorb does nothing.
func (d *Deck) Absorb(msg []byte) {
	if d.finalized {
		return
	}

	// Top up a partially filled buffer first.
	if d.ioff > 0 {
		n := copy(d.iblk[d.ioff:], msg)
		d.ioff += n
		msg = msg[n:]
		if d.ioff < BlockSize {
			return
		}
		d.compressBlock(&d.iblk)
		d.ioff = 0
	}

	// Bulk path: groups of full blocks straight from the caller's slice.
	msg = msg[absorbBulk(d, msg):]

	for len(msg) >= BlockSize {
		d.compressBlock((*[BlockSize]byte)(msg))
		msg = msg[BlockSize:]
	}

	d.ioff = copy(d.iblk[:], msg)
}

// compressBlock folds one full input block into the accumulator and rolls
// the input mask.
func (d *Deck) compressBlock(blk *[BlockSize]byte) {
	w := bytesToLEWords(blk)
	for i := range w {
		w[i] ^= d.imask[i]
	}
	permute(&w, deckRounds)
	for i := range w {
		d.acc[i] ^= w[i]
	}
	rollXc(&d.imask)
}

// Finalize ends the absorption phase and prepares the deck for squeezing.
//
// The domain separator contributes its low domainBits bits (0 <= domainBits
// <= 7), merged into the pad10* terminator byte so that different protocol
// contexts under one key produce unrelated streams. offset (0 <= offset <=
// 48, in bytes) skips the first offset bytes of the output stream.
//
// Finalize rolls the input mask twice in total: once for the final padded
// block and once more as the end-of-absorption marker. The resulting mask is
// the one XORed onto every expanded block and stays fixed until Restart.
// Calling Finalize on an already finalized deck does nothing.
func (d *Deck) Finalize(domain byte, domainBits, offset int) {
	if domainBits < 0 || domainBits > 7 {
		panic(fmt.Sprintf("xoofff: domain separator width %d out of range [0, 7]", domainBits))
	}
	if offset < 0 || offset > BlockSize {
		panic(fmt.Sprintf("xoofff: squeeze offset %d out of range [0, %d]", offset, BlockSize))
	}
	if d.finalized {
		return
	}

	padByte := byte(1)<<domainBits | domain&(byte(1)<<domainBits-1)

	for i := d.ioff; i < BlockSize; i++ {
		d.iblk[i] = 0
	}
	d.iblk[d.ioff] = padByte

	d.compressBlock(&d.iblk)
	rollXc(&d.imask)

	d.iblk = [BlockSize]byte{}
	d.ioff = 0
	d.finalized = true

	d.omask = d.acc
	permute(&d.omask, deckRounds)

	d.fillOutputBlock()
	d.ooff = offset
}

// fillOutputBlock expands the current output mask into oblk and advances the
// mask.
func (d *Deck) fillOutputBlock() {
	w := d.omask
	permute(&w, deckRounds)
	for i := range w {
		w[i] ^= d.imask[i]
	}
	wordsToLEBytes(&w, &d.oblk)
	rollXe(&d.omask)
}

// Squeeze fills out with the next len(out) bytes of the output stream. It
// may be called any number of times after Finalize; the stream read is
// independent of how the reads are chunked. On a deck that is not finalized,
// Squeeze leaves out untouched.
func (d *Deck) Squeeze(out []byte) {
	if !d.finalized {
		return
	}

	for len(out) > 0 {
		if d.ooff == BlockSize {
			// Bulk path: groups of full blocks straight into the caller's slice.
			if n := squeezeBulk(d, out); n > 0 {
				out = out[n:]
				continue
			}
			d.fillOutputBlock()
			d.ooff = 0
		}
		n := copy(out, d.oblk[d.ooff:])
		d.ooff += n
		out = out[n:]
	}
}

// Restart returns a finalized deck to the absorbing phase. The input mask
// and the accumulator are retained, so the next absorb->finalize->squeeze
// cycle is chained onto everything absorbed so far; this is how a sequence
// of messages is processed under one key. On a deck that is not finalized,
// Restart does nothing.
func (d *Deck) Restart() {
	if !d.finalized {
		return
	}

	d.omask = [laneCount]uint32{}
	d.oblk = [BlockSize]byte{}
	d.ooff = 0
	d.finalized = false
}
