package gcmsiv

import "encoding/binary"

const blockSize = 16

// BytesToField decodes a 16-byte block into a FieldElement. The mapping is
// little-endian: block[0] carries bits 0..7 of the integer representation
// (spec §3 / §4.1).
func BytesToField(block []byte) FieldElement {
	var b [blockSize]byte
	copy(b[:], block)
	return FieldElement{
		lo: binary.LittleEndian.Uint64(b[0:8]),
		hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

// Bytes encodes f as a 16-byte little-endian block.
func (f FieldElement) Bytes() [blockSize]byte {
	var b [blockSize]byte
	binary.LittleEndian.PutUint64(b[0:8], f.lo)
	binary.LittleEndian.PutUint64(b[8:16], f.hi)
	return b
}

// splitBlocksPadded splits data into 16-byte field elements, right-padding
// the final fragment with zero bytes up to a full block. An empty input
// yields no blocks. The padding is computational only: the padded bytes
// are never part of any output (spec §4.5, §9).
func splitBlocksPadded(data []byte) []FieldElement {
	n := (len(data) + blockSize - 1) / blockSize
	blocks := make([]FieldElement, n)
	for i := 0; i < n; i++ {
		start := i * blockSize
		end := start + blockSize
		if end > len(data) {
			var padded [blockSize]byte
			copy(padded[:], data[start:])
			blocks[i] = BytesToField(padded[:])
		} else {
			blocks[i] = BytesToField(data[start:end])
		}
	}
	return blocks
}

// lengthBlock encodes the 16-byte length block that terminates every
// POLYVAL input: LE64(bitlen(aad)) || LE64(bitlen(plaintext)) (spec §4.5).
func lengthBlock(aadLen, ptLen int) [blockSize]byte {
	var b [blockSize]byte
	binary.LittleEndian.PutUint64(b[0:8], uint64(aadLen)*8)
	binary.LittleEndian.PutUint64(b[8:16], uint64(ptLen)*8)
	return b
}
