// AES counter mode for the SIV construction. The keystream loop below is
// the familiar generate-block/XOR/advance-counter shape, but the counter
// convention is SIV-specific: RFC 8452 increments only the low 4 bytes of
// the counter block, treated as a little-endian uint32 wrapping modulo
// 2^32, and leaves bytes 4..16 untouched. That is not how NIST
// 800-38A/crypto/cipher.NewCTR count (they treat the whole block as one
// big big-endian counter), so this mode is built directly on the raw
// block cipher rather than reused from a generic CTR implementation,
// exactly as spec §9 calls for.

package gcmsiv

import "crypto/cipher"

// ctrXOR encrypts/decrypts src into dst by XORing it with the AES
// keystream generated from successive counter blocks, starting at
// counterBlock and incrementing only bytes [0:4] (little-endian) between
// blocks. dst and src must have the same length; dst may alias src.
func ctrXOR(block cipher.Block, counterBlock [16]byte, dst, src []byte) {
	cb := counterBlock
	var keystream [16]byte
	for i := 0; i < len(src); i += 16 {
		block.Encrypt(keystream[:], cb[:])

		end := i + 16
		if end > len(src) {
			end = len(src)
		}
		for j := i; j < end; j++ {
			dst[j] = src[j] ^ keystream[j-i]
		}

		incrementCounterLE32(&cb)
	}
}

// incrementCounterLE32 adds 1 modulo 2^32 to the little-endian 32-bit
// integer held in cb[0:4], leaving cb[4:16] untouched. The uint32 addition
// wraps naturally on overflow, matching spec §4.4's wrap-at-2^32
// invariant.
func incrementCounterLE32(cb *[16]byte) {
	v := uint32(cb[0]) | uint32(cb[1])<<8 | uint32(cb[2])<<16 | uint32(cb[3])<<24
	v++
	cb[0] = byte(v)
	cb[1] = byte(v >> 8)
	cb[2] = byte(v >> 16)
	cb[3] = byte(v >> 24)
}
