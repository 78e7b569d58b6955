package gcmsiv

import (
	"crypto/aes"
	"encoding/binary"
)

const (
	// kgkKeySizeSmall and kgkKeySizeLarge are the only two key-generating
	// key sizes RFC 8452 defines (AES-192 has no GCM-SIV mode).
	kgkKeySizeSmall = 16
	kgkKeySizeLarge = 32

	// NonceSize is the fixed nonce length spec §3 requires.
	NonceSize = 12

	// AuthKeySize is the derived authentication key length.
	AuthKeySize = 16
)

// derivedKeys holds the per-nonce state KeyDerivation produces: the
// 16-byte POLYVAL key and the 16- or 32-byte AES key, matching the
// key-generating key's size (spec §4.3).
type derivedKeys struct {
	authKey FieldElement
	encKey  []byte
}

// deriveKeys runs Crypto_KDF from spec §4.3: it encrypts six (four for a
// 128-bit key-generating key) counter||nonce blocks under kgk and keeps
// the low 8 bytes of each AES output.
//
// Counter prefix is 4 bytes, little-endian, matching this package's
// ctr.go counter convention (see ctr.go's doc comment) rather than a
// big-endian block counter — KeyDerivation and CTR both count the way
// RFC 8452 defines, not the way a generic CTR/CCM mode would.
func deriveKeys(kgk, nonce []byte) (derivedKeys, error) {
	if len(kgk) != kgkKeySizeSmall && len(kgk) != kgkKeySizeLarge {
		return derivedKeys{}, ErrInvalidKeySize
	}
	if len(nonce) != NonceSize {
		return derivedKeys{}, ErrInvalidNonceSize
	}

	block, err := aes.NewCipher(kgk)
	if err != nil {
		return derivedKeys{}, err
	}

	numBlocks := 4
	if len(kgk) == kgkKeySizeLarge {
		numBlocks = 6
	}

	halves := make([][8]byte, numBlocks)
	var in, out [16]byte
	copy(in[4:], nonce)
	for i := 0; i < numBlocks; i++ {
		binary.LittleEndian.PutUint32(in[0:4], uint32(i))
		block.Encrypt(out[:], in[:])
		copy(halves[i][:], out[:8])
	}

	var authKey [16]byte
	copy(authKey[0:8], halves[0][:])
	copy(authKey[8:16], halves[1][:])

	encKey := make([]byte, len(kgk))
	copy(encKey[0:8], halves[2][:])
	copy(encKey[8:16], halves[3][:])
	if numBlocks == 6 {
		copy(encKey[16:24], halves[4][:])
		copy(encKey[24:32], halves[5][:])
	}

	return derivedKeys{
		authKey: BytesToField(authKey[:]),
		encKey:  encKey,
	}, nil
}
