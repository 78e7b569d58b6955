package gcmsiv

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
)

const (
	// maxInputLen is the largest plaintext or associated-data length this
	// package accepts, per spec §3/§6.
	maxInputLen = 1 << 36

	// maxCiphertextLen is the largest ciphertext-with-tag length Decrypt
	// accepts.
	maxCiphertextLen = maxInputLen + TagSize

	// TagSize is the AEAD tag length, always 16 bytes.
	TagSize = 16
)

// validInputLen reports whether n is an acceptable plaintext or
// associated-data length, without requiring a buffer of that length to
// actually exist — the bound is on n alone, so callers can probe it at
// maxInputLen+1 without allocating a buffer that size.
func validInputLen(n int) bool {
	return n <= maxInputLen
}

// AEADContext is the per-(key, nonce) derived state from spec §3/§4.5:
// auth_key and enc_key, produced once by KeyDerivation and immutable
// thereafter. A Context is safe for concurrent use by multiple readers —
// Encrypt/Decrypt never mutate it (spec §5).
type AEADContext struct {
	authKey FieldElement
	encKey  []byte
	block   cipher.Block
	nonce   [NonceSize]byte
}

// NewContext derives an AEADContext from a key-generating key and a
// nonce. key must be 16 or 32 bytes; nonce must be exactly 12 bytes. The
// AES key schedule is built once here and reused by every subsequent
// Encrypt/Decrypt call, rather than rebuilt per call as the Python
// reference does (spec §9).
func NewContext(key, nonce []byte) (*AEADContext, error) {
	dk, err := deriveKeys(key, nonce)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(dk.encKey)
	if err != nil {
		return nil, err
	}

	ctx := &AEADContext{
		authKey: dk.authKey,
		encKey:  dk.encKey,
		block:   block,
	}
	copy(ctx.nonce[:], nonce)
	return ctx, nil
}

// Zero wipes the context's derived key material — encKey, authKey, and the
// stored nonce. It does not wipe the AES round-key schedule inside c.block:
// crypto/cipher.Block exposes no way to erase it, so a small amount of
// key-equivalent state outlives Zero until the context is garbage collected.
// Call Zero once the context is no longer needed (spec §5, §9).
func (c *AEADContext) Zero() {
	zero(c.encKey)
	c.authKey = FieldElement{}
	for i := range c.nonce {
		c.nonce[i] = 0
	}
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Encrypt implements spec §4.5 Encrypt: it derives the synthetic tag from
// POLYVAL over associated data, plaintext, and the length block, masks it
// with the nonce, runs it through AES to get the tag, and uses the tag as
// the seed for CTR-mode encryption of the plaintext.
//
// Returns ciphertext || tag (len(plaintext)+16 bytes).
func (c *AEADContext) Encrypt(plaintext, aad []byte) ([]byte, error) {
	if !validInputLen(len(plaintext)) || !validInputLen(len(aad)) {
		return nil, ErrInvalidInputSize
	}

	tag := c.computeTag(plaintext, aad)

	out := make([]byte, len(plaintext)+TagSize)
	counterBlock := tag
	counterBlock[15] |= 0x80
	ctrXOR(c.block, counterBlock, out[:len(plaintext)], plaintext)
	copy(out[len(plaintext):], tag[:])

	return out, nil
}

// Decrypt implements spec §4.5 Decrypt: it splits off the trailing tag,
// recovers the plaintext by running CTR with the received tag as the
// counter seed, recomputes the expected tag over that recovered
// plaintext, and compares tags in constant time. On mismatch it returns
// ErrAuthenticationFailure and zeroes the recovered plaintext buffer
// before returning — no plaintext escapes on failure (spec §7).
func (c *AEADContext) Decrypt(ciphertextWithTag, aad []byte) ([]byte, error) {
	if len(ciphertextWithTag) < TagSize || len(ciphertextWithTag) > maxCiphertextLen || !validInputLen(len(aad)) {
		return nil, ErrInvalidInputSize
	}

	ct := ciphertextWithTag[:len(ciphertextWithTag)-TagSize]
	var receivedTag [TagSize]byte
	copy(receivedTag[:], ciphertextWithTag[len(ciphertextWithTag)-TagSize:])

	counterBlock := receivedTag
	counterBlock[15] |= 0x80

	plaintext := make([]byte, len(ct))
	ctrXOR(c.block, counterBlock, plaintext, ct)

	expectedTag := c.computeTag(plaintext, aad)

	if subtle.ConstantTimeCompare(expectedTag[:], receivedTag[:]) != 1 {
		zero(plaintext)
		return nil, ErrAuthenticationFailure
	}

	return plaintext, nil
}

// computeTag runs POLYVAL-then-mask-then-AES (spec §4.5 steps 2-5), shared
// by Encrypt and by Decrypt's tag recomputation.
func (c *AEADContext) computeTag(plaintext, aad []byte) [TagSize]byte {
	blocks := make([]FieldElement, 0, len(aad)/blockSize+len(plaintext)/blockSize+3)
	blocks = append(blocks, splitBlocksPadded(aad)...)
	blocks = append(blocks, splitBlocksPadded(plaintext)...)
	lb := lengthBlock(len(aad), len(plaintext))
	blocks = append(blocks, BytesToField(lb[:]))

	s := ComputePolyval(c.authKey, blocks)
	sBytes := s.Bytes()
	for i := 0; i < NonceSize; i++ {
		sBytes[i] ^= c.nonce[i]
	}
	sBytes[15] &= 0x7f

	var tag [TagSize]byte
	c.block.Encrypt(tag[:], sBytes[:])
	return tag
}

// aeadCipher adapts AEADContext to crypto/cipher.AEAD: a key-only cipher
// object whose Seal/Open take the nonce per call and derive a fresh
// per-nonce Context internally, matching the shape of every other AEAD in
// the Go ecosystem (crypto/cipher.NewGCM, golang.org/x/crypto/chacha20poly1305)
// and of _examples/other_examples's codahale/thyrse SIV wrapper.
type aeadCipher struct {
	key []byte
}

// NewAEAD returns a crypto/cipher.AEAD backed by AES-GCM-SIV. key must be
// 16 or 32 bytes.
func NewAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != kgkKeySizeSmall && len(key) != kgkKeySizeLarge {
		return nil, ErrInvalidKeySize
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &aeadCipher{key: k}, nil
}

func (a *aeadCipher) NonceSize() int { return NonceSize }
func (a *aeadCipher) Overhead() int  { return TagSize }

// Zero wipes the stored key-generating key. Call it once the cipher is no
// longer needed; a.key backs every subsequent Seal/Open otherwise.
func (a *aeadCipher) Zero() {
	zero(a.key)
}

// Seal encrypts and authenticates plaintext, appending the result to dst.
// It panics if nonce is not NonceSize() bytes long, matching the
// crypto/cipher.AEAD contract.
func (a *aeadCipher) Seal(dst, nonce, plaintext, aad []byte) []byte {
	if len(nonce) != NonceSize {
		panic("gcmsiv: invalid nonce size")
	}
	ctx, err := NewContext(a.key, nonce)
	if err != nil {
		panic(err)
	}
	defer ctx.Zero()

	out, err := ctx.Encrypt(plaintext, aad)
	if err != nil {
		panic(err)
	}
	return append(dst, out...)
}

// Open decrypts and authenticates ciphertext, appending the result to
// dst. It panics if nonce is not NonceSize() bytes long.
func (a *aeadCipher) Open(dst, nonce, ciphertext, aad []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic("gcmsiv: invalid nonce size")
	}
	ctx, err := NewContext(a.key, nonce)
	if err != nil {
		return nil, err
	}
	defer ctx.Zero()

	pt, err := ctx.Decrypt(ciphertext, aad)
	if err != nil {
		return nil, err
	}
	return append(dst, pt...), nil
}

var _ cipher.AEAD = (*aeadCipher)(nil)
