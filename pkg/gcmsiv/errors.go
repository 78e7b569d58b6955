package gcmsiv

import "errors"

// Errors returned by the package's public operations. See spec §7: every
// error is reported synchronously at the API boundary and carries no
// secret-dependent detail.
var (
	// ErrInvalidKeySize is returned when a key-generating key is neither
	// 16 nor 32 bytes.
	ErrInvalidKeySize = errors.New("gcmsiv: invalid key size, must be 16 or 32 bytes")

	// ErrInvalidNonceSize is returned when a nonce is not exactly 12 bytes.
	ErrInvalidNonceSize = errors.New("gcmsiv: invalid nonce size, must be 12 bytes")

	// ErrInvalidInputSize is returned when plaintext, associated data, or
	// ciphertext length is outside the bounds in spec §3 / §6.
	ErrInvalidInputSize = errors.New("gcmsiv: invalid input size")

	// ErrAuthenticationFailure is returned by Decrypt/Open on tag mismatch.
	// No plaintext is returned alongside this error.
	ErrAuthenticationFailure = errors.New("gcmsiv: message authentication failed")
)
