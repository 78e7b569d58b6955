// Package gcmsiv implements the AES-GCM-SIV nonce-misuse-resistant AEAD
// construction defined in RFC 8452.
//
// The package is organized the way the algorithm is specified: field
// arithmetic over GF(2^128) at the bottom (field.go), the POLYVAL
// universal hash built on it (polyval.go), per-nonce key derivation
// (kdf.go), the SIV-specific 32-bit little-endian counter mode
// (ctr.go), and the AEAD composition on top (aead.go).
//
// AES itself, key management, and nonce generation policy are out of
// scope; callers supply a 16- or 32-byte key-generating key and a
// 12-byte nonce and get authenticated encryption in return.
package gcmsiv
