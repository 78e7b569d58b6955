package gcmsiv

import (
	"bytes"
	"crypto/aes"
	"encoding/binary"
	"testing"
)

func TestCTRSelfInverse(t *testing.T) {
	block, err := aes.NewCipher(bytes.Repeat([]byte{0x11}, 16))
	if err != nil {
		t.Fatal(err)
	}
	var cb [16]byte
	copy(cb[:], mustDecode(t, "000102030405060708090a0b0c0d0e0f"))

	plaintext := []byte("the quick brown fox jumps over the lazy dog, twice")

	ciphertext := make([]byte, len(plaintext))
	ctrXOR(block, cb, ciphertext, plaintext)

	recovered := make([]byte, len(ciphertext))
	ctrXOR(block, cb, recovered, ciphertext)

	if !bytes.Equal(recovered, plaintext) {
		t.Errorf("CTR is not self-inverse: got %q, want %q", recovered, plaintext)
	}
}

func TestCTRCounterWrapsWithoutDisturbingTail(t *testing.T) {
	var cb [16]byte
	binary.LittleEndian.PutUint32(cb[0:4], 0xFFFFFFFE)
	tail := [12]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	copy(cb[4:], tail[:])

	incrementCounterLE32(&cb)
	if got := binary.LittleEndian.Uint32(cb[0:4]); got != 0xFFFFFFFF {
		t.Errorf("counter = %#x, want 0xffffffff", got)
	}
	if !bytes.Equal(cb[4:], tail[:]) {
		t.Errorf("tail mutated: %x", cb[4:])
	}

	incrementCounterLE32(&cb)
	if got := binary.LittleEndian.Uint32(cb[0:4]); got != 0 {
		t.Errorf("counter after wrap = %#x, want 0", got)
	}
	if !bytes.Equal(cb[4:], tail[:]) {
		t.Errorf("tail mutated after wrap: %x", cb[4:])
	}
}

func TestCTREmptyInput(t *testing.T) {
	block, err := aes.NewCipher(bytes.Repeat([]byte{0x01}, 16))
	if err != nil {
		t.Fatal(err)
	}
	var cb [16]byte
	ctrXOR(block, cb, nil, nil)
}
