package gcmsiv

import (
	"encoding/hex"
	"testing"
)

// mustDecode decodes a hex string, failing the test on malformed input.
func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex.DecodeString(%q): %v", s, err)
	}
	return b
}

// Field sanity vector from spec §8 scenario 6 / RFC 8452.
func TestFieldSanityVector(t *testing.T) {
	a := BytesToField(mustDecode(t, "66e94bd4ef8a2c3b884cfa59ca342b2e"))
	b := BytesToField(mustDecode(t, "ff000000000000000000000000000000"))

	wantAdd := "99e94bd4ef8a2c3b884cfa59ca342b2e"
	wantMul := "37856175e9dc9df26ebc6d6171aa0ae9"
	wantDot := "ebe563401e7e91ea3ad6426b8140c394"

	if got := FieldAdd(a, b); hex.EncodeToString(blockSlice(got)) != wantAdd {
		t.Errorf("Add = %x, want %s", blockSlice(got), wantAdd)
	}
	if got := FieldMul(a, b); hex.EncodeToString(blockSlice(got)) != wantMul {
		t.Errorf("Mul = %x, want %s", blockSlice(got), wantMul)
	}
	if got := FieldDot(a, b); hex.EncodeToString(blockSlice(got)) != wantDot {
		t.Errorf("Dot = %x, want %s", blockSlice(got), wantDot)
	}
}

func blockSlice(f FieldElement) []byte {
	b := f.Bytes()
	return b[:]
}

func TestFieldCommutative(t *testing.T) {
	a := BytesToField(mustDecode(t, "0102030405060708090a0b0c0d0e0f10"))
	b := BytesToField(mustDecode(t, "100f0e0d0c0b0a090807060504030201"))

	if FieldAdd(a, b) != FieldAdd(b, a) {
		t.Error("Add is not commutative")
	}
	if FieldMul(a, b) != FieldMul(b, a) {
		t.Error("Mul is not commutative")
	}
	if FieldDot(a, b) != FieldDot(b, a) {
		t.Error("Dot is not commutative")
	}
}

func TestFieldAddIsXOR(t *testing.T) {
	zero := FieldElement{}
	a := BytesToField(mustDecode(t, "0102030405060708090a0b0c0d0e0f10"))
	if FieldAdd(a, zero) != a {
		t.Error("a + 0 != a")
	}
	if FieldAdd(a, a) != zero {
		t.Error("a + a != 0")
	}
}
