package gcmsiv

import "math/big"

// FieldElement is a value in GF(2)[x] / (x^128 + x^127 + x^126 + x^121 + 1),
// the field RFC 8452 defines POLYVAL over. It is a 128-bit polynomial with
// coefficients in GF(2): bit i of the integer representation is the
// coefficient of x^i. FieldElement is a plain value type, not a reference;
// the zero value is the additive identity.
//
// lo holds coefficients of x^0..x^63, hi holds x^64..x^127.
type FieldElement struct {
	lo, hi uint64
}

// fieldPoly is the reduction polynomial x^128 + x^127 + x^126 + x^121 + 1,
// represented as a 129-bit big.Int (bit 128 set).
var fieldPoly = fieldPolyBits(0, 121, 126, 127, 128)

// fieldInv128 is x^-128 = x^127 + x^124 + x^121 + x^114 + 1, the constant
// Dot multiplies by after a raw Mul. It fits in 128 bits like any other
// FieldElement.
var fieldInv128 = bigIntToField(fieldPolyBits(0, 114, 121, 124, 127))

func fieldPolyBits(bits ...uint) *big.Int {
	v := new(big.Int)
	for _, b := range bits {
		v.SetBit(v, int(b), 1)
	}
	return v
}

// FieldAdd returns a XOR b, the field's addition. It never fails and has no
// secret-dependent branches.
func FieldAdd(a, b FieldElement) FieldElement {
	return FieldElement{lo: a.lo ^ b.lo, hi: a.hi ^ b.hi}
}

// FieldMul returns the carryless product of a and b reduced modulo the field
// polynomial. This is raw polynomial multiplication, not the GCM-SIV "dot"
// operation POLYVAL actually uses — see FieldDot.
//
// The reduction follows the "align the modulus with the highest set bit of
// the product, then shift-and-XOR down" procedure from RFC 8452 and the
// Python reference this package is grounded on: a correct but
// non-constant-time, non-table-driven reduction. A production build
// wanting constant-time or PCLMULQDQ-accelerated reduction can swap the
// implementation of mulBig below without changing the algebra it computes.
func FieldMul(a, b FieldElement) FieldElement {
	x := fieldToBigInt(a)
	y := fieldToBigInt(b)
	return bigIntToField(mulBig(x, y))
}

// FieldDot returns mul(mul(a, b), x^-128), the "multiplication" POLYVAL actually
// performs (RFC 8452 §3). It is distinct from FieldMul: dot(a, b) != mul(a, b)
// in general.
func FieldDot(a, b FieldElement) FieldElement {
	return FieldMul(FieldMul(a, b), fieldInv128)
}

// mulBig computes the carryless product of x and y and reduces it modulo
// fieldPoly, mirroring Field.mul/Field.mod from the reference implementation
// bit for bit.
func mulBig(x, y *big.Int) *big.Int {
	res := new(big.Int)
	shifted := new(big.Int)
	for bit := 0; bit < 128; bit++ {
		if y.Bit(bit) == 1 {
			shifted.Lsh(x, uint(bit))
			res.Xor(res, shifted)
		}
	}
	return fieldMod(res, fieldPoly)
}

// fieldMod reduces v modulo m using shift-and-XOR: align m with the
// highest set bit of v, then for each shift position from highest down to
// 0, XOR in the shifted modulus whenever doing so strictly reduces v.
// Terminates with v < m.
func fieldMod(v, m *big.Int) *big.Int {
	a := new(big.Int).Set(v)
	m2 := new(big.Int).Set(m)
	shifts := 0
	for m2.Cmp(a) < 0 {
		m2.Lsh(m2, 1)
		shifts++
	}
	a2 := new(big.Int)
	for i := shifts; i >= 0; i-- {
		a2.Xor(a, m2)
		if a2.Cmp(a) < 0 {
			a.Set(a2)
		}
		m2.Rsh(m2, 1)
	}
	return a
}

func fieldToBigInt(f FieldElement) *big.Int {
	v := new(big.Int).SetUint64(f.hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(f.lo))
	return v
}

var mask64 = new(big.Int).SetUint64(^uint64(0))

func bigIntToField(v *big.Int) FieldElement {
	lo := new(big.Int).And(v, mask64).Uint64()
	hi := new(big.Int).Rsh(v, 64)
	hi.And(hi, mask64)
	return FieldElement{lo: lo, hi: hi.Uint64()}
}
