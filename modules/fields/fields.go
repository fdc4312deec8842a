package fields

import (
	"math/big"

	eccFields "github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo/field"
)

// BabyBearModulus is the prime base every commitment limb is weighted by,
// 2^31 - 2^27 + 1.
const BabyBearModulus uint64 = 2013265921

// DigestBytes is the fixed width of a rendered commitment digest.
const DigestBytes uint = 32

// Modulus returns the BabyBear modulus as a fresh big.Int, callers are free
// to mutate the result.
func Modulus() *big.Int {
	return new(big.Int).SetUint64(BabyBearModulus)
}

// TargetField is the enum value indicating the field a compressed commitment
// is committed into.
type TargetField uint64

// The enum assignment is aligning with the field ids on ECGO side.
const (
	// BN254 is the TargetField for the BN254 scalar field
	BN254 TargetField = 2
)

func (f TargetField) GetFieldEngine() eccFields.Field {
	return eccFields.GetFieldById(uint64(f))
}

// FieldModulus finds the modulus of the target field.
func (f TargetField) FieldModulus() *big.Int {
	if f != BN254 {
		panic("unknown commitment target field")
	}
	fieldEngine := f.GetFieldEngine()
	return fieldEngine.Field()
}

// FieldBytes stand for the number of bytes of the target field modulus
func (f TargetField) FieldBytes() uint {
	fieldModulus := f.FieldModulus()
	bitLen := fieldModulus.BitLen()
	// NOTE: round up against bit-byte rate
	return (uint(bitLen) + 8 - 1) / 8
}

func (f TargetField) String() string {
	switch f {
	case BN254:
		return "bn254"
	default:
		return "unknown"
	}
}
