package encode

import (
	"math/big"

	"CommitmentCompressor/modules/fields"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Compress folds limbs [v0, v1, ..., vn-1] into Σ v_i * p^i where p is the
// BabyBear modulus, treating every limb as a base p digit. The sum is not
// reduced, and limbs outside [0, p) are used as given.
func Compress(limbs []uint32) *big.Int {
	modulus := fields.Modulus()

	res := new(big.Int)
	base := big.NewInt(1)
	term := new(big.Int)
	for _, v := range limbs {
		term.SetUint64(uint64(v))
		term.Mul(term, base)
		res.Add(res, term)

		base.Mul(base, modulus)
	}

	return res
}

// CompressBN254 is the same fold carried out inside the BN254 scalar field,
// which is what the prover commits to. It agrees with Compress whenever the
// unreduced sum is below the BN254 modulus.
func CompressBN254(limbs []uint32) fr.Element {
	var order, base, ret, term fr.Element
	order.SetUint64(fields.BabyBearModulus)
	base.SetOne()

	for _, v := range limbs {
		term.SetUint64(uint64(v))
		term.Mul(&term, &base)
		ret.Add(&ret, &term)

		base.Mul(&base, &order)
	}

	return ret
}

// InRange reports whether every limb lies in [0, p), and the index of the
// first one that does not.
func InRange(limbs []uint32) (int, bool) {
	for i, v := range limbs {
		if uint64(v) >= fields.BabyBearModulus {
			return i, false
		}
	}
	return -1, true
}
