package circuit

import (
	"fmt"
	"math/big"

	"CommitmentCompressor/modules/fields"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// CompressionCircuit asserts Σ Limbs[i] * p^i == Digest over the native field,
// p being the BabyBear modulus.
type CompressionCircuit struct {
	Limbs  []frontend.Variable
	Digest frontend.Variable `gnark:",public"`
}

// Define declares the circuit constraints
func (c *CompressionCircuit) Define(api frontend.API) error {
	modulus := fields.Modulus()

	var acc frontend.Variable = 0
	base := big.NewInt(1)
	for _, limb := range c.Limbs {
		acc = api.Add(acc, api.Mul(limb, new(big.Int).Set(base)))
		base.Mul(base, modulus)
	}

	api.AssertIsEqual(acc, c.Digest)
	return nil
}

// NewPlaceHolder returns the circuit shape for n limbs.
func NewPlaceHolder(n uint) *CompressionCircuit {
	return &CompressionCircuit{
		Limbs:  make([]frontend.Variable, n),
		Digest: 0,
	}
}

// NewAssignment assigns limbs and the claimed compressed element.
func NewAssignment(limbs []uint32, element *big.Int) *CompressionCircuit {
	assignment := CompressionCircuit{
		Limbs:  make([]frontend.Variable, len(limbs)),
		Digest: new(big.Int).Set(element),
	}
	for i, v := range limbs {
		assignment.Limbs[i] = uint64(v)
	}
	return &assignment
}

// Compile builds the r1cs of the compression circuit for n limbs over BN254.
func Compile(n uint) (constraint.ConstraintSystem, error) {
	if fields.BN254.FieldBytes() != fields.DigestBytes {
		return nil, fmt.Errorf("target field %s is not %d bytes wide", fields.BN254, fields.DigestBytes)
	}

	return frontend.Compile(fields.BN254.FieldModulus(), r1cs.NewBuilder, NewPlaceHolder(n))
}

// CheckSatisfied reports whether element is the compression of limbs, as seen
// by the BN254 r1cs.
func CheckSatisfied(limbs []uint32, element *big.Int) error {
	ccs, err := Compile(uint(len(limbs)))
	if err != nil {
		return err
	}

	witness, err := frontend.NewWitness(NewAssignment(limbs, element), fields.BN254.FieldModulus())
	if err != nil {
		return err
	}

	if err = ccs.IsSolved(witness); err != nil {
		return fmt.Errorf("r1cs not satisfied: %w", err)
	}
	return nil
}

// ProveAndVerify runs a throwaway groth16 setup, proves the compression of
// limbs and verifies the proof against the public digest.
func ProveAndVerify(limbs []uint32, element *big.Int) error {
	ccs, err := Compile(uint(len(limbs)))
	if err != nil {
		return err
	}

	witness, err := frontend.NewWitness(NewAssignment(limbs, element), fields.BN254.FieldModulus())
	if err != nil {
		return err
	}
	publicWitness, err := witness.Public()
	if err != nil {
		return err
	}

	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return err
	}

	proof, err := groth16.Prove(ccs, pk, witness)
	if err != nil {
		return fmt.Errorf("groth16 prove: %w", err)
	}

	if err = groth16.Verify(proof, vk, publicWitness); err != nil {
		return fmt.Errorf("groth16 verify: %w", err)
	}
	return nil
}
