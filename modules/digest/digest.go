package digest

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"CommitmentCompressor/modules/fields"
)

var (
	// ErrValueTooLarge is returned when an element needs more than 256 bits.
	ErrValueTooLarge = errors.New("value does not fit in 32 bytes")
	// ErrNegative is returned for elements below zero, which have no
	// canonical big-endian form.
	ErrNegative = errors.New("negative value has no digest")
	// ErrMalformedDigest is returned when a textual digest is not 64 hex chars.
	ErrMalformedDigest = errors.New("malformed digest")
)

// Digest is the canonical 32 byte big-endian form of a compressed commitment.
type Digest [fields.DigestBytes]byte

// Render serializes f into exactly 32 big-endian bytes, left zero padded.
func Render(f *big.Int) (d Digest, err error) {
	if f.Sign() < 0 {
		err = fmt.Errorf("%w: %s", ErrNegative, f.String())
		return
	}
	if f.BitLen() > int(8*fields.DigestBytes) {
		err = fmt.Errorf("%w: element has %d bits", ErrValueTooLarge, f.BitLen())
		return
	}

	f.FillBytes(d[:])
	return
}

// Parse reads a digest written as 64 hex characters, with an optional 0x
// prefix and surrounding whitespace, as found in digest files.
func Parse(s string) (d Digest, err error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	if len(s) != hex.EncodedLen(len(d)) {
		err = fmt.Errorf("%w: expected %d hex chars, got %d", ErrMalformedDigest, hex.EncodedLen(len(d)), len(s))
		return
	}
	if _, decodeErr := hex.Decode(d[:], []byte(s)); decodeErr != nil {
		err = fmt.Errorf("%w: %v", ErrMalformedDigest, decodeErr)
	}
	return
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Big returns the integer the digest encodes.
func (d Digest) Big() *big.Int {
	return new(big.Int).SetBytes(d[:])
}
