// Package extract locates the commitment limb literal embedded in a generated
// circuit artifact, e.g.
//
//	pub const EXE_COMMIT: [u32; 8] = [396649651, 1175086036, ...];
//
// Only the first bracketed list of decimal integers is used. An artifact that
// embeds more than one such list must either guarantee the commitment comes
// first, or be pre-sliced with ExtractNamed.
package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrNoMatchFound is returned when the text holds no bracketed integer list.
	ErrNoMatchFound = errors.New("no commitment literal found")
	// ErrMalformedLiteral is returned when a matched list cannot be parsed
	// into 32-bit limbs.
	ErrMalformedLiteral = errors.New("malformed commitment literal")
)

// The match is Unicode aware, so a literal with non ASCII digits or spacing
// is found and then rejected as malformed rather than skipped.
const (
	space = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`
	digit = `\p{Nd}`
)

var (
	literalPattern = regexp.MustCompile(`\[` + space + `*` + digit + `+` + space + `*(,` + space + `*` + digit + `+` + space + `*)*\]`)
	// JSON array of non negative integers
	strictPattern = regexp.MustCompile(`^\[[ \t\n\r]*[0-9]+[ \t\n\r]*(,[ \t\n\r]*[0-9]+[ \t\n\r]*)*\]$`)
	limbPattern   = regexp.MustCompile(`[0-9]+`)
)

// Extract parses the first bracketed, comma separated list of decimal
// integers in text. Limb order is kept exactly as written.
func Extract(text string) ([]uint32, error) {
	matched := literalPattern.FindString(text)
	if matched == "" {
		return nil, ErrNoMatchFound
	}
	return parseLiteral(matched)
}

// ExtractNamed extracts the first literal following the declaration of the
// named constant, so artifacts carrying both EXE_COMMIT and LEAF_COMMIT can
// be addressed one at a time.
func ExtractNamed(text, name string) ([]uint32, error) {
	decl, err := regexp.Compile(`(?:^|[^A-Za-z0-9_])` + regexp.QuoteMeta(name) + `\s*[:=\[]`)
	if err != nil {
		return nil, err
	}

	loc := decl.FindStringIndex(text)
	if loc == nil {
		return nil, fmt.Errorf("%w: constant %q not declared", ErrNoMatchFound, name)
	}

	// NOTE: keep a bracket that opens the type, e.g. COMMIT[u32; 8]
	limbs, err := Extract(text[loc[1]-1:])
	if err != nil {
		return nil, fmt.Errorf("constant %q: %w", name, err)
	}
	return limbs, nil
}

func parseLiteral(literal string) ([]uint32, error) {
	if !strictPattern.MatchString(literal) {
		return nil, fmt.Errorf("%w: %q", ErrMalformedLiteral, literal)
	}
	tokens := limbPattern.FindAllString(literal, -1)

	limbs := make([]uint32, len(tokens))
	for i, token := range tokens {
		// NOTE: JSON integers, no leading zeros
		if len(token) > 1 && token[0] == '0' {
			return nil, fmt.Errorf("%w: limb %d %q has a leading zero", ErrMalformedLiteral, i, token)
		}

		v, err := strconv.ParseUint(token, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: limb %d %q does not fit in 32 bits", ErrMalformedLiteral, i, token)
		}
		limbs[i] = uint32(v)
	}

	return limbs, nil
}
