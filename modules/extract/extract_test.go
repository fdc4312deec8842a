package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const childCommitments = `pub const EXE_COMMIT: [u32; 8] = [396649651, 1175086036, 1682626845, 471855974, 1659938811, 1981570609, 805067545, 1640289616];
pub const LEAF_COMMIT: [u32; 8] = [505034789, 682334490, 407062982, 1227826652, 298205975, 1959777750, 1633765816, 97452666];
`

func TestExtractConstArray(t *testing.T) {
	limbs, err := Extract("const A: [u32; 3] = [1, 2, 3];")
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 2, 3}, limbs)
}

func TestExtractWhitespace(t *testing.T) {
	limbs, err := Extract("x = [\n\t 7 ,\n 8,9\n ]")
	require.NoError(t, err)
	require.Equal(t, []uint32{7, 8, 9}, limbs)
}

func TestExtractFirstMatchWins(t *testing.T) {
	limbs, err := Extract(childCommitments)
	require.NoError(t, err)
	require.Equal(t, []uint32{
		396649651, 1175086036, 1682626845, 471855974,
		1659938811, 1981570609, 805067545, 1640289616,
	}, limbs)
}

func TestExtractKeepsOrderAndDuplicates(t *testing.T) {
	limbs, err := Extract("[10, 5, 5, 0, 10]")
	require.NoError(t, err)
	require.Equal(t, []uint32{10, 5, 5, 0, 10}, limbs)
}

func TestExtractIdempotent(t *testing.T) {
	first, err := Extract(childCommitments)
	require.NoError(t, err)
	second, err := Extract(childCommitments)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestExtractLimbBounds(t *testing.T) {
	limbs, err := Extract("[0, 4294967295]")
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 4294967295}, limbs)

	_, err = Extract("[4294967296]")
	require.ErrorIs(t, err, ErrMalformedLiteral)
}

func TestExtractLeadingZero(t *testing.T) {
	_, err := Extract("[1, 02]")
	require.ErrorIs(t, err, ErrMalformedLiteral)
}

func TestExtractNoMatch(t *testing.T) {
	for _, text := range []string{
		"",
		"fn main() {}",
		"let empty: [u32; 0] = [];",
		"[a, b]",
		"[1,\u00a02]",
		"[1,\u00a02]",
	} {
		_, err := Extract(text)
		require.ErrorIs(t, err, ErrNoMatchFound, "text %q", text)
	}
}

func TestExtractNamed(t *testing.T) {
	leaf, err := ExtractNamed(childCommitments, "LEAF_COMMIT")
	require.NoError(t, err)
	require.Equal(t, uint32(505034789), leaf[0])
	require.Equal(t, uint32(97452666), leaf[7])

	exe, err := ExtractNamed(childCommitments, "EXE_COMMIT")
	require.NoError(t, err)
	require.Equal(t, uint32(396649651), exe[0])
}

func TestExtractNamedIdentifierBoundary(t *testing.T) {
	text := "const OLD_COMMIT: [u32; 1] = [1];\nconst COMMIT: [u32; 1] = [2];"
	limbs, err := ExtractNamed(text, "COMMIT")
	require.NoError(t, err)
	require.Equal(t, []uint32{2}, limbs)
}

func TestExtractNamedMissing(t *testing.T) {
	_, err := ExtractNamed(childCommitments, "ROOT_COMMIT")
	require.ErrorIs(t, err, ErrNoMatchFound)

	_, err = ExtractNamed("const COMMIT: &str = \"none\";", "COMMIT")
	require.ErrorIs(t, err, ErrNoMatchFound)
}

func TestExtractNonJSONLiteralIsMalformed(t *testing.T) {
	for _, text := range []string{
		"const A: [u32; 1] = [١];",
		"[1,\f2]",
		"[1,\v2]",
		"[1,\u00a02]",
		"[२, 3]",
	} {
		_, err := Extract(text)
		require.ErrorIs(t, err, ErrMalformedLiteral, "text %q", text)
	}
}

func TestExtractNamedBracketAfterName(t *testing.T) {
	text := "const OTHER: [u32; 1] = [1];\nconst COMMIT[u32; 1] = [9];"
	limbs, err := ExtractNamed(text, "COMMIT")
	require.NoError(t, err)
	require.Equal(t, []uint32{9}, limbs)

	limbs, err = ExtractNamed("COMMIT[4, 5]", "COMMIT")
	require.NoError(t, err)
	require.Equal(t, []uint32{4, 5}, limbs)
}
