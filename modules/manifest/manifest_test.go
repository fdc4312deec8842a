package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"CommitmentCompressor/modules/digest"

	"github.com/stretchr/testify/require"
)

const exeDigest = "007c75be55d5e8d24557d2fc2b4a1c094fd3c027a99296dd75014c7e90e7cb9f"

func TestLoadResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "digest_1"), []byte("0x"+exeDigest+"\n"), 0644))

	content := `
entries:
  - artifact: child_commitments.rs
    constant: EXE_COMMIT
    digest_file: digest_1
  - artifact: /abs/leaf.rs
    digest: ` + exeDigest + `
`
	path := filepath.Join(dir, "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	require.Len(t, m.Entries, 2)

	require.Equal(t, filepath.Join(dir, "child_commitments.rs"), m.Entries[0].Artifact)
	require.Equal(t, "EXE_COMMIT", m.Entries[0].Constant)
	require.Equal(t, "/abs/leaf.rs", m.Entries[1].Artifact)

	for i := range m.Entries {
		d, err := m.Entries[i].Expected()
		require.NoError(t, err)
		require.Equal(t, exeDigest, d.String())
	}
}

func TestParseRejectsInvalidEntries(t *testing.T) {
	for _, content := range []string{
		"entries: []",
		"entries:\n  - digest: " + exeDigest,
		"entries:\n  - artifact: a.rs",
		"entries:\n  - artifact: a.rs\n    digest: " + exeDigest + "\n    digest_file: d",
		"entries: {",
	} {
		_, err := Parse([]byte(content))
		require.ErrorIs(t, err, ErrInvalidManifest, "manifest %q", content)
	}
}

func TestExpectedMalformedDigest(t *testing.T) {
	e := Entry{Artifact: "a.rs", Digest: "0x1234"}
	_, err := e.Expected()
	require.ErrorIs(t, err, digest.ErrMalformedDigest)

	e = Entry{Artifact: "a.rs", DigestFile: filepath.Join(t.TempDir(), "missing")}
	_, err = e.Expected()
	require.ErrorIs(t, err, os.ErrNotExist)
}
