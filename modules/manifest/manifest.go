// Package manifest loads the YAML file listing generated artifacts and the
// digests they are expected to compress to.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"CommitmentCompressor/modules/digest"

	"gopkg.in/yaml.v3"
)

// ErrInvalidManifest is returned for manifests that fail to parse or validate.
var ErrInvalidManifest = errors.New("invalid manifest")

// Entry pairs an artifact with the digest it should compress to.
type Entry struct {
	Artifact string `yaml:"artifact"`
	// Constant selects a named literal inside the artifact, optional.
	Constant string `yaml:"constant,omitempty"`

	// exactly one of Digest, DigestFile
	Digest     string `yaml:"digest,omitempty"`
	DigestFile string `yaml:"digest_file,omitempty"`
}

// Manifest is the parsed list of entries to verify.
type Manifest struct {
	Entries []Entry `yaml:"entries"`

	dir string
}

// Load parses the manifest at path. Relative artifact and digest file paths
// are resolved against the manifest's directory.
func Load(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.dir = filepath.Dir(path)

	for i := range m.Entries {
		m.Entries[i].Artifact = m.resolve(m.Entries[i].Artifact)
		if m.Entries[i].DigestFile != "" {
			m.Entries[i].DigestFile = m.resolve(m.Entries[i].DigestFile)
		}
	}
	return m, nil
}

// Parse decodes and validates manifest YAML without resolving paths.
func Parse(b []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	if len(m.Entries) == 0 {
		return nil, fmt.Errorf("%w: no entries", ErrInvalidManifest)
	}
	for i, e := range m.Entries {
		if e.Artifact == "" {
			return nil, fmt.Errorf("%w: entry %d has no artifact", ErrInvalidManifest, i)
		}
		if (e.Digest == "") == (e.DigestFile == "") {
			return nil, fmt.Errorf("%w: entry %d needs exactly one of digest, digest_file", ErrInvalidManifest, i)
		}
	}

	return &m, nil
}

func (m *Manifest) resolve(p string) string {
	if filepath.IsAbs(p) || m.dir == "" {
		return p
	}
	return filepath.Join(m.dir, p)
}

// Expected returns the digest the entry's artifact should compress to.
func (e *Entry) Expected() (digest.Digest, error) {
	if e.DigestFile == "" {
		return digest.Parse(e.Digest)
	}

	b, err := os.ReadFile(e.DigestFile)
	if err != nil {
		return digest.Digest{}, err
	}
	d, err := digest.Parse(string(b))
	if err != nil {
		return digest.Digest{}, fmt.Errorf("%s: %w", e.DigestFile, err)
	}
	return d, nil
}
