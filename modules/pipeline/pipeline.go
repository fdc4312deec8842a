// Package pipeline wires artifact reading, limb extraction, compression and
// digest rendering into one linear run. Every failure is terminal and is
// reported as a *StageError naming the stage and the artifact.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"CommitmentCompressor/modules/digest"
	"CommitmentCompressor/modules/encode"
	"CommitmentCompressor/modules/extract"

	"github.com/rs/zerolog"
)

var (
	// ErrIO is returned when an artifact cannot be opened or read.
	ErrIO = errors.New("artifact io error")
	// ErrTooManyLimbs is returned when a literal exceeds Options.MaxLimbs.
	ErrTooManyLimbs = errors.New("too many limbs")
)

// Stage names the step of a run that failed.
type Stage string

const (
	StageRead    Stage = "read"
	StageExtract Stage = "extract"
	StageEncode  Stage = "encode"
	StageRender  Stage = "render"
)

// StageError tags a failure with the stage and artifact it came from.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Options tunes a single run.
type Options struct {
	// Constant, when set, selects the literal declared under that name
	// instead of the first literal in the artifact.
	Constant string

	// MaxLimbs bounds the work done by the fold, zero means unbounded.
	MaxLimbs int

	Logger *zerolog.Logger
}

func (o *Options) logger() *zerolog.Logger {
	if o.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return o.Logger
}

// Result carries everything computed for one artifact.
type Result struct {
	Path    string
	Limbs   []uint32
	Element *big.Int
	Digest  digest.Digest
}

// Run reads the artifact at path and computes its commitment digest.
func Run(path string, opts Options) (*Result, error) {
	text, err := readArtifact(path)
	if err != nil {
		return nil, &StageError{Stage: StageRead, Path: path, Err: err}
	}

	res, err := Digest(text, opts)
	if err != nil {
		var stageErr *StageError
		if errors.As(err, &stageErr) {
			stageErr.Path = path
		}
		return nil, err
	}

	res.Path = path
	return res, nil
}

func readArtifact(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	return string(b), nil
}

// Digest computes the commitment digest of artifact text already in memory.
func Digest(text string, opts Options) (*Result, error) {
	log := opts.logger()

	var limbs []uint32
	var err error
	if opts.Constant != "" {
		limbs, err = extract.ExtractNamed(text, opts.Constant)
	} else {
		limbs, err = extract.Extract(text)
	}
	if err != nil {
		return nil, &StageError{Stage: StageExtract, Err: err}
	}
	log.Debug().Int("limbs", len(limbs)).Str("constant", opts.Constant).Msg("extracted commitment literal")

	if idx, ok := encode.InRange(limbs); !ok {
		log.Warn().Int("index", idx).Uint32("limb", limbs[idx]).Msg("limb is not below the babybear modulus")
	}

	if opts.MaxLimbs > 0 && len(limbs) > opts.MaxLimbs {
		return nil, &StageError{
			Stage: StageEncode,
			Err:   fmt.Errorf("%w: %d limbs, limit %d", ErrTooManyLimbs, len(limbs), opts.MaxLimbs),
		}
	}

	element := encode.Compress(limbs)
	bn254 := encode.CompressBN254(limbs)
	log.Debug().Int("bits", element.BitLen()).Str("bn254", bn254.String()).Msg("compressed commitment")

	d, err := digest.Render(element)
	if err != nil {
		return nil, &StageError{Stage: StageRender, Err: err}
	}

	return &Result{
		Limbs:   limbs,
		Element: element,
		Digest:  d,
	}, nil
}

// Comparison holds the results of two artifacts.
type Comparison struct {
	A, B *Result
}

// Equal reports whether both artifacts compress to the same digest.
func (c *Comparison) Equal() bool {
	return c.A.Digest == c.B.Digest
}

// Compare computes the digests of two artifacts so they can be checked for
// carrying the same commitment.
func Compare(pathA, pathB string, opts Options) (*Comparison, error) {
	a, err := Run(pathA, opts)
	if err != nil {
		return nil, err
	}
	b, err := Run(pathB, opts)
	if err != nil {
		return nil, err
	}
	return &Comparison{A: a, B: b}, nil
}
