package kmeans

import (
	"fmt"
	"strings"

	ikmeans "github.com/hupe1980/kmeans/internal/kmeans"
)

// Initializer produces the K initial centers of a run. Implementations must
// draw all randomness from the supplied random.Source.
type Initializer = ikmeans.Initializer

// RandomInit places centers uniformly inside the bounding box of the points.
type RandomInit = ikmeans.RandomInit

// PlusPlusInit seeds centers with k-means++.
type PlusPlusInit = ikmeans.PlusPlusInit

// InitMethod selects one of the built-in initializers.
type InitMethod int

const (
	// InitKMeansPP selects k-means++ seeding.
	InitKMeansPP InitMethod = iota
	// InitRandom selects uniform bounding-box seeding.
	InitRandom
)

func (m InitMethod) String() string {
	switch m {
	case InitKMeansPP:
		return "kmeans++"
	case InitRandom:
		return "random"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Initializer returns the strategy implementing m.
func (m InitMethod) Initializer() (Initializer, error) {
	switch m {
	case InitKMeansPP:
		return PlusPlusInit{}, nil
	case InitRandom:
		return RandomInit{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidInitMethod, int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m InitMethod) MarshalText() ([]byte, error) {
	if _, err := m.Initializer(); err != nil {
		return nil, err
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *InitMethod) UnmarshalText(text []byte) error {
	parsed, err := ParseInitMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseInitMethod parses "random" or "kmeans++" (also "kmeanspp", "plusplus").
func ParseInitMethod(s string) (InitMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kmeans++", "kmeanspp", "plusplus", "k-means++":
		return InitKMeansPP, nil
	case "random":
		return InitRandom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidInitMethod, s)
	}
}

// EmptyClusterPolicy decides what happens to a cluster that loses all of its
// points during center estimation.
type EmptyClusterPolicy = ikmeans.EmptyPolicy

const (
	// EmptyKeep leaves the previous center in place (default).
	EmptyKeep = ikmeans.EmptyKeep
	// EmptyReseed moves the center onto a uniformly chosen input point.
	EmptyReseed = ikmeans.EmptyReseed
	// EmptyFail aborts the run with a DegenerateClusterError.
	EmptyFail = ikmeans.EmptyFail
)

// ParseEmptyClusterPolicy parses "keep", "reseed" or "fail".
func ParseEmptyClusterPolicy(s string) (EmptyClusterPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "keep", "":
		return EmptyKeep, nil
	case "reseed":
		return EmptyReseed, nil
	case "fail":
		return EmptyFail, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidEmptyClusterPolicy, s)
	}
}

// State is the lifecycle state of a Clusterer.
type State = ikmeans.State

const (
	StateUninitialized = ikmeans.StateUninitialized
	StateSeeded        = ikmeans.StateSeeded
	StateIterating     = ikmeans.StateIterating
	StateConverged     = ikmeans.StateConverged
	StateExhausted     = ikmeans.StateExhausted
)
