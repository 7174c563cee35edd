package kmeans

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/kmeans/model"
	"github.com/hupe1980/kmeans/random"
)

// DefaultMaxIterations bounds the number of center re-estimations per run.
const DefaultMaxIterations = 100

// State is the lifecycle state of a clustering run.
type State int

const (
	// StateUninitialized means no centers exist yet.
	StateUninitialized State = iota
	// StateSeeded means the initializer has produced the first centers.
	StateSeeded
	// StateIterating means assignment and estimation rounds are in progress.
	StateIterating
	// StateConverged means an assignment round changed no label.
	StateConverged
	// StateExhausted means the iteration bound was reached before convergence.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateSeeded:
		return "seeded"
	case StateIterating:
		return "iterating"
	case StateConverged:
		return "converged"
	case StateExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Terminal reports whether s ends a run.
func (s State) Terminal() bool {
	return s == StateConverged || s == StateExhausted
}

// Config describes a single clustering run.
type Config struct {
	Points        model.PointSet
	K             int
	Initializer   Initializer
	Source        random.Source
	MaxIterations int
	EmptyPolicy   EmptyPolicy

	// OnSeed, if set, observes the initial centers.
	OnSeed func(centers []model.Point)
	// OnIteration, if set, observes every assignment round.
	OnIteration func(iteration, changed int, inertia float64)
}

// Outcome is the result of a run in a terminal state.
type Outcome struct {
	Labels        []int
	Centers       []model.Point
	State         State
	Iterations    int
	Inertia       float64
	EmptyClusters []int
}

// Run performs Lloyd's algorithm on cfg.Points.
//
// Labels start at -1 so the first assignment round always counts as a change.
// Each round assigns every point to its nearest center; a round without
// changes ends the run in StateConverged. Otherwise centers are re-estimated,
// at most MaxIterations times, after which the run ends in StateExhausted
// with labels that match the final centers.
func Run(ctx context.Context, cfg Config) (*Outcome, error) {
	points := cfg.Points
	if err := points.Validate(); err != nil {
		return nil, err
	}
	if err := checkK(cfg.K, len(points)); err != nil {
		return nil, err
	}

	seeder := cfg.Initializer
	if seeder == nil {
		seeder = PlusPlusInit{}
	}
	src := cfg.Source
	if src == nil {
		src = random.New(random.DefaultSeed)
	}
	maxIter := cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	seeded, err := seeder.Init(points, cfg.K, src)
	if err != nil {
		return nil, fmt.Errorf("initialize centers: %w", err)
	}
	if err := checkCenters(seeded, cfg.K, points.Dim()); err != nil {
		return nil, err
	}

	// Centers are updated in place; never write through to the initializer's slices.
	centers := make([]model.Point, len(seeded))
	for i, c := range seeded {
		centers[i] = c.Clone()
	}
	if cfg.OnSeed != nil {
		cfg.OnSeed(centers)
	}

	out := &Outcome{
		Labels:  make([]int, len(points)),
		Centers: centers,
		State:   StateSeeded,
	}
	for i := range out.Labels {
		out.Labels[i] = -1
	}

	emptySeen := make(map[int]struct{})
	for round := 0; ; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out.State = StateIterating

		changed, inertia := Assign(points, out.Centers, out.Labels)
		out.Inertia = inertia
		if cfg.OnIteration != nil {
			cfg.OnIteration(round, changed, inertia)
		}

		if changed == 0 {
			out.State = StateConverged
			break
		}
		if out.Iterations >= maxIter {
			out.State = StateExhausted
			break
		}

		empty, err := Estimate(points, out.Labels, out.Centers, cfg.EmptyPolicy, src)
		if err != nil {
			var dce *DegenerateClusterError
			if errors.As(err, &dce) {
				dce.Iteration = out.Iterations
			}
			return nil, err
		}
		for _, c := range empty {
			emptySeen[c] = struct{}{}
		}
		out.Iterations++
	}

	for c := range out.Centers {
		if _, ok := emptySeen[c]; ok {
			out.EmptyClusters = append(out.EmptyClusters, c)
		}
	}

	return out, nil
}

func checkCenters(centers []model.Point, k, dim int) error {
	if len(centers) != k {
		return fmt.Errorf("%w: want %d centers, got %d", ErrInvalidCenters, k, len(centers))
	}
	for i, c := range centers {
		if len(c) != dim {
			return fmt.Errorf("%w: center %d has dimension %d, want %d", ErrInvalidCenters, i, len(c), dim)
		}
	}
	return nil
}
