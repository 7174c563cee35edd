package kmeans

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	ikmeans "github.com/hupe1980/kmeans/internal/kmeans"
	"github.com/hupe1980/kmeans/internal/nn"
	"github.com/hupe1980/kmeans/model"
	"github.com/hupe1980/kmeans/random"
)

// Clusterer partitions a point set into K clusters.
//
// Configuration setters validate eagerly and reset any previous result.
// Queries are answered only once a run has reached a terminal state;
// before that they return ErrNotClustered.
//
// Thread Safety: all methods may be called concurrently, but a Cluster call
// blocks every other method until it returns.
type Clusterer struct {
	mu     sync.RWMutex
	opts   options
	points model.PointSet
	state  State
	result *Result
}

// New creates a Clusterer configured by opts.
func New(opts ...Option) *Clusterer {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Clusterer{opts: o}
}

// Fit clusters points into k clusters and returns the result.
func Fit(ctx context.Context, points model.PointSet, k int, opts ...Option) (*Result, error) {
	c := New(opts...)
	if err := c.SetPoints(points); err != nil {
		return nil, err
	}
	if err := c.SetK(k); err != nil {
		return nil, err
	}
	return c.Cluster(ctx)
}

func (c *Clusterer) reset() {
	c.state = StateUninitialized
	c.result = nil
}

// SetPoints replaces the points to cluster. The points are copied; later
// changes to the caller's slices do not affect the Clusterer.
func (c *Clusterer) SetPoints(points model.PointSet) error {
	if err := points.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.opts.k > len(points) {
		return fmt.Errorf("%w: k=%d, n=%d", ErrTooFewPoints, c.opts.k, len(points))
	}

	c.points = points.Clone()
	c.reset()
	return nil
}

// Points returns a copy of the configured points.
func (c *Clusterer) Points() model.PointSet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.points.Clone()
}

// SetK sets the number of clusters.
func (c *Clusterer) SetK(k int) error {
	if k <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.points != nil && k > len(c.points) {
		return fmt.Errorf("%w: k=%d, n=%d", ErrTooFewPoints, k, len(c.points))
	}

	c.opts.k = k
	c.reset()
	return nil
}

// K returns the number of clusters.
func (c *Clusterer) K() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.opts.k
}

// SetInitMethod selects a built-in initialization strategy and clears any
// custom Initializer.
func (c *Clusterer) SetInitMethod(m InitMethod) error {
	if _, err := m.Initializer(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.initMethod = m
	c.opts.initializer = nil
	return nil
}

// SetInitializer installs a custom initialization strategy.
func (c *Clusterer) SetInitializer(seeder Initializer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.initializer = seeder
}

// SetRandom sets the determinism flag: true draws from an entropy-seeded
// source, false from a fixed reproducible sequence. It clears any source
// installed with SetSource.
func (c *Clusterer) SetRandom(r bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.random = r
	c.opts.source = nil
}

// SetSource injects the random source used by subsequent runs.
func (c *Clusterer) SetSource(src random.Source) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.source = src
}

// State returns the lifecycle state of the last run.
func (c *Clusterer) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Cluster runs k-means to convergence (or the iteration bound) and returns a
// copy of the result.
func (c *Clusterer) Cluster(ctx context.Context) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reset()
	start := time.Now()

	res, err := c.run(ctx, start)

	duration := time.Since(start)
	if res != nil {
		duration = res.Duration
	}

	c.opts.metricsCollector.RecordCluster(iterationsOf(res), res != nil && res.Converged, duration, err)

	if err != nil {
		c.state = StateUninitialized
		return nil, err
	}

	c.state = res.State
	c.result = res
	return res.clone(), nil
}

func (c *Clusterer) run(ctx context.Context, start time.Time) (*Result, error) {
	runID := uuid.NewString()
	logger := c.opts.logger.WithRunID(runID)

	if c.points == nil {
		err := ErrEmptyPointSet
		logger.LogCluster(ctx, nil, err)
		return nil, err
	}

	seeder, err := c.opts.runInitializer()
	if err != nil {
		logger.LogCluster(ctx, nil, err)
		return nil, err
	}

	logger = logger.
		WithK(c.opts.k).
		WithDimension(c.points.Dim()).
		WithCount(len(c.points))

	out, err := ikmeans.Run(ctx, ikmeans.Config{
		Points:        c.points,
		K:             c.opts.k,
		Initializer:   seeder,
		Source:        c.opts.runSource(),
		MaxIterations: c.opts.maxIterations,
		EmptyPolicy:   c.opts.emptyPolicy,
		OnSeed: func(centers []model.Point) {
			c.state = StateSeeded
			logger.LogSeed(ctx, initName(c.opts), len(centers))
		},
		OnIteration: func(round, changed int, inertia float64) {
			c.state = StateIterating
			logger.LogIteration(ctx, round, changed, inertia)
			c.opts.metricsCollector.RecordIteration(changed)
		},
	})
	if err != nil {
		logger.LogCluster(ctx, nil, err)
		return nil, err
	}

	res := &Result{
		RunID:         runID,
		K:             c.opts.k,
		Labels:        out.Labels,
		Centers:       out.Centers,
		State:         out.State,
		Converged:     out.State == StateConverged,
		Iterations:    out.Iterations,
		Inertia:       out.Inertia,
		EmptyClusters: out.EmptyClusters,
		Duration:      time.Since(start),
		points:        c.points,
	}
	logger.LogCluster(ctx, res, nil)

	return res, nil
}

func initName(o options) string {
	if o.initializer != nil {
		return fmt.Sprintf("%T", o.initializer)
	}
	return o.initMethod.String()
}

func iterationsOf(res *Result) int {
	if res == nil {
		return 0
	}
	return res.Iterations
}

func (c *Clusterer) completed() (*Result, error) {
	if c.result == nil || !c.state.Terminal() {
		return nil, ErrNotClustered
	}
	return c.result, nil
}

// Result returns a copy of the last completed run.
func (c *Clusterer) Result() (*Result, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res, err := c.completed()
	if err != nil {
		return nil, err
	}
	return res.clone(), nil
}

// ClusterCenters returns the K cluster centers of the last run.
func (c *Clusterer) ClusterCenters() ([]model.Point, error) {
	res, err := c.Result()
	if err != nil {
		return nil, err
	}
	return res.Centers, nil
}

// Labels returns the cluster index of every point of the last run.
func (c *Clusterer) Labels() ([]int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res, err := c.completed()
	if err != nil {
		return nil, err
	}
	return slices.Clone(res.Labels), nil
}

// IndicesWithLabel returns the positions of all points labeled label.
func (c *Clusterer) IndicesWithLabel(label int) ([]int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res, err := c.completed()
	if err != nil {
		return nil, err
	}
	return res.IndicesWithLabel(label)
}

// PointsWithLabel returns all points labeled label.
func (c *Clusterer) PointsWithLabel(label int) ([]model.Point, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res, err := c.completed()
	if err != nil {
		return nil, err
	}
	return res.PointsWithLabel(label)
}

// ClosestPoint returns the index of and distance to the configured point
// nearest to q, ignoring the indices in exclude.
func (c *Clusterer) ClosestPoint(q model.Point, exclude ...int) (int, float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if dim := c.points.Dim(); dim > 0 && len(q) != dim {
		return -1, 0, &DimensionMismatchError{Index: 0, Expected: dim, Actual: len(q)}
	}
	return nn.ClosestPoint(q, c.points, nn.ExclusionSet(exclude...))
}

// WriteClusterCenters writes the cluster centers of the last run to w, one
// center per line.
func (c *Clusterer) WriteClusterCenters(w io.Writer) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res, err := c.completed()
	if err != nil {
		return err
	}
	return res.WriteCenters(w)
}

// OutputClusterCenters writes the cluster centers of the last run to stdout.
func (c *Clusterer) OutputClusterCenters() error {
	return c.WriteClusterCenters(os.Stdout)
}
