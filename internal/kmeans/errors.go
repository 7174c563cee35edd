package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrTooFewPoints is returned when k exceeds the number of points.
	ErrTooFewPoints = errors.New("k exceeds the number of points")

	// ErrDegenerateCluster is returned when a cluster loses all members and
	// the empty cluster policy is EmptyFail.
	ErrDegenerateCluster = errors.New("cluster has no members")

	// ErrInvalidCenters is returned when an initializer produces the wrong
	// number of centers or centers of the wrong dimension.
	ErrInvalidCenters = errors.New("initializer returned invalid centers")
)

// DegenerateClusterError reports the cluster that became empty.
type DegenerateClusterError struct {
	Cluster   int
	Iteration int
}

func (e *DegenerateClusterError) Error() string {
	return fmt.Sprintf("cluster %d has no members after iteration %d", e.Cluster, e.Iteration)
}

func (e *DegenerateClusterError) Unwrap() error { return ErrDegenerateCluster }

func checkK(k, n int) error {
	if k <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	if k > n {
		return fmt.Errorf("%w: k=%d, n=%d", ErrTooFewPoints, k, n)
	}
	return nil
}
