package kmeans

import (
	"errors"
	"fmt"

	ikmeans "github.com/hupe1980/kmeans/internal/kmeans"
	"github.com/hupe1980/kmeans/internal/nn"
	"github.com/hupe1980/kmeans/model"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = ikmeans.ErrInvalidK

	// ErrTooFewPoints is returned when k exceeds the number of points.
	ErrTooFewPoints = ikmeans.ErrTooFewPoints

	// ErrEmptyPointSet is returned when clustering an empty point set.
	ErrEmptyPointSet = model.ErrEmptyPointSet

	// ErrZeroDimension is returned when points have no coordinates.
	ErrZeroDimension = model.ErrZeroDimension

	// ErrDegenerateCluster is returned when a cluster becomes empty under EmptyFail.
	ErrDegenerateCluster = ikmeans.ErrDegenerateCluster

	// ErrInvalidCenters is returned when a custom Initializer misbehaves.
	ErrInvalidCenters = ikmeans.ErrInvalidCenters

	// ErrNoCandidate is returned when a nearest-point query excludes every point.
	ErrNoCandidate = nn.ErrNoCandidate

	// ErrNotClustered is returned when results are queried before a run completed.
	ErrNotClustered = errors.New("clustering not yet performed")

	// ErrInvalidLabel is returned when a label outside [0, k) is queried.
	ErrInvalidLabel = errors.New("invalid label")

	// ErrInvalidInitMethod is returned for an unknown initialization method.
	ErrInvalidInitMethod = errors.New("invalid init method")

	// ErrInvalidEmptyClusterPolicy is returned for an unknown empty cluster policy.
	ErrInvalidEmptyClusterPolicy = errors.New("invalid empty cluster policy")
)

// DimensionMismatchError indicates a point whose dimensionality differs from
// the dimension of the point set.
type DimensionMismatchError = model.DimensionMismatchError

// InvalidCoordinateError indicates a NaN or infinite coordinate.
type InvalidCoordinateError = model.InvalidCoordinateError

// DegenerateClusterError reports the cluster that lost all of its members.
//
// It unwraps to ErrDegenerateCluster.
type DegenerateClusterError = ikmeans.DegenerateClusterError

// InvalidLabelError indicates a label query outside [0, K).
//
// It unwraps to ErrInvalidLabel.
type InvalidLabelError struct {
	Label int
	K     int
}

func (e *InvalidLabelError) Error() string {
	return fmt.Sprintf("invalid label %d: must be in [0, %d)", e.Label, e.K)
}

func (e *InvalidLabelError) Unwrap() error { return ErrInvalidLabel }
