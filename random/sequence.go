package random

import "sync"

// Sequence is a Source that replays a fixed list of values in [0, 1).
// After the last value it wraps around to the first.
//
// IntN maps the next value v to int(v * n), so a test can steer a seeding
// strategy to an exact index.
type Sequence struct {
	mu     sync.Mutex
	values []float64
	pos    int
}

// NewSequence creates a Sequence over values. Values outside [0, 1) are
// clamped into range.
func NewSequence(values ...float64) *Sequence {
	vs := make([]float64, len(values))
	for i, v := range values {
		switch {
		case v < 0:
			v = 0
		case v >= 1:
			v = 1 - 1e-12
		}
		vs[i] = v
	}
	if len(vs) == 0 {
		vs = []float64{0}
	}
	return &Sequence{values: vs}
}

// Float64 implements Source.
func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.pos]
	s.pos = (s.pos + 1) % len(s.values)
	return v
}

// IntN implements Source.
func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		panic("random: invalid argument to IntN")
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Reset rewinds the sequence to its first value.
func (s *Sequence) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = 0
}
