// Package random provides the randomness sources consumed by the clustering
// engine.
//
// Seeding strategies draw every random number through the Source interface,
// so the choice between a reproducible sequence and a nondeterministic one is
// made by the caller rather than inside the algorithm:
//
//	src := random.New(42)        // reproducible, same seed -> same draws
//	src := random.NewEntropy()   // seeded from crypto/rand
//	src := random.NewSequence(0.1, 0.7, 0.3) // exact, replayable draws for tests
package random
