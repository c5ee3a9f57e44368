// Package fixture loads small YAML-encoded scenario chunks used by tests
// and examples into a *grid.DenseChunk, following lvlath/builder's
// deterministic-constructor style: same YAML bytes always produce the same
// chunk, and malformed input returns a sentinel error rather than
// panicking (this is test/example tooling, not the core).
package fixture
