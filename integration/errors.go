package integration

import "errors"

// ErrNoSeeds indicates Build was called with an empty seed list. Every
// build must start from at least one source cell.
var ErrNoSeeds = errors.New("integration: at least one seed is required")
