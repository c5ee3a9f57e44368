// Package fieldid computes the 64-bit deterministic field identity used to
// cache built fields. Two calls with the same logical target and chunk
// must return the same ID; no entropy source or allocation is involved.
package fieldid
