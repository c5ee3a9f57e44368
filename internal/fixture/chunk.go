package fixture

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wayfield/grid"
)

// chunkYAML is the on-disk shape of a scenario chunk. Either field may be
// omitted entirely: an omitted cost_base leaves every cell at cost 1 (the
// NewDenseChunk default), and an omitted blockers leaves no blockers. A
// field that is present must be a complete grid.
type chunkYAML struct {
	CostBase [][]uint8 `yaml:"cost_base"`
	Blockers [][]int   `yaml:"blockers"`
}

// ParseChunk decodes a YAML-encoded scenario chunk. Any grid present must
// have exactly grid.FieldResR rows of grid.FieldResC entries each.
func ParseChunk(data []byte) (*grid.DenseChunk, error) {
	var raw chunkYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	dc := grid.NewDenseChunk()

	if raw.CostBase != nil {
		if err := apply(raw.CostBase, dc.SetCostBase); err != nil {
			return nil, err
		}
	}
	if raw.Blockers != nil {
		if err := apply(raw.Blockers, dc.SetBlockers); err != nil {
			return nil, err
		}
	}

	return dc, nil
}

// LoadChunk reads and parses a scenario chunk from path.
func LoadChunk(path string) (*grid.DenseChunk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseChunk(data)
}

// apply validates rows' dimensions and calls set(r, c, value) for every
// cell, for either a uint8 or int value grid.
func apply[T any](rows [][]T, set func(r, c int, v T)) error {
	if len(rows) != grid.FieldResR {
		return ErrDimensionMismatch
	}
	for r, row := range rows {
		if len(row) != grid.FieldResC {
			return ErrDimensionMismatch
		}
		for c, v := range row {
			set(r, c, v)
		}
	}
	return nil
}
