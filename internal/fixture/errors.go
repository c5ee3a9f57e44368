package fixture

import "errors"

// ErrDimensionMismatch indicates a scenario's cost_base or blockers grid
// does not have exactly grid.FieldResR rows of grid.FieldResC columns.
var ErrDimensionMismatch = errors.New("fixture: scenario grid dimensions do not match grid.FieldResR x grid.FieldResC")
