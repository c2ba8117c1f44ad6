package mines

import "errors"

var (
	ErrInvalidDimensions = errors.New("rows and cols must be positive")
	ErrInvalidMineCount  = errors.New("mine count must be less than the number of cells")
	ErrOutOfBounds       = errors.New("coordinate out of bounds")
)
