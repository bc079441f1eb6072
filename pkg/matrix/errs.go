package matrix

import "errors"

var (
	// ErrBadDim indicates a requested dimension below the minimum of 1.
	ErrBadDim = errors.New("matrix: dimension must be >= 1")

	// ErrBadVector indicates an append vector whose length does not match
	// the current dimension.
	ErrBadVector = errors.New("matrix: vector length does not match dimension")

	// ErrIndexOutOfRange indicates a row/column index outside [0, n).
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrMinDim indicates a delete that would leave an empty matrix.
	ErrMinDim = errors.New("matrix: cannot delete last row/column")
)
