package wsn

import "errors"

var (
	// ErrInvalidConfig indicates non-finite network parameters.
	ErrInvalidConfig = errors.New("wsn: invalid configuration")

	// ErrInvalidNode indicates a node with non-finite coordinates or a
	// negative data rate.
	ErrInvalidNode = errors.New("wsn: invalid node")

	// ErrIndexOutOfRange indicates a sensor index outside the node sequence.
	ErrIndexOutOfRange = errors.New("wsn: sensor index out of range")
)
