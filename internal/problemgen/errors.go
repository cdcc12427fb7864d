package problemgen

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every input validation error in this package.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrInvalidTable  = fmt.Errorf("%w: table must be mixed or between %d and %d", ErrInvalidArgument, MinTable, MaxTable)
	ErrInvalidCount  = fmt.Errorf("%w: count out of range", ErrInvalidArgument)
	ErrInvalidFactor = fmt.Errorf("%w: factors must be positive", ErrInvalidArgument)
)
