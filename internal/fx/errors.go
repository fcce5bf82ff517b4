package fx

import "errors"

var (
	// ErrConfiguration reports a degenerate numeric configuration, such as a
	// range whose input bounds are equal.
	ErrConfiguration = errors.New("fx: invalid configuration")

	// ErrPrecondition reports an input the caller was expected to prevent,
	// such as a surface with zero area.
	ErrPrecondition = errors.New("fx: precondition violated")
)
