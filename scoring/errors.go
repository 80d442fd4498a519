package scoring

import "errors"

var (
	// ErrBackendRequired is returned when a nil similarity backend is given.
	ErrBackendRequired = errors.New("similarity backend required")
)
