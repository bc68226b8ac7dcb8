package sim

import "errors"

// ErrInvalidDelay marks a scheduling attempt with a negative or non-finite
// delay. Delays are always relative to the current clock, so a correct caller
// can never produce one; ScheduleAfter panics with an error wrapping this
// sentinel rather than returning it.
var ErrInvalidDelay = errors.New("invalid delay: must be finite and non-negative")
