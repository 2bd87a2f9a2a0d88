package domain

import "errors"

// ErrInvalidArgument marks caller errors (week outside the horizon, unknown
// shift, malformed status). These are surfaced immediately, never retried.
var ErrInvalidArgument = errors.New("invalid argument")
