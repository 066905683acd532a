package domain

import "errors"

// Validation errors are reported before any network activity.
var (
	ErrInvalidDuration       = errors.New("invalid validation period")
	ErrConflictingThresholds = errors.New("queryCountThreshold and queryCountThresholdPercentage are mutually exclusive")
	ErrThresholdOutOfRange   = errors.New("queryCountThresholdPercentage must be between 0 and 0.05")
)

// ErrMissingServiceID means no service identity was configured; the check
// cannot be attributed to anything and never starts.
var ErrMissingServiceID = errors.New("no service configured: set \"service\" in .schemaguard.yaml")

// ErrBreakingChanges signals the non-zero exit status after a report has
// already been emitted. It carries no message of its own beyond the count
// baked in by the caller and is never printed.
var ErrBreakingChanges = errors.New("breaking changes detected")
