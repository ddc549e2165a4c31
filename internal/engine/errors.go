package engine

import "errors"

// Error kinds surfaced by the engine. Callers classify with errors.Is;
// wrapped messages identify the offending field or hour.
var (
	// ErrInvalidInput covers malformed load profiles and equipment specs:
	// negative loads, non-hourly or non-increasing timestamps, bad curve
	// tables, non-positive efficiencies.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInconsistentScenario covers configurations that cannot dispatch:
	// both residual-heating fuel paths at once, or AWHP cooling without a
	// heating phase to source the unit count from.
	ErrInconsistentScenario = errors.New("inconsistent scenario")

	// ErrMissingEmissionsRate means a {month, hour-of-day} key needed by the
	// load timeline has no row in the reduced dataset. Fatal: defaulting it
	// would bias annual totals.
	ErrMissingEmissionsRate = errors.New("missing emissions rate")
)
