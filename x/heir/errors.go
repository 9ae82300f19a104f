package heir

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrNoHeir is returned when an operation requires an existing
	// succession entry and none is configured for the owner.
	ErrNoHeir = errors.Register(1300, "no beneficiary configured")

	// ErrNotClaimable is returned when a claim is attempted before the
	// activation time of the entry.
	ErrNotClaimable = errors.Register(1301, "claim not yet active")
)
