package sigwallet

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrModuleDisabled is returned when a module address that is not
	// enabled on the wallet issues an instruction.
	ErrModuleDisabled = errors.Register(1320, "module not enabled")

	// ErrNotOwner is returned when an address expected in the owner list
	// is not there.
	ErrNotOwner = errors.Register(1321, "not a wallet owner")

	// ErrPredecessor is returned when the supplied predecessor does not
	// directly precede the old owner in the owner list.
	ErrPredecessor = errors.Register(1322, "wrong predecessor")
)
