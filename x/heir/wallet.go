package heir

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

// Wallet is the capability interface this extension requires from the
// external multi owner wallet. Any wallet implementation must expose its
// ordered owner list and an owner replacement instruction. The wallet is the
// final arbiter of a replacement: it validates the predecessor pointer, the
// module authorization and its own internal invariants, and it must fail
// without partial state changes.
type Wallet interface {
	// Owners returns the current owner list of the wallet with the given
	// ID, in wallet order.
	Owners(db weave.ReadOnlyKVStore, walletID []byte) ([]weave.Address, error)

	// SwapOwner replaces oldOwner with newOwner in the owner list of the
	// wallet. The module address identifies the caller against the wallet
	// authorization gate. Predecessor is the address directly preceding
	// oldOwner in the list, empty when oldOwner is the head.
	SwapOwner(db weave.KVStore, walletID []byte, module weave.Address, predecessor, oldOwner, newOwner weave.Address) error
}

// OwnerChecker is an optional extension of the Wallet interface. Newer
// wallet implementations answer a membership question directly instead of
// exposing only the full list.
type OwnerChecker interface {
	IsOwner(db weave.ReadOnlyKVStore, walletID []byte, a weave.Address) (bool, error)
}

// walletHasOwner answers whether given address is a current owner of the
// wallet. The direct membership check is preferred when the wallet supports
// it. When it does not, or when that call fails, membership is decided by a
// linear scan of the owner list. The result is never cached, wallet
// membership can change between any two calls.
func walletHasOwner(db weave.ReadOnlyKVStore, w Wallet, walletID []byte, a weave.Address) (bool, error) {
	if c, ok := w.(OwnerChecker); ok {
		if is, err := c.IsOwner(db, walletID, a); err == nil {
			return is, nil
		}
	}
	owners, err := w.Owners(db, walletID)
	if err != nil {
		return false, errors.Wrap(err, "owner list")
	}
	for _, o := range owners {
		if a.Equals(o) {
			return true, nil
		}
	}
	return false, nil
}
