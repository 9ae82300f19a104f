// Package heirtest provides wallet implementations for testing the heir
// extension without a full wallet deployment.
package heirtest

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

// Swap records a single owner replacement instruction received by a wallet.
type Swap struct {
	WalletID    []byte
	Module      weave.Address
	Predecessor weave.Address
	OldOwner    weave.Address
	NewOwner    weave.Address
}

// Wallet is an in memory wallet. It implements only the mandatory capability
// surface, so owner membership checks fall back to scanning the owner list.
type Wallet struct {
	// OwnerList is the current ordered owner list.
	OwnerList []weave.Address

	// OwnersErr if set is returned by every Owners call.
	OwnersErr error

	// SwapErr if set is returned by every SwapOwner call, leaving the
	// owner list untouched.
	SwapErr error

	// Swaps collects all received replacement instructions, including
	// rejected ones.
	Swaps []Swap
}

func (w *Wallet) Owners(db weave.ReadOnlyKVStore, walletID []byte) ([]weave.Address, error) {
	if w.OwnersErr != nil {
		return nil, w.OwnersErr
	}
	owners := make([]weave.Address, len(w.OwnerList))
	copy(owners, w.OwnerList)
	return owners, nil
}

func (w *Wallet) SwapOwner(db weave.KVStore, walletID []byte, module weave.Address, predecessor, oldOwner, newOwner weave.Address) error {
	w.Swaps = append(w.Swaps, Swap{
		WalletID:    walletID,
		Module:      module,
		Predecessor: predecessor,
		OldOwner:    oldOwner,
		NewOwner:    newOwner,
	})
	if w.SwapErr != nil {
		return w.SwapErr
	}
	for i, o := range w.OwnerList {
		if o.Equals(oldOwner) {
			w.OwnerList[i] = newOwner
			return nil
		}
	}
	return errors.Wrapf(errors.ErrNotFound, "owner %s", oldOwner)
}

// CheckingWallet extends Wallet with a direct owner membership check.
type CheckingWallet struct {
	Wallet

	// IsOwnerErr if set is returned by every IsOwner call.
	IsOwnerErr error

	// IsOwnerCalls counts how often the direct check was used.
	IsOwnerCalls int
}

func (w *CheckingWallet) IsOwner(db weave.ReadOnlyKVStore, walletID []byte, a weave.Address) (bool, error) {
	w.IsOwnerCalls++
	if w.IsOwnerErr != nil {
		return false, w.IsOwnerErr
	}
	for _, o := range w.OwnerList {
		if o.Equals(a) {
			return true, nil
		}
	}
	return false, nil
}
