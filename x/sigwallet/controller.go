package sigwallet

import (
	"github.com/AlexNa-Holdings/heirsafe-module/x/heir"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// Controller exposes wallet state and owner replacement to other extensions.
// It satisfies the capability interface the heir extension expects from a
// wallet, including the optional fast owner membership check.
type Controller struct {
	bucket orm.ModelBucket
}

var _ heir.Wallet = (*Controller)(nil)
var _ heir.OwnerChecker = (*Controller)(nil)

func NewController() *Controller {
	return &Controller{bucket: NewBucket()}
}

// Owners returns a copy of the ordered owner list of the wallet.
func (c *Controller) Owners(db weave.ReadOnlyKVStore, walletID []byte) ([]weave.Address, error) {
	w, err := c.load(db, walletID)
	if err != nil {
		return nil, err
	}
	owners := make([]weave.Address, len(w.Owners))
	copy(owners, w.Owners)
	return owners, nil
}

// IsOwner returns true if the address is in the owner list of the wallet.
func (c *Controller) IsOwner(db weave.ReadOnlyKVStore, walletID []byte, a weave.Address) (bool, error) {
	w, err := c.load(db, walletID)
	if err != nil {
		return false, err
	}
	return w.OwnerIndex(a) >= 0, nil
}

// SwapOwner replaces oldOwner with newOwner in the owner list of the wallet,
// keeping the position and the threshold untouched. The caller acts as the
// given module address, which must be enabled on the wallet or be the wallet
// authority itself. Predecessor must be the owner directly preceding
// oldOwner, empty when oldOwner heads the list.
func (c *Controller) SwapOwner(db weave.KVStore, walletID []byte, module weave.Address, predecessor, oldOwner, newOwner weave.Address) error {
	w, err := c.load(db, walletID)
	if err != nil {
		return err
	}
	if !w.HasModule(module) && !Condition(walletID).Address().Equals(module) {
		return errors.Wrapf(ErrModuleDisabled, "%s", module)
	}
	if err := newOwner.Validate(); err != nil {
		return errors.Wrap(err, "new owner")
	}
	if w.OwnerIndex(newOwner) >= 0 {
		return errors.Wrapf(errors.ErrDuplicate, "owner %s", newOwner)
	}
	idx := w.OwnerIndex(oldOwner)
	if idx < 0 {
		return errors.Wrapf(ErrNotOwner, "%s", oldOwner)
	}
	switch {
	case idx == 0:
		if len(predecessor) != 0 {
			return errors.Wrap(ErrPredecessor, "owner heads the list")
		}
	case !predecessor.Equals(w.Owners[idx-1]):
		return errors.Wrapf(ErrPredecessor, "%s", predecessor)
	}
	w.Owners[idx] = newOwner
	if _, err := c.bucket.Put(db, walletID, w); err != nil {
		return errors.Wrap(err, "cannot store wallet")
	}
	return nil
}

func (c *Controller) load(db weave.ReadOnlyKVStore, walletID []byte) (*Wallet, error) {
	var w Wallet
	if err := c.bucket.One(db, walletID, &w); err != nil {
		return nil, errors.Wrapf(err, "wallet %x", walletID)
	}
	return &w, nil
}
