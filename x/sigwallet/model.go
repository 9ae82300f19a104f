package sigwallet

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

const (
	// maxOwners caps the owner list. A linear scan over the owners is
	// cheap at this size and the wire payload stays small.
	maxOwners = 100
)

func init() {
	migration.MustRegister(1, &Wallet{}, migration.NoModification)
}

// Weight tells how many owner signatures are required to act as the wallet.
type Weight int32

func (w Weight) Validate() error {
	if w < 1 {
		return errors.Wrap(errors.ErrInput, "weight must be at least 1")
	}
	return nil
}

var _ orm.CloneableData = (*Wallet)(nil)

// Validate ensures the Wallet is valid.
func (w *Wallet) Validate() error {
	if err := w.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateOwners(w.Owners); err != nil {
		return err
	}
	if err := w.Threshold.Validate(); err != nil {
		return errors.Wrap(err, "threshold")
	}
	if int(w.Threshold) > len(w.Owners) {
		return errors.Wrap(errors.ErrInput, "threshold greater than owner count")
	}
	for i, m := range w.Modules {
		if err := m.Validate(); err != nil {
			return errors.Wrapf(err, "module #%d", i)
		}
		for _, other := range w.Modules[i+1:] {
			if m.Equals(other) {
				return errors.Wrapf(errors.ErrDuplicate, "module %s", m)
			}
		}
	}
	return nil
}

func validateOwners(owners []weave.Address) error {
	if len(owners) == 0 {
		return errors.Wrap(errors.ErrEmpty, "owners")
	}
	if len(owners) > maxOwners {
		return errors.Wrapf(errors.ErrInput, "at most %d owners allowed", maxOwners)
	}
	for i, o := range owners {
		if err := o.Validate(); err != nil {
			return errors.Wrapf(err, "owner #%d", i)
		}
		for _, other := range owners[i+1:] {
			if o.Equals(other) {
				return errors.Wrapf(errors.ErrDuplicate, "owner %s", o)
			}
		}
	}
	return nil
}

// Copy makes a deep copy of the wallet.
func (w *Wallet) Copy() orm.CloneableData {
	owners := make([]weave.Address, len(w.Owners))
	copy(owners, w.Owners)
	modules := make([]weave.Address, len(w.Modules))
	copy(modules, w.Modules)
	return &Wallet{
		Metadata:  w.Metadata.Copy(),
		Owners:    owners,
		Threshold: w.Threshold,
		Modules:   modules,
	}
}

// OwnerIndex returns the position of the address in the owner list, or -1 if
// the address is not an owner.
func (w *Wallet) OwnerIndex(a weave.Address) int {
	for i, o := range w.Owners {
		if o.Equals(a) {
			return i
		}
	}
	return -1
}

// HasModule returns true if the address is an enabled module of this wallet.
func (w *Wallet) HasModule(a weave.Address) bool {
	for _, m := range w.Modules {
		if m.Equals(a) {
			return true
		}
	}
	return false
}

// Condition returns the authority condition of the wallet with the given ID.
// Its address is what the wallet acts as when the signature threshold is met.
func Condition(id []byte) weave.Condition {
	return weave.NewCondition("sigwallet", "usage", id)
}

func NewBucket() orm.ModelBucket {
	b := orm.NewModelBucket("wallet", &Wallet{},
		orm.WithIDSequence(walletSeq),
	)
	return migration.NewModelBucket("sigwallet", b)
}

var walletSeq = orm.NewSequence("sigwallet", "id")
