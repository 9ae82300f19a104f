package heir

import (
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &HeirConfig{}, migration.NoModification)
	migration.MustRegister(1, &Config{}, migration.NoModification)
}

var _ orm.CloneableData = (*HeirConfig)(nil)

// Validate ensures the succession entry is complete. An entry is only ever
// persisted with a beneficiary set, so an empty beneficiary is invalid here
// even though an absent entry is a legal state of the store.
func (c *HeirConfig) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := c.Beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	if c.ActivationTime == 0 {
		// Zero is a valid UNIX time that dates to 1970-01-01. It is
		// always in the past and means the value was not provided.
		return errors.Wrap(errors.ErrInput, "activation time is required")
	}
	if err := c.ActivationTime.Validate(); err != nil {
		return errors.Wrap(err, "activation time")
	}
	return nil
}

// Copy returns a deep copy of this entry.
func (c *HeirConfig) Copy() orm.CloneableData {
	return &HeirConfig{
		Metadata:       c.Metadata.Copy(),
		Beneficiary:    c.Beneficiary.Clone(),
		ActivationTime: c.ActivationTime,
	}
}

var _ orm.CloneableData = (*Config)(nil)

// Validate ensures the wallet binding is complete. A zero wallet reference
// must never be persisted.
func (c *Config) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(c.WalletID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "wallet id")
	}
	if err := c.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return nil
}

// Copy returns a deep copy of this configuration.
func (c *Config) Copy() orm.CloneableData {
	walletID := make([]byte, len(c.WalletID))
	copy(walletID, c.WalletID)
	return &Config{
		Metadata: c.Metadata.Copy(),
		WalletID: walletID,
		Address:  c.Address.Clone(),
	}
}

// NewBucket returns the bucket holding the succession entries. Entries are
// keyed by the address of the owner that configured them. That keying is the
// whole write-access rule of this store: handlers must never pass any key
// other than the authenticated caller address (the claim handler deletes by
// the target owner key, after the beneficiary authorized the claim).
func NewBucket() orm.ModelBucket {
	b := orm.NewModelBucket("heir", &HeirConfig{},
		orm.WithIndex("beneficiary", idxBeneficiary, false),
	)
	return migration.NewModelBucket("heir", b)
}

func idxBeneficiary(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	c, ok := obj.Value().(*HeirConfig)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of HeirConfig")
	}
	return c.Beneficiary, nil
}
