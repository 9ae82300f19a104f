package sigwallet

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateWalletMsg{}, migration.NoModification)
	migration.MustRegister(1, &EnableModuleMsg{}, migration.NoModification)
	migration.MustRegister(1, &DisableModuleMsg{}, migration.NoModification)
	migration.MustRegister(1, &SwapOwnerMsg{}, migration.NoModification)
}

var _ weave.Msg = (*CreateWalletMsg)(nil)
var _ weave.Msg = (*EnableModuleMsg)(nil)
var _ weave.Msg = (*DisableModuleMsg)(nil)
var _ weave.Msg = (*SwapOwnerMsg)(nil)

// Path fulfills weave.Msg interface to allow routing
func (CreateWalletMsg) Path() string {
	return "sigwallet/create"
}

// Validate enforces sanity checks on the message content
func (m *CreateWalletMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateOwners(m.Owners); err != nil {
		return err
	}
	if err := m.Threshold.Validate(); err != nil {
		return errors.Wrap(err, "threshold")
	}
	if int(m.Threshold) > len(m.Owners) {
		return errors.Wrap(errors.ErrInput, "threshold greater than owner count")
	}
	return nil
}

// Path fulfills weave.Msg interface to allow routing
func (EnableModuleMsg) Path() string {
	return "sigwallet/enable_module"
}

// Validate enforces sanity checks on the message content
func (m *EnableModuleMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(m.WalletID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "wallet id")
	}
	if err := m.Module.Validate(); err != nil {
		return errors.Wrap(err, "module")
	}
	return nil
}

// Path fulfills weave.Msg interface to allow routing
func (DisableModuleMsg) Path() string {
	return "sigwallet/disable_module"
}

// Validate enforces sanity checks on the message content
func (m *DisableModuleMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(m.WalletID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "wallet id")
	}
	if err := m.Module.Validate(); err != nil {
		return errors.Wrap(err, "module")
	}
	return nil
}

// Path fulfills weave.Msg interface to allow routing
func (SwapOwnerMsg) Path() string {
	return "sigwallet/swap_owner"
}

// Validate enforces sanity checks on the message content. An empty
// predecessor is allowed and means the old owner heads the list.
func (m *SwapOwnerMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(m.WalletID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "wallet id")
	}
	if len(m.Predecessor) != 0 {
		if err := m.Predecessor.Validate(); err != nil {
			return errors.Wrap(err, "predecessor")
		}
	}
	if err := m.OldOwner.Validate(); err != nil {
		return errors.Wrap(err, "old owner")
	}
	if err := m.NewOwner.Validate(); err != nil {
		return errors.Wrap(err, "new owner")
	}
	if m.OldOwner.Equals(m.NewOwner) {
		return errors.Wrap(errors.ErrInput, "old and new owner are the same")
	}
	return nil
}
