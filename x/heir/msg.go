package heir

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &SetBeneficiaryMsg{}, migration.NoModification)
	migration.MustRegister(1, &SetActivationTimeMsg{}, migration.NoModification)
	migration.MustRegister(1, &RemoveBeneficiaryMsg{}, migration.NoModification)
	migration.MustRegister(1, &ClaimMsg{}, migration.NoModification)
}

const (
	pathSetBeneficiaryMsg    = "heir/set_beneficiary"
	pathSetActivationTimeMsg = "heir/set_activation_time"
	pathRemoveBeneficiaryMsg = "heir/remove_beneficiary"
	pathClaimMsg             = "heir/claim"
)

var _ weave.Msg = (*SetBeneficiaryMsg)(nil)
var _ weave.Msg = (*SetActivationTimeMsg)(nil)
var _ weave.Msg = (*RemoveBeneficiaryMsg)(nil)
var _ weave.Msg = (*ClaimMsg)(nil)

// Path fulfills weave.Msg interface to allow routing
func (SetBeneficiaryMsg) Path() string {
	return pathSetBeneficiaryMsg
}

// Validate makes sure that this is sensible. Whether the activation time is
// in the future can only be decided against the block time and is therefore
// a handler check, not a message check.
func (m *SetBeneficiaryMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(m.Beneficiary) == 0 {
		return errors.Wrap(errors.ErrEmpty, "beneficiary")
	}
	if err := m.Beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	return validateActivationTime(m.ActivationTime)
}

// Path fulfills weave.Msg interface to allow routing
func (SetActivationTimeMsg) Path() string {
	return pathSetActivationTimeMsg
}

// Validate makes sure that this is sensible
func (m *SetActivationTimeMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateActivationTime(m.ActivationTime)
}

// Path fulfills weave.Msg interface to allow routing
func (RemoveBeneficiaryMsg) Path() string {
	return pathRemoveBeneficiaryMsg
}

// Validate always passes, removal carries no payload
func (m *RemoveBeneficiaryMsg) Validate() error {
	return errors.Wrap(m.Metadata.Validate(), "metadata")
}

// Path fulfills weave.Msg interface to allow routing
func (ClaimMsg) Path() string {
	return pathClaimMsg
}

// Validate makes sure that this is sensible. The predecessor may be empty,
// that is the wire representation of "the owner is the head of the wallet
// owner list". A non empty predecessor must be a well formed address but its
// correctness is decided by the wallet alone.
func (m *ClaimMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(m.Owner) == 0 {
		return errors.Wrap(errors.ErrEmpty, "owner")
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if len(m.Predecessor) != 0 {
		if err := m.Predecessor.Validate(); err != nil {
			return errors.Wrap(err, "predecessor")
		}
	}
	return nil
}

func validateActivationTime(t weave.UnixTime) error {
	if t == 0 {
		// Zero activation time dates to 1970-01-01 and means the
		// value was not provided.
		return errors.Wrap(errors.ErrInput, "activation time is required")
	}
	if err := t.Validate(); err != nil {
		return errors.Wrap(err, "activation time")
	}
	return nil
}
