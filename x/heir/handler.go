package heir

import (
	"strconv"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	common "github.com/tendermint/tendermint/libs/common"
)

const (
	setBeneficiaryCost    int64 = 100
	setActivationTimeCost int64 = 50
	removeBeneficiaryCost int64 = 0
	claimCost             int64 = 200
)

// Tag keys emitted with succession state transitions. Removal is signalled
// by a beneficiary tag with an empty value.
const (
	tagOwner          = "heir:owner"
	tagBeneficiary    = "heir:beneficiary"
	tagActivationTime = "heir:activation-time"
	tagAction         = "heir:action"
)

// RegisterRoutes will instantiate and register all handlers in this package.
// The wallet is the external collaborator the deployment is bound to.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, wallet Wallet) {
	r = migration.SchemaMigratingRegistry("heir", r)
	bucket := NewBucket()

	r.Handle(&SetBeneficiaryMsg{}, SetBeneficiaryHandler{auth, bucket, wallet})
	r.Handle(&SetActivationTimeMsg{}, SetActivationTimeHandler{auth, bucket, wallet})
	r.Handle(&RemoveBeneficiaryMsg{}, RemoveBeneficiaryHandler{auth, bucket, wallet})
	r.Handle(&ClaimMsg{}, ClaimHandler{auth, bucket, wallet})
}

// RegisterQuery will register this bucket as "/heirs"
func RegisterQuery(qr weave.QueryRouter) {
	NewBucket().Register("heirs", qr)
}

// SetBeneficiaryHandler creates or fully overwrites the succession entry of
// the signing owner.
type SetBeneficiaryHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	wallet Wallet
}

var _ weave.Handler = SetBeneficiaryHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h SetBeneficiaryHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: setBeneficiaryCost}, nil
}

// Deliver persists the entry under the caller address, replacing any prior
// beneficiary and activation time.
func (h SetBeneficiaryHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	owner, msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	entry := &HeirConfig{
		Metadata:       msg.Metadata,
		Beneficiary:    msg.Beneficiary,
		ActivationTime: msg.ActivationTime,
	}
	if _, err := h.bucket.Put(db, owner, entry); err != nil {
		return nil, errors.Wrap(err, "cannot store entry")
	}

	res := weave.DeliverResult{Data: owner}
	res.Tags = append(res.Tags, beneficiaryTags(owner, msg.Beneficiary)...)
	res.Tags = append(res.Tags, activationTimeTags(owner, msg.ActivationTime)...)
	return &res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h SetBeneficiaryHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (weave.Address, *SetBeneficiaryMsg, error) {
	var msg SetBeneficiaryMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := h.authorizeOwner(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	if weave.IsExpired(ctx, msg.ActivationTime) {
		return nil, nil, errors.Wrap(errors.ErrInput, "activation time must be in the future")
	}
	return owner, &msg, nil
}

// authorizeOwner resolves the caller and checks, live against the wallet,
// that it currently holds an owner slot.
func (h SetBeneficiaryHandler) authorizeOwner(ctx weave.Context, db weave.KVStore) (weave.Address, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	return authorizeOwner(ctx, db, h.auth, h.wallet, conf)
}

// SetActivationTimeHandler prolongs an existing entry of the signing owner,
// keeping the beneficiary untouched.
type SetActivationTimeHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	wallet Wallet
}

var _ weave.Handler = SetActivationTimeHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h SetActivationTimeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: setActivationTimeCost}, nil
}

// Deliver updates only the activation time of the entry.
func (h SetActivationTimeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	owner, entry, msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	entry.ActivationTime = msg.ActivationTime
	if _, err := h.bucket.Put(db, owner, entry); err != nil {
		return nil, errors.Wrap(err, "cannot store entry")
	}

	res := weave.DeliverResult{Data: owner}
	res.Tags = append(res.Tags, activationTimeTags(owner, msg.ActivationTime)...)
	return &res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h SetActivationTimeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (weave.Address, *HeirConfig, *SetActivationTimeMsg, error) {
	var msg SetActivationTimeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, nil, err
	}
	owner, err := authorizeOwner(ctx, db, h.auth, h.wallet, conf)
	if err != nil {
		return nil, nil, nil, err
	}
	entry, err := loadEntry(h.bucket, db, owner)
	if err != nil {
		return nil, nil, nil, err
	}
	if weave.IsExpired(ctx, msg.ActivationTime) {
		return nil, nil, nil, errors.Wrap(errors.ErrInput, "activation time must be in the future")
	}
	return owner, entry, &msg, nil
}

// RemoveBeneficiaryHandler deletes an existing entry of the signing owner.
type RemoveBeneficiaryHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	wallet Wallet
}

var _ weave.Handler = RemoveBeneficiaryHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h RemoveBeneficiaryHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: removeBeneficiaryCost}, nil
}

// Deliver resets the entry to fully absent. The previously configured
// beneficiary can no longer claim.
func (h RemoveBeneficiaryHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := h.bucket.Delete(db, owner); err != nil {
		return nil, errors.Wrap(err, "cannot delete entry")
	}

	res := weave.DeliverResult{Data: owner}
	res.Tags = append(res.Tags, beneficiaryTags(owner, nil)...)
	return &res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h RemoveBeneficiaryHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (weave.Address, error) {
	var msg RemoveBeneficiaryMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	owner, err := authorizeOwner(ctx, db, h.auth, h.wallet, conf)
	if err != nil {
		return nil, err
	}
	if _, err := loadEntry(h.bucket, db, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

// ClaimHandler converts a satisfied time condition into a permanent owner
// replacement inside the wallet, exactly once per entry.
type ClaimHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	wallet Wallet
}

var _ weave.Handler = ClaimHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h ClaimHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: claimCost}, nil
}

// Deliver issues exactly one owner replacement instruction to the wallet and
// deletes the entry on success. A wallet rejection aborts the whole claim
// with the entry untouched, so the claim can be retried with corrected
// parameters.
func (h ClaimHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	conf, entry, msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := h.wallet.SwapOwner(db, conf.WalletID, conf.Address, msg.Predecessor, msg.Owner, entry.Beneficiary); err != nil {
		return nil, errors.Wrap(err, "wallet rejected owner swap")
	}
	if err := h.bucket.Delete(db, msg.Owner); err != nil {
		return nil, errors.Wrap(err, "cannot delete entry")
	}

	res := weave.DeliverResult{Data: entry.Beneficiary}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagAction), Value: []byte("claim")},
		{Key: []byte(tagOwner), Value: msg.Owner},
		{Key: []byte(tagBeneficiary), Value: entry.Beneficiary},
	}...)
	return &res, nil
}

// validate does all common pre-processing between Check and Deliver. The
// preconditions are checked in protocol order: entry existence, beneficiary
// identity, time gate.
func (h ClaimHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*Config, *HeirConfig, *ClaimMsg, error) {
	var msg ClaimMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, nil, err
	}
	entry, err := loadEntry(h.bucket, db, msg.Owner)
	if err != nil {
		return nil, nil, nil, err
	}
	if !h.auth.HasAddress(ctx, entry.Beneficiary) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the beneficiary can claim")
	}
	if !weave.IsExpired(ctx, entry.ActivationTime) {
		return nil, nil, nil, errors.Wrapf(ErrNotClaimable, "activation time %v", entry.ActivationTime)
	}
	return conf, entry, &msg, nil
}

// authorizeOwner returns the main signer address after verifying it holds an
// owner slot of the bound wallet. Membership is checked live on every call,
// never cached.
func authorizeOwner(ctx weave.Context, db weave.KVStore, auth x.Authenticator, wallet Wallet, conf *Config) (weave.Address, error) {
	signer := x.MainSigner(ctx, auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	owner := signer.Address()
	is, err := walletHasOwner(db, wallet, conf.WalletID, owner)
	if err != nil {
		return nil, err
	}
	if !is {
		return nil, errors.Wrap(errors.ErrUnauthorized, "caller is not a wallet owner")
	}
	return owner, nil
}

// loadEntry loads the succession entry of given owner, returning ErrNoHeir
// when none is configured.
func loadEntry(bucket orm.ModelBucket, db weave.KVStore, owner weave.Address) (*HeirConfig, error) {
	var entry HeirConfig
	if err := bucket.One(db, owner, &entry); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrapf(ErrNoHeir, "owner %s", owner)
		}
		return nil, errors.Wrap(err, "cannot load entry")
	}
	return &entry, nil
}

func beneficiaryTags(owner weave.Address, beneficiary weave.Address) []common.KVPair {
	return []common.KVPair{
		{Key: []byte(tagOwner), Value: owner},
		{Key: []byte(tagBeneficiary), Value: beneficiary},
	}
}

func activationTimeTags(owner weave.Address, t weave.UnixTime) []common.KVPair {
	return []common.KVPair{
		{Key: []byte(tagOwner), Value: owner},
		{Key: []byte(tagActivationTime), Value: []byte(strconv.FormatInt(int64(t), 10))},
	}
}
