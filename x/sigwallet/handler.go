package sigwallet

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
)

const (
	createWalletCost int64 = 300
	updateWalletCost int64 = 100
)

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("sigwallet", r)
	c := NewController()

	r.Handle(&CreateWalletMsg{}, CreateWalletHandler{auth, c})
	r.Handle(&EnableModuleMsg{}, EnableModuleHandler{auth, c})
	r.Handle(&DisableModuleMsg{}, DisableModuleHandler{auth, c})
	r.Handle(&SwapOwnerMsg{}, SwapOwnerHandler{auth, c})
}

// RegisterQuery will register this bucket as "/wallets"
func RegisterQuery(qr weave.QueryRouter) {
	NewBucket().Register("wallets", qr)
}

// CreateWalletHandler creates a wallet with a fresh sequence ID.
type CreateWalletHandler struct {
	auth x.Authenticator
	c    *Controller
}

var _ weave.Handler = CreateWalletHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CreateWalletHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createWalletCost}, nil
}

// Deliver stores the wallet and returns its ID.
func (h CreateWalletHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	w := &Wallet{
		Metadata:  msg.Metadata,
		Owners:    msg.Owners,
		Threshold: msg.Threshold,
	}
	key, err := h.c.bucket.Put(db, nil, w)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store wallet")
	}
	return &weave.DeliverResult{Data: key}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CreateWalletHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateWalletMsg, error) {
	var msg CreateWalletMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return &msg, nil
}

// EnableModuleHandler authorizes a module address on the wallet. The
// transaction must carry the wallet authority.
type EnableModuleHandler struct {
	auth x.Authenticator
	c    *Controller
}

var _ weave.Handler = EnableModuleHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h EnableModuleHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: updateWalletCost}, nil
}

// Deliver appends the module address to the wallet. Enabling an already
// enabled module is rejected as a duplicate.
func (h EnableModuleHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	w, msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if w.HasModule(msg.Module) {
		return nil, errors.Wrapf(errors.ErrDuplicate, "module %s", msg.Module)
	}
	w.Modules = append(w.Modules, msg.Module)
	if _, err := h.c.bucket.Put(db, msg.WalletID, w); err != nil {
		return nil, errors.Wrap(err, "cannot store wallet")
	}
	return &weave.DeliverResult{Data: msg.WalletID}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h EnableModuleHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*Wallet, *EnableModuleMsg, error) {
	var msg EnableModuleMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	w, err := authorizeWallet(ctx, db, h.auth, h.c, msg.WalletID)
	if err != nil {
		return nil, nil, err
	}
	return w, &msg, nil
}

// DisableModuleHandler revokes a module address from the wallet. The
// transaction must carry the wallet authority.
type DisableModuleHandler struct {
	auth x.Authenticator
	c    *Controller
}

var _ weave.Handler = DisableModuleHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h DisableModuleHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: updateWalletCost}, nil
}

// Deliver removes the module address from the wallet.
func (h DisableModuleHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	w, msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	kept := w.Modules[:0]
	found := false
	for _, m := range w.Modules {
		if m.Equals(msg.Module) {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return nil, errors.Wrapf(ErrModuleDisabled, "%s", msg.Module)
	}
	w.Modules = kept
	if _, err := h.c.bucket.Put(db, msg.WalletID, w); err != nil {
		return nil, errors.Wrap(err, "cannot store wallet")
	}
	return &weave.DeliverResult{Data: msg.WalletID}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h DisableModuleHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*Wallet, *DisableModuleMsg, error) {
	var msg DisableModuleMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	w, err := authorizeWallet(ctx, db, h.auth, h.c, msg.WalletID)
	if err != nil {
		return nil, nil, err
	}
	return w, &msg, nil
}

// SwapOwnerHandler replaces an owner on behalf of the wallet authority
// itself. Enabled modules do not go through this handler, they call the
// controller directly.
type SwapOwnerHandler struct {
	auth x.Authenticator
	c    *Controller
}

var _ weave.Handler = SwapOwnerHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h SwapOwnerHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: updateWalletCost}, nil
}

// Deliver performs the in place owner replacement.
func (h SwapOwnerHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	self := Condition(msg.WalletID).Address()
	if err := h.c.SwapOwner(db, msg.WalletID, self, msg.Predecessor, msg.OldOwner, msg.NewOwner); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: msg.WalletID}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h SwapOwnerHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SwapOwnerMsg, error) {
	var msg SwapOwnerMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := authorizeWallet(ctx, db, h.auth, h.c, msg.WalletID); err != nil {
		return nil, err
	}
	return &msg, nil
}

// authorizeWallet loads the wallet and ensures the transaction carries the
// wallet authority condition.
func authorizeWallet(ctx weave.Context, db weave.KVStore, auth x.Authenticator, c *Controller, walletID []byte) (*Wallet, error) {
	w, err := c.load(db, walletID)
	if err != nil {
		return nil, err
	}
	if !auth.HasAddress(ctx, Condition(walletID).Address()) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "wallet authority required")
	}
	return w, nil
}
