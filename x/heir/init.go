package heir

import (
	"encoding/binary"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

var _ weave.Initializer = (*Initializer)(nil)

// Initializer fulfils the Initializer interface to bind this deployment to
// its wallet from the genesis file. The binding happens at most once for the
// lifetime of the deployment and cannot reference a zero wallet.
type Initializer struct{}

// FromGenesis will parse the wallet binding from genesis and save it in the
// database.
func (Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	var confOpts weave.Options
	if err := opts.ReadOptions("conf", &confOpts); err != nil {
		return errors.Wrap(err, "read conf")
	}
	if confOpts["heir"] == nil {
		return errors.Wrap(errors.ErrNotFound, `no "heir" configuration in genesis`)
	}
	var genConf struct {
		WalletID int64 `json:"wallet_id"`
	}
	if err := confOpts.ReadOptions("heir", &genConf); err != nil {
		return errors.Wrap(err, "read heir configuration")
	}
	if genConf.WalletID <= 0 {
		return errors.Wrap(errors.ErrInput, "wallet id is required")
	}

	switch err := gconf.Load(db, "heir", &Config{}); {
	case err == nil:
		return errors.Wrap(errors.ErrState, "already bound to a wallet")
	case !errors.ErrNotFound.Is(err):
		return errors.Wrap(err, "load configuration")
	}

	walletID := make([]byte, 8)
	binary.BigEndian.PutUint64(walletID, uint64(genConf.WalletID))
	conf := Config{
		Metadata: &weave.Metadata{Schema: 1},
		WalletID: walletID,
		Address:  ModuleCondition(walletID).Address(),
	}
	return gconf.Save(db, "heir", &conf)
}
