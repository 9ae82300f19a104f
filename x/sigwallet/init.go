package sigwallet

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

var _ weave.Initializer = (*Initializer)(nil)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

// FromGenesis will parse initial wallets from genesis and save them in the
// database. Wallet IDs follow the creation order, starting at 1.
func (Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	var wallets []struct {
		Owners    []weave.Address `json:"owners"`
		Threshold Weight          `json:"threshold"`
		Modules   []weave.Address `json:"modules"`
	}
	if err := opts.ReadOptions("sigwallet", &wallets); err != nil {
		return errors.Wrap(err, "read sigwallet genesis")
	}

	bucket := NewBucket()
	for i, gw := range wallets {
		w := Wallet{
			Metadata:  &weave.Metadata{Schema: 1},
			Owners:    gw.Owners,
			Threshold: gw.Threshold,
			Modules:   gw.Modules,
		}
		if _, err := bucket.Put(db, nil, &w); err != nil {
			return errors.Wrapf(err, "wallet #%d", i)
		}
	}
	return nil
}
