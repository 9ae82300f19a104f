package heir_test

import (
	"encoding/json"
	"testing"

	"github.com/AlexNa-Holdings/heirsafe-module/x/heir"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestGenesisBindsWallet(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "heir")

	opts := weave.Options{
		"conf": json.RawMessage(`{"heir": {"wallet_id": 5}}`),
	}
	var ini heir.Initializer
	assert.Nil(t, ini.FromGenesis(opts, weave.GenesisParams{}, db))

	var conf heir.Config
	assert.Nil(t, gconf.Load(db, "heir", &conf))
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 5}, []byte(conf.WalletID))
	assert.Equal(t, heir.ModuleCondition(conf.WalletID).Address(), conf.Address)
}

func TestGenesisBindingIsPermanent(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "heir")

	opts := weave.Options{
		"conf": json.RawMessage(`{"heir": {"wallet_id": 5}}`),
	}
	var ini heir.Initializer
	assert.Nil(t, ini.FromGenesis(opts, weave.GenesisParams{}, db))

	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); !errors.ErrState.Is(err) {
		t.Fatalf("expected a state error, got %+v", err)
	}
}

func TestGenesisRejectsBadBinding(t *testing.T) {
	cases := map[string]struct {
		opts    weave.Options
		wantErr *errors.Error
	}{
		"missing configuration": {
			opts:    weave.Options{"conf": json.RawMessage(`{}`)},
			wantErr: errors.ErrNotFound,
		},
		"zero wallet": {
			opts:    weave.Options{"conf": json.RawMessage(`{"heir": {"wallet_id": 0}}`)},
			wantErr: errors.ErrInput,
		},
		"negative wallet": {
			opts:    weave.Options{"conf": json.RawMessage(`{"heir": {"wallet_id": -2}}`)},
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "heir")

			var ini heir.Initializer
			if err := ini.FromGenesis(tc.opts, weave.GenesisParams{}, db); !tc.wantErr.Is(err) {
				t.Fatalf("expected %v but got %+v", tc.wantErr, err)
			}
		})
	}
}
