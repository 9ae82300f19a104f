package heir_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/AlexNa-Holdings/heirsafe-module/x/heir"
	"github.com/AlexNa-Holdings/heirsafe-module/x/heir/heirtest"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x"
)

var blockNow = time.Now().UTC()

// bindWallet stores the wallet binding the way genesis initialization does.
func bindWallet(t *testing.T, db weave.KVStore, walletID []byte) {
	t.Helper()
	conf := heir.Config{
		Metadata: &weave.Metadata{Schema: 1},
		WalletID: walletID,
		Address:  heir.ModuleCondition(walletID).Address(),
	}
	assert.Nil(t, gconf.Save(db, "heir", &conf))
}

func TestSetBeneficiaryHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	heirCond := weavetest.NewCondition()

	walletID := weavetest.SequenceID(1)
	wallet := &heirtest.Wallet{
		OwnerList: []weave.Address{alice.Address(), bob.Address()},
	}
	bucket := heir.NewBucket()

	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)
	heir.RegisterRoutes(r, auth, wallet)

	future := weave.AsUnixTime(blockNow.Add(time.Hour))

	cases := map[string]struct {
		conditions     []weave.Condition
		preset         *heir.HeirConfig
		msg            *heir.SetBeneficiaryMsg
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore)
	}{
		"owner configures a beneficiary": {
			conditions: []weave.Condition{alice},
			msg: &heir.SetBeneficiaryMsg{
				Metadata:       &weave.Metadata{Schema: 1},
				Beneficiary:    heirCond.Address(),
				ActivationTime: future,
			},
			check: func(t *testing.T, db weave.KVStore) {
				var entry heir.HeirConfig
				assert.Nil(t, bucket.One(db, alice.Address(), &entry))
				assert.Equal(t, heirCond.Address(), entry.Beneficiary)
				assert.Equal(t, future, entry.ActivationTime)
			},
		},
		"overwrite replaces both fields": {
			conditions: []weave.Condition{alice},
			preset: &heir.HeirConfig{
				Metadata:       &weave.Metadata{Schema: 1},
				Beneficiary:    heirCond.Address(),
				ActivationTime: future,
			},
			msg: &heir.SetBeneficiaryMsg{
				Metadata:       &weave.Metadata{Schema: 1},
				Beneficiary:    bob.Address(),
				ActivationTime: future.Add(time.Hour),
			},
			check: func(t *testing.T, db weave.KVStore) {
				var entry heir.HeirConfig
				assert.Nil(t, bucket.One(db, alice.Address(), &entry))
				assert.Equal(t, bob.Address(), entry.Beneficiary)
				assert.Equal(t, future.Add(time.Hour), entry.ActivationTime)
			},
		},
		"non owner is rejected": {
			conditions: []weave.Condition{heirCond},
			msg: &heir.SetBeneficiaryMsg{
				Metadata:       &weave.Metadata{Schema: 1},
				Beneficiary:    bob.Address(),
				ActivationTime: future,
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
			check: func(t *testing.T, db weave.KVStore) {
				var entry heir.HeirConfig
				err := bucket.One(db, heirCond.Address(), &entry)
				assert.IsErr(t, errors.ErrNotFound, err)
			},
		},
		"no signer": {
			msg: &heir.SetBeneficiaryMsg{
				Metadata:       &weave.Metadata{Schema: 1},
				Beneficiary:    bob.Address(),
				ActivationTime: future,
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"activation time in the past": {
			conditions: []weave.Condition{alice},
			msg: &heir.SetBeneficiaryMsg{
				Metadata:       &weave.Metadata{Schema: 1},
				Beneficiary:    heirCond.Address(),
				ActivationTime: weave.AsUnixTime(blockNow.Add(-time.Hour)),
			},
			wantCheckErr:   errors.ErrInput,
			wantDeliverErr: errors.ErrInput,
		},
		"activation time equal to the block time": {
			conditions: []weave.Condition{alice},
			msg: &heir.SetBeneficiaryMsg{
				Metadata:       &weave.Metadata{Schema: 1},
				Beneficiary:    heirCond.Address(),
				ActivationTime: weave.AsUnixTime(blockNow),
			},
			wantCheckErr:   errors.ErrInput,
			wantDeliverErr: errors.ErrInput,
		},
		"missing beneficiary": {
			conditions: []weave.Condition{alice},
			msg: &heir.SetBeneficiaryMsg{
				Metadata:       &weave.Metadata{Schema: 1},
				ActivationTime: future,
			},
			wantCheckErr:   errors.ErrEmpty,
			wantDeliverErr: errors.ErrEmpty,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "heir")
			bindWallet(t, db, walletID)

			if tc.preset != nil {
				_, err := bucket.Put(db, alice.Address(), tc.preset)
				assert.Nil(t, err)
			}

			ctx := weave.WithHeight(context.Background(), 500)
			ctx = weave.WithBlockTime(ctx, blockNow)
			ctx = authenticator.SetConditions(ctx, tc.conditions...)

			cache := db.CacheWrap()
			tx := &weavetest.Tx{Msg: tc.msg}
			if _, err := r.Check(ctx, cache, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("check expected %v but got %+v", tc.wantCheckErr, err)
			}
			cache.Discard()

			if _, err := r.Deliver(ctx, db, tx); !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver expected %v but got %+v", tc.wantDeliverErr, err)
			}
			if tc.check != nil {
				tc.check(t, db)
			}
		})
	}
}

func TestSetActivationTimeHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	heirCond := weavetest.NewCondition()
	stranger := weavetest.NewCondition()

	walletID := weavetest.SequenceID(1)
	wallet := &heirtest.Wallet{
		OwnerList: []weave.Address{alice.Address()},
	}
	bucket := heir.NewBucket()

	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)
	heir.RegisterRoutes(r, auth, wallet)

	initial := weave.AsUnixTime(blockNow.Add(time.Hour))
	prolonged := weave.AsUnixTime(blockNow.Add(24 * time.Hour))

	cases := map[string]struct {
		conditions     []weave.Condition
		entryFor       weave.Address
		msg            *heir.SetActivationTimeMsg
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore)
	}{
		"prolong keeps the beneficiary": {
			conditions: []weave.Condition{alice},
			entryFor:   alice.Address(),
			msg: &heir.SetActivationTimeMsg{
				Metadata:       &weave.Metadata{Schema: 1},
				ActivationTime: prolonged,
			},
			check: func(t *testing.T, db weave.KVStore) {
				var entry heir.HeirConfig
				assert.Nil(t, bucket.One(db, alice.Address(), &entry))
				assert.Equal(t, heirCond.Address(), entry.Beneficiary)
				assert.Equal(t, prolonged, entry.ActivationTime)
			},
		},
		"no entry configured": {
			conditions: []weave.Condition{alice},
			msg: &heir.SetActivationTimeMsg{
				Metadata:       &weave.Metadata{Schema: 1},
				ActivationTime: prolonged,
			},
			wantCheckErr:   heir.ErrNoHeir,
			wantDeliverErr: heir.ErrNoHeir,
		},
		"non owner is rejected": {
			conditions: []weave.Condition{stranger},
			entryFor:   alice.Address(),
			msg: &heir.SetActivationTimeMsg{
				Metadata:       &weave.Metadata{Schema: 1},
				ActivationTime: prolonged,
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"new time not in the future": {
			conditions: []weave.Condition{alice},
			entryFor:   alice.Address(),
			msg: &heir.SetActivationTimeMsg{
				Metadata:       &weave.Metadata{Schema: 1},
				ActivationTime: weave.AsUnixTime(blockNow),
			},
			wantCheckErr:   errors.ErrInput,
			wantDeliverErr: errors.ErrInput,
			check: func(t *testing.T, db weave.KVStore) {
				var entry heir.HeirConfig
				assert.Nil(t, bucket.One(db, alice.Address(), &entry))
				assert.Equal(t, initial, entry.ActivationTime)
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "heir")
			bindWallet(t, db, walletID)

			if tc.entryFor != nil {
				entry := heir.HeirConfig{
					Metadata:       &weave.Metadata{Schema: 1},
					Beneficiary:    heirCond.Address(),
					ActivationTime: initial,
				}
				_, err := bucket.Put(db, tc.entryFor, &entry)
				assert.Nil(t, err)
			}

			ctx := weave.WithHeight(context.Background(), 500)
			ctx = weave.WithBlockTime(ctx, blockNow)
			ctx = authenticator.SetConditions(ctx, tc.conditions...)

			cache := db.CacheWrap()
			tx := &weavetest.Tx{Msg: tc.msg}
			if _, err := r.Check(ctx, cache, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("check expected %v but got %+v", tc.wantCheckErr, err)
			}
			cache.Discard()

			if _, err := r.Deliver(ctx, db, tx); !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver expected %v but got %+v", tc.wantDeliverErr, err)
			}
			if tc.check != nil {
				tc.check(t, db)
			}
		})
	}
}

func TestRemoveBeneficiaryHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	heirCond := weavetest.NewCondition()
	stranger := weavetest.NewCondition()

	walletID := weavetest.SequenceID(1)
	wallet := &heirtest.Wallet{
		OwnerList: []weave.Address{alice.Address()},
	}
	bucket := heir.NewBucket()

	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)
	heir.RegisterRoutes(r, auth, wallet)

	cases := map[string]struct {
		conditions     []weave.Condition
		entryFor       weave.Address
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore)
	}{
		"revocation deletes the entry": {
			conditions: []weave.Condition{alice},
			entryFor:   alice.Address(),
			check: func(t *testing.T, db weave.KVStore) {
				var entry heir.HeirConfig
				err := bucket.One(db, alice.Address(), &entry)
				assert.IsErr(t, errors.ErrNotFound, err)
			},
		},
		"nothing to remove": {
			conditions:     []weave.Condition{alice},
			wantCheckErr:   heir.ErrNoHeir,
			wantDeliverErr: heir.ErrNoHeir,
		},
		"non owner is rejected": {
			conditions:     []weave.Condition{stranger},
			entryFor:       alice.Address(),
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "heir")
			bindWallet(t, db, walletID)

			if tc.entryFor != nil {
				entry := heir.HeirConfig{
					Metadata:       &weave.Metadata{Schema: 1},
					Beneficiary:    heirCond.Address(),
					ActivationTime: weave.AsUnixTime(blockNow.Add(time.Hour)),
				}
				_, err := bucket.Put(db, tc.entryFor, &entry)
				assert.Nil(t, err)
			}

			ctx := weave.WithHeight(context.Background(), 500)
			ctx = weave.WithBlockTime(ctx, blockNow)
			ctx = authenticator.SetConditions(ctx, tc.conditions...)

			cache := db.CacheWrap()
			tx := &weavetest.Tx{Msg: &heir.RemoveBeneficiaryMsg{Metadata: &weave.Metadata{Schema: 1}}}
			if _, err := r.Check(ctx, cache, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("check expected %v but got %+v", tc.wantCheckErr, err)
			}
			cache.Discard()

			if _, err := r.Deliver(ctx, db, tx); !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver expected %v but got %+v", tc.wantDeliverErr, err)
			}
			if tc.check != nil {
				tc.check(t, db)
			}
		})
	}
}

func TestClaimHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	heirCond := weavetest.NewCondition()

	walletID := weavetest.SequenceID(1)
	bucket := heir.NewBucket()

	authenticator := &weavetest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)

	activation := weave.AsUnixTime(blockNow.Add(-time.Minute))

	cases := map[string]struct {
		conditions     []weave.Condition
		entry          *heir.HeirConfig
		swapErr        error
		msg            *heir.ClaimMsg
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore, wallet *heirtest.Wallet)
	}{
		"beneficiary claims after activation": {
			conditions: []weave.Condition{heirCond},
			entry: &heir.HeirConfig{
				Metadata:       &weave.Metadata{Schema: 1},
				Beneficiary:    heirCond.Address(),
				ActivationTime: activation,
			},
			msg: &heir.ClaimMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Owner:       alice.Address(),
				Predecessor: bob.Address(),
			},
			check: func(t *testing.T, db weave.KVStore, wallet *heirtest.Wallet) {
				assert.Equal(t, 1, len(wallet.Swaps))
				swap := wallet.Swaps[0]
				assert.Equal(t, walletID, swap.WalletID)
				assert.Equal(t, heir.ModuleCondition(walletID).Address(), swap.Module)
				assert.Equal(t, alice.Address(), swap.OldOwner)
				assert.Equal(t, heirCond.Address(), swap.NewOwner)

				var entry heir.HeirConfig
				err := bucket.One(db, alice.Address(), &entry)
				assert.IsErr(t, errors.ErrNotFound, err)
			},
		},
		"claim at exactly the activation time": {
			conditions: []weave.Condition{heirCond},
			entry: &heir.HeirConfig{
				Metadata:       &weave.Metadata{Schema: 1},
				Beneficiary:    heirCond.Address(),
				ActivationTime: weave.AsUnixTime(blockNow),
			},
			msg: &heir.ClaimMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    alice.Address(),
			},
		},
		"claim before activation": {
			conditions: []weave.Condition{heirCond},
			entry: &heir.HeirConfig{
				Metadata:       &weave.Metadata{Schema: 1},
				Beneficiary:    heirCond.Address(),
				ActivationTime: weave.AsUnixTime(blockNow.Add(time.Hour)),
			},
			msg: &heir.ClaimMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    alice.Address(),
			},
			wantCheckErr:   heir.ErrNotClaimable,
			wantDeliverErr: heir.ErrNotClaimable,
			check: func(t *testing.T, db weave.KVStore, wallet *heirtest.Wallet) {
				assert.Equal(t, 0, len(wallet.Swaps))
				var entry heir.HeirConfig
				assert.Nil(t, bucket.One(db, alice.Address(), &entry))
			},
		},
		"no entry for the owner": {
			conditions: []weave.Condition{heirCond},
			msg: &heir.ClaimMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    alice.Address(),
			},
			wantCheckErr:   heir.ErrNoHeir,
			wantDeliverErr: heir.ErrNoHeir,
		},
		"only the beneficiary can claim": {
			conditions: []weave.Condition{bob},
			entry: &heir.HeirConfig{
				Metadata:       &weave.Metadata{Schema: 1},
				Beneficiary:    heirCond.Address(),
				ActivationTime: activation,
			},
			msg: &heir.ClaimMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    alice.Address(),
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"wallet rejection keeps the entry": {
			conditions: []weave.Condition{heirCond},
			entry: &heir.HeirConfig{
				Metadata:       &weave.Metadata{Schema: 1},
				Beneficiary:    heirCond.Address(),
				ActivationTime: activation,
			},
			swapErr: errors.ErrState,
			msg: &heir.ClaimMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    alice.Address(),
			},
			wantDeliverErr: errors.ErrState,
			check: func(t *testing.T, db weave.KVStore, wallet *heirtest.Wallet) {
				var entry heir.HeirConfig
				assert.Nil(t, bucket.One(db, alice.Address(), &entry))
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "heir")
			bindWallet(t, db, walletID)

			wallet := &heirtest.Wallet{
				OwnerList: []weave.Address{bob.Address(), alice.Address()},
				SwapErr:   tc.swapErr,
			}
			r := app.NewRouter()
			heir.RegisterRoutes(r, auth, wallet)

			if tc.entry != nil {
				_, err := bucket.Put(db, tc.msg.Owner, tc.entry)
				assert.Nil(t, err)
			}

			ctx := weave.WithHeight(context.Background(), 500)
			ctx = weave.WithBlockTime(ctx, blockNow)
			ctx = authenticator.SetConditions(ctx, tc.conditions...)

			cache := db.CacheWrap()
			tx := &weavetest.Tx{Msg: tc.msg}
			if _, err := r.Check(ctx, cache, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("check expected %v but got %+v", tc.wantCheckErr, err)
			}
			cache.Discard()

			if _, err := r.Deliver(ctx, db, tx); !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver expected %v but got %+v", tc.wantDeliverErr, err)
			}
			if tc.check != nil {
				tc.check(t, db, wallet)
			}
		})
	}
}

// A claim consumes the entry, so a second claim for the same owner must fail
// even though the beneficiary and the time gate would still allow it.
func TestClaimIsOneShot(t *testing.T) {
	alice := weavetest.NewCondition()
	heirCond := weavetest.NewCondition()

	walletID := weavetest.SequenceID(1)
	bucket := heir.NewBucket()
	wallet := &heirtest.Wallet{
		OwnerList: []weave.Address{alice.Address()},
	}

	authenticator := &weavetest.CtxAuth{Key: "auth"}
	r := app.NewRouter()
	heir.RegisterRoutes(r, x.ChainAuth(authenticator), wallet)

	db := store.MemStore()
	migration.MustInitPkg(db, "heir")
	bindWallet(t, db, walletID)

	entry := heir.HeirConfig{
		Metadata:       &weave.Metadata{Schema: 1},
		Beneficiary:    heirCond.Address(),
		ActivationTime: weave.AsUnixTime(blockNow.Add(-time.Minute)),
	}
	_, err := bucket.Put(db, alice.Address(), &entry)
	assert.Nil(t, err)

	ctx := weave.WithHeight(context.Background(), 500)
	ctx = weave.WithBlockTime(ctx, blockNow)
	ctx = authenticator.SetConditions(ctx, heirCond)

	tx := &weavetest.Tx{Msg: &heir.ClaimMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    alice.Address(),
	}}

	_, err = r.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, []weave.Address{heirCond.Address()}, wallet.OwnerList)

	_, err = r.Deliver(ctx, db, tx)
	assert.IsErr(t, heir.ErrNoHeir, err)
	assert.Equal(t, 1, len(wallet.Swaps))
}

// Entries of different owners are fully independent. A claim against one
// owner must not touch the entry of another.
func TestClaimIndependence(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	heirCond := weavetest.NewCondition()

	walletID := weavetest.SequenceID(1)
	bucket := heir.NewBucket()
	wallet := &heirtest.Wallet{
		OwnerList: []weave.Address{alice.Address(), bob.Address()},
	}

	authenticator := &weavetest.CtxAuth{Key: "auth"}
	r := app.NewRouter()
	heir.RegisterRoutes(r, x.ChainAuth(authenticator), wallet)

	db := store.MemStore()
	migration.MustInitPkg(db, "heir")
	bindWallet(t, db, walletID)

	activation := weave.AsUnixTime(blockNow.Add(-time.Minute))
	for _, owner := range []weave.Address{alice.Address(), bob.Address()} {
		entry := heir.HeirConfig{
			Metadata:       &weave.Metadata{Schema: 1},
			Beneficiary:    heirCond.Address(),
			ActivationTime: activation,
		}
		_, err := bucket.Put(db, owner, &entry)
		assert.Nil(t, err)
	}

	ctx := weave.WithHeight(context.Background(), 500)
	ctx = weave.WithBlockTime(ctx, blockNow)
	ctx = authenticator.SetConditions(ctx, heirCond)

	tx := &weavetest.Tx{Msg: &heir.ClaimMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    alice.Address(),
	}}
	_, err := r.Deliver(ctx, db, tx)
	assert.Nil(t, err)

	var entry heir.HeirConfig
	assert.Nil(t, bucket.One(db, bob.Address(), &entry))
	assert.Equal(t, heirCond.Address(), entry.Beneficiary)
}

// Configuring a beneficiary announces both the beneficiary and the
// activation time, removal announces an empty beneficiary.
func TestDeliverTags(t *testing.T) {
	alice := weavetest.NewCondition()
	heirCond := weavetest.NewCondition()

	walletID := weavetest.SequenceID(1)
	wallet := &heirtest.Wallet{
		OwnerList: []weave.Address{alice.Address()},
	}

	authenticator := &weavetest.CtxAuth{Key: "auth"}
	r := app.NewRouter()
	heir.RegisterRoutes(r, x.ChainAuth(authenticator), wallet)

	db := store.MemStore()
	migration.MustInitPkg(db, "heir")
	bindWallet(t, db, walletID)

	ctx := weave.WithHeight(context.Background(), 500)
	ctx = weave.WithBlockTime(ctx, blockNow)
	ctx = authenticator.SetConditions(ctx, alice)

	future := weave.AsUnixTime(blockNow.Add(time.Hour))
	res, err := r.Deliver(ctx, db, &weavetest.Tx{Msg: &heir.SetBeneficiaryMsg{
		Metadata:       &weave.Metadata{Schema: 1},
		Beneficiary:    heirCond.Address(),
		ActivationTime: future,
	}})
	assert.Nil(t, err)
	assert.Equal(t, 4, len(res.Tags))
	assert.Equal(t, "heir:owner", string(res.Tags[0].Key))
	assert.Equal(t, []byte(alice.Address()), res.Tags[0].Value)
	assert.Equal(t, "heir:beneficiary", string(res.Tags[1].Key))
	assert.Equal(t, []byte(heirCond.Address()), res.Tags[1].Value)
	assert.Equal(t, "heir:activation-time", string(res.Tags[3].Key))
	assert.Equal(t, []byte(strconv.FormatInt(int64(future), 10)), res.Tags[3].Value)

	res, err = r.Deliver(ctx, db, &weavetest.Tx{Msg: &heir.RemoveBeneficiaryMsg{
		Metadata: &weave.Metadata{Schema: 1},
	}})
	assert.Nil(t, err)
	assert.Equal(t, 2, len(res.Tags))
	assert.Equal(t, "heir:beneficiary", string(res.Tags[1].Key))
	assert.Equal(t, 0, len(res.Tags[1].Value))
}
