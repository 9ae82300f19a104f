package sigwallet

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestValidateWallet(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()
	module := weavetest.NewCondition().Address()

	cases := map[string]struct {
		Wallet  *Wallet
		WantErr *errors.Error
	}{
		"valid wallet": {
			Wallet: &Wallet{
				Metadata:  &weave.Metadata{Schema: 1},
				Owners:    []weave.Address{alice, bob},
				Threshold: 2,
				Modules:   []weave.Address{module},
			},
		},
		"missing metadata": {
			Wallet: &Wallet{
				Owners:    []weave.Address{alice},
				Threshold: 1,
			},
			WantErr: errors.ErrMetadata,
		},
		"no owners": {
			Wallet: &Wallet{
				Metadata:  &weave.Metadata{Schema: 1},
				Threshold: 1,
			},
			WantErr: errors.ErrEmpty,
		},
		"duplicate owner": {
			Wallet: &Wallet{
				Metadata:  &weave.Metadata{Schema: 1},
				Owners:    []weave.Address{alice, alice},
				Threshold: 1,
			},
			WantErr: errors.ErrDuplicate,
		},
		"threshold above owner count": {
			Wallet: &Wallet{
				Metadata:  &weave.Metadata{Schema: 1},
				Owners:    []weave.Address{alice},
				Threshold: 2,
			},
			WantErr: errors.ErrInput,
		},
		"zero threshold": {
			Wallet: &Wallet{
				Metadata: &weave.Metadata{Schema: 1},
				Owners:   []weave.Address{alice},
			},
			WantErr: errors.ErrInput,
		},
		"duplicate module": {
			Wallet: &Wallet{
				Metadata:  &weave.Metadata{Schema: 1},
				Owners:    []weave.Address{alice},
				Threshold: 1,
				Modules:   []weave.Address{module, module},
			},
			WantErr: errors.ErrDuplicate,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Wallet.Validate(); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected validation error: %s", err)
			}
		})
	}
}

func TestOwnerIndex(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()
	stranger := weavetest.NewCondition().Address()

	w := Wallet{Owners: []weave.Address{alice, bob}}
	if got := w.OwnerIndex(alice); got != 0 {
		t.Fatalf("want index 0, got %d", got)
	}
	if got := w.OwnerIndex(bob); got != 1 {
		t.Fatalf("want index 1, got %d", got)
	}
	if got := w.OwnerIndex(stranger); got != -1 {
		t.Fatalf("want index -1, got %d", got)
	}
}
