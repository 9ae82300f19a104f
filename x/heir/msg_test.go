package heir_test

import (
	"testing"
	"time"

	"github.com/AlexNa-Holdings/heirsafe-module/x/heir"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestSetBeneficiaryMsgValidate(t *testing.T) {
	beneficiary := weavetest.NewCondition().Address()
	future := weave.AsUnixTime(time.Now().Add(time.Hour))

	cases := map[string]struct {
		msg     heir.SetBeneficiaryMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: heir.SetBeneficiaryMsg{
				Metadata:       &weave.Metadata{Schema: 1},
				Beneficiary:    beneficiary,
				ActivationTime: future,
			},
		},
		"missing metadata": {
			msg: heir.SetBeneficiaryMsg{
				Beneficiary:    beneficiary,
				ActivationTime: future,
			},
			wantErr: errors.ErrMetadata,
		},
		"missing beneficiary": {
			msg: heir.SetBeneficiaryMsg{
				Metadata:       &weave.Metadata{Schema: 1},
				ActivationTime: future,
			},
			wantErr: errors.ErrEmpty,
		},
		"malformed beneficiary": {
			msg: heir.SetBeneficiaryMsg{
				Metadata:       &weave.Metadata{Schema: 1},
				Beneficiary:    []byte("too short"),
				ActivationTime: future,
			},
			wantErr: errors.ErrInput,
		},
		"zero activation time": {
			msg: heir.SetBeneficiaryMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Beneficiary: beneficiary,
			},
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("expected %v but got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestSetActivationTimeMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     heir.SetActivationTimeMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: heir.SetActivationTimeMsg{
				Metadata:       &weave.Metadata{Schema: 1},
				ActivationTime: weave.AsUnixTime(time.Now().Add(time.Hour)),
			},
		},
		"zero activation time": {
			msg: heir.SetActivationTimeMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			wantErr: errors.ErrInput,
		},
		"missing metadata": {
			msg: heir.SetActivationTimeMsg{
				ActivationTime: weave.AsUnixTime(time.Now().Add(time.Hour)),
			},
			wantErr: errors.ErrMetadata,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("expected %v but got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestClaimMsgValidate(t *testing.T) {
	owner := weavetest.NewCondition().Address()
	predecessor := weavetest.NewCondition().Address()

	cases := map[string]struct {
		msg     heir.ClaimMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: heir.ClaimMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Owner:       owner,
				Predecessor: predecessor,
			},
		},
		"empty predecessor means the list head": {
			msg: heir.ClaimMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    owner,
			},
		},
		"missing owner": {
			msg: heir.ClaimMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			wantErr: errors.ErrEmpty,
		},
		"malformed predecessor": {
			msg: heir.ClaimMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Owner:       owner,
				Predecessor: []byte("bogus"),
			},
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("expected %v but got %+v", tc.wantErr, err)
			}
		})
	}
}
