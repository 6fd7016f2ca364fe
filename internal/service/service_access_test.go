package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/mock"
	"github.com/SaurabViena/heirloom/models"
)

func single(owner, viewer common.Address, index uint64) models.AuthorizationRecord {
	return models.AuthorizationRecord{Owner: owner, Viewer: viewer, Type: models.AuthSingle, CredentialIndex: index}
}

func all(owner, viewer common.Address) models.AuthorizationRecord {
	return models.AuthorizationRecord{Owner: owner, Viewer: viewer, Type: models.AuthAll}
}

func TestEffectiveAccess(t *testing.T) {
	stranger := common.HexToAddress("0x00000000000000000000000000000000000000c3")

	tests := []struct {
		name    string
		records []models.AuthorizationRecord
		want    models.AccessScope
	}{
		{
			name: "no records",
			want: models.NoAccess(),
		},
		{
			name:    "single indices are unioned",
			records: []models.AuthorizationRecord{single(testOwner, testViewer, 2), single(testOwner, testViewer, 0), single(testOwner, testViewer, 2)},
			want:    models.IndexAccess(0, 2),
		},
		{
			name:    "all dominates singles",
			records: []models.AuthorizationRecord{single(testOwner, testViewer, 1), all(testOwner, testViewer), single(testOwner, testViewer, 4)},
			want:    models.FullAccess(),
		},
		{
			name:    "other pairs are ignored",
			records: []models.AuthorizationRecord{all(testOwner, stranger), all(stranger, testViewer), single(testViewer, testOwner, 1)},
			want:    models.NoAccess(),
		},
		{
			name:    "unknown type grants nothing",
			records: []models.AuthorizationRecord{{Owner: testOwner, Viewer: testViewer, Type: models.AuthNone, CredentialIndex: 3}},
			want:    models.NoAccess(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveAccess(tt.records, testOwner, testViewer))
		})
	}
}

func TestEffectiveAccess_Monotonic(t *testing.T) {
	records := []models.AuthorizationRecord{single(testOwner, testViewer, 1)}
	before := EffectiveAccess(records, testOwner, testViewer)

	extra := []models.AuthorizationRecord{single(testOwner, testViewer, 5), all(testOwner, testViewer)}
	for _, rec := range extra {
		records = append(records, rec)
		after := EffectiveAccess(records, testOwner, testViewer)
		for _, idx := range before.Indices {
			assert.True(t, after.Allows(idx), "index %d lost after adding %v", idx, rec.Type)
		}
		before = after
	}
	assert.Equal(t, models.AccessAll, before.Kind)
}

func TestAccessService_Received_GroupsByOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mock.NewMockLedger(ctrl)
	svc := NewAccessService(ledger, logger.Nop())
	ctx := context.Background()

	second := common.HexToAddress("0x00000000000000000000000000000000000000e4")
	records := []models.AuthorizationRecord{
		single(second, testViewer, 7),
		all(testOwner, testViewer),
		single(second, testViewer, 2),
		single(testOwner, testViewer, 0),
	}

	ledger.EXPECT().ReceivedAuthorizations(ctx, testViewer).Return(records, nil)
	ledger.EXPECT().CredentialMeta(ctx, second, uint64(2)).Return(models.CredentialMeta{Owner: second, Index: 2, Name: "bank"}, nil)
	ledger.EXPECT().CredentialMeta(ctx, second, uint64(7)).Return(models.CredentialMeta{}, ErrCredentialNotFound)
	ledger.EXPECT().CredentialNames(ctx, testOwner).Return([]string{"mail", "vpn"}, nil)

	got, err := svc.Received(ctx, testViewer)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, second, got[0].Owner)
	assert.Equal(t, models.IndexAccess(2, 7), got[0].Scope)
	assert.Equal(t, []models.CredentialMeta{{Owner: second, Index: 2, Name: "bank"}}, got[0].Credentials)

	assert.Equal(t, testOwner, got[1].Owner)
	assert.Equal(t, models.FullAccess(), got[1].Scope)
	assert.Equal(t, []models.CredentialMeta{
		{Owner: testOwner, Index: 0, Name: "mail"},
		{Owner: testOwner, Index: 1, Name: "vpn"},
	}, got[1].Credentials)
}

func TestAccessService_Received_LedgerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mock.NewMockLedger(ctrl)
	svc := NewAccessService(ledger, logger.Nop())

	boom := errors.New("disk I/O error")
	ledger.EXPECT().ReceivedAuthorizations(gomock.Any(), testViewer).Return(nil, boom)

	_, err := svc.Received(context.Background(), testViewer)
	assert.ErrorIs(t, err, boom)
}

func TestAccessService_Received_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mock.NewMockLedger(ctrl)
	svc := NewAccessService(ledger, logger.Nop())

	ledger.EXPECT().ReceivedAuthorizations(gomock.Any(), testViewer).Return(nil, nil)

	got, err := svc.Received(context.Background(), testViewer)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAccessService_Given(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mock.NewMockLedger(ctrl)
	svc := NewAccessService(ledger, logger.Nop())

	records := []models.AuthorizationRecord{all(testOwner, testViewer)}
	ledger.EXPECT().GivenAuthorizations(gomock.Any(), testOwner).Return(records, nil)

	got, err := svc.Given(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}
