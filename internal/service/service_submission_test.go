package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SaurabViena/heirloom/internal/codec"
	"github.com/SaurabViena/heirloom/internal/fhe"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/mock"
	"github.com/SaurabViena/heirloom/internal/validators"
	"github.com/SaurabViena/heirloom/models"
)

func newTestSubmissionSvc(t *testing.T, ctrl *gomock.Controller) (SubmissionService, *mock.MockSession, *mock.MockBatchBuilder) {
	t.Helper()
	session := mock.NewMockSession(ctrl)
	batch := mock.NewMockBatchBuilder(ctrl)
	svc := NewSubmissionService(session, codec.Default, validators.NewCredentialValidator(models.NameMaxLength), logger.Nop())
	return svc, session, batch
}

func testDraft() models.CredentialDraft {
	return models.CredentialDraft{
		Name:     "mail",
		Account:  "alice@example.com",
		Password: "hunter2",
		Extra:    "recovery codes: 1111 2222 3333 4444 5555",
	}
}

func fourHandles() []models.Handle {
	return []models.Handle{testHandle(1), testHandle(2), testHandle(3), testHandle(4)}
}

func TestSubmissionService_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, session, batch := newTestSubmissionSvc(t, ctrl)
	ctx := context.Background()
	draft := testDraft()

	var appended []models.FieldElement
	gomock.InOrder(
		session.EXPECT().Ready(gomock.Any()).Return(nil),
		session.EXPECT().CreateBatch(testDestination, testOwner).Return(batch),
		batch.EXPECT().Append(gomock.Any()).DoAndReturn(func(v models.FieldElement) fhe.BatchBuilder {
			appended = append(appended, v)
			return batch
		}).Times(4),
		batch.EXPECT().Seal(gomock.Any()).Return(models.CiphertextBundle{
			Handles: fourHandles(),
			Proof:   models.Proof{0x04, 0x01},
		}, nil),
	)

	req, err := svc.Submit(ctx, draft, testDestination, testOwner)
	require.NoError(t, err)

	assert.Equal(t, "mail", req.Name)
	assert.Equal(t, fourHandles(), req.Handles)
	assert.Equal(t, models.Proof{0x04, 0x01}, req.Proof)
	assert.Equal(t, testDestination, req.Destination)
	assert.Equal(t, testOwner, req.Submitter)

	want := encode(t, draft.Account, 31, 1)
	want = append(want, encode(t, draft.Password, 31, 1)...)
	want = append(want, encode(t, draft.Extra, 64, 2)...)
	require.Len(t, appended, 4)
	for i := range want {
		assert.True(t, want[i].Eq(&appended[i]), "element %d out of order", i)
	}
}

func TestSubmissionService_Submit_TruncatesOversizedAttributes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, session, batch := newTestSubmissionSvc(t, ctrl)

	draft := testDraft()
	draft.Password = strings.Repeat("p", 100)

	var appended []models.FieldElement
	session.EXPECT().Ready(gomock.Any()).Return(nil)
	session.EXPECT().CreateBatch(testDestination, testOwner).Return(batch)
	batch.EXPECT().Append(gomock.Any()).DoAndReturn(func(v models.FieldElement) fhe.BatchBuilder {
		appended = append(appended, v)
		return batch
	}).Times(4)
	batch.EXPECT().Seal(gomock.Any()).Return(models.CiphertextBundle{Handles: fourHandles(), Proof: models.Proof{1}}, nil)

	_, err := svc.Submit(context.Background(), draft, testDestination, testOwner)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("p", 31), codec.Default.Decode(appended[1:2]))
}

func TestSubmissionService_Submit_InvalidName(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "too long", in: strings.Repeat("n", models.NameMaxLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestSubmissionSvc(t, ctrl)

			draft := testDraft()
			draft.Name = tt.in

			_, err := svc.Submit(context.Background(), draft, testDestination, testOwner)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDraft)
		})
	}
}

func TestSubmissionService_Submit_NameAtLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, session, batch := newTestSubmissionSvc(t, ctrl)

	draft := testDraft()
	draft.Name = strings.Repeat("é", models.NameMaxLength)

	session.EXPECT().Ready(gomock.Any()).Return(nil)
	session.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(batch)
	batch.EXPECT().Append(gomock.Any()).Return(batch).Times(4)
	batch.EXPECT().Seal(gomock.Any()).Return(models.CiphertextBundle{Handles: fourHandles(), Proof: models.Proof{1}}, nil)

	req, err := svc.Submit(context.Background(), draft, testDestination, testOwner)
	require.NoError(t, err)
	assert.Equal(t, draft.Name, req.Name)
}

func TestSubmissionService_Submit_AdapterNotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, session, _ := newTestSubmissionSvc(t, ctrl)

	session.EXPECT().Ready(gomock.Any()).Return(fhe.ErrNotReady)

	_, err := svc.Submit(context.Background(), testDraft(), testDestination, testOwner)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAdapterNotReady)
	assert.True(t, Retryable(err))
}

func TestSubmissionService_Submit_SealFailure(t *testing.T) {
	tests := []struct {
		name    string
		sealErr error
	}{
		{name: "transport", sealErr: errors.New("connection reset")},
		{name: "gateway went away mid-seal", sealErr: fmt.Errorf("%w: 503", fhe.ErrNotReady)},
		{name: "value too wide", sealErr: fhe.ErrValueTooWide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, session, batch := newTestSubmissionSvc(t, ctrl)

			session.EXPECT().Ready(gomock.Any()).Return(nil)
			session.EXPECT().CreateBatch(testDestination, testOwner).Return(batch)
			batch.EXPECT().Append(gomock.Any()).Return(batch).Times(4)
			batch.EXPECT().Seal(gomock.Any()).Return(models.CiphertextBundle{}, tt.sealErr)

			req, err := svc.Submit(context.Background(), testDraft(), testDestination, testOwner)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrEncryptionFailed)
			assert.NotErrorIs(t, err, ErrAdapterNotReady)
			assert.True(t, Retryable(err))
			assert.Empty(t, req.Handles, "no partial handle list on failure")
		})
	}
}

func TestSubmissionService_Submit_HandleCountMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, session, batch := newTestSubmissionSvc(t, ctrl)

	session.EXPECT().Ready(gomock.Any()).Return(nil)
	session.EXPECT().CreateBatch(testDestination, testOwner).Return(batch)
	batch.EXPECT().Append(gomock.Any()).Return(batch).Times(4)
	batch.EXPECT().Seal(gomock.Any()).Return(models.CiphertextBundle{
		Handles: fourHandles()[:3],
		Proof:   models.Proof{1},
	}, nil)

	_, err := svc.Submit(context.Background(), testDraft(), testDestination, testOwner)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncryptionFailed)
}

func TestSubmissionService_Submit_SealIgnoresCallerCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, session, batch := newTestSubmissionSvc(t, ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	session.EXPECT().Ready(gomock.Any()).Return(nil)
	session.EXPECT().CreateBatch(testDestination, testOwner).Return(batch)
	batch.EXPECT().Append(gomock.Any()).Return(batch).Times(4)
	batch.EXPECT().Seal(gomock.Any()).DoAndReturn(func(sealCtx context.Context) (models.CiphertextBundle, error) {
		cancel()
		assert.NoError(t, sealCtx.Err())
		return models.CiphertextBundle{Handles: fourHandles(), Proof: models.Proof{1}}, nil
	})

	_, err := svc.Submit(ctx, testDraft(), testDestination, testOwner)
	require.NoError(t, err)
}
