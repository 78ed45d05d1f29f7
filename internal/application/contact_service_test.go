package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	repo "github.com/akmalhzn/portfolio-api/internal/domain/repository"
	"github.com/akmalhzn/portfolio-api/internal/testutil"
	"github.com/akmalhzn/portfolio-api/pkg/apperr"
	"github.com/akmalhzn/portfolio-api/pkg/mailer"
)

func validMessage() entity.ContactMessage {
	return entity.ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hi",
		Message: "Saw your talk, great stuff.",
	}
}

func TestSubmitStoresWithStatusNew(t *testing.T) {
	notifier := &testutil.FakeNotifier{}
	svc := NewContactService(testutil.NewFakeContactRepo(), notifier, testutil.NewLogger())
	ctx := context.Background()

	msg := validMessage()
	msg.Status = entity.MessageStatusArchived // callers cannot choose a status
	require.NoError(t, svc.Submit(ctx, &msg))

	assert.Equal(t, entity.MessageStatusNew, msg.Status)
	assert.False(t, msg.ID.IsZero())
	assert.False(t, msg.CreatedAt.IsZero())

	require.Len(t, notifier.Published, 1)
	job, ok := notifier.Published[0].(mailer.ContactNotification)
	require.True(t, ok)
	assert.Equal(t, msg.ID.Hex(), job.MessageID)
	assert.Equal(t, "visitor@example.com", job.Email)
}

func TestSubmitSurvivesNotifierFailure(t *testing.T) {
	notifier := &testutil.FakeNotifier{Err: errors.New("broker down")}
	svc := NewContactService(testutil.NewFakeContactRepo(), notifier, testutil.NewLogger())

	msg := validMessage()
	require.NoError(t, svc.Submit(context.Background(), &msg))
	assert.False(t, msg.ID.IsZero(), "message stored despite publish failure")
}

func TestSubmitWithoutNotifier(t *testing.T) {
	svc := NewContactService(testutil.NewFakeContactRepo(), nil, testutil.NewLogger())

	msg := validMessage()
	require.NoError(t, svc.Submit(context.Background(), &msg))
}

func TestSubmitRejectsInvalidMessage(t *testing.T) {
	store := testutil.NewFakeContactRepo()
	svc := NewContactService(store, nil, testutil.NewLogger())
	ctx := context.Background()

	msg := validMessage()
	msg.Email = "bogus"
	err := svc.Submit(ctx, &msg)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	stored, err := svc.List(ctx, repo.MessageFilter{})
	require.NoError(t, err)
	assert.Empty(t, stored, "nothing reaches the store on validation failure")
}

func TestUpdateStatus(t *testing.T) {
	svc := NewContactService(testutil.NewFakeContactRepo(), nil, testutil.NewLogger())
	ctx := context.Background()

	msg := validMessage()
	require.NoError(t, svc.Submit(ctx, &msg))

	updated, err := svc.UpdateStatus(ctx, msg.ID.Hex(), entity.MessageStatusRead)
	require.NoError(t, err)
	assert.Equal(t, entity.MessageStatusRead, updated.Status)

	_, err = svc.UpdateStatus(ctx, msg.ID.Hex(), "junk")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.UpdateStatus(ctx, "not-a-hex-id", entity.MessageStatusRead)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestContactListFilterAndDefaultLimit(t *testing.T) {
	svc := NewContactService(testutil.NewFakeContactRepo(), nil, testutil.NewLogger())
	ctx := context.Background()

	for i := 0; i < DefaultMessageLimit+5; i++ {
		msg := validMessage()
		require.NoError(t, svc.Submit(ctx, &msg))
	}
	read := validMessage()
	require.NoError(t, svc.Submit(ctx, &read))
	_, err := svc.UpdateStatus(ctx, read.ID.Hex(), entity.MessageStatusRead)
	require.NoError(t, err)

	all, err := svc.List(ctx, repo.MessageFilter{})
	require.NoError(t, err)
	assert.Len(t, all, DefaultMessageLimit)

	onlyRead, err := svc.List(ctx, repo.MessageFilter{Status: entity.MessageStatusRead})
	require.NoError(t, err)
	require.Len(t, onlyRead, 1)
	assert.Equal(t, read.ID, onlyRead[0].ID)
}

func TestContactDelete(t *testing.T) {
	svc := NewContactService(testutil.NewFakeContactRepo(), nil, testutil.NewLogger())
	ctx := context.Background()

	msg := validMessage()
	require.NoError(t, svc.Submit(ctx, &msg))
	require.NoError(t, svc.Delete(ctx, msg.ID.Hex()))

	_, err := svc.Get(ctx, msg.ID.Hex())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
