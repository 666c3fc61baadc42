package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/pkg/email"
)

type fakeContactRepo struct {
	contacts  []models.Contact
	createErr error
	markErr   error
	markCalls int
}

func (r *fakeContactRepo) List(ctx context.Context) ([]models.Contact, error) {
	return r.contacts, nil
}

func (r *fakeContactRepo) Create(ctx context.Context, contact models.Contact) (*models.Contact, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	contact.ID = primitive.NewObjectID()
	r.contacts = append(r.contacts, contact)
	return &contact, nil
}

func (r *fakeContactRepo) FindByIdempotencyKey(ctx context.Context, key string) (*models.Contact, error) {
	for i := range r.contacts {
		if r.contacts[i].IdempotencyKey == key {
			c := r.contacts[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeContactRepo) MarkEmailSent(ctx context.Context, id primitive.ObjectID) error {
	r.markCalls++
	if r.markErr != nil {
		return r.markErr
	}
	for i := range r.contacts {
		if r.contacts[i].ID == id {
			r.contacts[i].EmailSent = true
		}
	}
	return nil
}

type fakeNotifier struct {
	enabled bool
	sendErr error
	sent    []email.ContactMessage
}

func (n *fakeNotifier) Enabled() bool { return n.enabled }

func (n *fakeNotifier) Send(msg email.ContactMessage) error {
	if n.sendErr != nil {
		return n.sendErr
	}
	n.sent = append(n.sent, msg)
	return nil
}

func testContactRequest() models.ContactRequest {
	return models.ContactRequest{
		Name:          "Asha",
		Email:         "asha@example.com",
		ContactNumber: "+91 11111 22222",
		Venue:         "Goa",
	}
}

func TestSubmitSendsNotificationAndMarksContact(t *testing.T) {
	repo := &fakeContactRepo{}
	notifier := &fakeNotifier{enabled: true}
	svc := NewContactService(repo, notifier, zap.NewNop().Sugar())

	contact, msg, err := svc.Submit(context.Background(), testContactRequest(), "")

	assert.NoError(t, err)
	assert.Equal(t, msgSubmitted, msg)
	assert.True(t, contact.EmailSent)
	assert.Equal(t, 1, repo.markCalls)
	assert.Len(t, notifier.sent, 1)
	assert.Equal(t, "Asha", notifier.sent[0].Name)
}

func TestSubmitWithoutNotifierStillSaves(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, &fakeNotifier{enabled: false}, zap.NewNop().Sugar())

	contact, msg, err := svc.Submit(context.Background(), testContactRequest(), "")

	assert.NoError(t, err)
	assert.Equal(t, msgReceived, msg)
	assert.False(t, contact.EmailSent)
	assert.Len(t, repo.contacts, 1)
	assert.Zero(t, repo.markCalls)
}

func TestSubmitNotificationFailureDoesNotSurface(t *testing.T) {
	repo := &fakeContactRepo{}
	notifier := &fakeNotifier{enabled: true, sendErr: errors.New("smtp down")}
	svc := NewContactService(repo, notifier, zap.NewNop().Sugar())

	contact, msg, err := svc.Submit(context.Background(), testContactRequest(), "")

	assert.NoError(t, err)
	assert.Equal(t, msgReceived, msg)
	assert.False(t, contact.EmailSent)
	assert.Len(t, repo.contacts, 1)
	assert.Zero(t, repo.markCalls)
}

func TestSubmitMarkFailureStillReportsSuccess(t *testing.T) {
	repo := &fakeContactRepo{markErr: errors.New("write conflict")}
	svc := NewContactService(repo, &fakeNotifier{enabled: true}, zap.NewNop().Sugar())

	contact, msg, err := svc.Submit(context.Background(), testContactRequest(), "")

	assert.NoError(t, err)
	assert.Equal(t, msgSubmitted, msg)
	assert.False(t, contact.EmailSent)
}

func TestSubmitDeduplicatesByIdempotencyKey(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, &fakeNotifier{enabled: false}, zap.NewNop().Sugar())

	first, _, err := svc.Submit(context.Background(), testContactRequest(), "key-1")
	assert.NoError(t, err)

	second, msg, err := svc.Submit(context.Background(), testContactRequest(), "key-1")
	assert.NoError(t, err)
	assert.Equal(t, msgReceived, msg)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.contacts, 1)
}

func TestSubmitCreateFailurePropagates(t *testing.T) {
	repo := &fakeContactRepo{createErr: errors.New("collection unavailable")}
	svc := NewContactService(repo, &fakeNotifier{enabled: true}, zap.NewNop().Sugar())

	_, _, err := svc.Submit(context.Background(), testContactRequest(), "")

	assert.Error(t, err)
	assert.Empty(t, repo.contacts)
}
