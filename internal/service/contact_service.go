package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/internal/repository"
	"github.com/cinesine/cinesine-backend/pkg/email"
)

const (
	msgSubmitted = "Your inquiry has been submitted successfully!"
	msgReceived  = "Your inquiry has been received! Our team will contact you soon."
)

// ContactService runs the inquiry pipeline: persist first, then attempt the
// notification. Once the document is stored the submission has succeeded;
// a failed email never bubbles up to the caller.
type ContactService struct {
	repo     repository.ContactRepository
	notifier email.Notifier
	log      *zap.SugaredLogger
}

func NewContactService(repo repository.ContactRepository, notifier email.Notifier, log *zap.SugaredLogger) *ContactService {
	return &ContactService{
		repo:     repo,
		notifier: notifier,
		log:      log,
	}
}

// Submit persists the inquiry and fires the best-effort notification.
// idempotencyKey may be empty; when present, a repeated key returns the
// already-stored contact instead of creating a duplicate (client retries
// after a timeout must not double-record the lead).
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest, idempotencyKey string) (*models.Contact, string, error) {
	if idempotencyKey != "" {
		existing, err := s.repo.FindByIdempotencyKey(ctx, idempotencyKey)
		if err != nil {
			return nil, "", err
		}
		if existing != nil {
			s.log.Infow("duplicate contact submission ignored", "idempotencyKey", idempotencyKey, "contact", existing.ID.Hex())
			return existing, msgReceived, nil
		}
	}

	doc := req.Document()
	doc.IdempotencyKey = idempotencyKey
	contact, err := s.repo.Create(ctx, doc)
	if err != nil {
		return nil, "", err
	}
	s.log.Infow("contact saved", "contact", contact.ID.Hex())

	if !s.notifier.Enabled() {
		s.log.Warn("email credentials not configured, contact saved to database only")
		return contact, msgReceived, nil
	}

	sendErr := s.notifier.Send(email.ContactMessage{
		Name:          contact.Name,
		Email:         contact.Email,
		ContactNumber: contact.ContactNumber,
		WeddingDates:  contact.WeddingDates,
		Venue:         contact.Venue,
		EventDetails:  contact.EventDetails,
		Referral:      contact.Referral,
	})
	if sendErr != nil {
		s.log.Errorw("contact notification failed, contact already saved", "contact", contact.ID.Hex(), "error", sendErr)
		return contact, msgReceived, nil
	}

	if err := s.repo.MarkEmailSent(ctx, contact.ID); err != nil {
		// The email went out; losing the flag only affects the dashboard view.
		s.log.Errorw("failed to mark contact email sent", "contact", contact.ID.Hex(), "error", err)
	} else {
		contact.EmailSent = true
	}
	return contact, msgSubmitted, nil
}

func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	return s.repo.List(ctx)
}
