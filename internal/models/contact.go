package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Contact struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	ContactNumber string             `bson:"contactNumber" json:"contactNumber"`
	WeddingDates  string             `bson:"weddingDates,omitempty" json:"weddingDates,omitempty"`
	Venue         string             `bson:"venue,omitempty" json:"venue,omitempty"`
	EventDetails  string             `bson:"eventDetails,omitempty" json:"eventDetails,omitempty"`
	Referral      []string           `bson:"referral" json:"referral"`
	EmailSent     bool               `bson:"emailSent" json:"emailSent"`
	// IdempotencyKey dedupes client retries of the same submission.
	IdempotencyKey string    `bson:"idempotencyKey,omitempty" json:"-"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

type ContactRequest struct {
	Name          string   `json:"name" validate:"required"`
	Email         string   `json:"email" validate:"required"`
	ContactNumber string   `json:"contactNumber" validate:"required"`
	WeddingDates  string   `json:"weddingDates"`
	Venue         string   `json:"venue"`
	EventDetails  string   `json:"eventDetails"`
	Referral      []string `json:"referral"`
}

func (r ContactRequest) Document() Contact {
	now := time.Now().UTC()
	doc := Contact{
		Name:          r.Name,
		Email:         r.Email,
		ContactNumber: r.ContactNumber,
		WeddingDates:  r.WeddingDates,
		Venue:         r.Venue,
		EventDetails:  r.EventDetails,
		Referral:      r.Referral,
		EmailSent:     false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if doc.Referral == nil {
		doc.Referral = []string{}
	}
	return doc
}

type ContactResponse struct {
	Message   string `json:"message"`
	ContactID string `json:"contactId"`
}
