package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Image struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Category  string             `bson:"category" json:"category"`
	ImageURL  string             `bson:"imageUrl" json:"imageUrl"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateImageRequest struct {
	Title    string `json:"title" validate:"required"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl" validate:"required"`
}

func (r CreateImageRequest) Document() Image {
	doc := Image{
		Title:     r.Title,
		Category:  r.Category,
		ImageURL:  r.ImageURL,
		CreatedAt: time.Now().UTC(),
	}
	if doc.Category == "" {
		doc.Category = "General"
	}
	return doc
}
