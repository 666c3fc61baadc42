package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Photobook struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	PersonName  string             `bson:"personName" json:"personName"`
	CoverImage  string             `bson:"coverImage" json:"coverImage"`
	VideoURL    string             `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Images      []string           `bson:"images" json:"images"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreatePhotobookRequest struct {
	Title       string   `json:"title" validate:"required"`
	PersonName  string   `json:"personName" validate:"required"`
	CoverImage  string   `json:"coverImage" validate:"required"`
	VideoURL    string   `json:"videoUrl"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
}

func (r CreatePhotobookRequest) Document() Photobook {
	doc := Photobook{
		Title:       r.Title,
		PersonName:  r.PersonName,
		CoverImage:  r.CoverImage,
		VideoURL:    r.VideoURL,
		Images:      r.Images,
		Description: r.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if doc.Images == nil {
		doc.Images = []string{}
	}
	return doc
}

type UpdatePhotobookRequest struct {
	Title       *string   `json:"title"`
	PersonName  *string   `json:"personName"`
	CoverImage  *string   `json:"coverImage"`
	VideoURL    *string   `json:"videoUrl"`
	Images      *[]string `json:"images"`
	Description *string   `json:"description"`
}

func (r UpdatePhotobookRequest) SetDoc() bson.M {
	set := bson.M{}
	if r.Title != nil {
		set["title"] = *r.Title
	}
	if r.PersonName != nil {
		set["personName"] = *r.PersonName
	}
	if r.CoverImage != nil {
		set["coverImage"] = *r.CoverImage
	}
	if r.VideoURL != nil {
		set["videoUrl"] = *r.VideoURL
	}
	if r.Images != nil {
		set["images"] = *r.Images
	}
	if r.Description != nil {
		set["description"] = *r.Description
	}
	return set
}
