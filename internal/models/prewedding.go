package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PreWedding stores a raw video-platform identifier in VideoID rather than a
// full embed URL; the frontend builds the player URL from it.
type PreWedding struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoupleName    string             `bson:"coupleName" json:"coupleName"`
	City          string             `bson:"city" json:"city"`
	VideoID       string             `bson:"videoId" json:"videoId"`
	MainImage     string             `bson:"mainImage" json:"mainImage"`
	GalleryImages []string           `bson:"galleryImages" json:"galleryImages"`
	SubVideos     []string           `bson:"subVideos" json:"subVideos"`
	Description   string             `bson:"description" json:"description"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreatePreWeddingRequest struct {
	CoupleName    string   `json:"coupleName" validate:"required"`
	City          string   `json:"city" validate:"required"`
	VideoID       string   `json:"videoId" validate:"required"`
	MainImage     string   `json:"mainImage" validate:"required"`
	GalleryImages []string `json:"galleryImages"`
	SubVideos     []string `json:"subVideos"`
	Description   string   `json:"description" validate:"required"`
}

func (r CreatePreWeddingRequest) Document() PreWedding {
	doc := PreWedding{
		CoupleName:    r.CoupleName,
		City:          r.City,
		VideoID:       r.VideoID,
		MainImage:     r.MainImage,
		GalleryImages: r.GalleryImages,
		SubVideos:     r.SubVideos,
		Description:   r.Description,
		CreatedAt:     time.Now().UTC(),
	}
	if doc.GalleryImages == nil {
		doc.GalleryImages = []string{}
	}
	if doc.SubVideos == nil {
		doc.SubVideos = []string{}
	}
	return doc
}

type UpdatePreWeddingRequest struct {
	CoupleName    *string   `json:"coupleName"`
	City          *string   `json:"city"`
	VideoID       *string   `json:"videoId"`
	MainImage     *string   `json:"mainImage"`
	GalleryImages *[]string `json:"galleryImages"`
	SubVideos     *[]string `json:"subVideos"`
	Description   *string   `json:"description"`
}

func (r UpdatePreWeddingRequest) SetDoc() bson.M {
	set := bson.M{}
	if r.CoupleName != nil {
		set["coupleName"] = *r.CoupleName
	}
	if r.City != nil {
		set["city"] = *r.City
	}
	if r.VideoID != nil {
		set["videoId"] = *r.VideoID
	}
	if r.MainImage != nil {
		set["mainImage"] = *r.MainImage
	}
	if r.GalleryImages != nil {
		set["galleryImages"] = *r.GalleryImages
	}
	if r.SubVideos != nil {
		set["subVideos"] = *r.SubVideos
	}
	if r.Description != nil {
		set["description"] = *r.Description
	}
	return set
}
