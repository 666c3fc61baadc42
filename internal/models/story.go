package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StoryType string

const (
	StoryTypeWedding    StoryType = "Wedding"
	StoryTypeEngagement StoryType = "Engagement"
	StoryTypeHaldi      StoryType = "Haldi"
	StoryTypeReception  StoryType = "Reception"
)

type Story struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	CoupleNames string             `bson:"coupleNames" json:"coupleNames"`
	Date        *time.Time         `bson:"date,omitempty" json:"date,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	CoverImage  string             `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	VideoURL    string             `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Type        StoryType          `bson:"type" json:"type"`
	Images      []string           `bson:"images" json:"images"`
	SubVideos   []string           `bson:"subVideos" json:"subVideos"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateStoryRequest struct {
	Title       string     `json:"title" validate:"required"`
	CoupleNames string     `json:"coupleNames" validate:"required"`
	Date        *time.Time `json:"date"`
	Location    string     `json:"location"`
	CoverImage  string     `json:"coverImage"`
	VideoURL    string     `json:"videoUrl"`
	Type        StoryType  `json:"type" validate:"omitempty,oneof=Wedding Engagement Haldi Reception"`
	Images      []string   `json:"images"`
	SubVideos   []string   `json:"subVideos"`
	Description string     `json:"description"`
}

func (r CreateStoryRequest) Document() Story {
	story := Story{
		Title:       r.Title,
		CoupleNames: r.CoupleNames,
		Date:        r.Date,
		Location:    r.Location,
		CoverImage:  r.CoverImage,
		VideoURL:    r.VideoURL,
		Type:        r.Type,
		Images:      r.Images,
		SubVideos:   r.SubVideos,
		Description: r.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if story.Type == "" {
		story.Type = StoryTypeWedding
	}
	if story.Images == nil {
		story.Images = []string{}
	}
	if story.SubVideos == nil {
		story.SubVideos = []string{}
	}
	return story
}

type UpdateStoryRequest struct {
	Title       *string    `json:"title"`
	CoupleNames *string    `json:"coupleNames"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
	CoverImage  *string    `json:"coverImage"`
	VideoURL    *string    `json:"videoUrl"`
	Type        *StoryType `json:"type" validate:"omitempty,oneof=Wedding Engagement Haldi Reception"`
	Images      *[]string  `json:"images"`
	SubVideos   *[]string  `json:"subVideos"`
	Description *string    `json:"description"`
}

// SetDoc builds the $set document from the provided fields only, so an
// update never clears fields the caller left out.
func (r UpdateStoryRequest) SetDoc() bson.M {
	set := bson.M{}
	if r.Title != nil {
		set["title"] = *r.Title
	}
	if r.CoupleNames != nil {
		set["coupleNames"] = *r.CoupleNames
	}
	if r.Date != nil {
		set["date"] = *r.Date
	}
	if r.Location != nil {
		set["location"] = *r.Location
	}
	if r.CoverImage != nil {
		set["coverImage"] = *r.CoverImage
	}
	if r.VideoURL != nil {
		set["videoUrl"] = *r.VideoURL
	}
	if r.Type != nil {
		set["type"] = *r.Type
	}
	if r.Images != nil {
		set["images"] = *r.Images
	}
	if r.SubVideos != nil {
		set["subVideos"] = *r.SubVideos
	}
	if r.Description != nil {
		set["description"] = *r.Description
	}
	return set
}
