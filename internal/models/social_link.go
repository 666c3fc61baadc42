package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SocialLink struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Platform  string             `bson:"platform" json:"platform"`
	URL       string             `bson:"url" json:"url"`
	Icon      string             `bson:"icon,omitempty" json:"icon,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateSocialLinkRequest struct {
	Platform string `json:"platform" validate:"required"`
	URL      string `json:"url" validate:"required"`
	Icon     string `json:"icon"`
}

func (r CreateSocialLinkRequest) Document() SocialLink {
	now := time.Now().UTC()
	return SocialLink{
		Platform:  r.Platform,
		URL:       r.URL,
		Icon:      r.Icon,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type UpdateSocialLinkRequest struct {
	Platform *string `json:"platform"`
	URL      *string `json:"url"`
	Icon     *string `json:"icon"`
}

func (r UpdateSocialLinkRequest) SetDoc() bson.M {
	set := bson.M{}
	if r.Platform != nil {
		set["platform"] = *r.Platform
	}
	if r.URL != nil {
		set["url"] = *r.URL
	}
	if r.Icon != nil {
		set["icon"] = *r.Icon
	}
	return set
}
