package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Film struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	CoupleName  string             `bson:"coupleName" json:"coupleName"`
	VideoURL    string             `bson:"videoUrl" json:"videoUrl"`
	Tagline     string             `bson:"tagline,omitempty" json:"tagline,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Featured    bool               `bson:"featured" json:"featured"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateFilmRequest struct {
	Title       string `json:"title" validate:"required"`
	CoupleName  string `json:"coupleName" validate:"required"`
	VideoURL    string `json:"videoUrl" validate:"required"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Featured    bool   `json:"featured"`
}

func (r CreateFilmRequest) Document() Film {
	return Film{
		Title:       r.Title,
		CoupleName:  r.CoupleName,
		VideoURL:    r.VideoURL,
		Tagline:     r.Tagline,
		Description: r.Description,
		Featured:    r.Featured,
		CreatedAt:   time.Now().UTC(),
	}
}

type UpdateFilmRequest struct {
	Title       *string `json:"title"`
	CoupleName  *string `json:"coupleName"`
	VideoURL    *string `json:"videoUrl"`
	Tagline     *string `json:"tagline"`
	Description *string `json:"description"`
	Featured    *bool   `json:"featured"`
}

func (r UpdateFilmRequest) SetDoc() bson.M {
	set := bson.M{}
	if r.Title != nil {
		set["title"] = *r.Title
	}
	if r.CoupleName != nil {
		set["coupleName"] = *r.CoupleName
	}
	if r.VideoURL != nil {
		set["videoUrl"] = *r.VideoURL
	}
	if r.Tagline != nil {
		set["tagline"] = *r.Tagline
	}
	if r.Description != nil {
		set["description"] = *r.Description
	}
	if r.Featured != nil {
		set["featured"] = *r.Featured
	}
	return set
}
