package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Music struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	VideoThemeURL string             `bson:"videoThemeUrl,omitempty" json:"videoThemeUrl,omitempty"`
	AudioURL      string             `bson:"audioUrl,omitempty" json:"audioUrl,omitempty"`
	Duration      string             `bson:"duration,omitempty" json:"duration,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateMusicRequest struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description"`
	VideoThemeURL string `json:"videoThemeUrl"`
	AudioURL      string `json:"audioUrl"`
	Duration      string `json:"duration"`
}

func (r CreateMusicRequest) Document() Music {
	return Music{
		Title:         r.Title,
		Description:   r.Description,
		VideoThemeURL: r.VideoThemeURL,
		AudioURL:      r.AudioURL,
		Duration:      r.Duration,
		CreatedAt:     time.Now().UTC(),
	}
}
