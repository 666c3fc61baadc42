package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// UserProfileID is the fixed document id of the singleton profile. Storing
// the profile under a well-known key makes the find-or-create atomic: an
// upsert on this id cannot create a second document.
const UserProfileID = "profile"

type UserProfile struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Role      string    `bson:"role" json:"role"`
	Email     string    `bson:"email" json:"email"`
	Contact   string    `bson:"contact" json:"contact"`
	Address   string    `bson:"address" json:"address"`
	Image     string    `bson:"image" json:"image"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserProfileDefaults are applied when the profile is materialized on first
// read, and fill fields an initial update left out.
func UserProfileDefaults() bson.M {
	return bson.M{
		"name":    "Admin User",
		"role":    "Administrator",
		"email":   "admin@cinesine.com",
		"contact": "+91 98765 43210",
		"address": "Mumbai, India",
		"image":   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?q=80&w=400",
	}
}

type UpdateUserProfileRequest struct {
	Name    *string `json:"name"`
	Role    *string `json:"role"`
	Email   *string `json:"email"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
	Image   *string `json:"image"`
}

func (r UpdateUserProfileRequest) SetDoc() bson.M {
	set := bson.M{}
	if r.Name != nil {
		set["name"] = *r.Name
	}
	if r.Role != nil {
		set["role"] = *r.Role
	}
	if r.Email != nil {
		set["email"] = *r.Email
	}
	if r.Contact != nil {
		set["contact"] = *r.Contact
	}
	if r.Address != nil {
		set["address"] = *r.Address
	}
	if r.Image != nil {
		set["image"] = *r.Image
	}
	return set
}
