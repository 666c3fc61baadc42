package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/pkg/database"
)

type userRepository struct {
	base
}

func NewUserRepository(mgr *database.Manager) UserRepository {
	return &userRepository{base{mgr: mgr, name: "users"}}
}

// GetOrCreate materializes the singleton profile atomically: the upsert on
// the fixed id means concurrent first reads end up with one document.
func (r *userRepository) GetOrCreate(ctx context.Context) (*models.UserProfile, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	onInsert := models.UserProfileDefaults()
	onInsert["createdAt"] = now
	onInsert["updatedAt"] = now

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var profile models.UserProfile
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"_id": models.UserProfileID},
		bson.M{"$setOnInsert": onInsert},
		opts,
	).Decode(&profile)
	if err != nil {
		return nil, storageErr("get or create user profile", err)
	}
	return &profile, nil
}

// Update merges the provided fields onto the singleton. If the profile does
// not exist yet the upsert creates it, with defaults filling whatever the
// payload left out.
func (r *userRepository) Update(ctx context.Context, set bson.M) (*models.UserProfile, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	update := userUpdateDoc(set, time.Now().UTC())

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var profile models.UserProfile
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": models.UserProfileID}, update, opts).Decode(&profile)
	if err != nil {
		return nil, storageErr("update user profile", err)
	}
	return &profile, nil
}

// userUpdateDoc builds the merge update: provided fields land in $set with a
// fresh updatedAt, defaults for whatever the payload left out land in
// $setOnInsert. A field never appears on both sides, which mongo rejects.
// With an empty payload the upsert still stamps updatedAt on insert.
func userUpdateDoc(set bson.M, now time.Time) bson.M {
	onInsert := bson.M{"createdAt": now}
	for field, value := range models.UserProfileDefaults() {
		if _, provided := set[field]; !provided {
			onInsert[field] = value
		}
	}
	update := bson.M{"$setOnInsert": onInsert}
	if len(set) == 0 {
		onInsert["updatedAt"] = now
		return update
	}

	merged := bson.M{"updatedAt": now}
	for field, value := range set {
		merged[field] = value
	}
	update["$set"] = merged
	return update
}
