package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/pkg/apperrors"
	"github.com/cinesine/cinesine-backend/pkg/database"
)

type storyRepository struct {
	base
}

func NewStoryRepository(mgr *database.Manager) StoryRepository {
	return &storyRepository{base{mgr: mgr, name: "stories"}}
}

func (r *storyRepository) List(ctx context.Context) ([]models.Story, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, storageErr("list stories", err)
	}
	defer cur.Close(ctx)

	stories := []models.Story{}
	if err := cur.All(ctx, &stories); err != nil {
		return nil, storageErr("decode stories", err)
	}
	return stories, nil
}

func (r *storyRepository) GetByID(ctx context.Context, id string) (*models.Story, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	var story models.Story
	if err := coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&story); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storageErr("get story", err)
	}
	return &story, nil
}

func (r *storyRepository) Create(ctx context.Context, story models.Story) (*models.Story, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	res, err := coll.InsertOne(ctx, story)
	if err != nil {
		return nil, storageErr("create story", err)
	}
	story.ID = res.InsertedID.(primitive.ObjectID)
	return &story, nil
}

func (r *storyRepository) Update(ctx context.Context, id string, set bson.M) (*models.Story, error) {
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	var story models.Story
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, returnUpdated()).Decode(&story)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storageErr("update story", err)
	}
	return &story, nil
}

func (r *storyRepository) Delete(ctx context.Context, id string) error {
	objID, err := parseID(id)
	if err != nil {
		// Deleting something that could never exist is still a no-op success.
		return nil
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	if _, err := coll.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return storageErr("delete story", err)
	}
	return nil
}
