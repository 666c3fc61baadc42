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

type photobookRepository struct {
	base
}

func NewPhotobookRepository(mgr *database.Manager) PhotobookRepository {
	return &photobookRepository{base{mgr: mgr, name: "photobooks"}}
}

func (r *photobookRepository) List(ctx context.Context) ([]models.Photobook, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, storageErr("list photobooks", err)
	}
	defer cur.Close(ctx)

	photobooks := []models.Photobook{}
	if err := cur.All(ctx, &photobooks); err != nil {
		return nil, storageErr("decode photobooks", err)
	}
	return photobooks, nil
}

func (r *photobookRepository) Create(ctx context.Context, photobook models.Photobook) (*models.Photobook, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	res, err := coll.InsertOne(ctx, photobook)
	if err != nil {
		return nil, storageErr("create photobook", err)
	}
	photobook.ID = res.InsertedID.(primitive.ObjectID)
	return &photobook, nil
}

func (r *photobookRepository) Update(ctx context.Context, id string, set bson.M) (*models.Photobook, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	var photobook models.Photobook
	if len(set) == 0 {
		err = coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&photobook)
	} else {
		err = coll.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, returnUpdated()).Decode(&photobook)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storageErr("update photobook", err)
	}
	return &photobook, nil
}

func (r *photobookRepository) Delete(ctx context.Context, id string) error {
	objID, err := parseID(id)
	if err != nil {
		return nil
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	if _, err := coll.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return storageErr("delete photobook", err)
	}
	return nil
}
