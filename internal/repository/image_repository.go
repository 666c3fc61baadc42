package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/pkg/database"
)

type imageRepository struct {
	base
}

func NewImageRepository(mgr *database.Manager) ImageRepository {
	return &imageRepository{base{mgr: mgr, name: "images"}}
}

func (r *imageRepository) List(ctx context.Context) ([]models.Image, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, storageErr("list images", err)
	}
	defer cur.Close(ctx)

	images := []models.Image{}
	if err := cur.All(ctx, &images); err != nil {
		return nil, storageErr("decode images", err)
	}
	return images, nil
}

func (r *imageRepository) Create(ctx context.Context, image models.Image) (*models.Image, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	res, err := coll.InsertOne(ctx, image)
	if err != nil {
		return nil, storageErr("create image", err)
	}
	image.ID = res.InsertedID.(primitive.ObjectID)
	return &image, nil
}

func (r *imageRepository) Delete(ctx context.Context, id string) error {
	objID, err := parseID(id)
	if err != nil {
		return nil
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	if _, err := coll.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return storageErr("delete image", err)
	}
	return nil
}
