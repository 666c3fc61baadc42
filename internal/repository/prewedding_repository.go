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

type preWeddingRepository struct {
	base
}

func NewPreWeddingRepository(mgr *database.Manager) PreWeddingRepository {
	return &preWeddingRepository{base{mgr: mgr, name: "preweddings"}}
}

func (r *preWeddingRepository) List(ctx context.Context) ([]models.PreWedding, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, storageErr("list pre-weddings", err)
	}
	defer cur.Close(ctx)

	preWeddings := []models.PreWedding{}
	if err := cur.All(ctx, &preWeddings); err != nil {
		return nil, storageErr("decode pre-weddings", err)
	}
	return preWeddings, nil
}

func (r *preWeddingRepository) GetByID(ctx context.Context, id string) (*models.PreWedding, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	var preWedding models.PreWedding
	if err := coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&preWedding); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storageErr("get pre-wedding", err)
	}
	return &preWedding, nil
}

func (r *preWeddingRepository) Create(ctx context.Context, preWedding models.PreWedding) (*models.PreWedding, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	res, err := coll.InsertOne(ctx, preWedding)
	if err != nil {
		return nil, storageErr("create pre-wedding", err)
	}
	preWedding.ID = res.InsertedID.(primitive.ObjectID)
	return &preWedding, nil
}

func (r *preWeddingRepository) Update(ctx context.Context, id string, set bson.M) (*models.PreWedding, error) {
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
	var preWedding models.PreWedding
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, returnUpdated()).Decode(&preWedding)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storageErr("update pre-wedding", err)
	}
	return &preWedding, nil
}

func (r *preWeddingRepository) Delete(ctx context.Context, id string) error {
	objID, err := parseID(id)
	if err != nil {
		return nil
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	if _, err := coll.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return storageErr("delete pre-wedding", err)
	}
	return nil
}
