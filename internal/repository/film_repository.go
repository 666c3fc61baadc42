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

type filmRepository struct {
	base
}

func NewFilmRepository(mgr *database.Manager) FilmRepository {
	return &filmRepository{base{mgr: mgr, name: "films"}}
}

func (r *filmRepository) List(ctx context.Context) ([]models.Film, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, storageErr("list films", err)
	}
	defer cur.Close(ctx)

	films := []models.Film{}
	if err := cur.All(ctx, &films); err != nil {
		return nil, storageErr("decode films", err)
	}
	return films, nil
}

func (r *filmRepository) Create(ctx context.Context, film models.Film) (*models.Film, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	res, err := coll.InsertOne(ctx, film)
	if err != nil {
		return nil, storageErr("create film", err)
	}
	film.ID = res.InsertedID.(primitive.ObjectID)
	return &film, nil
}

func (r *filmRepository) Update(ctx context.Context, id string, set bson.M) (*models.Film, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	var film models.Film
	if len(set) == 0 {
		err = coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&film)
	} else {
		err = coll.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, returnUpdated()).Decode(&film)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storageErr("update film", err)
	}
	return &film, nil
}

func (r *filmRepository) Delete(ctx context.Context, id string) error {
	objID, err := parseID(id)
	if err != nil {
		return nil
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	if _, err := coll.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return storageErr("delete film", err)
	}
	return nil
}
