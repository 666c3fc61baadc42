package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/pkg/database"
)

type musicRepository struct {
	base
}

func NewMusicRepository(mgr *database.Manager) MusicRepository {
	return &musicRepository{base{mgr: mgr, name: "music"}}
}

func (r *musicRepository) List(ctx context.Context) ([]models.Music, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, storageErr("list music", err)
	}
	defer cur.Close(ctx)

	tracks := []models.Music{}
	if err := cur.All(ctx, &tracks); err != nil {
		return nil, storageErr("decode music", err)
	}
	return tracks, nil
}

func (r *musicRepository) Create(ctx context.Context, music models.Music) (*models.Music, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	res, err := coll.InsertOne(ctx, music)
	if err != nil {
		return nil, storageErr("create music", err)
	}
	music.ID = res.InsertedID.(primitive.ObjectID)
	return &music, nil
}
