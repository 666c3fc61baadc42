package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/pkg/apperrors"
	"github.com/cinesine/cinesine-backend/pkg/database"
)

type StoryRepository interface {
	List(ctx context.Context) ([]models.Story, error)
	GetByID(ctx context.Context, id string) (*models.Story, error)
	Create(ctx context.Context, story models.Story) (*models.Story, error)
	Update(ctx context.Context, id string, set bson.M) (*models.Story, error)
	Delete(ctx context.Context, id string) error
}

type FilmRepository interface {
	List(ctx context.Context) ([]models.Film, error)
	Create(ctx context.Context, film models.Film) (*models.Film, error)
	Update(ctx context.Context, id string, set bson.M) (*models.Film, error)
	Delete(ctx context.Context, id string) error
}

type PreWeddingRepository interface {
	List(ctx context.Context) ([]models.PreWedding, error)
	GetByID(ctx context.Context, id string) (*models.PreWedding, error)
	Create(ctx context.Context, preWedding models.PreWedding) (*models.PreWedding, error)
	Update(ctx context.Context, id string, set bson.M) (*models.PreWedding, error)
	Delete(ctx context.Context, id string) error
}

type PhotobookRepository interface {
	List(ctx context.Context) ([]models.Photobook, error)
	Create(ctx context.Context, photobook models.Photobook) (*models.Photobook, error)
	Update(ctx context.Context, id string, set bson.M) (*models.Photobook, error)
	Delete(ctx context.Context, id string) error
}

type MusicRepository interface {
	List(ctx context.Context) ([]models.Music, error)
	Create(ctx context.Context, music models.Music) (*models.Music, error)
}

type ImageRepository interface {
	List(ctx context.Context) ([]models.Image, error)
	Create(ctx context.Context, image models.Image) (*models.Image, error)
	Delete(ctx context.Context, id string) error
}

type SocialLinkRepository interface {
	List(ctx context.Context) ([]models.SocialLink, error)
	Create(ctx context.Context, link models.SocialLink) (*models.SocialLink, error)
	Update(ctx context.Context, id string, set bson.M) (*models.SocialLink, error)
	Delete(ctx context.Context, id string) error
}

type ContactRepository interface {
	List(ctx context.Context) ([]models.Contact, error)
	Create(ctx context.Context, contact models.Contact) (*models.Contact, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*models.Contact, error)
	MarkEmailSent(ctx context.Context, id primitive.ObjectID) error
}

type UserRepository interface {
	GetOrCreate(ctx context.Context) (*models.UserProfile, error)
	Update(ctx context.Context, set bson.M) (*models.UserProfile, error)
}

// base resolves the collection through the connection manager on every call,
// so repositories work before the first connection is established.
type base struct {
	mgr  *database.Manager
	name string
}

func (b base) collection(ctx context.Context) (*mongo.Collection, error) {
	return b.mgr.Collection(ctx, b.name)
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

func returnUpdated() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// parseID maps a malformed identifier to ErrNotFound: a caller cannot tell
// apart an id that never existed from one that never could.
func parseID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrNotFound
	}
	return objID, nil
}

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &apperrors.StorageError{Op: op, Err: err}
}
