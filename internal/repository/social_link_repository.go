package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/pkg/apperrors"
	"github.com/cinesine/cinesine-backend/pkg/database"
)

type socialLinkRepository struct {
	base
}

func NewSocialLinkRepository(mgr *database.Manager) SocialLinkRepository {
	return &socialLinkRepository{base{mgr: mgr, name: "sociallinks"}}
}

func (r *socialLinkRepository) List(ctx context.Context) ([]models.SocialLink, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, storageErr("list social links", err)
	}
	defer cur.Close(ctx)

	links := []models.SocialLink{}
	if err := cur.All(ctx, &links); err != nil {
		return nil, storageErr("decode social links", err)
	}
	return links, nil
}

func (r *socialLinkRepository) Create(ctx context.Context, link models.SocialLink) (*models.SocialLink, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	res, err := coll.InsertOne(ctx, link)
	if err != nil {
		return nil, storageErr("create social link", err)
	}
	link.ID = res.InsertedID.(primitive.ObjectID)
	return &link, nil
}

func (r *socialLinkRepository) Update(ctx context.Context, id string, set bson.M) (*models.SocialLink, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	var link models.SocialLink
	if len(set) == 0 {
		err = coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&link)
	} else {
		set["updatedAt"] = time.Now().UTC()
		err = coll.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, returnUpdated()).Decode(&link)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storageErr("update social link", err)
	}
	return &link, nil
}

func (r *socialLinkRepository) Delete(ctx context.Context, id string) error {
	objID, err := parseID(id)
	if err != nil {
		return nil
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	if _, err := coll.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return storageErr("delete social link", err)
	}
	return nil
}
