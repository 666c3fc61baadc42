package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/pkg/database"
)

type contactRepository struct {
	base
}

func NewContactRepository(mgr *database.Manager) ContactRepository {
	return &contactRepository{base{mgr: mgr, name: "contacts"}}
}

func (r *contactRepository) List(ctx context.Context) ([]models.Contact, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, storageErr("list contacts", err)
	}
	defer cur.Close(ctx)

	contacts := []models.Contact{}
	if err := cur.All(ctx, &contacts); err != nil {
		return nil, storageErr("decode contacts", err)
	}
	return contacts, nil
}

func (r *contactRepository) Create(ctx context.Context, contact models.Contact) (*models.Contact, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	res, err := coll.InsertOne(ctx, contact)
	if err != nil {
		return nil, storageErr("create contact", err)
	}
	contact.ID = res.InsertedID.(primitive.ObjectID)
	return &contact, nil
}

func (r *contactRepository) FindByIdempotencyKey(ctx context.Context, key string) (*models.Contact, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	var contact models.Contact
	if err := coll.FindOne(ctx, bson.M{"idempotencyKey": key}).Decode(&contact); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, storageErr("find contact by idempotency key", err)
	}
	return &contact, nil
}

// MarkEmailSent flips emailSent after a confirmed delivery. It is never
// flipped back.
func (r *contactRepository) MarkEmailSent(ctx context.Context, id primitive.ObjectID) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"emailSent": true, "updatedAt": time.Now().UTC()}}
	if _, err := coll.UpdateByID(ctx, id, update); err != nil {
		return storageErr("mark contact email sent", err)
	}
	return nil
}
