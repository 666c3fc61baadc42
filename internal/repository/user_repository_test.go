package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUserUpdateDocEmptyPayloadStampsTimestampsOnInsert(t *testing.T) {
	now := time.Now().UTC()

	update := userUpdateDoc(bson.M{}, now)

	assert.NotContains(t, update, "$set")
	onInsert := update["$setOnInsert"].(bson.M)
	assert.Equal(t, now, onInsert["createdAt"])
	assert.Equal(t, now, onInsert["updatedAt"])
	assert.Equal(t, "Administrator", onInsert["role"])
	assert.Equal(t, "Admin User", onInsert["name"])
}

func TestUserUpdateDocProvidedFieldsNeverOnBothSides(t *testing.T) {
	now := time.Now().UTC()

	update := userUpdateDoc(bson.M{"name": "New Name"}, now)

	set := update["$set"].(bson.M)
	assert.Equal(t, "New Name", set["name"])
	assert.Equal(t, now, set["updatedAt"])

	onInsert := update["$setOnInsert"].(bson.M)
	assert.NotContains(t, onInsert, "name")
	assert.NotContains(t, onInsert, "updatedAt")
	assert.Equal(t, now, onInsert["createdAt"])
	assert.Equal(t, "Administrator", onInsert["role"])
}
