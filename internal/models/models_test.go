package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateStoryRequestDefaults(t *testing.T) {
	story := CreateStoryRequest{
		Title:       "A",
		CoupleNames: "B & C",
		CoverImage:  "http://x/y.jpg",
	}.Document()

	assert.Equal(t, StoryTypeWedding, story.Type)
	assert.NotNil(t, story.Images)
	assert.Empty(t, story.Images)
	assert.NotNil(t, story.SubVideos)
	assert.Empty(t, story.SubVideos)
	assert.False(t, story.CreatedAt.IsZero())
}

func TestCreateStoryRequestKeepsExplicitType(t *testing.T) {
	story := CreateStoryRequest{
		Title:       "A",
		CoupleNames: "B & C",
		Type:        StoryTypeEngagement,
		Images:      []string{"http://x/1.jpg"},
	}.Document()

	assert.Equal(t, StoryTypeEngagement, story.Type)
	assert.Equal(t, []string{"http://x/1.jpg"}, story.Images)
}

func TestUpdateStoryRequestSetDocOnlyProvidedFields(t *testing.T) {
	title := "New Title"
	images := []string{"http://x/2.jpg"}
	set := UpdateStoryRequest{
		Title:  &title,
		Images: &images,
	}.SetDoc()

	assert.Len(t, set, 2)
	assert.Equal(t, "New Title", set["title"])
	assert.Equal(t, images, set["images"])
	assert.NotContains(t, set, "coupleNames")
	assert.NotContains(t, set, "createdAt")
}

func TestUpdateStoryRequestSetDocEmpty(t *testing.T) {
	assert.Empty(t, UpdateStoryRequest{}.SetDoc())
}

func TestCreateImageRequestCategoryDefault(t *testing.T) {
	image := CreateImageRequest{Title: "t", ImageURL: "http://x/i.jpg"}.Document()
	assert.Equal(t, "General", image.Category)

	image = CreateImageRequest{Title: "t", Category: "Haldi", ImageURL: "http://x/i.jpg"}.Document()
	assert.Equal(t, "Haldi", image.Category)
}

func TestContactRequestDocumentDefaults(t *testing.T) {
	contact := ContactRequest{
		Name:          "Asha",
		Email:         "asha@example.com",
		ContactNumber: "+91 11111 22222",
	}.Document()

	assert.False(t, contact.EmailSent)
	assert.NotNil(t, contact.Referral)
	assert.Empty(t, contact.Referral)
	assert.False(t, contact.CreatedAt.IsZero())
}

func TestUserProfileDefaults(t *testing.T) {
	defaults := UserProfileDefaults()
	assert.Equal(t, "Administrator", defaults["role"])
	assert.Equal(t, "Admin User", defaults["name"])
}

func TestUpdateUserProfileRequestSetDoc(t *testing.T) {
	name := "New Name"
	set := UpdateUserProfileRequest{Name: &name}.SetDoc()
	assert.Equal(t, map[string]interface{}{"name": "New Name"}, map[string]interface{}(set))
}
