package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/pkg/apperrors"
	"github.com/cinesine/cinesine-backend/pkg/utils"
)

type fakeStoryRepo struct {
	stories map[string]models.Story
}

func newFakeStoryRepo() *fakeStoryRepo {
	return &fakeStoryRepo{stories: map[string]models.Story{}}
}

func (r *fakeStoryRepo) List(ctx context.Context) ([]models.Story, error) {
	out := make([]models.Story, 0, len(r.stories))
	for _, s := range r.stories {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeStoryRepo) GetByID(ctx context.Context, id string) (*models.Story, error) {
	s, ok := r.stories[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &s, nil
}

func (r *fakeStoryRepo) Create(ctx context.Context, story models.Story) (*models.Story, error) {
	story.ID = primitive.NewObjectID()
	r.stories[story.ID.Hex()] = story
	return &story, nil
}

func (r *fakeStoryRepo) Update(ctx context.Context, id string, set bson.M) (*models.Story, error) {
	s, ok := r.stories[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if title, ok := set["title"].(string); ok {
		s.Title = title
	}
	r.stories[id] = s
	return &s, nil
}

func (r *fakeStoryRepo) Delete(ctx context.Context, id string) error {
	delete(r.stories, id)
	return nil
}

func newStoryApp(repo *fakeStoryRepo) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: NewErrorHandler(false, zap.NewNop().Sugar()),
	})
	h := NewStoryHandler(repo, utils.NewValidator())
	app.Get("/stories", h.List)
	app.Get("/stories/:id", h.Get)
	app.Post("/stories", h.Create)
	app.Put("/stories/:id", h.Update)
	app.Delete("/stories/:id", h.Delete)
	app.Use(NotFoundHandler)
	return app
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestCreateStoryAppliesDefaults(t *testing.T) {
	app := newStoryApp(newFakeStoryRepo())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/stories", fiber.Map{
		"title":       "A",
		"coupleNames": "B & C",
		"coverImage":  "http://x/y.jpg",
		"type":        "Engagement",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var story models.Story
	decodeBody(t, resp, &story)
	assert.Equal(t, models.StoryTypeEngagement, story.Type)
	assert.NotNil(t, story.Images)
	assert.Empty(t, story.Images)
	assert.NotNil(t, story.SubVideos)
	assert.Empty(t, story.SubVideos)
	assert.False(t, story.ID.IsZero())
	assert.False(t, story.CreatedAt.IsZero())
}

func TestCreateStoryMissingTitleRejected(t *testing.T) {
	repo := newFakeStoryRepo()
	app := newStoryApp(repo)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/stories", fiber.Map{
		"coupleNames": "B & C",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, repo.stories)
}

func TestCreateStoryInvalidTypeRejected(t *testing.T) {
	app := newStoryApp(newFakeStoryRepo())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/stories", fiber.Map{
		"title":       "A",
		"coupleNames": "B & C",
		"type":        "Birthday",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetStoryUnknownIDReturnsNotFound(t *testing.T) {
	app := newStoryApp(newFakeStoryRepo())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/stories/"+primitive.NewObjectID().Hex(), nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body models.ErrorBody
	decodeBody(t, resp, &body)
	assert.Equal(t, "Not Found", body.Message)
	assert.Nil(t, body.Error)
}

func TestUpdateStoryChangesOnlyProvidedFields(t *testing.T) {
	repo := newFakeStoryRepo()
	created, _ := repo.Create(context.Background(), models.CreateStoryRequest{
		Title:       "Old",
		CoupleNames: "B & C",
	}.Document())
	app := newStoryApp(repo)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/stories/"+created.ID.Hex(), fiber.Map{
		"title": "New",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var story models.Story
	decodeBody(t, resp, &story)
	assert.Equal(t, "New", story.Title)
	assert.Equal(t, "B & C", story.CoupleNames)
}

func TestDeleteStoryConfirmationMessage(t *testing.T) {
	repo := newFakeStoryRepo()
	created, _ := repo.Create(context.Background(), models.CreateStoryRequest{
		Title:       "A",
		CoupleNames: "B & C",
	}.Document())
	app := newStoryApp(repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/stories/"+created.ID.Hex(), nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.MessageBody
	decodeBody(t, resp, &body)
	assert.Equal(t, "Story deleted", body.Message)
	assert.Empty(t, repo.stories)
}

func TestUnmatchedRouteReturnsPath(t *testing.T) {
	app := newStoryApp(newFakeStoryRepo())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body models.MessageBody
	decodeBody(t, resp, &body)
	assert.Equal(t, "Route not found: /nope", body.Message)
}
