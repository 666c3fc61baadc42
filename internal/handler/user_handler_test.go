package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/internal/service"
)

type fakeUserRepo struct {
	profile *models.UserProfile
}

func (r *fakeUserRepo) materialize(set bson.M) {
	now := time.Now().UTC()
	p := &models.UserProfile{ID: models.UserProfileID, CreatedAt: now, UpdatedAt: now}
	defaults := models.UserProfileDefaults()
	for field := range defaults {
		if _, provided := set[field]; provided {
			continue
		}
		r.applyField(p, field, defaults[field])
	}
	r.profile = p
}

func (r *fakeUserRepo) applyField(p *models.UserProfile, field string, value interface{}) {
	s, _ := value.(string)
	switch field {
	case "name":
		p.Name = s
	case "role":
		p.Role = s
	case "email":
		p.Email = s
	case "contact":
		p.Contact = s
	case "address":
		p.Address = s
	case "image":
		p.Image = s
	}
}

func (r *fakeUserRepo) GetOrCreate(ctx context.Context) (*models.UserProfile, error) {
	if r.profile == nil {
		r.materialize(bson.M{})
	}
	p := *r.profile
	return &p, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, set bson.M) (*models.UserProfile, error) {
	if r.profile == nil {
		r.materialize(set)
	}
	for field, value := range set {
		r.applyField(r.profile, field, value)
	}
	if len(set) > 0 {
		r.profile.UpdatedAt = time.Now().UTC()
	}
	p := *r.profile
	return &p, nil
}

func newUserApp(repo *fakeUserRepo) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: NewErrorHandler(false, zap.NewNop().Sugar()),
	})
	h := NewUserHandler(service.NewUserService(repo))
	app.Get("/user", h.Get)
	app.Put("/user", h.Update)
	return app
}

func TestGetUserMaterializesDefaults(t *testing.T) {
	app := newUserApp(&fakeUserRepo{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/user", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var profile models.UserProfile
	decodeBody(t, resp, &profile)
	assert.Equal(t, models.UserProfileID, profile.ID)
	assert.Equal(t, "Administrator", profile.Role)
	assert.Equal(t, "Admin User", profile.Name)
	assert.False(t, profile.CreatedAt.IsZero())
}

func TestGetUserSecondReadReturnsSameDocument(t *testing.T) {
	app := newUserApp(&fakeUserRepo{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/user", nil))
	assert.NoError(t, err)
	var first models.UserProfile
	decodeBody(t, resp, &first)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/user", nil))
	assert.NoError(t, err)
	var second models.UserProfile
	decodeBody(t, resp, &second)

	assert.Equal(t, first, second)
}

func TestUpdateUserMergesNotReplaces(t *testing.T) {
	repo := &fakeUserRepo{}
	app := newUserApp(repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/user", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPut, "/user", fiber.Map{
		"name": "Priya",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var profile models.UserProfile
	decodeBody(t, resp, &profile)
	assert.Equal(t, "Priya", profile.Name)
	assert.Equal(t, "Administrator", profile.Role)
	assert.Equal(t, "admin@cinesine.com", profile.Email)
}

func TestUpdateUserBeforeFirstReadFillsDefaults(t *testing.T) {
	app := newUserApp(&fakeUserRepo{})

	resp, err := app.Test(jsonRequest(http.MethodPut, "/user", fiber.Map{
		"name": "Priya",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var profile models.UserProfile
	decodeBody(t, resp, &profile)
	assert.Equal(t, "Priya", profile.Name)
	assert.Equal(t, "Administrator", profile.Role)
}
