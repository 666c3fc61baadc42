package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/cinesine/cinesine-backend/internal/models"
)

func (c *Client) Stories(ctx context.Context) ([]models.Story, error) {
	var out []models.Story
	err := c.do(ctx, http.MethodGet, "/stories", nil, &out, nil)
	return out, err
}

func (c *Client) Story(ctx context.Context, id string) (*models.Story, error) {
	var out models.Story
	if err := c.do(ctx, http.MethodGet, "/stories/"+id, nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateStory(ctx context.Context, req models.CreateStoryRequest) (*models.Story, error) {
	var out models.Story
	if err := c.do(ctx, http.MethodPost, "/stories", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStory(ctx context.Context, id string, req models.UpdateStoryRequest) (*models.Story, error) {
	var out models.Story
	if err := c.do(ctx, http.MethodPut, "/stories/"+id, req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteStory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/stories/"+id, nil, nil, nil)
}

func (c *Client) Films(ctx context.Context) ([]models.Film, error) {
	var out []models.Film
	err := c.do(ctx, http.MethodGet, "/films", nil, &out, nil)
	return out, err
}

func (c *Client) CreateFilm(ctx context.Context, req models.CreateFilmRequest) (*models.Film, error) {
	var out models.Film
	if err := c.do(ctx, http.MethodPost, "/films", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateFilm(ctx context.Context, id string, req models.UpdateFilmRequest) (*models.Film, error) {
	var out models.Film
	if err := c.do(ctx, http.MethodPut, "/films/"+id, req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteFilm(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/films/"+id, nil, nil, nil)
}

func (c *Client) PreWeddings(ctx context.Context) ([]models.PreWedding, error) {
	var out []models.PreWedding
	err := c.do(ctx, http.MethodGet, "/pre-weddings", nil, &out, nil)
	return out, err
}

func (c *Client) PreWedding(ctx context.Context, id string) (*models.PreWedding, error) {
	var out models.PreWedding
	if err := c.do(ctx, http.MethodGet, "/pre-weddings/"+id, nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePreWedding(ctx context.Context, req models.CreatePreWeddingRequest) (*models.PreWedding, error) {
	var out models.PreWedding
	if err := c.do(ctx, http.MethodPost, "/pre-weddings", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePreWedding(ctx context.Context, id string, req models.UpdatePreWeddingRequest) (*models.PreWedding, error) {
	var out models.PreWedding
	if err := c.do(ctx, http.MethodPut, "/pre-weddings/"+id, req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePreWedding(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/pre-weddings/"+id, nil, nil, nil)
}

func (c *Client) Photobooks(ctx context.Context) ([]models.Photobook, error) {
	var out []models.Photobook
	err := c.do(ctx, http.MethodGet, "/photobooks", nil, &out, nil)
	return out, err
}

func (c *Client) CreatePhotobook(ctx context.Context, req models.CreatePhotobookRequest) (*models.Photobook, error) {
	var out models.Photobook
	if err := c.do(ctx, http.MethodPost, "/photobooks", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePhotobook(ctx context.Context, id string, req models.UpdatePhotobookRequest) (*models.Photobook, error) {
	var out models.Photobook
	if err := c.do(ctx, http.MethodPut, "/photobooks/"+id, req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePhotobook(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/photobooks/"+id, nil, nil, nil)
}

func (c *Client) MusicTracks(ctx context.Context) ([]models.Music, error) {
	var out []models.Music
	err := c.do(ctx, http.MethodGet, "/music", nil, &out, nil)
	return out, err
}

func (c *Client) CreateMusic(ctx context.Context, req models.CreateMusicRequest) (*models.Music, error) {
	var out models.Music
	if err := c.do(ctx, http.MethodPost, "/music", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Images(ctx context.Context) ([]models.Image, error) {
	var out []models.Image
	err := c.do(ctx, http.MethodGet, "/images", nil, &out, nil)
	return out, err
}

func (c *Client) CreateImage(ctx context.Context, req models.CreateImageRequest) (*models.Image, error) {
	var out models.Image
	if err := c.do(ctx, http.MethodPost, "/images", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteImage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/images/"+id, nil, nil, nil)
}

func (c *Client) SocialLinks(ctx context.Context) ([]models.SocialLink, error) {
	var out []models.SocialLink
	err := c.do(ctx, http.MethodGet, "/social-links", nil, &out, nil)
	return out, err
}

func (c *Client) CreateSocialLink(ctx context.Context, req models.CreateSocialLinkRequest) (*models.SocialLink, error) {
	var out models.SocialLink
	if err := c.do(ctx, http.MethodPost, "/social-links", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSocialLink(ctx context.Context, id string, req models.UpdateSocialLinkRequest) (*models.SocialLink, error) {
	var out models.SocialLink
	if err := c.do(ctx, http.MethodPut, "/social-links/"+id, req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSocialLink(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/social-links/"+id, nil, nil, nil)
}

func (c *Client) Contacts(ctx context.Context) ([]models.Contact, error) {
	var out []models.Contact
	err := c.do(ctx, http.MethodGet, "/contacts", nil, &out, nil)
	return out, err
}

// SubmitContact stamps the submission with a fresh idempotency key so the
// automatic retry cannot record the inquiry twice when the first attempt
// actually landed.
func (c *Client) SubmitContact(ctx context.Context, req models.ContactRequest) (*models.ContactResponse, error) {
	headers := map[string]string{"Idempotency-Key": uuid.NewString()}
	var out models.ContactResponse
	if err := c.do(ctx, http.MethodPost, "/contact", req, &out, headers); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UserProfile(ctx context.Context) (*models.UserProfile, error) {
	var out models.UserProfile
	if err := c.do(ctx, http.MethodGet, "/user", nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUserProfile(ctx context.Context, req models.UpdateUserProfileRequest) (*models.UserProfile, error) {
	var out models.UserProfile
	if err := c.do(ctx, http.MethodPut, "/user", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}
