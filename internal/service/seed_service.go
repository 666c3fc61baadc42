package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/pkg/database"
)

// SeedService wipes and repopulates the portfolio collections with sample
// content. Only wired up outside production.
type SeedService struct {
	mgr *database.Manager
	log *zap.SugaredLogger
}

func NewSeedService(mgr *database.Manager, log *zap.SugaredLogger) *SeedService {
	return &SeedService{mgr: mgr, log: log}
}

func (s *SeedService) Seed(ctx context.Context) error {
	for _, name := range []string{"stories", "films", "preweddings", "photobooks", "music", "users"} {
		coll, err := s.mgr.Collection(ctx, name)
		if err != nil {
			return err
		}
		if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}
	s.log.Info("cleared existing data before seeding")

	stories := []interface{}{
		models.CreateStoryRequest{
			Title:       "A ROYAL JAIPUR SAGA",
			CoupleNames: "ADITI & VIKRAM",
			Location:    "UDAIPUR, RAJASTHAN",
			Type:        models.StoryTypeWedding,
			CoverImage:  "https://images.unsplash.com/photo-1606216794074-735e91aa2c92?q=80&w=2070",
			Images: []string{
				"https://images.unsplash.com/photo-1583939003579-730e3918a45a?q=80&w=800",
				"https://images.unsplash.com/photo-1545231027-637d2f6210f8?q=80&w=800",
			},
			Description: "Amidst the grandeur of the City Palace, Aditi and Vikram's union was nothing short of a fairytale.",
		}.Document(),
		models.CreateStoryRequest{
			Title:       "THE MOUNTAIN WHISPERS",
			CoupleNames: "KAVYA & ARJUN",
			Location:    "MUSSOORIE",
			Type:        models.StoryTypeEngagement,
			CoverImage:  "https://images.unsplash.com/photo-1465220183275-1faa863377e3?q=80&w=2070",
			Images: []string{
				"https://images.unsplash.com/photo-1623771988448-6c1d7638ad3a?q=80&w=800",
			},
			Description: "High up in the misty hills of Mussoorie, an intimate engagement ceremony that felt like a dream sequence.",
		}.Document(),
	}

	films := []interface{}{
		models.CreateFilmRequest{
			Title:       "THE ETERNAL WALTZ",
			CoupleName:  "PRIYA & KARAN",
			VideoURL:    "https://www.youtube.com/embed/P-M9HkR7tWc",
			Tagline:     "Love is the rhythm we dance to.",
			Description: "A visual poetry of moments that defined their journey.",
		}.Document(),
		models.CreateFilmRequest{
			Title:       "MOMENTS IN TIME",
			CoupleName:  "RHEA & SID",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			Tagline:     "Capturing the unseen, feeling the unspoken.",
			Description: "A candid narrative of laughter, tears, and pure joy.",
		}.Document(),
	}

	preWeddings := []interface{}{
		models.CreatePreWeddingRequest{
			CoupleName: "SARTHAK & ADITI",
			City:       "JAIPUR",
			VideoID:    "ScMzIvxBSi4",
			MainImage:  "https://images.unsplash.com/photo-1623771988448-6c1d7638ad3a?q=80&w=2070",
			GalleryImages: []string{
				"https://images.unsplash.com/photo-1621621667797-e06afc217fb0?q=80&w=800",
			},
			Description: "The Pink City provided a canvas of history and color.",
		}.Document(),
	}

	photobooks := []interface{}{
		models.CreatePhotobookRequest{
			Title:       "THE REGAL COLLECTION",
			PersonName:  "THE KAPOORS",
			CoverImage:  "https://images.unsplash.com/photo-1544967082-d9d25d867d66?q=80&w=800",
			Description: "A handcrafted leather photobook.",
		}.Document(),
	}

	tracks := []interface{}{
		models.CreateMusicRequest{
			Title:         "MORNING RAGA",
			Description:   "Gentle instrumental for rituals.",
			Duration:      "04:20",
			VideoThemeURL: "https://images.unsplash.com/photo-1510915361405-ef8a93d77fb1?q=80&w=400",
		}.Document(),
	}

	for name, docs := range map[string][]interface{}{
		"stories":     stories,
		"films":       films,
		"preweddings": preWeddings,
		"photobooks":  photobooks,
		"music":       tracks,
	} {
		coll, err := s.mgr.Collection(ctx, name)
		if err != nil {
			return err
		}
		if _, err := coll.InsertMany(ctx, docs); err != nil {
			return err
		}
	}

	s.log.Info("database seeded")
	return nil
}
