package poster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	_ "image/jpeg"
	_ "image/png"

	"postergen/internal/domain"
	"postergen/internal/middleware"
	"postergen/internal/providers/background"
	"postergen/internal/providers/copywriter"
	"postergen/internal/storage"
	"postergen/internal/template"
)

const backgroundAspect = "9:16"

// Recorder persists generation records. It is optional: a nil Recorder
// disables the history endpoints but not the pipeline.
type Recorder interface {
	Insert(ctx context.Context, p domain.Poster) error
}

// Service runs the request-to-artifact pipeline: copy, background, template
// render, persist.
type Service struct {
	log        zerolog.Logger
	copywriter copywriter.Composer
	background background.Generator
	store      *storage.FileStore
	fonts      *template.FontSet
	recorder   Recorder
}

// Result is everything the handler needs to answer a generate call.
type Result struct {
	ID         string
	TemplateID string
	StorageKey string
	URL        string
	Copy       domain.Copy
	PNG        []byte
}

func NewService(log zerolog.Logger, composer copywriter.Composer, generator background.Generator, store *storage.FileStore, fonts *template.FontSet, recorder Recorder) *Service {
	return &Service{
		log:        log,
		copywriter: composer,
		background: generator,
		store:      store,
		fonts:      fonts,
		recorder:   recorder,
	}
}

// Generate validates the listing and walks it through the pipeline. Stages
// run sequentially; the copy result is not needed to start the background
// call, but neither stage dominates end-to-end latency enough to justify
// coordinating them.
func (s *Service) Generate(ctx context.Context, listing domain.Listing, locale string) (*Result, error) {
	listing.Normalize()
	if err := listing.Validate(); err != nil {
		return nil, err
	}

	jobID := uuid.NewString()
	start := time.Now()

	tmpl := template.Pick(listing.TemplateID)

	copyReq := copywriter.Request{
		PropertyType: listing.PropertyType,
		Location:     listing.Location,
		Price:        listing.Price,
		BHK:          listing.BHK,
		Amenities:    listing.Amenities,
		Locale:       locale,
		RequestID:    jobID,
	}
	content, err := s.copywriter.Compose(ctx, copyReq)
	if err != nil {
		return nil, fmt.Errorf("%w: compose copy: %v", domain.ErrProviderFailure, err)
	}

	bg, err := s.background.Generate(ctx, background.Request{
		PropertyType: listing.PropertyType,
		Location:     listing.Location,
		AspectRatio:  backgroundAspect,
		RequestID:    jobID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: generate background: %v", domain.ErrProviderFailure, err)
	}

	bgImage, _, err := image.Decode(bytes.NewReader(bg.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode background (%s): %v", domain.ErrRenderFailure, bg.Format, err)
	}

	png, err := tmpl.Render(template.RenderInput{
		Background: bgImage,
		Copy:       *content,
		Listing:    listing,
		Fonts:      s.fonts,
		IncludeQR:  listing.IncludeQR,
	})
	if err != nil {
		return nil, err
	}

	key, err := s.store.Write(ctx, fmt.Sprintf("posters/poster_%s.png", jobID), png)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ID:         jobID,
		TemplateID: tmpl.ID,
		StorageKey: key,
		URL:        s.store.URL(key),
		Copy:       *content,
		PNG:        png,
	}

	if s.recorder != nil {
		record := domain.Poster{
			ID:           jobID,
			RequestID:    middleware.RequestIDFromContext(ctx),
			TemplateID:   tmpl.ID,
			PropertyType: listing.PropertyType,
			Location:     listing.Location,
			StorageKey:   key,
			Bytes:        int64(len(png)),
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.recorder.Insert(ctx, record); err != nil {
			// History is best effort; the artifact already exists.
			s.log.Warn().Err(err).Str("job_id", jobID).Msg("poster: failed to record generation")
		}
	}

	s.log.Info().
		Str("job_id", jobID).
		Str("template", tmpl.ID).
		Str("background_provider", bg.Provider).
		Int("bytes", len(png)).
		Dur("elapsed", time.Since(start)).
		Msg("poster: generated")

	return result, nil
}
