package background

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"postergen/internal/infra"
)

// ImagenOptions controls how the Vertex AI Imagen generator is configured.
// Credentials come from Application Default Credentials; set
// GOOGLE_APPLICATION_CREDENTIALS to a service account key file path.
type ImagenOptions struct {
	Project  string
	Location string
	Model    string
	Fallback Generator
	Logger   *infra.Logger
}

// ImagenGenerator produces backgrounds through the Imagen API on Vertex AI.
type ImagenGenerator struct {
	client   *genai.Client
	model    string
	fallback Generator
	logger   *infra.Logger
}

func NewImagenGenerator(ctx context.Context, opts ImagenOptions) (*ImagenGenerator, error) {
	if opts.Project == "" {
		return nil, errors.New("google cloud project is required")
	}
	location := opts.Location
	if location == "" {
		location = "us-central1"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "imagen-3.0-generate-002"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  opts.Project,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	fallback := opts.Fallback
	if fallback == nil {
		fallback = NewSyntheticGenerator()
	}
	return &ImagenGenerator{
		client:   client,
		model:    model,
		fallback: fallback,
		logger:   opts.Logger,
	}, nil
}

func (g *ImagenGenerator) Generate(ctx context.Context, req Request) (*Image, error) {
	img, err := g.remoteGenerate(ctx, req)
	if err != nil {
		if g.logger != nil {
			g.logger.Warn().
				Err(err).
				Str("request_id", req.RequestID).
				Str("model", g.model).
				Msg("background: imagen generation failed; using fallback")
		}
		return g.fallback.Generate(ctx, req)
	}
	return img, nil
}

func (g *ImagenGenerator) remoteGenerate(ctx context.Context, req Request) (*Image, error) {
	resp, err := g.client.Models.GenerateImages(ctx, g.model, BuildPrompt(req), &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    req.AspectRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("imagen generate: %w", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, errors.New("no image returned")
	}
	generated := resp.GeneratedImages[0].Image
	if len(generated.ImageBytes) == 0 {
		return nil, errors.New("empty image payload")
	}
	format := generated.MIMEType
	if format == "" {
		format = "image/png"
	}
	width, height := NormalizeAspect(req.AspectRatio)
	return &Image{
		Data:     generated.ImageBytes,
		Format:   format,
		Width:    width,
		Height:   height,
		Provider: "imagen",
	}, nil
}

var _ Generator = (*ImagenGenerator)(nil)
