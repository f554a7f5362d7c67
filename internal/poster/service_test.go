package poster

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/rs/zerolog"

	"postergen/internal/domain"
	"postergen/internal/providers/background"
	"postergen/internal/providers/copywriter"
	"postergen/internal/storage"
	"postergen/internal/template"
)

type composerFunc func(ctx context.Context, req copywriter.Request) (*domain.Copy, error)

func (f composerFunc) Compose(ctx context.Context, req copywriter.Request) (*domain.Copy, error) {
	return f(ctx, req)
}

type generatorFunc func(ctx context.Context, req background.Request) (*background.Image, error)

func (f generatorFunc) Generate(ctx context.Context, req background.Request) (*background.Image, error) {
	return f(ctx, req)
}

type captureRecorder struct {
	records []domain.Poster
	err     error
}

func (c *captureRecorder) Insert(_ context.Context, p domain.Poster) error {
	c.records = append(c.records, p)
	return c.err
}

func validListing() domain.Listing {
	return domain.Listing{
		PropertyType: "Luxury Apartments",
		Location:     "Pune",
		Price:        "₹2.5 Cr Onwards",
		BHK:          "3 & 4 BHK",
		Phone:        "+91 98765 43210",
		Amenities:    []string{"Pool", "Gym"},
		TemplateID:   "classic",
	}
}

func newTestStore(t *testing.T) (*storage.FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir, "http://localhost:8080/static")
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	return store, dir
}

func newTestService(t *testing.T, recorder Recorder) (*Service, string) {
	t.Helper()
	store, dir := newTestStore(t)
	svc := NewService(zerolog.Nop(), copywriter.NewStaticComposer(), background.NewSyntheticGenerator(), store, template.LoadFonts(""), recorder)
	return svc, dir
}

func TestGeneratePersistsPoster(t *testing.T) {
	rec := &captureRecorder{}
	svc, dir := newTestService(t, rec)

	result, err := svc.Generate(context.Background(), validListing(), "en")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if result.TemplateID != "classic" {
		t.Fatalf("TemplateID = %q", result.TemplateID)
	}

	keyPattern := regexp.MustCompile(`^posters/poster_[0-9a-f-]{36}\.png$`)
	if !keyPattern.MatchString(result.StorageKey) {
		t.Fatalf("StorageKey = %q", result.StorageKey)
	}

	decoded, err := png.Decode(bytes.NewReader(result.PNG))
	if err != nil {
		t.Fatalf("result png: %v", err)
	}
	if decoded.Bounds().Dx() != 1080 || decoded.Bounds().Dy() != 1350 {
		t.Fatalf("canvas = %v", decoded.Bounds())
	}

	onDisk, err := os.ReadFile(filepath.Join(dir, result.StorageKey))
	if err != nil {
		t.Fatalf("read persisted poster: %v", err)
	}
	if !bytes.Equal(onDisk, result.PNG) {
		t.Fatal("persisted bytes differ from response bytes")
	}

	if len(rec.records) != 1 {
		t.Fatalf("recorder got %d records, want 1", len(rec.records))
	}
	record := rec.records[0]
	if record.ID != result.ID || record.StorageKey != result.StorageKey {
		t.Fatalf("record = %+v", record)
	}
	if record.Bytes != int64(len(result.PNG)) {
		t.Fatalf("record.Bytes = %d, want %d", record.Bytes, len(result.PNG))
	}
}

func TestGenerateRejectsInvalidListing(t *testing.T) {
	svc, _ := newTestService(t, nil)

	listing := validListing()
	listing.Location = ""
	if _, err := svc.Generate(context.Background(), listing, "en"); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
}

func TestGenerateWrapsComposerFailure(t *testing.T) {
	store, _ := newTestStore(t)
	composer := composerFunc(func(context.Context, copywriter.Request) (*domain.Copy, error) {
		return nil, errors.New("quota exceeded")
	})
	svc := NewService(zerolog.Nop(), composer, background.NewSyntheticGenerator(), store, template.LoadFonts(""), nil)

	if _, err := svc.Generate(context.Background(), validListing(), "en"); !errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("err = %v, want ErrProviderFailure", err)
	}
}

func TestGenerateWrapsBackgroundFailure(t *testing.T) {
	store, _ := newTestStore(t)
	generator := generatorFunc(func(context.Context, background.Request) (*background.Image, error) {
		return nil, errors.New("model unavailable")
	})
	svc := NewService(zerolog.Nop(), copywriter.NewStaticComposer(), generator, store, template.LoadFonts(""), nil)

	if _, err := svc.Generate(context.Background(), validListing(), "en"); !errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("err = %v, want ErrProviderFailure", err)
	}
}

func TestGenerateSurvivesRecorderError(t *testing.T) {
	rec := &captureRecorder{err: errors.New("db down")}
	svc, _ := newTestService(t, rec)

	result, err := svc.Generate(context.Background(), validListing(), "en")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(result.PNG) == 0 {
		t.Fatal("empty poster")
	}
}
