package background

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func tinyPNGBase64(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestGeminiGeneratorDecodesInlineImage(t *testing.T) {
	payload := fmt.Sprintf(
		`{"candidates":[{"content":{"parts":[{"text":"here"},{"inlineData":{"mimeType":"image/png","data":"%s"}}]}}]}`,
		tinyPNGBase64(t),
	)
	gen, err := NewGeminiGenerator(GeminiOptions{
		APIKey: "dummy",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if r.Header.Get("x-goog-api-key") != "dummy" {
				t.Fatalf("missing api key header")
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(payload)),
			}, nil
		})},
	})
	if err != nil {
		t.Fatalf("NewGeminiGenerator returned error: %v", err)
	}

	img, err := gen.Generate(context.Background(), Request{AspectRatio: "9:16", RequestID: "r"})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if img.Provider != "gemini" {
		t.Fatalf("Provider = %q", img.Provider)
	}
	if img.Format != "image/png" {
		t.Fatalf("Format = %q", img.Format)
	}
	if _, err := png.Decode(bytes.NewReader(img.Data)); err != nil {
		t.Fatalf("decode returned image: %v", err)
	}
}

func TestGeminiGeneratorFallsBackOnError(t *testing.T) {
	gen, err := NewGeminiGenerator(GeminiOptions{
		APIKey: "dummy",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return nil, errors.New("boom")
		})},
	})
	if err != nil {
		t.Fatalf("NewGeminiGenerator returned error: %v", err)
	}

	img, err := gen.Generate(context.Background(), Request{AspectRatio: "9:16", RequestID: "r"})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if img.Provider != "synthetic" {
		t.Fatalf("Provider = %q, want synthetic fallback", img.Provider)
	}
}

func TestGeminiGeneratorFallsBackWhenNoImageReturned(t *testing.T) {
	gen, err := NewGeminiGenerator(GeminiOptions{
		APIKey: "dummy",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{"candidates":[{"content":{"parts":[{"text":"no image"}]}}]}`)),
			}, nil
		})},
	})
	if err != nil {
		t.Fatalf("NewGeminiGenerator returned error: %v", err)
	}

	img, err := gen.Generate(context.Background(), Request{AspectRatio: "9:16", RequestID: "r"})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if img.Provider != "synthetic" {
		t.Fatalf("Provider = %q, want synthetic fallback", img.Provider)
	}
}

func TestNewGeminiGeneratorRequiresAPIKey(t *testing.T) {
	if _, err := NewGeminiGenerator(GeminiOptions{}); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestNormalizeAspect(t *testing.T) {
	tests := []struct {
		ratio string
		w, h  int
	}{
		{ratio: "9:16", w: 720, h: 1280},
		{ratio: "", w: 720, h: 1280},
		{ratio: "1:1", w: 1024, h: 1024},
		{ratio: "16:9", w: 1280, h: 720},
		{ratio: "4:5", w: 1080, h: 1350},
	}
	for _, tc := range tests {
		w, h := NormalizeAspect(tc.ratio)
		if w != tc.w || h != tc.h {
			t.Fatalf("NormalizeAspect(%q) = %dx%d, want %dx%d", tc.ratio, w, h, tc.w, tc.h)
		}
	}
}
