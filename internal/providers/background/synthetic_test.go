package background

import (
	"bytes"
	"context"
	"image/png"
	"testing"
)

func TestSyntheticGeneratorDeterministic(t *testing.T) {
	gen := NewSyntheticGenerator()
	req := Request{
		PropertyType: "Luxury Apartments",
		Location:     "Pune",
		AspectRatio:  "9:16",
		RequestID:    "req-1",
	}

	a, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	b, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !bytes.Equal(a.Data, b.Data) {
		t.Fatal("same request should produce identical bytes")
	}

	req.RequestID = "req-2"
	c, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if bytes.Equal(a.Data, c.Data) {
		t.Fatal("different request ids should vary the background")
	}
}

func TestSyntheticGeneratorDimensions(t *testing.T) {
	gen := NewSyntheticGenerator()
	img, err := gen.Generate(context.Background(), Request{AspectRatio: "9:16", RequestID: "r"})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if img.Format != "image/png" {
		t.Fatalf("Format = %q", img.Format)
	}

	decoded, err := png.Decode(bytes.NewReader(img.Data))
	if err != nil {
		t.Fatalf("png decode: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != 720 || bounds.Dy() != 1280 {
		t.Fatalf("dimensions = %dx%d, want 720x1280", bounds.Dx(), bounds.Dy())
	}
}

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt(Request{PropertyType: "Luxury Villas", Location: "Goa"})
	for _, want := range []string{"Ultra luxury Luxury Villas", "in Goa", "no text", "vertical poster"} {
		if !contains(got, want) {
			t.Fatalf("prompt %q missing %q", got, want)
		}
	}
}

func contains(s, sub string) bool {
	return bytes.Contains([]byte(s), []byte(sub))
}
