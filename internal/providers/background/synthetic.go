package background

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// SyntheticGenerator renders a deterministic gradient placeholder. It keeps
// the rest of the pipeline (compositing, storage, history) fully exercised
// in local and CI environments with no credentials configured.
type SyntheticGenerator struct{}

func NewSyntheticGenerator() *SyntheticGenerator {
	return &SyntheticGenerator{}
}

func (s *SyntheticGenerator) Generate(ctx context.Context, req Request) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	width, height := NormalizeAspect(req.AspectRatio)
	seed := deterministicSeed(req.RequestID, req.PropertyType, req.Location)

	// Warm sky fading into a dark foreground, mirroring what the real
	// prompt asks the model for.
	top := color.NRGBA{
		R: 200 + uint8(seed%56),
		G: 140 + uint8((seed>>8)%80),
		B: 80 + uint8((seed>>16)%60),
		A: 255,
	}
	bottom := color.NRGBA{R: 18, G: 14, B: 22, A: 255}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		t := float64(y) / float64(height-1)
		row := lerpColor(top, bottom, t)
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, row)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode synthetic background: %w", err)
	}
	return &Image{
		Data:     buf.Bytes(),
		Format:   "image/png",
		Width:    width,
		Height:   height,
		Provider: "synthetic",
	}, nil
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}

func deterministicSeed(parts ...string) uint64 {
	h := sha256.New()
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}

var _ Generator = (*SyntheticGenerator)(nil)
