package background

import (
	"context"
	"fmt"
	"strings"
)

// Request describes the background a poster needs.
type Request struct {
	PropertyType string
	Location     string
	AspectRatio  string
	RequestID    string
}

// Image is a generated background in encoded form.
type Image struct {
	Data     []byte
	Format   string
	Width    int
	Height   int
	Provider string
}

// Generator is the contract implemented by all background providers.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Image, error)
}

// BuildPrompt renders the background prompt for a listing. The phrasing is
// part of the product: bright sky on top and dark foreground below leave the
// templates room for light and dark text regions.
func BuildPrompt(req Request) string {
	subject := strings.TrimSpace(req.PropertyType)
	if subject == "" {
		subject = "residential property"
	}
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Ultra luxury %s", subject)
	if loc := strings.TrimSpace(req.Location); loc != "" {
		fmt.Fprintf(sb, " in %s", loc)
	}
	sb.WriteString(", cinematic architectural photography, golden hour sunset, ")
	sb.WriteString("bright sky upper half, dark foreground lower half, ")
	sb.WriteString("no text, no logos, vertical poster")
	return sb.String()
}

// NormalizeAspect maps an aspect-ratio string onto pixel dimensions. Poster
// backgrounds default to the 9:16 portrait frame.
func NormalizeAspect(ratio string) (int, int) {
	switch strings.TrimSpace(ratio) {
	case "1:1":
		return 1024, 1024
	case "16:9":
		return 1280, 720
	case "4:5":
		return 1080, 1350
	default:
		return 720, 1280
	}
}
