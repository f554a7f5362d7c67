package template

import (
	"image"
	"math/rand/v2"

	"postergen/internal/domain"
)

// Info is the metadata exposed on the templates endpoint.
type Info struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	PreviewColor string `json:"preview_color"`
}

// RenderInput bundles everything a renderer needs to produce a poster.
type RenderInput struct {
	Background image.Image
	Copy       domain.Copy
	Listing    domain.Listing
	Fonts      *FontSet
	IncludeQR  bool
}

// Template couples layout metadata with its render function. Renderers
// return encoded PNG bytes for a fixed 1080x1350 canvas.
type Template struct {
	Info
	Render func(in RenderInput) ([]byte, error)
}

var templates = []Template{
	{
		Info: Info{
			ID:           "classic",
			Name:         "Classic Elegant",
			Description:  "Timeless design with gradient overlay and ribbon CTA",
			PreviewColor: "#E63946",
		},
		Render: renderClassic,
	},
	{
		Info: Info{
			ID:           "modern",
			Name:         "Modern Bold",
			Description:  "Contemporary layout with bold typography",
			PreviewColor: "#3B82F6",
		},
		Render: renderModern,
	},
	{
		Info: Info{
			ID:           "minimal",
			Name:         "Minimal Clean",
			Description:  "Clean minimalist design with focus on visuals",
			PreviewColor: "#10B981",
		},
		Render: renderMinimal,
	},
	{
		Info: Info{
			ID:           "luxury",
			Name:         "Premium Luxury",
			Description:  "High-end luxury aesthetic with golden accents",
			PreviewColor: "#F59E0B",
		},
		Render: renderLuxury,
	},
}

// Numeric aliases kept for callers that predate the named ids.
var aliases = map[string]string{
	"template1": "classic",
	"template2": "modern",
	"template3": "minimal",
	"template4": "luxury",
}

// Pick selects a template by id, resolving aliases. An empty id, "random",
// or an unknown id yields a uniformly random template.
func Pick(id string) Template {
	if id != "" && id != "random" {
		if resolved, ok := aliases[id]; ok {
			id = resolved
		}
		if t, ok := Lookup(id); ok {
			return t
		}
	}
	return templates[rand.IntN(len(templates))]
}

// Lookup finds a template by its canonical id.
func Lookup(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// List returns metadata for every registered template in stable order.
func List() []Info {
	infos := make([]Info, len(templates))
	for i, t := range templates {
		infos[i] = t.Info
	}
	return infos
}
