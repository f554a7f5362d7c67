package domain

import (
	"fmt"
	"strings"
	"time"
)

// Listing holds the marketing-property metadata supplied by the caller.
type Listing struct {
	PropertyType string   `json:"property_type"`
	Location     string   `json:"location"`
	Price        string   `json:"price"`
	BHK          string   `json:"bhk"`
	Phone        string   `json:"phone"`
	Amenities    []string `json:"amenities"`
	TemplateID   string   `json:"template_id,omitempty"`
	IncludeQR    bool     `json:"include_qr,omitempty"`
}

// Normalize trims whitespace and drops empty or duplicate amenities.
func (l *Listing) Normalize() {
	l.PropertyType = strings.TrimSpace(l.PropertyType)
	l.Location = strings.TrimSpace(l.Location)
	l.Price = strings.TrimSpace(l.Price)
	l.BHK = strings.TrimSpace(l.BHK)
	l.Phone = strings.TrimSpace(l.Phone)
	l.TemplateID = strings.ToLower(strings.TrimSpace(l.TemplateID))

	seen := make(map[string]struct{}, len(l.Amenities))
	var amenities []string
	for _, a := range l.Amenities {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		key := strings.ToLower(a)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		amenities = append(amenities, a)
	}
	l.Amenities = amenities
}

// Validate reports the first missing required field.
func (l *Listing) Validate() error {
	switch {
	case l.PropertyType == "":
		return fmt.Errorf("%w: property_type is required", ErrInvalidRequest)
	case l.Location == "":
		return fmt.Errorf("%w: location is required", ErrInvalidRequest)
	case l.Price == "":
		return fmt.Errorf("%w: price is required", ErrInvalidRequest)
	case l.BHK == "":
		return fmt.Errorf("%w: bhk is required", ErrInvalidRequest)
	case l.Phone == "":
		return fmt.Errorf("%w: phone is required", ErrInvalidRequest)
	case len(l.Amenities) == 0:
		return fmt.Errorf("%w: at least one amenity is required", ErrInvalidRequest)
	}
	return nil
}

// Copy is the marketing copy overlaid on a poster.
type Copy struct {
	Title     string   `json:"title"`
	Subline   string   `json:"subline"`
	Amenities []string `json:"amenities"`
	CTA       string   `json:"cta"`
}

// Poster is one generated artifact as recorded in the ledger.
type Poster struct {
	ID           string    `json:"id"`
	RequestID    string    `json:"request_id"`
	TemplateID   string    `json:"template_id"`
	PropertyType string    `json:"property_type"`
	Location     string    `json:"location"`
	StorageKey   string    `json:"storage_key"`
	Bytes        int64     `json:"bytes"`
	CreatedAt    time.Time `json:"created_at"`
}
