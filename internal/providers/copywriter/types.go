package copywriter

import (
	"context"

	"postergen/internal/domain"
)

// Request carries listing details and language hints into a composer.
type Request struct {
	PropertyType string
	Location     string
	Price        string
	BHK          string
	Amenities    []string
	Locale       string
	RequestID    string
}

// Composer produces poster copy for a listing.
type Composer interface {
	Compose(ctx context.Context, req Request) (*domain.Copy, error)
}

const (
	maxAmenities    = 6
	maxAmenityWords = 3
)
