package copywriter

import (
	"context"
	"strings"

	"postergen/internal/domain"
)

// StaticComposer produces deterministic copy from the listing itself. It is
// the terminal fallback when no model is reachable, and doubles as the
// offline mode for local development.
type StaticComposer struct{}

func NewStaticComposer() *StaticComposer {
	return &StaticComposer{}
}

func (s *StaticComposer) Compose(ctx context.Context, req Request) (*domain.Copy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	amenities := normalizeAmenities(req.Amenities)
	if len(amenities) == 0 {
		amenities = defaultAmenities()
	}
	return &domain.Copy{
		Title:     "LUXURY REDEFINED",
		Subline:   "PREMIUM HOMES AT " + strings.ToUpper(req.Location),
		Amenities: amenities,
		CTA:       "BOOK NOW",
	}, nil
}

func defaultAmenities() []string {
	return []string{"Infinity Pool", "Gymnasium", "Clubhouse"}
}

var _ Composer = (*StaticComposer)(nil)
