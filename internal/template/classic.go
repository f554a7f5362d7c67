package template

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// renderClassic draws the gradient-and-ribbon layout: shadowed headline up
// top, a rotated CTA ribbon, a wrapped amenity row and a solid footer bar
// with the contact phone.
func renderClassic(in RenderInput) ([]byte, error) {
	dc := newCanvas(in.Background)
	bottomGradient(dc, 520)

	accent := "#E63946"

	drawShadowText(dc, in.Copy.Title, canvasW/2, 120, in.Fonts.Title(70), "#FFFFFF")
	drawShadowText(dc, strings.ToUpper(in.Copy.Subline), canvasW/2, 200, in.Fonts.Body(36), accent)

	price := fmt.Sprintf("%s  |  %s", in.Listing.BHK, in.Listing.Price)
	drawShadowText(dc, price, canvasW/2, 260, in.Fonts.Bold(44), "#FFFFFF")

	drawRibbon(dc, in.Copy.CTA, in.Fonts.Title(42))

	amenityRow(dc, in.Copy.Amenities, in.Fonts.Body(36), 120, 1000, 840, "#FFFFFF", "#F1F1F1")

	// Footer bar with the phone number.
	dc.SetHexColor("#C81E1E")
	dc.DrawRectangle(0, 1150, canvasW, 90)
	dc.Fill()
	dc.SetFontFace(in.Fonts.Bold(56))
	dc.SetHexColor("#FFFFFF")
	dc.DrawStringAnchored(in.Listing.Phone, canvasW/2, 1195, 0.5, 0.5)

	if in.IncludeQR {
		if err := qrBadge(dc, in.Listing.Phone, canvasW-220, 880, 160); err != nil {
			return nil, err
		}
	}

	return encodePNG(dc)
}

// drawRibbon paints the tilted CTA banner with a notched right edge.
func drawRibbon(dc *gg.Context, cta string, face font.Face) {
	const (
		w   = 600.0
		h   = 78.0
		cut = 35.0
		x   = -10.0
		y   = 620.0
	)
	dc.Push()
	dc.RotateAbout(gg.Radians(-8), x, y+h/2)

	dc.SetHexColor("#C81E1E")
	dc.MoveTo(x, y)
	dc.LineTo(x+w, y)
	dc.LineTo(x+w-cut, y+h/2)
	dc.LineTo(x+w, y+h)
	dc.LineTo(x, y+h)
	dc.ClosePath()
	dc.Fill()

	dc.SetFontFace(face)
	dc.SetHexColor("#FFFFFF")
	dc.DrawStringAnchored(cta, x+(w-cut)/2, y+h/2, 0.5, 0.5)

	dc.Pop()
}
