package template

import (
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// renderMinimal keeps the visual on top and moves all copy onto a clean
// white panel below it.
func renderMinimal(in RenderInput) ([]byte, error) {
	const panelY = 820.0

	dc := gg.NewContext(canvasW, canvasH)
	dc.SetHexColor("#FFFFFF")
	dc.Clear()

	if in.Background != nil {
		visual := imaging.Fill(in.Background, canvasW, int(panelY), imaging.Center, imaging.Lanczos)
		dc.DrawImage(visual, 0, 0)
	}

	accent := "#10B981"
	marginX := 110.0

	// Accent rule above the headline.
	dc.SetHexColor(accent)
	dc.DrawRectangle(marginX, panelY+70, 90, 8)
	dc.Fill()

	dc.SetFontFace(in.Fonts.Title(56))
	dc.SetHexColor("#111827")
	dc.DrawStringAnchored(in.Copy.Title, marginX, panelY+140, 0, 0.5)

	dc.SetFontFace(in.Fonts.Body(30))
	dc.SetHexColor("#6B7280")
	dc.DrawStringAnchored(strings.ToUpper(in.Copy.Subline), marginX, panelY+196, 0, 0.5)

	dc.SetFontFace(in.Fonts.Bold(38))
	dc.SetHexColor("#111827")
	price := fmt.Sprintf("%s  ·  %s", in.Listing.BHK, in.Listing.Price)
	dc.DrawStringAnchored(price, marginX, panelY+260, 0, 0.5)

	// Amenities in a single understated row.
	amenityRow(dc, in.Copy.Amenities, in.Fonts.Body(28), marginX, panelY+340, canvasW-2*marginX, accent, "#374151")

	// Contact line pinned to the bottom.
	dc.SetHexColor(accent)
	dc.DrawRoundedRectangle(marginX, canvasH-120, 330, 64, 32)
	dc.Fill()
	dc.SetFontFace(in.Fonts.Bold(28))
	dc.SetHexColor("#FFFFFF")
	dc.DrawStringAnchored(in.Copy.CTA, marginX+165, canvasH-88, 0.5, 0.5)

	dc.SetFontFace(in.Fonts.Bold(32))
	dc.SetHexColor("#111827")
	dc.DrawStringAnchored(in.Listing.Phone, canvasW-marginX, canvasH-88, 1, 0.5)

	if in.IncludeQR {
		if err := qrBadge(dc, in.Listing.Phone, canvasW-260, panelY-200, 150); err != nil {
			return nil, err
		}
	}

	return encodePNG(dc)
}
