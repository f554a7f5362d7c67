package template

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"
)

// renderLuxury frames the poster in golden rules with centered serif-weight
// copy and a filled golden CTA block.
func renderLuxury(in RenderInput) ([]byte, error) {
	dc := newCanvas(in.Background)
	dimOverlay(dc, 0.4)
	bottomGradient(dc, 620)

	gold := "#D4AF37"

	// Double border inset from the canvas edge.
	dc.SetHexColor(gold)
	dc.SetLineWidth(3)
	dc.DrawRectangle(40, 40, canvasW-80, canvasH-80)
	dc.Stroke()
	dc.SetLineWidth(1)
	dc.DrawRectangle(56, 56, canvasW-112, canvasH-112)
	dc.Stroke()

	drawShadowText(dc, strings.ToUpper(in.Copy.Title), canvasW/2, 180, in.Fonts.Title(68), gold)
	drawShadowText(dc, strings.ToUpper(in.Copy.Subline), canvasW/2, 262, in.Fonts.Body(32), "#F8F5EC")

	drawDiamondRule(dc, canvasW/2, 330, gold)

	price := fmt.Sprintf("%s  |  %s", in.Listing.BHK, in.Listing.Price)
	drawShadowText(dc, price, canvasW/2, 400, in.Fonts.Bold(42), "#FFFFFF")

	// Amenities centered, one per line, with golden diamond bullets.
	dc.SetFontFace(in.Fonts.Body(32))
	y := 880.0
	for _, item := range in.Copy.Amenities {
		dc.SetHexColor(gold)
		w, _ := dc.MeasureString(item)
		drawDiamond(dc, canvasW/2-w/2-36, y, 8)
		dc.SetHexColor("#F1F1F1")
		dc.DrawStringAnchored(item, canvasW/2, y, 0.5, 0.5)
		y += 52
	}

	// Golden CTA block with dark lettering.
	const (
		ctaW = 460.0
		ctaH = 84.0
	)
	ctaY := canvasH - 230.0
	dc.SetHexColor(gold)
	dc.DrawRectangle((canvasW-ctaW)/2, ctaY, ctaW, ctaH)
	dc.Fill()
	dc.SetFontFace(in.Fonts.Bold(38))
	dc.SetHexColor("#1A1408")
	dc.DrawStringAnchored(in.Copy.CTA, canvasW/2, ctaY+ctaH/2, 0.5, 0.5)

	dc.SetFontFace(in.Fonts.Bold(36))
	dc.SetHexColor("#F8F5EC")
	dc.DrawStringAnchored(in.Listing.Phone, canvasW/2, canvasH-100, 0.5, 0.5)

	if in.IncludeQR {
		if err := qrBadge(dc, in.Listing.Phone, canvasW-240, canvasH-270, 140); err != nil {
			return nil, err
		}
	}

	return encodePNG(dc)
}

func drawDiamondRule(dc *gg.Context, cx, cy float64, hex string) {
	dc.SetHexColor(hex)
	dc.SetLineWidth(2)
	dc.DrawLine(cx-180, cy, cx-24, cy)
	dc.Stroke()
	dc.DrawLine(cx+24, cy, cx+180, cy)
	dc.Stroke()
	drawDiamond(dc, cx, cy, 10)
}

func drawDiamond(dc *gg.Context, cx, cy, r float64) {
	dc.MoveTo(cx, cy-r)
	dc.LineTo(cx+r, cy)
	dc.LineTo(cx, cy+r)
	dc.LineTo(cx-r, cy)
	dc.ClosePath()
	dc.Fill()
}
