package template

import (
	"fmt"

	"github.com/fogleman/gg"
)

// renderModern draws the bold contemporary layout: a neon-edged price card,
// a rotated pre-launch tag, two amenity columns and a pill CTA button.
func renderModern(in RenderInput) ([]byte, error) {
	dc := newCanvas(in.Background)
	dimOverlay(dc, 0.25)

	drawShadowText(dc, in.Copy.Title, canvasW/2, 150, in.Fonts.Title(64), "#FFFFFF")
	drawShadowText(dc, in.Copy.Subline, canvasW/2, 228, in.Fonts.Body(34), "#BFDBFE")

	const (
		cardX = 140.0
		cardY = 720.0
		cardW = 800.0
		cardH = 170.0
		r     = 28.0
	)

	// Layered strokes stand in for a blur: widest and faintest first.
	dc.SetHexColor("#0F172A")
	dc.DrawRoundedRectangle(cardX, cardY, cardW, cardH, r)
	dc.Fill()
	for i, alpha := range []float64{0.12, 0.25, 0.5} {
		dc.SetRGBA(0, 0.86, 1, alpha)
		dc.SetLineWidth(float64(14 - 4*i))
		dc.DrawRoundedRectangle(cardX, cardY, cardW, cardH, r)
		dc.Stroke()
	}
	dc.SetRGBA(0, 0.86, 1, 0.8)
	dc.SetLineWidth(4)
	dc.DrawRoundedRectangle(cardX, cardY, cardW, cardH, r)
	dc.Stroke()

	dc.SetFontFace(in.Fonts.Bold(42))
	dc.SetHexColor("#FFFFFF")
	priceLine := fmt.Sprintf("%s\nSTARTING FROM %s", in.Listing.BHK, in.Listing.Price)
	dc.DrawStringWrapped(priceLine, cardX+cardW/2, cardY+cardH/2, 0.5, 0.5, cardW-60, 1.4, gg.AlignCenter)

	drawPreLaunchTag(dc, in)

	// Amenities in two columns with ticks.
	dc.SetFontFace(in.Fonts.Body(34))
	leftX, rightX := 250.0, 620.0
	startY := 1020.0
	for i, item := range in.Copy.Amenities {
		if i >= 4 {
			break
		}
		x := leftX
		if i >= 2 {
			x = rightX
		}
		y := startY + float64(i%2)*52
		drawTick(dc, x-38, y-16, 22, "#22D3EE")
		dc.SetHexColor("#FFFFFF")
		dc.DrawStringAnchored(item, x, y, 0, 0.5)
	}

	// Pill CTA carries the phone number.
	const (
		ctaW = 420.0
		ctaH = 80.0
	)
	ctaX := (canvasW - ctaW) / 2
	ctaY := 1180.0
	dc.SetHexColor("#DC2828")
	dc.DrawRoundedRectangle(ctaX, ctaY, ctaW, ctaH, ctaH/2)
	dc.Fill()
	dc.SetFontFace(in.Fonts.Bold(36))
	dc.SetHexColor("#FFFFFF")
	dc.DrawStringAnchored(in.Listing.Phone, canvasW/2, ctaY+ctaH/2-2, 0.5, 0.5)

	if in.IncludeQR {
		if err := qrBadge(dc, in.Listing.Phone, canvasW-210, 1160, 140); err != nil {
			return nil, err
		}
	}

	return encodePNG(dc)
}

func drawPreLaunchTag(dc *gg.Context, in RenderInput) {
	const (
		tagW = 260.0
		tagH = 100.0
		tagX = 170.0
		tagY = 600.0
	)
	dc.Push()
	dc.RotateAbout(gg.Radians(8), tagX+tagW/2, tagY+tagH/2)
	dc.SetHexColor("#D22828")
	dc.DrawRectangle(tagX, tagY, tagW, tagH)
	dc.Fill()
	dc.SetFontFace(in.Fonts.Bold(28))
	dc.SetHexColor("#FFFFFF")
	dc.DrawStringWrapped("EXCLUSIVE\nPRE-LAUNCH", tagX+tagW/2, tagY+tagH/2, 0.5, 0.5, tagW-20, 1.3, gg.AlignCenter)
	dc.Pop()
}
