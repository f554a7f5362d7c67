package template

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"

	"postergen/internal/domain"
)

const (
	canvasW = 1080
	canvasH = 1350
)

// newCanvas creates the poster context with the background scaled and
// center-cropped to cover the full canvas.
func newCanvas(bg image.Image) *gg.Context {
	dc := gg.NewContext(canvasW, canvasH)
	if bg != nil {
		fitted := imaging.Fill(bg, canvasW, canvasH, imaging.Center, imaging.Lanczos)
		dc.DrawImage(fitted, 0, 0)
	}
	return dc
}

func encodePNG(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("%w: encode png: %v", domain.ErrRenderFailure, err)
	}
	return buf.Bytes(), nil
}

// bottomGradient darkens the lower part of the canvas so light text stays
// readable over any background.
func bottomGradient(dc *gg.Context, height float64) {
	grad := gg.NewLinearGradient(0, float64(canvasH)-height, 0, float64(canvasH))
	grad.AddColorStop(0, color.NRGBA{0, 0, 0, 0})
	grad.AddColorStop(1, color.NRGBA{0, 0, 0, 235})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, float64(canvasH)-height, canvasW, height)
	dc.Fill()
}

// dimOverlay lays a uniform translucent black sheet over the whole canvas.
func dimOverlay(dc *gg.Context, alpha float64) {
	dc.SetRGBA(0, 0, 0, alpha)
	dc.DrawRectangle(0, 0, canvasW, canvasH)
	dc.Fill()
}

// drawShadowText draws text with a small drop shadow, anchored at center.
func drawShadowText(dc *gg.Context, text string, x, y float64, face font.Face, hexColor string) {
	dc.SetFontFace(face)
	dc.SetRGBA(0, 0, 0, 0.85)
	dc.DrawStringAnchored(text, x, y+3, 0.5, 0.5)
	dc.SetHexColor(hexColor)
	dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
}

// drawTick draws a check mark with round caps.
func drawTick(dc *gg.Context, x, y, size float64, hexColor string) {
	dc.SetHexColor(hexColor)
	dc.SetLineWidth(size / 5)
	dc.SetLineCapRound()
	dc.MoveTo(x, y+size*0.55)
	dc.LineTo(x+size*0.35, y+size*0.9)
	dc.LineTo(x+size, y+size*0.1)
	dc.Stroke()
}

// amenityRow lays amenities out horizontally with tick marks, wrapping onto
// new rows when the next entry would overflow maxWidth.
func amenityRow(dc *gg.Context, items []string, face font.Face, startX, startY, maxWidth float64, tickColor, textColor string) {
	const (
		tickSize = 24
		gap      = 16
		rowGap   = 18
		pad      = 30
	)
	dc.SetFontFace(face)
	x, y := startX, startY
	for _, item := range items {
		textW, textH := dc.MeasureString(item)
		total := tickSize + gap + textW + pad
		if x+total > startX+maxWidth {
			x = startX
			y += textH + rowGap
		}
		drawTick(dc, x, y-tickSize*0.75, tickSize, tickColor)
		dc.SetHexColor(textColor)
		dc.DrawStringAnchored(item, x+tickSize+gap, y, 0, 0.5)
		x += total
	}
}

// qrBadge renders a QR code for the listing phone number on a white pad so
// scanners get enough quiet zone over busy backgrounds.
func qrBadge(dc *gg.Context, phone string, x, y float64, size int) error {
	qr, err := qrcode.New("tel:"+phone, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("%w: qr encode: %v", domain.ErrRenderFailure, err)
	}
	qr.DisableBorder = true
	pad := float64(size) * 0.1
	dc.SetHexColor("#FFFFFF")
	dc.DrawRoundedRectangle(x-pad, y-pad, float64(size)+2*pad, float64(size)+2*pad, pad)
	dc.Fill()
	dc.DrawImage(qr.Image(size), int(x), int(y))
	return nil
}
