package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"weather-lookup/internal/display"
)

const (
	Width  = 480
	Height = 640

	cardMargin = 24.0
	cardRadius = 24.0
)

var (
	fontsOnce sync.Once
	fontsErr  error
	regular   *truetype.Font
	bold      *truetype.Font
)

func loadFonts() error {
	fontsOnce.Do(func() {
		if regular, fontsErr = truetype.Parse(goregular.TTF); fontsErr != nil {
			return
		}
		bold, fontsErr = truetype.Parse(gobold.TTF)
	})
	if fontsErr != nil {
		return fmt.Errorf("failed to parse font: %w", fontsErr)
	}
	return nil
}

func face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

// DrawScreen paints the screen as a standalone card: the results panel when
// present, the error banner when set, otherwise a prompt.
func DrawScreen(screen display.Screen) (*gg.Context, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}

	dc := gg.NewContext(Width, Height)
	drawBackground(dc)

	dc.SetColor(color.White)
	dc.DrawRoundedRectangle(cardMargin, cardMargin, Width-2*cardMargin, Height-2*cardMargin, cardRadius)
	dc.Fill()

	dc.SetFontFace(face(bold, 26))
	dc.SetHexColor("#1f2937")
	dc.DrawStringAnchored("Weather", Width/2, 70, 0.5, 0.5)

	switch {
	case screen.Panel != nil:
		drawPanel(dc, *screen.Panel)
	case screen.Error != "":
		drawBanner(dc, screen.Error)
	case screen.Loading:
		drawPrompt(dc, display.ButtonLoading)
	default:
		drawPrompt(dc, "Enter a city name to search")
	}

	return dc, nil
}

// EncodePNG draws the screen and writes it as PNG.
func EncodePNG(w io.Writer, screen display.Screen) error {
	dc, err := DrawScreen(screen)
	if err != nil {
		return err
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode panel: %w", err)
	}
	return nil
}

func drawBackground(dc *gg.Context) {
	grad := gg.NewLinearGradient(0, 0, Width, Height)
	grad.AddColorStop(0, color.RGBA{R: 0x60, G: 0xa5, B: 0xfa, A: 0xff})
	grad.AddColorStop(0.5, color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff})
	grad.AddColorStop(1, color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff})

	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, Width, Height)
	dc.Fill()
}

func drawPanel(dc *gg.Context, p display.Panel) {
	dc.SetHexColor("#1f2937")
	dc.SetFontFace(face(bold, 22))
	dc.DrawStringAnchored(p.Location, Width/2, 112, 0.5, 0.5)

	drawIcon(dc, p.Icon, Width/2, 178, 40)

	dc.SetHexColor("#1f2937")
	dc.SetFontFace(face(bold, 52))
	dc.DrawStringAnchored(p.Temperature, Width/2, 262, 0.5, 0.5)

	dc.SetHexColor("#4b5563")
	dc.SetFontFace(face(regular, 18))
	dc.DrawStringAnchored(p.Description, Width/2, 306, 0.5, 0.5)

	tiles := []struct{ label, value string }{
		{"Humidity", p.Humidity},
		{"Wind Speed", p.WindSpeed},
		{"Pressure", p.Pressure},
		{"Visibility", p.Visibility},
	}
	const (
		tileW   = 196.0
		tileH   = 70.0
		tileGap = 16.0
		tilesY  = 336.0
	)
	left := (Width - 2*tileW - tileGap) / 2
	for i, tile := range tiles {
		x := left + float64(i%2)*(tileW+tileGap)
		y := tilesY + float64(i/2)*(tileH+tileGap)
		drawTile(dc, x, y, tileW, tileH, tile.label, tile.value)
	}

	rowY := tilesY + 2*(tileH+tileGap)
	dc.SetHexColor("#fde8d7")
	dc.DrawRoundedRectangle(left, rowY, 2*tileW+tileGap, 62, 12)
	dc.Fill()

	row := []struct{ label, value string }{
		{"Feels Like", p.FeelsLike},
		{"Min Temp", p.TempMin},
		{"Max Temp", p.TempMax},
	}
	colW := (2*tileW + tileGap) / 3
	for i, cell := range row {
		cx := left + colW*float64(i) + colW/2
		dc.SetHexColor("#4b5563")
		dc.SetFontFace(face(regular, 13))
		dc.DrawStringAnchored(cell.label, cx, rowY+20, 0.5, 0.5)
		dc.SetHexColor("#1f2937")
		dc.SetFontFace(face(bold, 18))
		dc.DrawStringAnchored(cell.value, cx, rowY+42, 0.5, 0.5)
	}
}

func drawTile(dc *gg.Context, x, y, w, h float64, label, value string) {
	dc.SetHexColor("#eff6ff")
	dc.DrawRoundedRectangle(x, y, w, h, 12)
	dc.Fill()

	dc.SetHexColor("#4b5563")
	dc.SetFontFace(face(regular, 13))
	dc.DrawString(label, x+14, y+24)

	dc.SetHexColor("#1f2937")
	dc.SetFontFace(face(bold, 22))
	dc.DrawString(value, x+14, y+54)
}

func drawBanner(dc *gg.Context, message string) {
	x, y := cardMargin+24, 112.0
	w := Width - 2*x

	dc.SetHexColor("#fee2e2")
	dc.DrawRoundedRectangle(x, y, w, 56, 12)
	dc.Fill()

	dc.SetHexColor("#f87171")
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x, y, w, 56, 12)
	dc.Stroke()

	dc.SetHexColor("#b91c1c")
	dc.SetFontFace(face(regular, 17))
	dc.DrawStringAnchored(message, Width/2, y+28, 0.5, 0.5)
}

func drawPrompt(dc *gg.Context, text string) {
	drawIcon(dc, display.IconCloud, Width/2, 250, 40)

	dc.SetHexColor("#6b7280")
	dc.SetFontFace(face(regular, 18))
	dc.DrawStringAnchored(text, Width/2, 330, 0.5, 0.5)
}

// drawIcon draws a vector icon centred on (cx, cy); r is roughly half its width.
func drawIcon(dc *gg.Context, icon display.Icon, cx, cy, r float64) {
	switch icon {
	case display.IconSun:
		dc.SetHexColor("#facc15")
		dc.DrawCircle(cx, cy, r*0.5)
		dc.Fill()

		dc.SetLineWidth(4)
		for i := 0; i < 8; i++ {
			a := float64(i) * math.Pi / 4
			dc.DrawLine(cx+math.Cos(a)*r*0.7, cy+math.Sin(a)*r*0.7, cx+math.Cos(a)*r, cy+math.Sin(a)*r)
		}
		dc.Stroke()
	case display.IconRain:
		drawCloud(dc, cx, cy-r*0.25, r, "#60a5fa")

		dc.SetHexColor("#3b82f6")
		dc.SetLineWidth(3)
		for i := -1; i <= 1; i++ {
			x := cx + float64(i)*r*0.45
			dc.DrawLine(x, cy+r*0.35, x-r*0.15, cy+r*0.75)
		}
		dc.Stroke()
	default:
		drawCloud(dc, cx, cy, r, "#9ca3af")
	}
}

func drawCloud(dc *gg.Context, cx, cy, r float64, hex string) {
	dc.SetHexColor(hex)
	dc.DrawCircle(cx-r*0.45, cy+r*0.1, r*0.38)
	dc.DrawCircle(cx+r*0.1, cy-r*0.15, r*0.5)
	dc.DrawCircle(cx+r*0.55, cy+r*0.12, r*0.35)
	dc.DrawRoundedRectangle(cx-r*0.85, cy+r*0.05, r*1.75, r*0.42, r*0.2)
	dc.Fill()
}
