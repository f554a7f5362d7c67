package template

import (
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

// FontSet holds the three typefaces the templates draw with. The embedded Go
// fonts are always available; a fonts directory may override any role with
// title.ttf, bold.ttf or body.ttf.
type FontSet struct {
	title *truetype.Font
	bold  *truetype.Font
	body  *truetype.Font
}

// LoadFonts builds a FontSet, overriding embedded fonts with TTF files from
// dir when present. Unparseable overrides are ignored.
func LoadFonts(dir string) *FontSet {
	fs := &FontSet{
		title: mustParse(gobold.TTF),
		bold:  mustParse(gomedium.TTF),
		body:  mustParse(goregular.TTF),
	}
	if dir == "" {
		return fs
	}
	if f := parseFile(filepath.Join(dir, "title.ttf")); f != nil {
		fs.title = f
	}
	if f := parseFile(filepath.Join(dir, "bold.ttf")); f != nil {
		fs.bold = f
	}
	if f := parseFile(filepath.Join(dir, "body.ttf")); f != nil {
		fs.body = f
	}
	return fs
}

// Title returns the headline face at the given point size.
func (f *FontSet) Title(size float64) font.Face {
	return newFace(f.title, size)
}

// Bold returns the emphasis face at the given point size.
func (f *FontSet) Bold(size float64) font.Face {
	return newFace(f.bold, size)
}

// Body returns the text face at the given point size.
func (f *FontSet) Body(size float64) font.Face {
	return newFace(f.body, size)
}

func newFace(fnt *truetype.Font, size float64) font.Face {
	return truetype.NewFace(fnt, &truetype.Options{Size: size})
}

// mustParse only runs on the embedded Go fonts, which always parse.
func mustParse(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

func parseFile(path string) *truetype.Font {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil
	}
	return f
}
