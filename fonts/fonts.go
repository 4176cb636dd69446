package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Title   FontName = "title"
	Body    FontName = "body"
	Caption FontName = "caption"
	HUD     FontName = "hud"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadAll builds every face the showcase uses from the gofont TTF data.
// Must run before any Get call.
func LoadAll() {
	LoadFontWithSize(Title, gobold.TTF, 34)
	LoadFontWithSize(Body, goregular.TTF, 16)
	LoadFontWithSize(Caption, goregular.TTF, 12)
	LoadFontWithSize(HUD, goregular.TTF, 11)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
