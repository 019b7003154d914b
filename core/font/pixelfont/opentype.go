package pixelfont

import (
	"os"

	"github.com/npillmayer/tyse-emoji/core"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// DPI is the resolution used to derive pixel metrics from OpenType fonts.
const DPI = 72

// LoadOpenTypeFace reads an OpenType font file and creates a face for it,
// see FaceFromOpenType.
func LoadOpenTypeFace(fontfile string, sizes ...float64) (*Face, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "font file not found: %s", fontfile)
	}
	return FaceFromOpenType("", bytez, sizes...)
}

// FaceFromOpenType creates a face from binary OpenType font data, with one
// size variant per entry of sizes. Line height and baseline of each size are
// taken from the font's metrics, the character tables are left empty.
//
// If name is empty, the face is named after the font's full name.
func FaceFromOpenType(name string, otf []byte, sizes ...float64) (*Face, error) {
	f, err := sfnt.Parse(otf)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse OpenType font")
	}
	if name == "" {
		name, _ = f.Name(nil, sfnt.NameIDFull)
	}
	face := NewFace(name)
	for _, pt := range sizes {
		if pt < 5.0 || pt > 500.0 {
			tracer().Errorf("font size must be 5pt < size < 500pt, is %g (set to 10pt)", pt)
			pt = 10.0
		}
		otface, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    pt,
			DPI:     DPI,
			Hinting: xfont.HintingFull,
		})
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "cannot create face %s at %.2f", name, pt)
		}
		metrics := otface.Metrics()
		size := NewSize(pt)
		size.LineHeight = metrics.Height.Ceil()
		size.Base = metrics.Ascent.Ceil()
		otface.Close()
		face.AddSize(size)
		tracer().Debugf("face %s at %.2f: line height %d, base %d", name, pt, size.LineHeight, size.Base)
	}
	return face, nil
}

// FallbackFace returns a face to be used if everything else fails. It is
// always available. Currently we use Go Sans.
func FallbackFace(sizes ...float64) *Face {
	face, err := FaceFromOpenType("Go Sans", goregular.TTF, sizes...)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return face
}
