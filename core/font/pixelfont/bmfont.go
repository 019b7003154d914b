package pixelfont

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse-emoji/core"
)

// PageTexture references a texture page of a BMFont face by file name.
type PageTexture struct {
	File string
	w, h int
}

// Width is part of interface Texture.
func (p *PageTexture) Width() int { return p.w }

// Height is part of interface Texture.
func (p *PageTexture) Height() int { return p.h }

// LoadBMFont parses an AngelCode BMFont text descriptor into a face with a
// single size.
//
// Tags 'info', 'common', 'page', 'char' and 'kerning' are interpreted, all
// other lines are skipped. Values which are not numeric where numbers are
// expected are traced and ignored, as are kerning pairs for unknown
// characters.
func LoadBMFont(r io.Reader) (*Face, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)
	var face *Face
	size := NewSize(0)
	var scaleW, scaleH int
	pages := make(map[int]*PageTexture)
	lineno := 0
	for scanner.Scan() {
		lineno++
		tag, attrs := bmfontFields(scanner.Text())
		if tag != "info" && face == nil && tag != "" {
			return nil, core.Error(core.EINVALID, "BMFont descriptor: '%s' before 'info' in line %d", tag, lineno)
		}
		switch tag {
		case "info":
			face = NewFace(attrs["face"])
			pt := bmfontInt(attrs, "size")
			if pt < 0 { // negative size means 'match char height'
				pt = -pt
			}
			size.PtSize = float64(pt)
		case "common":
			size.LineHeight = bmfontInt(attrs, "lineHeight")
			size.Base = bmfontInt(attrs, "base")
			scaleW = bmfontInt(attrs, "scaleW")
			scaleH = bmfontInt(attrs, "scaleH")
		case "page":
			id := bmfontInt(attrs, "id")
			pages[id] = &PageTexture{File: attrs["file"], w: scaleW, h: scaleH}
			tracer().Debugf("BMFont page %d = %s", id, attrs["file"])
		case "char":
			c := &Character{
				Rune:     rune(bmfontInt(attrs, "id")),
				X:        bmfontInt(attrs, "x"),
				Y:        bmfontInt(attrs, "y"),
				Width:    bmfontInt(attrs, "width"),
				Height:   bmfontInt(attrs, "height"),
				XOffset:  bmfontInt(attrs, "xoffset"),
				YOffset:  bmfontInt(attrs, "yoffset"),
				XAdvance: bmfontInt(attrs, "xadvance"),
				Page:     bmfontInt(attrs, "page"),
			}
			if p, ok := pages[c.Page]; ok {
				c.Texture = p
			}
			size.SetGlyph(c)
		case "kerning":
			amount := bmfontInt(attrs, "amount")
			if amount == 0 {
				continue
			}
			first := rune(bmfontInt(attrs, "first"))
			c, ok := size.Glyph(first)
			if !ok {
				tracer().Debugf("BMFont kerning for unknown char %d", first)
				continue
			}
			if c.Kerning == nil {
				c.Kerning = make(map[rune]int)
			}
			c.Kerning[rune(bmfontInt(attrs, "second"))] = amount
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read BMFont descriptor")
	}
	if face == nil {
		return nil, core.Error(core.EINVALID, "BMFont descriptor without 'info' tag")
	}
	face.AddSize(size)
	tracer().Infof("loaded BMFont face %s with %d chars", face.Name, len(size.Characters))
	return face, nil
}

// bmfontFields splits a descriptor line into its tag and key=value pairs.
// Quoted values may contain spaces.
func bmfontFields(line string) (tag string, attrs map[string]string) {
	attrs = make(map[string]string)
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	sp := strings.IndexAny(line, " \t")
	if sp < 0 {
		return line, attrs
	}
	tag, line = line[:sp], line[sp+1:]
	for len(line) > 0 {
		line = strings.TrimLeft(line, " \t")
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			break
		}
		key := line[:eq]
		line = line[eq+1:]
		var value string
		if strings.HasPrefix(line, "\"") {
			end := strings.IndexByte(line[1:], '"')
			if end < 0 {
				value, line = line[1:], ""
			} else {
				value, line = line[1:end+1], line[end+2:]
			}
		} else if sp := strings.IndexAny(line, " \t"); sp < 0 {
			value, line = line, ""
		} else {
			value, line = line[:sp], line[sp:]
		}
		attrs[key] = value
	}
	return
}

func bmfontInt(attrs map[string]string, key string) int {
	v, ok := attrs[key]
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		tracer().Errorf("BMFont: cannot parse value for field '%s': %s", key, err)
		return 0
	}
	return n
}
