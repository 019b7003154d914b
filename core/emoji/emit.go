package emoji

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/iancoleman/strcase"
)

// EmitCHeader writes a C header file defining a macro EMOJI_<NAME> for every
// registered emoji, expanding to its code-point. guard is used as include
// guard; if empty, EMOJI_CODEPOINTS_H is used.
func (r *Registry) EmitCHeader(w io.Writer, guard string) error {
	if guard == "" {
		guard = "EMOJI_CODEPOINTS_H"
	}
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "// Code generated by tyse-emoji. DO NOT EDIT.\n\n")
	fmt.Fprintf(out, "#ifndef %s\n#define %s\n\n", guard, guard)
	fmt.Fprintf(out, "#define EMOJI_COUNT %d\n\n", r.Len())
	used := make(map[string]int, r.Len())
	for id, name := range r.names {
		macro := "EMOJI_" + macroName(name)
		if other, ok := used[macro]; ok {
			tracer().Infof("emoji %s clashes with %s as %s", name, r.names[other], macro)
			macro = fmt.Sprintf("%s_%d", macro, id)
		}
		used[macro] = id
		fmt.Fprintf(out, "#define %s 0x%04X", macro, Codepoint(id))
		if r.mono[id] {
			fmt.Fprintf(out, " /* monochrome */")
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "\n#endif // %s\n", guard)
	return out.Flush()
}

// macroName converts an emoji name to a C identifier fragment.
func macroName(name string) string {
	s := strcase.ToScreamingSnake(name)
	s = strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return '_'
	}, s)
	if s == "" {
		return "_"
	}
	return s
}
