package emoji

import "strings"

// Reserved code-point range
const (
	Base     rune = '\uE000'          // first code-point assigned to an emoji
	End      rune = '\uF8FF'          // last code-point of the Private Use Area
	Capacity      = int(End-Base) + 1 // number of assignable IDs
)

// MonochromeSuffix marks a name as requesting the monochrome variant.
const MonochromeSuffix = ".m"

// AssetPrefix is the name prefix selecting emoji textures from an asset
// provider.
const AssetPrefix = "emoji/"

// NoID is returned for registrations which have been queued.
const NoID = -1

// Codepoint returns the code-point for an emoji ID.
func Codepoint(id int) rune {
	return Base + rune(id)
}

// ID returns the emoji ID for a code-point. The result is negative or at
// least Capacity for code-points outside the reserved range.
func ID(r rune) int {
	return int(r - Base)
}

// ParseName splits a registration name into the emoji name and the
// monochrome flag. The name is kept as given, without normalization.
//
// Names must not be empty and must neither contain colons nor code-points
// from the reserved range, as either would make ':name:' tokens ambiguous.
func ParseName(name string) (base string, monochrome bool, err error) {
	if strings.HasSuffix(name, MonochromeSuffix) {
		name = name[:len(name)-len(MonochromeSuffix)]
		monochrome = true
	}
	base = name
	if base == "" {
		return "", false, errInvalidName(name, "empty name")
	}
	if strings.ContainsRune(base, ':') {
		return "", false, errInvalidName(name, "name contains a colon")
	}
	for _, r := range base {
		if r >= Base && r <= End {
			return "", false, errInvalidName(name, "name contains a reserved code-point")
		}
	}
	return base, monochrome, nil
}

// Token returns the text token ':name:' for an emoji name.
func Token(name string) string {
	return ":" + name + ":"
}
