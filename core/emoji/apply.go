package emoji

import "strings"

// Apply replaces every token ':name:' in text by the code-point of name.
//
// Names are processed in order of their IDs, each replacing all
// non-overlapping occurrences of its token within the result of the
// previous names. Tokens of unknown names are left untouched. Apply does
// not modify r.
func (r *Registry) Apply(text string) string {
	if !strings.ContainsRune(text, ':') {
		return text
	}
	for id, name := range r.names {
		text = strings.ReplaceAll(text, Token(name), string(Codepoint(id)))
		if !strings.ContainsRune(text, ':') {
			break
		}
	}
	return text
}

// Tokens returns the names of all tokens ':name:' in text which are not
// registered, in order of first appearance. Token candidates are delimited by
// colons and do not contain whitespace.
func (r *Registry) Tokens(text string) []string {
	var unknown []string
	seen := make(map[string]bool)
	for {
		start := strings.IndexByte(text, ':')
		if start < 0 {
			break
		}
		rest := text[start+1:]
		end := strings.IndexByte(rest, ':')
		if end < 0 {
			break
		}
		name := rest[:end]
		if name == "" || strings.ContainsAny(name, " \t\r\n") {
			text = rest // closing colon may open the next token
			continue
		}
		if _, ok := r.ids[name]; !ok && !seen[name] {
			seen[name] = true
			unknown = append(unknown, name)
		}
		text = rest[end+1:]
	}
	return unknown
}
