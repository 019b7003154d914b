/*
Package html substitutes emoji tokens within HTML input.

Only text nodes are rewritten; tags, attributes and comments are left
alone. Elements matching a CSS selector, together with everything below
them, are skipped. By default these are elements displaying program code
or carrying non-text content:

    code, pre, kbd, samp, script, style, textarea

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tyse-emoji/core"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces to tracing key 'tyse.html'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.html")
}

// DefaultSkip selects the elements whose text is not rewritten, if clients
// do not provide a selector.
const DefaultSkip = "code, pre, kbd, samp, script, style, textarea"

// Substituter rewrites tokens in text. *emoji.Engine and *emoji.Registry
// are substituters.
type Substituter interface {
	Apply(text string) string
}

// ApplyDocument parses an HTML document from r, substitutes tokens in its
// text nodes and renders the result to w. skip is a CSS selector for
// elements to leave alone; if empty, DefaultSkip is used.
func ApplyDocument(r io.Reader, w io.Writer, sub Substituter, skip string) error {
	sel, err := compileSkip(skip)
	if err != nil {
		return err
	}
	doc, err := html.Parse(r)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot parse HTML input")
	}
	n := ApplyNodes(doc, sub, sel)
	tracer().Debugf("rewrote %d text nodes", n)
	return html.Render(w, doc)
}

// ApplyFragment substitutes tokens in the text nodes of an HTML fragment, as
// it would appear within a <body> element. See ApplyDocument for skip.
func ApplyFragment(fragment string, sub Substituter, skip string) (string, error) {
	sel, err := compileSkip(skip)
	if err != nil {
		return "", err
	}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", core.WrapError(err, core.EINVALID, "cannot parse HTML fragment")
	}
	var b strings.Builder
	for _, n := range nodes {
		ApplyNodes(n, sub, sel)
		if err := html.Render(&b, n); err != nil {
			return "", core.WrapError(err, core.EINTERNAL, "cannot render HTML fragment")
		}
	}
	return b.String(), nil
}

// ApplyNodes substitutes tokens in all text nodes below and including n,
// except for subtrees rooted at elements matched by skip. skip may be nil.
// It returns the number of text nodes changed.
func ApplyNodes(n *html.Node, sub Substituter, skip cascadia.Selector) int {
	if n == nil {
		return 0
	}
	switch n.Type {
	case html.TextNode:
		if text := sub.Apply(n.Data); text != n.Data {
			n.Data = text
			return 1
		}
		return 0
	case html.ElementNode:
		if skip != nil && skip.Match(n) {
			tracer().Debugf("skipping <%s>", n.Data)
			return 0
		}
	}
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += ApplyNodes(c, sub, skip)
	}
	return count
}

func compileSkip(skip string) (cascadia.Selector, error) {
	if skip == "" {
		skip = DefaultSkip
	}
	sel, err := cascadia.Compile(skip)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid skip selector: %s", skip)
	}
	return sel, nil
}
