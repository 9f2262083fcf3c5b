// Package source normalizes raw report input before parsing. Upstream report
// bodies usually arrive as markdown, but rich-text pastes and email exports
// deliver HTML; those are converted back into the markdown-ish text the
// parsers understand.
package source

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Normalize returns input unchanged when it already looks like markdown, and
// converts it from HTML otherwise.
func Normalize(input string) string {
	if !LooksLikeHTML(input) {
		return input
	}
	return FromHTML([]byte(input))
}

// LooksLikeHTML reports whether input is more plausibly an HTML document
// than markdown: it must carry at least one structural tag.
func LooksLikeHTML(input string) bool {
	t := strings.ToLower(input)
	for _, marker := range []string{"<html", "<body", "<div", "<p>", "<p ", "<h1", "<h2", "<h3", "<ul", "<ol", "<table"} {
		if strings.Contains(t, marker) {
			return true
		}
	}
	return false
}

// FromHTML converts an HTML report body into markdown-flavored text:
// headings become ATX headings, list items bullets, bold runs **emphasis**,
// and table rows pipe rows. Script, style and navigation chrome are skipped.
// Unparseable input yields an empty string.
func FromHTML(input []byte) string {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return ""
	}
	content := findFirst(node, "main")
	if content == nil {
		content = findFirst(node, "article")
	}
	if content == nil {
		content = findFirst(node, "body")
	}
	if content == nil {
		content = node
	}
	var b strings.Builder
	render(&b, content)
	return tidy(b.String())
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func render(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(collapseInline(n.Data))
		return
	}
	if n.Type != html.ElementNode && n.Type != html.DocumentNode {
		return
	}
	name := strings.ToLower(n.Data)
	switch name {
	case "script", "style", "noscript", "nav", "footer", "aside", "iframe", "head":
		return
	case "h1", "h2", "h3", "h4", "h5", "h6":
		b.WriteString("\n\n")
		b.WriteString(strings.Repeat("#", int(name[1]-'0')))
		b.WriteString(" ")
		b.WriteString(inlineText(n))
		b.WriteString("\n\n")
		return
	case "li":
		b.WriteString("\n- ")
		renderChildren(b, n)
		return
	case "tr":
		cells := childCells(n)
		if len(cells) > 0 {
			b.WriteString("\n| ")
			b.WriteString(strings.Join(cells, " | "))
			b.WriteString(" |")
		}
		return
	case "strong", "b":
		if t := inlineText(n); t != "" {
			b.WriteString("**")
			b.WriteString(t)
			b.WriteString("**")
		}
		return
	case "em", "i":
		if t := inlineText(n); t != "" {
			b.WriteString("*")
			b.WriteString(t)
			b.WriteString("*")
		}
		return
	case "p", "ul", "ol", "table", "blockquote", "section", "div":
		b.WriteString("\n\n")
		renderChildren(b, n)
		b.WriteString("\n")
		return
	case "br":
		b.WriteString("\n")
		return
	}
	renderChildren(b, n)
}

func renderChildren(b *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		render(b, c)
	}
}

// childCells collects the inline text of td/th children of a table row.
func childCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		name := strings.ToLower(c.Data)
		if name == "td" || name == "th" {
			cells = append(cells, inlineText(c))
		}
	}
	return cells
}

// inlineText flattens a node's text content to a single collapsed line.
func inlineText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func collapseInline(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// tidy trims trailing space per line and squeezes blank-line runs to one.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimRight(strings.TrimLeft(line, " "), " \t")
		if trimmed == "" {
			if len(out) == 0 || out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, trimmed)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
