package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var htmlTagRe = regexp.MustCompile(`(?i)<\s*(?:p|div|br|span|body|html|h[1-6]|li|ul|ol|b|i|strong|em)[\s>/]`)

// blockTags are elements that terminate a line when flattening
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "tr": true, "section": true, "article": true,
}

// LooksLikeHTML reports whether a paste carries markup. Mobile clients
// often hand over rich-text clipboard content as an HTML fragment.
func LooksLikeHTML(s string) bool {
	return htmlTagRe.MatchString(s)
}

// FlattenHTML reduces an HTML fragment to plain text, one line per block
// element, skipping script/style content. On a parse failure the input is
// returned unchanged so the draft extractor can still fall back to
// treating it as plain text.
func FlattenHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				buf.WriteString(t)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && blockTags[n.Data] {
			buf.WriteString("\n")
		}
	}

	walk(doc)
	return buf.String()
}
