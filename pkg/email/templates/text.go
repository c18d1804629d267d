package templates

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	spaceRun   = regexp.MustCompile(`[ \t]+`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// PlainText extracts the readable text of an HTML document's body for the
// text/plain alternative. Block elements become line breaks; entities are decoded.
// A document without a body yields an empty string.
func PlainText(doc string) (string, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", err
	}

	body := findElement(root, "body")
	if body == nil || !hasText(body) {
		return "", nil
	}

	var sb strings.Builder
	writeText(body, &sb)

	lines := strings.Split(sb.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(spaceRun.ReplaceAllString(l, " "))
	}
	text := strings.Join(lines, "\n")
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text), nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func hasText(n *html.Node) bool {
	if n.Type == html.TextNode && strings.TrimSpace(n.Data) != "" {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasText(c) {
			return true
		}
	}
	return false
}

func writeText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(strings.ReplaceAll(n.Data, "\u00a0", " "))
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "head":
			return
		case "br":
			sb.WriteString("\n")
			return
		case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "tr", "table", "li":
			sb.WriteString("\n\n")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(c, sb)
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "tr", "table", "li":
			sb.WriteString("\n\n")
		}
	}
}
