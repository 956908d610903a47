package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/lawtools/actlens/internal/model"
)

// ExtractHTML reduces a saved legislation page to its visible text as a
// single direct page. Script, style and similar non-content subtrees are
// skipped; block elements introduce line breaks so the normalizer sees the
// same shape of text a PDF page yields.
func ExtractHTML(data []byte) ([]model.Page, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "head":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && isBlock(n.Data) {
			buf.WriteString("\n")
		}
	}
	walk(doc)

	text := buf.String()
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return []model.Page{{Number: 1, Text: text, Method: model.MethodDirect}}, nil
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "li", "tr", "br", "section", "article",
		"h1", "h2", "h3", "h4", "h5", "h6", "blockquote":
		return true
	}
	return false
}
