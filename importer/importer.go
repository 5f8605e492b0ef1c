// Package importer bootstraps a guide document from a saved HTML
// walkthrough page. The readable main content is extracted, converted to
// Markdown paragraphs, and wrapped in an empty guide skeleton the author
// fills in with instructions.
package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"

	"github.com/c360studio/guidebook/game/darksouls3"
)

var excessiveLinesRe = regexp.MustCompile(`\n{3,}`)

// Skeleton is a starting-point guide document produced by an import.
type Skeleton struct {
	Schema       string            `json:"_schema"`
	GameTitle    string            `json:"gameTitle"`
	Categories   []string          `json:"categories"`
	Description  []string          `json:"description"`
	Resources    []string          `json:"resources"`
	Rules        map[string]string `json:"rules"`
	Instructions []json.RawMessage `json:"instructions"`
}

// JSON serializes the skeleton as an indented guide document.
func (s *Skeleton) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal guide skeleton: %w", err)
	}
	return append(data, '\n'), nil
}

// Converter converts HTML walkthrough pages into guide skeletons.
type Converter struct {
	converter *md.Converter
}

// NewConverter creates a new page converter.
func NewConverter() *Converter {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	return &Converter{converter: converter}
}

// Convert turns one HTML page into a guide skeleton. pageURL is recorded
// as the skeleton's first resource and helps readability resolve relative
// links; it may be empty.
func (c *Converter) Convert(htmlContent []byte, pageURL string) (*Skeleton, error) {
	base, err := url.Parse("about:blank")
	if pageURL != "" {
		base, err = url.Parse(pageURL)
	}
	if err != nil {
		return nil, fmt.Errorf("parse page url: %w", err)
	}

	article, err := readability.FromReader(bytes.NewReader(htmlContent), base)
	if err != nil {
		return nil, fmt.Errorf("extract readable content: %w", err)
	}

	markdown, err := c.converter.ConvertString(article.Content)
	if err != nil {
		return nil, fmt.Errorf("convert content to markdown: %w", err)
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = extractHTMLTitle(htmlContent)
	}
	if title == "" {
		title = "Imported guide"
	}

	resources := []string{}
	if pageURL != "" {
		resources = append(resources, pageURL)
	}

	return &Skeleton{
		Schema:       darksouls3.SchemaName,
		GameTitle:    title,
		Categories:   []string{},
		Description:  paragraphs(markdown),
		Resources:    resources,
		Rules:        map[string]string{},
		Instructions: []json.RawMessage{},
	}, nil
}

// paragraphs splits converted Markdown into description paragraphs.
func paragraphs(markdown string) []string {
	markdown = excessiveLinesRe.ReplaceAllString(markdown, "\n\n")
	parts := strings.Split(markdown, "\n\n")

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		out = append(out, "TODO: describe the run.")
	}
	return out
}

// extractHTMLTitle extracts the document title from raw HTML.
func extractHTMLTitle(content []byte) string {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return ""
	}

	var title string
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			title = strings.TrimSpace(n.FirstChild.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if title != "" {
				return
			}
			extract(c)
		}
	}
	extract(doc)

	return title
}
