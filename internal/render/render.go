package render

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pwnwatch-hq/pwnwatch/internal/domain"
)

// Package render turns the HTML fragments the breach service embeds in its
// records into plain text for alert payloads and terminal output.

// Text flattens an HTML fragment into whitespace-normalized plain text.
func Text(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("parse html fragment: %w", err)
	}

	return strings.Join(strings.Fields(doc.Text()), " "), nil
}

// BreachSummary builds the one-line human summary used in alert payloads.
// The description HTML is flattened best effort; a breach without one still
// gets a usable line.
func BreachSummary(b domain.Breach) string {
	title := b.Name
	if b.Title != nil && strings.TrimSpace(*b.Title) != "" {
		title = *b.Title
	}

	var sb strings.Builder
	sb.WriteString(title)
	if b.PwnCount != nil {
		fmt.Fprintf(&sb, " (%d accounts affected)", *b.PwnCount)
	}
	if b.Description != nil {
		if text, err := Text(*b.Description); err == nil && text != "" {
			sb.WriteString(": ")
			sb.WriteString(text)
		}
	}
	return sb.String()
}

// PasteSummary builds the one-line human summary for a paste alert.
func PasteSummary(p domain.Paste) string {
	name := p.Key()
	if p.Title != nil && strings.TrimSpace(*p.Title) != "" {
		name = *p.Title
	}
	return fmt.Sprintf("%s on %s (%d emails)", name, p.Source, p.EmailCount)
}
