package ingestion

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// resumeSelectors are tried in order when pulling the main content out of
// an HTML resume export; body is the fallback.
var resumeSelectors = []string{
	"main",
	"article",
	".resume",
	"#resume",
	".content",
	"#content",
}

// ExtractResumeText turns a raw resume payload into normalized plain text.
// HTML payloads are parsed and stripped of markup noise first; anything
// else passes straight to text normalization.
func ExtractResumeText(raw string) string {
	if looksLikeHTML(raw) {
		if text, err := extractHTMLText(raw); err == nil {
			return CleanText(text)
		}
		// Unparseable markup: score on whatever text is there
	}
	return CleanText(raw)
}

// ReadResumeFile loads a resume from disk for the CLI path.
func ReadResumeFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("resume file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	return ExtractResumeText(string(content)), nil
}

// looksLikeHTML reports whether the payload is markup rather than plain
// text. Checks a few unmistakable markers instead of attempting a parse.
func looksLikeHTML(raw string) bool {
	sample := strings.ToLower(raw)
	if len(sample) > 2048 {
		sample = sample[:2048]
	}
	for _, marker := range []string{"<html", "<body", "<!doctype html", "<div", "<p>", "<section"} {
		if strings.Contains(sample, marker) {
			return true
		}
	}
	return false
}

// extractHTMLText parses HTML and returns the main body text with noise
// elements removed. Falls back to the body element when no content
// selector matches.
func extractHTMLText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .sidebar, .cookie-banner, .popup").Remove()

	var mainContent *goquery.Selection
	for _, selector := range resumeSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}
	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	return mainContent.Text(), nil
}
