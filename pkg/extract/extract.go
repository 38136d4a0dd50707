package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// htmlMarkers are the tags whose presence near the top of a payload mark it
// as an HTML document.
var htmlMarkers = []string{"<!doctype html", "<html", "<head", "<body"}

// IsHTML sniffs whether a decoded payload is an HTML document rather than
// plain text. Only the first kilobyte is examined.
func IsHTML(text string) bool {
	head := text
	if len(head) > 1024 {
		head = head[:1024]
	}
	head = strings.ToLower(head)

	for _, marker := range htmlMarkers {
		if strings.Contains(head, marker) {
			return true
		}
	}
	return false
}

// Text extracts readable prose from an HTML document. go-readability
// distills the main article first; when it finds nothing usable, the text of
// the whole body is taken instead with script and style subtrees dropped.
func Text(html, location string) (string, error) {
	pageURL, err := url.Parse(location)
	if err != nil {
		pageURL = &url.URL{}
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), pageURL)
	if err == nil {
		if text := normalizeText(article.TextContent); text != "" {
			return text, nil
		}
	}

	return bodyText(html)
}

func bodyText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script,style,noscript").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return normalizeText(doc.Text()), nil
	}
	return normalizeText(body.Text()), nil
}

// normalizeText collapses every whitespace run to a single space so the
// extracted prose reads as one stream of words.
func normalizeText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
