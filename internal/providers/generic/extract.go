package generic

import (
	"io"
	"strings"

	"github.com/brogergvhs/tafsird/internal/tafsir"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

// ExtractText returns the text of the first element matching selector. Text
// nodes are read one per line; lines are trimmed, inner whitespace runs are
// collapsed and blank lines dropped.
func ExtractText(r io.Reader, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", &tafsir.ExtractionError{Selector: selector, Reason: "parse html: " + err.Error()}
	}

	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", &tafsir.ExtractionError{Selector: selector, Reason: "container not found"}
	}

	var parts []string
	collectText(sel, &parts)

	text := normalize(strings.Join(parts, "\n"))
	if text == "" {
		return "", &tafsir.ExtractionError{Selector: selector, Reason: "container is empty"}
	}

	return text, nil
}

func collectText(sel *goquery.Selection, parts *[]string) {
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		switch goquery.NodeName(c) {
		case "#text":
			*parts = append(*parts, c.Text())
		case "script", "style", "noscript", "#comment":
		default:
			collectText(c, parts)
		}
	})
}

func normalize(s string) string {
	s = norm.NFC.String(s)

	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}

	return strings.Join(out, "\n")
}
