package feed

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText strips markup from a feed summary and collapses whitespace.
// Statuspage summaries look like
// "<p><small>Jun 10, 14:02 PDT</small><br><strong>Investigating</strong> - ...</p>".
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	doc.Find("br").ReplaceWithHtml(" ")
	doc.Find("p, div, li, small").AppendHtml(" ")
	return strings.Join(strings.Fields(doc.Text()), " ")
}
