// Package htmltext converts fetched HTML pages to flat text.
package htmltext

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"

	"github.com/handiism/chord-compiler/internal/model"
)

// ToPlainText returns the text content of an HTML document.
//
// Every text node is kept in document order, including the contents of
// script and style elements, and no whitespace is collapsed. Listing page
// delimiters live in those places, so nothing may be dropped.
//
// Returns a ParseError if the document cannot be parsed.
func ToPlainText(raw []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return "", model.ParseError("parse html", err)
	}
	return doc.Text(), nil
}
