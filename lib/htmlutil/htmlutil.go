// Package htmlutil is a thin document model over goquery. Selection by pattern never fails:
// a pattern that matches nothing gives an empty selection and the First* helpers report
// absence with a false second return, so callers decide whether absence is fatal.
package htmlutil

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("matchjournal/lib/htmlutil")

// Parse reads an entire html document into a queryable tree.
func Parse(ctx context.Context, r io.Reader) (*goquery.Document, error) {
	_, span := tracer.Start(ctx, "Parse")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}
	span.SetAttributes(attribute.Int("nodes", doc.Find("*").Length()))
	return doc, nil
}

func ParseString(ctx context.Context, markup string) (*goquery.Document, error) {
	return Parse(ctx, strings.NewReader(markup))
}

// Select returns every descendant of `within` matching `m`, in document order.
func Select(within *goquery.Selection, m goquery.Matcher) *goquery.Selection {
	return within.FindMatcher(m)
}

// Nth returns the i-th (0-based) node of a selection.
func Nth(sel *goquery.Selection, i int) (*goquery.Selection, bool) {
	if i < 0 || i >= sel.Length() {
		return nil, false
	}
	return sel.Eq(i), true
}

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// TextContent concatenates the text of every node in the selection.
func TextContent(sel *goquery.Selection) string {
	var buffer bytes.Buffer
	for _, n := range sel.Nodes {
		getTextRecursive(n, &buffer)
	}
	return buffer.String()
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) || unicode.IsSpace(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText strips non-printable runes, trims the ends and collapses inner runs of whitespace.
func CleanText(s string) string {
	s = removeNonPrintable(s)
	s = strings.TrimSpace(s)
	return innerWhitespace.ReplaceAllString(s, " ")
}

// FirstText returns the cleaned text content of the first node in the selection.
func FirstText(sel *goquery.Selection) (string, bool) {
	if sel.Length() == 0 {
		return "", false
	}
	return CleanText(TextContent(sel.First())), true
}

// FirstUint8 parses the text of the first node as an unsigned 8-bit integer.
// Non-numeric or out of range text counts as absent, it is never clamped.
func FirstUint8(sel *goquery.Selection) (uint8, bool) {
	text, ok := FirstText(sel)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseUint(text, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(value), true
}

// FirstAttr returns the named attribute of the first node in the selection.
func FirstAttr(sel *goquery.Selection, name string) (string, bool) {
	if sel.Length() == 0 {
		return "", false
	}
	return sel.First().Attr(name)
}
