// ABOUTME: Content extractor for the liturgical instructions page DOM
// ABOUTME: Walks the main section and quoted reading groups with goquery

package extractor

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"ukazaniya-bot/core/domain"
	coreerrors "ukazaniya-bot/core/errors"
	htmlutil "ukazaniya-bot/pkg/utils/html"
)

const (
	sectionSelector = ".main .section"
	titleSelector   = ".main .section > p"
	extraSelector   = ".main .section > p:not(:first-of-type)"
	groupSelector   = "blockquote"
	readingClass    = "chten"
)

// Extractor implements interfaces.ContentExtractor for the patriarchia.ru page layout
type Extractor struct{}

// NewExtractor creates a new extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses raw markup into a Page.
// Quoted groups are collected from the whole document in document order.
// Every paragraph of the main section after the first is returned in Extra;
// whether they are used is up to the renderer.
func (e *Extractor) Extract(raw *domain.RawMarkup) (*domain.Page, error) {
	if raw == nil {
		return nil, coreerrors.Extraction("", fmt.Errorf("no markup"))
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw.Body))
	if err != nil {
		return nil, coreerrors.Extraction(raw.URL, fmt.Errorf("failed to parse HTML: %w", err))
	}

	if doc.Find(sectionSelector).Length() == 0 {
		return nil, coreerrors.Extraction(raw.URL, fmt.Errorf("main section not found"))
	}

	base, _ := url.Parse(raw.URL)

	page := &domain.Page{
		Title: htmlutil.CleanText(htmlutil.StripAccents(doc.Find(titleSelector).First().Text())),
	}

	doc.Find(groupSelector).Each(func(_ int, group *goquery.Selection) {
		page.Items = append(page.Items, extractGroup(group, base))
	})

	doc.Find(extraSelector).Each(func(_ int, p *goquery.Selection) {
		if text := htmlutil.CleanText(p.Text()); text != "" {
			page.Extra = append(page.Extra, text)
		}
	})

	return page, nil
}

// extractGroup builds one item from the direct children of a quoted block.
// A later child of the same kind replaces an earlier one.
func extractGroup(group *goquery.Selection, base *url.URL) domain.ExtractedItem {
	var item domain.ExtractedItem

	group.Children().Each(func(_ int, child *goquery.Selection) {
		switch {
		case isElement(child, atom.B):
			item.Title = htmlutil.CleanText(child.Text())
		case child.HasClass(readingClass):
			item.Content = extractReading(child, base)
		default:
			if text := htmlutil.CleanText(child.Text()); text != "" {
				item.Content = "_" + text + "_"
			} else {
				item.Content = ""
			}
		}
	})

	return item
}

// extractReading renders the reading units (div > div) of one scripture
// reading marker. Each unit yields its own text, then its links, then a line
// break; the final line break is dropped.
func extractReading(reading *goquery.Selection, base *url.URL) string {
	var segments []string

	units := reading.ChildrenFiltered("div").ChildrenFiltered("div")

	units.Each(func(_ int, unit *goquery.Selection) {
		if text := htmlutil.CleanText(ownText(unit)); text != "" {
			segments = append(segments, text+" ")
		}

		unit.Children().Each(func(_ int, child *goquery.Selection) {
			if !isElement(child, atom.A) {
				return
			}
			link := domain.LinkRef{
				Text: htmlutil.CleanText(child.Text()),
				Href: resolveHref(base, child.AttrOr("href", "")),
			}
			segments = append(segments, link.Markdown())
		})

		segments = append(segments, "\n")
	})

	if len(segments) > 0 {
		segments = segments[:len(segments)-1]
	}

	return strings.Join(segments, "")
}

// ownText returns the text of the element's direct text nodes only
func ownText(s *goquery.Selection) string {
	var b strings.Builder
	for _, n := range s.Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
		}
	}
	return b.String()
}

func isElement(s *goquery.Selection, a atom.Atom) bool {
	if s.Length() == 0 {
		return false
	}
	n := s.Get(0)
	return n.Type == html.ElementNode && n.DataAtom == a
}

func resolveHref(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if base == nil || href == "" {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
