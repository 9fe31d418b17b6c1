// ABOUTME: Message renderer joining extracted page content into bounded Markdown text
// ABOUTME: Builds the short/full toggle controls and the link to the source page

package renderer

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"ukazaniya-bot/core/domain"
)

const (
	// MaxMessageLength is the size ceiling for full mode, in UTF-16 code units
	MaxMessageLength = 4000

	// Separator joins the blocks of a message
	Separator = "\n\n"

	headerTemplate = "*Богослужебные указания %s*"
	linkTemplate   = "Богослужебные указания %s"
	shortLabel     = "Короткие указания"
	fullLabel      = "Полные указания"
)

// Renderer implements interfaces.MessageRenderer
type Renderer struct {
	ceiling int
}

// NewRenderer creates a renderer bounded by MaxMessageLength
func NewRenderer() *Renderer {
	return NewRendererWithCeiling(MaxMessageLength)
}

// NewRendererWithCeiling creates a renderer with a custom size ceiling
func NewRendererWithCeiling(ceiling int) *Renderer {
	return &Renderer{ceiling: ceiling}
}

// Render builds the message for req from page.
//
// The base text is the date header, the page title and every item. In full
// mode each extra paragraph is then tried in order and kept when the
// paragraph plus separator, added to the text accepted so far, stays under
// the ceiling. A rejected paragraph does not stop later ones from being tried.
func (r *Renderer) Render(req domain.RenderRequest, page *domain.Page, sourceURL string) *domain.RenderedMessage {
	userDate := req.Date.UserString()

	blocks := []string{fmt.Sprintf(headerTemplate, userDate)}

	if page != nil {
		if page.Title != "" {
			blocks = append(blocks, "*"+page.Title+"*")
		}

		for _, item := range page.Items {
			if block := renderItem(item); block != "" {
				blocks = append(blocks, block)
			}
		}

		if req.Mode == domain.ModeFull {
			blocks = r.appendExtra(blocks, page.Extra)
		}
	}

	return &domain.RenderedMessage{
		Text:      strings.Join(blocks, Separator),
		Controls:  buildControls(userDate, sourceURL),
		Date:      req.Date,
		Mode:      req.Mode,
		SourceURL: sourceURL,
	}
}

func (r *Renderer) appendExtra(blocks []string, extra []string) []string {
	accepted := TextLength(strings.Join(blocks, Separator))

	for _, paragraph := range extra {
		if TextLength(paragraph+Separator)+accepted >= r.ceiling {
			continue
		}
		blocks = append(blocks, paragraph)
		accepted += TextLength(Separator + paragraph)
	}

	return blocks
}

func renderItem(item domain.ExtractedItem) string {
	if !item.HasTitle() {
		return item.Content
	}
	return "*" + item.Title + "* \n" + item.Content
}

func buildControls(userDate, sourceURL string) [][]domain.Control {
	return [][]domain.Control{
		{
			{Label: shortLabel, Action: domain.ActionToken(domain.ModeShort, userDate)},
			{Label: fullLabel, Action: domain.ActionToken(domain.ModeFull, userDate)},
		},
		{
			{Label: fmt.Sprintf(linkTemplate, userDate), URL: sourceURL},
		},
	}
}

// TextLength counts UTF-16 code units, the unit Telegram measures messages in
func TextLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}
