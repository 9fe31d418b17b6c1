// ABOUTME: RenderedMessage domain model sent back through the messaging boundary
// ABOUTME: Controls carry either an action token for replay or an external link

package domain

// Control is one inline button attached to a rendered message
type Control struct {
	Label string

	// Action is the replay token for toggle buttons, empty for links
	Action string

	// URL is set for external link buttons
	URL string
}

// IsLink reports whether the control opens an external page
func (c Control) IsLink() bool {
	return c.URL != ""
}

// RenderedMessage is the final Markdown text plus its inline controls
type RenderedMessage struct {
	Text string

	// Controls are laid out as rows of buttons
	Controls [][]Control

	// Date is the date the message was rendered for
	Date DateValue

	// Mode is the rendering mode used
	Mode Mode

	// SourceURL is the page the content was extracted from
	SourceURL string
}
