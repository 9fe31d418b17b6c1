// ABOUTME: Domain models for markup fetched from the site and the content extracted from it
// ABOUTME: Page keeps document order of reading groups and commentary paragraphs

package domain

// RawMarkup is a fetched page body together with the URL it came from
type RawMarkup struct {
	// URL is the page address, used to resolve relative links
	URL string

	// Body is the undecoded HTML document
	Body []byte
}

// LinkRef is a scripture reference link inside a reading
type LinkRef struct {
	Text string
	Href string
}

// Markdown renders the link as [text](href)
func (l LinkRef) Markdown() string {
	return "[" + l.Text + "](" + l.Href + ")"
}

// ExtractedItem is one reading group (a commemoration or a scripture reading)
type ExtractedItem struct {
	// Title is the bold heading of the group, empty when the group has none
	Title string

	// Content is the Markdown body of the group
	Content string
}

// Page is the structured content of one liturgical instructions page
type Page struct {
	// Title is the first paragraph of the main section
	Title string

	// Items are the reading groups in document order
	Items []ExtractedItem

	// Extra are the remaining main section paragraphs, candidates for full mode
	Extra []string
}

// HasTitle reports whether the item carries a heading
func (i ExtractedItem) HasTitle() bool {
	return i.Title != ""
}
