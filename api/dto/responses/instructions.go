// ABOUTME: Response DTOs for the instructions preview endpoint
// ABOUTME: Mirrors the rendered chat message, controls included

package responses

import "ukazaniya-bot/core/domain"

// ControlResponse is one inline control of a rendered message
type ControlResponse struct {
	Label  string `json:"label" doc:"Button label"`
	Action string `json:"action,omitempty" doc:"Replay token sent back when the button is pressed"`
	URL    string `json:"url,omitempty" doc:"External link opened by the button"`
}

// InstructionsResponse is a rendered instructions message
type InstructionsResponse struct {
	Date      string              `json:"date" example:"05.01.2025" doc:"Date in DD.MM.YYYY format"`
	Mode      string              `json:"mode" enum:"short,full" doc:"Rendering mode"`
	SourceURL string              `json:"source_url" doc:"Page the content was extracted from"`
	Text      string              `json:"text" doc:"Markdown message text"`
	Length    int                 `json:"length" doc:"Text length in UTF-16 code units"`
	Controls  [][]ControlResponse `json:"controls" doc:"Inline controls, row by row"`
}

// FromRenderedMessage converts a rendered message into its response form
func FromRenderedMessage(msg *domain.RenderedMessage, length int) InstructionsResponse {
	rows := make([][]ControlResponse, 0, len(msg.Controls))
	for _, row := range msg.Controls {
		controls := make([]ControlResponse, 0, len(row))
		for _, c := range row {
			controls = append(controls, ControlResponse{Label: c.Label, Action: c.Action, URL: c.URL})
		}
		rows = append(rows, controls)
	}

	return InstructionsResponse{
		Date:      msg.Date.UserString(),
		Mode:      msg.Mode.String(),
		SourceURL: msg.SourceURL,
		Text:      msg.Text,
		Length:    length,
		Controls:  rows,
	}
}
