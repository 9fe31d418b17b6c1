// ABOUTME: Preview endpoint rendering the instructions message for a date over HTTP
// ABOUTME: Runs the same pipeline the bot uses, without Telegram

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"ukazaniya-bot/api/dto/responses"
	"ukazaniya-bot/core/domain"
	"ukazaniya-bot/core/interfaces"
	"ukazaniya-bot/core/renderer"
)

// InstructionsHandler serves rendered instructions
type InstructionsHandler struct {
	service interfaces.InstructionsService
}

// NewInstructionsHandler creates a new instructions handler
func NewInstructionsHandler(service interfaces.InstructionsService) *InstructionsHandler {
	return &InstructionsHandler{service: service}
}

// RegisterRoutes registers the instructions routes
func (h *InstructionsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getInstructions",
		Method:      http.MethodGet,
		Path:        "/instructions/{date}",
		Summary:     "Render liturgical instructions",
		Description: "Fetches the instructions page for the date and renders it exactly as the bot would",
		Tags:        []string{"Instructions"},
	}, h.GetInstructions)
}

// InstructionsInput selects the date and rendering mode
type InstructionsInput struct {
	Date string `path:"date" example:"05.01.2025" doc:"Date in DD.MM.YYYY format"`
	Mode string `query:"mode" enum:"short,full" default:"short" doc:"Rendering mode"`
}

// InstructionsOutput wraps the rendered message
type InstructionsOutput struct {
	Body responses.InstructionsResponse
}

// GetInstructions handles GET /instructions/{date}
func (h *InstructionsHandler) GetInstructions(ctx context.Context, input *InstructionsInput) (*InstructionsOutput, error) {
	msg, err := h.service.Render(ctx, input.Date, domain.ParseMode(input.Mode))
	if err != nil {
		return nil, toHumaError(err)
	}

	return &InstructionsOutput{
		Body: responses.FromRenderedMessage(msg, renderer.TextLength(msg.Text)),
	}, nil
}
