// ABOUTME: Liveness endpoint answering on the root path

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// HealthMessage is the body served on GET /
const HealthMessage = "Everything works!"

// HealthOutput is a plain text body
type HealthOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// RegisterHealth registers GET /
func RegisterHealth(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Liveness check",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*HealthOutput, error) {
		return &HealthOutput{
			ContentType: "text/plain; charset=utf-8",
			Body:        []byte(HealthMessage),
		}, nil
	})
}
