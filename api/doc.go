// Package api provides the HTTP shell of the bot process.
// It uses the Huma framework on a chi router to serve OpenAPI
// documentation, a liveness route and a preview of rendered instructions.
//
// # Layout
//
// - server.go: Huma API configuration and route registration
// - bot/: chat event handling for the Telegram bot
// - handlers/: HTTP request handlers
// - dto/: response bodies
// - middleware/: request logging, outgoing fetch logging, rate limiting
//
// # Routes
//
//	GET /                              "Everything works!"
//	GET /instructions/{date}?mode=...  rendered message as JSON
//	GET /openapi.json, GET /docs       generated by Huma
//
// # Usage Example
//
//	humaAPI, router := api.NewAPI(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  30,
//	    RateWindow: time.Minute,
//	})
//	api.RegisterRoutes(humaAPI, instructionsService, flags)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 format. Invalid dates map to 400, fetch and
// extraction failures to 502.
package api
