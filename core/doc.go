// Package core contains the business logic of the liturgical instructions bot.
// It does not depend on Telegram or on any web framework.
//
// The core package is organized into several sub-packages:
//
// - domain: dates and their two formats, modes, action tokens, pages, rendered messages
// - errors: the pipeline error taxonomy
// - interfaces: contracts for HTTP, logging, messaging and the pipeline stages
// - fetcher: retrieves the page for a date
// - extractor: turns page markup into structured content
// - renderer: builds the size-bounded message and its controls
// - instructions: runs one request through the stages above
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: httpClient, // implements interfaces.HTTPClient
//	    Logger:     logger,     // implements interfaces.Logger
//	}
//
//	service := instructions.NewService(
//	    fetcher.NewFetcher("http://www.patriarchia.ru/bu", deps),
//	    extractor.NewExtractor(),
//	    renderer.NewRenderer(),
//	    deps,
//	)
//
//	msg, err := service.Render(ctx, "05.01.2025", domain.ModeFull)
package core
