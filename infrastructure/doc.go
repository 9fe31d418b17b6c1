// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: net/http client for page fetches
// - http/colly: colly-backed alternative page transport
// - logger/logrus: structured logger with optional rotating file output
// - telegram: Bot API long polling and message delivery
//
// # HTTP Clients
//
// Both clients make a single attempt per call and hand back error statuses
// as responses; deciding what counts as success is left to the fetcher.
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "http://www.patriarchia.ru/bu/2025-01-05")
//
// # Telegram
//
//	client, err := telegram.NewClient(telegram.Options{Token: token}, deps)
//	err = client.Run(ctx, adapter)
package infrastructure
