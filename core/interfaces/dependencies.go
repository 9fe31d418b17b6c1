// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the instructions pipeline

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// HTTPClient fetches the instructions pages
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
