// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the extraction core

package interfaces

// Dependencies holds all external dependencies required by the extraction
// core. Cache is optional; a nil Cache disables result memoization. Logger
// must be non-nil.
type Dependencies struct {
	// Cache memoizes aggregate extraction results. Optional.
	Cache Cache

	// Logger receives per-extractor diagnostics.
	Logger Logger
}
