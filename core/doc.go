// Package core contains the metadata extraction logic for the pagemeta API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure output models (StructuredItem, MicroformatItem, AggregateResult, etc.)
// - htmldoc: One-shot HTML parsing into a read-only document
// - urlutil: URL reference resolution against an optional base
// - curie: CURIE prefix expansion with lexical scoping (RDFa)
// - extractors: One sub-package per metadata format
// - extract: The aggregator service that runs every extractor
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Extraction is pure and synchronous: input text in, owned values out
// - No network fetching, no persisted state, no shared mutable state
//
// # Usage Example
//
//	import (
//	    "pagemeta-api/core/extract"
//	    "pagemeta-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:  myCache,  // implements interfaces.Cache, optional
//	    Logger: myLogger, // implements interfaces.Logger
//	}
//
//	// Create service
//	svc := extract.NewService(deps)
//
//	// Extract everything from one document
//	result, err := svc.ExtractAll(ctx, htmlText, "https://example.com/page")
package core
