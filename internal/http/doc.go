// Package http provides an HTTP client configured for the tab site.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Request throttling via golang.org/x/time/rate
//   - Mapping every failure to a model NetworkError
//
// # Basic Usage
//
//	client := http.NewClient(
//	    http.WithUserAgent("ChordCompiler"),
//	    http.WithRateLimit(1),
//	)
//
//	page, err := client.Get(ctx, listingURL)
package http
