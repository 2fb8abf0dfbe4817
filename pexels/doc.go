// Package pexels provides a client for interacting with the Pexels API.
//
// Pexels is a stock media service offering free photos and videos. This
// package implements typed search and lookup operations for photos, videos
// and collections.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the authenticated-request primitive with connection pooling
//   - Builders: per-endpoint request builders rendering query strings
//   - Models: domain types mirroring the API's JSON shapes
//   - Errors: a closed error taxonomy over status codes and failures
//
// # Usage
//
// Create a client with your Pexels API key:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := pexels.NewClient(apiKey, logger,
//		pexels.WithTimeout(30*time.Second),
//		pexels.WithMaxIdleConns(10),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	builder := pexels.NewPhotoSearchBuilder().
//		Query("mountains").
//		PerPage(15).
//		Page(1)
//	page, err := client.SearchPhotos(ctx, builder)
//
// Every operation is a stateless request/response round trip: no retries,
// no caching, no cross-call state. Pagination is returned as opaque
// next/prev URLs on the page envelopes.
//
// # Error Handling
//
// HTTP statuses map onto typed errors: 401 to AuthError, 429 to
// ErrRateLimited, 404 on identifier endpoints to NotFoundError, any other
// non-200 to APIError. Transport and JSON failures surface as RequestError
// and DecodeError respectively:
//
//	var notFound *pexels.NotFoundError
//	if errors.As(err, &notFound) {
//		// handle missing resource
//	}
package pexels
