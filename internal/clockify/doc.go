// Package clockify is a thin client for the Clockify REST API.
//
// A Client holds two transports, one for the entity API and one for the
// reports API, both selected by Region. Every method issues exactly one
// HTTP request (GetCurrentWorkspace may issue two) and returns the response
// body as raw JSON, so fields Clockify adds survive unchanged. Failures are
// normalized into *APIError:
//
//	Clockify API Error: 404 - Not found
//	Clockify Reports API Error: dial tcp: connection refused
//
// Nothing is retried and no state is kept between calls.
package clockify
