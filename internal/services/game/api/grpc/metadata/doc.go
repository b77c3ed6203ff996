// Package metadata defines the request headers the game service reads and
// the interceptors that resolve them once per call.
//
// # Header Constants
//
//   - RequestIDHeader: correlates logs and spans for one call; generated when absent.
//   - LocaleHeader: the caller's accept-language, negotiated against the error catalogs.
package metadata
