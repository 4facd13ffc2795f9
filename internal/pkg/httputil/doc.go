// Package httputil provides shared HTTP response/request helpers for handlers.
//
// Handlers use these instead of raw http.ResponseWriter calls so error
// envelopes and content types stay consistent across endpoints.
package httputil
