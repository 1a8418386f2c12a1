// Package api is the HTTP client for the PayCanvas backend. It attaches the
// stored bearer token to every request, recovers exactly once from an expired
// token via a silent refresh, and exposes typed operations for each backend
// resource.
package api
