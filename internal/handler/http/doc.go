// Package http implements the REST transport of the API hub.
//
// It wires chi routes to the service layer and carries the request
// middleware: tracing, access logging, bearer authentication (required and
// optional), per-address rate limiting and the guest response cache.
package http
