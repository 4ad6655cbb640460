// Package client is the CLI's gateway to the shelfkeeper server.
//
// Client describes the operations the CLI needs; GRPCClient implements them
// over gRPC. GRPCClient keeps the access token from the last successful login
// and attaches it to every call through a unary interceptor, applies a
// per-request timeout, and maps gRPC status codes onto the sentinel errors in
// errors.go so callers can match them with errors.Is.
package client
