// Package http implements the HTTP transport layer of wallet-keeper.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API mounted under /api/users. Cross-cutting concerns such as bearer and
// admin authorization, request tracing, access logging and request metrics
// are handled in this package before requests are delegated to the service
// layer.
package http
