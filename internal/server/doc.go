// Package server wires and runs the HTTP server of wallet-keeper.
//
// It provides orchestration for the server lifecycle, including startup,
// signal handling, and graceful shutdown.
package server
