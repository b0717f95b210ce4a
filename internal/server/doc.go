// Package server runs the board API's transport servers.
//
// It orchestrates the HTTP API server and the optional gRPC health server:
// startup, signal handling, and graceful shutdown of every enabled transport.
package server
