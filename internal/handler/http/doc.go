// Package http contains HTTP handlers and middleware for the board API.
package http
