// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the sync client, and the background refresh job
// into a single process lifecycle.
package client
