package server

// Server is the lifecycle contract shared by the HTTP and gRPC transports.
//
// Implementations block in [RunServer] until shutdown is requested and
// release their resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
