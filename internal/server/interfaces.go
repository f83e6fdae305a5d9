package server

// Server owns the HTTP listener and the background workers.
type Server interface {
	// RunServer blocks until a termination signal arrives or the listener
	// fails.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
