package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves until a stop signal arrives or a component fails.
	RunServer() error

	// Run serves until ctx is cancelled or a component fails. Every
	// component is stopped before Run returns.
	Run(ctx context.Context) error
}
