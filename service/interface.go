// Package service runs the host's long-lived subsystems in dependency order
package service

// Service defines the lifecycle interface for host subsystems
// Services manage long-lived resources: the speaker, the save backend, the terminal
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - configuration from parsed flags
//  3. Start() - acquire devices, launch goroutines
//  4. [runtime operation]
//  5. Stop() - release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	// Init configures the service from optional args
	Init(args ...any) error

	// Start begins service operation
	// Called after all services have initialized
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent
	Stop() error
}
