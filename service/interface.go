// Package service manages long-lived infrastructure around the game loop
package service

// Service is a hub-managed subsystem: the terminal screen, the audio device, the clock
//
// Lifecycle:
//  1. Construction with its configuration
//  2. Init() - acquire resources, dependencies are already initialized
//  3. Start() - launch background goroutines
//  4. Stop() - halt goroutines, release resources; must be idempotent
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init and Start before this one
	Dependencies() []string

	Init() error
	Start() error
	Stop() error
}
