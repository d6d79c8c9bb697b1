// Package app defines the runtime contract shared by the navette entrypoints.
package app

// Runner represents a runnable application component.
type Runner interface {
	Run() error
}
