package client

import "errors"

var (
	// ErrUnknownRequest is returned by [App.Run] for a request kind it does
	// not know how to execute.
	ErrUnknownRequest = errors.New("unknown request kind")
	// ErrMissingDependency is returned by [NewApp] when a required
	// collaborator is nil.
	ErrMissingDependency = errors.New("missing app dependency")
)
