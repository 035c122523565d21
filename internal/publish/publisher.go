// Package publish syncs freshly written period files to a remote
// version-controlled copy of the data directory.
package publish

import "context"

// Publisher pushes the current state of the data directory after a run. A
// publish failure never undoes local writes; callers log it and move on.
type Publisher interface {
	Publish(ctx context.Context, message string) error
}

// Noop discards publish requests. Used when no remote is configured.
type Noop struct{}

func (Noop) Publish(context.Context, string) error { return nil }
