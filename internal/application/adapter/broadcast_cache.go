// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// BroadcastCache caches the rendered broadcast payload per (year, month).
// It is an explicit invalidated-on-write layer: any mutation to the rows the
// broadcast is derived from must call Invalidate.
type BroadcastCache interface {
	// Get returns the cached payload for the period, or nil on a miss.
	Get(ctx context.Context, year, month int) ([]byte, error)

	// Set stores the payload for the period.
	Set(ctx context.Context, year, month int, payload []byte) error

	// Invalidate drops all cached periods.
	Invalidate(ctx context.Context) error
}
