// Package io provides print sinks for the stackvm machine.
// A sink receives each value popped by a print instruction, in order.
package io

// Sink is the interface for all print sinks.
type Sink interface {
	// Send delivers one printed value.
	Send(value int32) error
}
