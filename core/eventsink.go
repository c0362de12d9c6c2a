package core

import "pkt.systems/tagwm/schema"

// SignalSink receives the signals produced by one main loop step, in order.
// Publish is called on the main loop and must not block.
type SignalSink interface {
	Publish(signals ...schema.Signal)
}
