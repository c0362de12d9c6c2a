package tagwm

import (
	"pkt.systems/pslog"
	"pkt.systems/tagwm/core"
	"pkt.systems/tagwm/schema"
)

type signalFanout struct {
	sinks []core.SignalSink
}

func (f signalFanout) Publish(signals ...schema.Signal) {
	for _, sink := range f.sinks {
		if sink == nil {
			continue
		}
		sink.Publish(signals...)
	}
}

// traceSink logs every published signal at trace level.
type traceSink struct {
	log pslog.Logger
}

func (s traceSink) Publish(signals ...schema.Signal) {
	for _, sig := range signals {
		s.log.Trace("signal published", "kind", sig.Kind().String(), "signal", sig)
	}
}

func fanoutSinks(sinks ...core.SignalSink) core.SignalSink {
	out := make([]core.SignalSink, 0, len(sinks))
	for _, sink := range sinks {
		if sink != nil {
			out = append(out, sink)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	default:
		return signalFanout{sinks: out}
	}
}
