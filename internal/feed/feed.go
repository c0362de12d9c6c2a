// Package feed drives the compositor notifications of a core service from a
// line-oriented stream. Each line is one JSON object (comments and trailing
// commas allowed):
//
//	{"event": "output_added", "output": "DP-1", "width": 1920, "height": 1080}
//	{"event": "pointer_entered_window", "window": 4} // focus follows mouse
//
// It stands in for a real compositor when the control plane runs headless.
package feed

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/jsonc"

	"pkt.systems/pslog"
	"pkt.systems/tagwm/core"
	"pkt.systems/tagwm/schema"
)

// Event names.
const (
	EventOutputAdded           = "output_added"
	EventOutputRemoved         = "output_removed"
	EventOutputGeometryChanged = "output_geometry_changed"
	EventPointerEnteredWindow  = "pointer_entered_window"
	EventPointerLeftWindow     = "pointer_left_window"
	EventWindowMapped          = "window_mapped"
	EventWindowUnmapped        = "window_unmapped"
)

// Event is one decoded feed line.
type Event struct {
	Event  string `json:"event"`
	Output string `json:"output,omitempty"`
	X      int32  `json:"x,omitempty"`
	Y      int32  `json:"y,omitempty"`
	Width  uint32 `json:"width,omitempty"`
	Height uint32 `json:"height,omitempty"`
	Window uint32 `json:"window,omitempty"`
}

// ErrUnknownEvent reports an event name the feed does not understand.
var ErrUnknownEvent = errors.New("unknown feed event")

// Parse decodes one line. ok is false for blank and comment-only lines.
func Parse(line []byte) (ev Event, ok bool, err error) {
	stripped := bytes.TrimSpace(jsonc.ToJSON(line))
	if len(stripped) == 0 {
		return Event{}, false, nil
	}
	dec := json.NewDecoder(bytes.NewReader(stripped))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ev); err != nil {
		return Event{}, false, fmt.Errorf("parsing feed line: %w", err)
	}
	if err := ev.validate(); err != nil {
		return Event{}, false, err
	}
	return ev, true, nil
}

func (e Event) validate() error {
	switch e.Event {
	case EventOutputAdded, EventOutputRemoved, EventOutputGeometryChanged:
		if _, err := schema.NormalizeOutputName(e.Output); err != nil {
			return fmt.Errorf("%s: %w", e.Event, err)
		}
	case EventPointerEnteredWindow, EventPointerLeftWindow, EventWindowMapped, EventWindowUnmapped:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, e.Event)
	}
	return nil
}

func (e Event) geometry() schema.Geometry {
	return schema.Geometry{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Apply forwards the event to the compositor notification intake.
func (e Event) Apply(ctx context.Context, c core.Compositor) error {
	output := schema.OutputName(e.Output)
	window := schema.WindowID(e.Window)
	switch e.Event {
	case EventOutputAdded:
		return c.OutputAdded(ctx, output, e.geometry())
	case EventOutputRemoved:
		return c.OutputRemoved(ctx, output)
	case EventOutputGeometryChanged:
		return c.OutputGeometryChanged(ctx, output, e.geometry())
	case EventPointerEnteredWindow:
		return c.PointerEnteredWindow(ctx, window)
	case EventPointerLeftWindow:
		return c.PointerLeftWindow(ctx, window)
	case EventWindowMapped:
		return c.WindowMapped(ctx, window)
	case EventWindowUnmapped:
		return c.WindowUnmapped(ctx, window)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, e.Event)
	}
}

// Stats counts what a Run did.
type Stats struct {
	Lines   int
	Applied int
	Skipped int
	Failed  int
}

// Run reads events from r until EOF or ctx is done. Malformed lines and
// rejected notifications are logged and skipped. Run returns as soon as ctx is
// done even while a read is blocked; closing r is left to the caller.
func Run(ctx context.Context, r io.Reader, c core.Compositor) (Stats, error) {
	log := pslog.Ctx(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var stats Stats
	lines, scanErr := scanLines(ctx, r)
	for {
		var line []byte
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case next, ok := <-lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return stats, err
				}
				if err := <-scanErr; err != nil {
					return stats, err
				}
				log.Debug("feed finished", "lines", stats.Lines, "applied", stats.Applied, "skipped", stats.Skipped, "failed", stats.Failed)
				return stats, nil
			}
			line = next
		}
		stats.Lines++
		ev, ok, err := Parse(line)
		if err != nil {
			stats.Skipped++
			log.Warn("feed line rejected", "line", stats.Lines, "err", err)
			continue
		}
		if !ok {
			continue
		}
		if err := ev.Apply(ctx, c); err != nil {
			if errors.Is(err, schema.ErrServiceClosed) || errors.Is(err, context.Canceled) {
				return stats, err
			}
			stats.Failed++
			log.Warn("feed event failed", "line", stats.Lines, "event", ev.Event, "err", err)
			continue
		}
		stats.Applied++
		log.Trace("feed event applied", "line", stats.Lines, "event", ev.Event)
	}
}

// scanLines reads r on its own goroutine. The error channel receives the scan
// result before lines is closed.
func scanLines(ctx context.Context, r io.Reader) (<-chan []byte, <-chan error) {
	lines := make(chan []byte)
	scanErr := make(chan error, 1)
	go func() {
		var err error
		defer func() {
			scanErr <- err
			close(lines)
		}()
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		err = scanner.Err()
	}()
	return lines, scanErr
}

// Open resolves a feed path. "-" is standard input.
func Open(path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, errors.New("feed path is required")
	}
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening feed: %w", err)
	}
	return f, nil
}
