// Package monitor turns the firmware's report stream into button events.
// The firmware only sends whole snapshots; edge detection lives here on the
// host so the pad core stays snapshot-only.
package monitor

import (
	"io"

	"nespad/core"
	"nespad/protocol"
)

// Event is one button edge derived from two successive reports.
type Event struct {
	Button  core.Button
	Pressed bool

	// Seq is the sequence number of the report that carried the edge.
	Seq uint8
}

// Monitor diffs decoded reports into events. The zero value is ready to
// use and assumes an all-released starting state, which is what the
// firmware's initial resting frame reports anyway.
type Monitor struct {
	dec  protocol.Decoder
	last uint8

	// Reports, when set, receives every decoded report before diffing.
	Reports func(protocol.Report)
}

// Feed decodes stream bytes and returns the button edges they imply, in
// report order and bit order within a report.
func (m *Monitor) Feed(p []byte) []Event {
	var events []Event
	for _, r := range m.dec.Feed(p) {
		if m.Reports != nil {
			m.Reports(r)
		}
		changed := m.last ^ r.Mask
		for b := core.ButtonA; b <= core.ButtonRight; b++ {
			if changed&b.Mask() == 0 {
				continue
			}
			events = append(events, Event{
				Button:  b,
				Pressed: r.Mask&b.Mask() != 0,
				Seq:     r.Seq,
			})
		}
		m.last = r.Mask
	}
	return events
}

// Run reads the port until EOF or error, invoking fn for every event. The
// reader should block rather than time out, or Run will return early.
func (m *Monitor) Run(r io.Reader, fn func(Event)) error {
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			for _, ev := range m.Feed(buf[:n]) {
				fn(ev)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
