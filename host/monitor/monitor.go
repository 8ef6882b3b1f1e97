// Package monitor decodes the meter's text output on the host.
//
// The firmware rewrites one terminal line per cycle: "\rf=<hz>Hz" followed by
// ESC[0K. A startup banner (ESC[2J and a few text lines) may precede it.
package monitor

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"capmeter/core"
)

var (
	clearEOL     = []byte("\x1b[0K")
	updatePrefix = []byte("\rf=")
)

// ErrMalformed is returned for an update that does not carry a frequency
var ErrMalformed = errors.New("malformed frequency update")

// Reading is one decoded cycle
type Reading struct {
	Seq         uint32
	Measurement core.Measurement
	Capacitance core.CapacitanceEstimate
}

// Monitor reads updates from a meter
type Monitor struct {
	cfg     core.Config
	scanner *bufio.Scanner
	seq     uint32
}

// New creates a monitor on r. cfg supplies the resistor values used to
// recompute capacitance on the host.
func New(r io.Reader, cfg core.Config) *Monitor {
	s := bufio.NewScanner(r)
	s.Split(scanUpdates)
	return &Monitor{cfg: cfg, scanner: s}
}

// scanUpdates splits the stream after every clear-to-end-of-line sequence
func scanUpdates(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.Index(data, clearEOL); i >= 0 {
		return i + len(clearEOL), data[:i], nil
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// ParseUpdate extracts the frequency from one update, ignoring any banner
// text before it
func ParseUpdate(token []byte) (core.Measurement, error) {
	i := bytes.LastIndex(token, updatePrefix)
	if i < 0 {
		return core.Measurement{}, ErrMalformed
	}
	body := token[i+len(updatePrefix):]
	if !bytes.HasSuffix(body, []byte("Hz")) {
		return core.Measurement{}, ErrMalformed
	}
	hz, err := strconv.ParseUint(string(body[:len(body)-2]), 10, 32)
	if err != nil {
		return core.Measurement{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return core.Measurement{FrequencyHz: uint32(hz)}, nil
}

// Next blocks until the next update and decodes it. It returns io.EOF when
// the stream ends.
func (m *Monitor) Next() (Reading, error) {
	for m.scanner.Scan() {
		token := m.scanner.Bytes()
		meas, err := ParseUpdate(token)
		if err != nil {
			// a trailing partial line or pure banner text
			if !bytes.Contains(token, updatePrefix) {
				continue
			}
			return Reading{}, err
		}
		m.seq++
		return Reading{
			Seq:         m.seq,
			Measurement: meas,
			Capacitance: m.cfg.Estimate(meas),
		}, nil
	}
	if err := m.scanner.Err(); err != nil {
		return Reading{}, err
	}
	return Reading{}, io.EOF
}

// Run calls fn for every update until the stream ends, ctx is cancelled or
// fn returns an error. Malformed updates are passed to onErr and skipped.
func (m *Monitor) Run(ctx context.Context, fn func(Reading) error, onErr func(error)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, err := m.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, ErrMalformed) {
			if onErr != nil {
				onErr(err)
			}
			continue
		}
		if err != nil {
			return err
		}
		if err := fn(r); err != nil {
			return err
		}
	}
}
