package game

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Trace is a recorded input sequence. Because the world is a pure function
// of chunk coordinates and physics is fixed-timestep, a trace replayed
// against a fresh session reproduces the original run exactly.
type Trace struct {
	Archetype string    `msgpack:"arch"`
	TickRate  float64   `msgpack:"rate"`
	Ticks     []Intents `msgpack:"ticks"`
}

// Recorder captures per-tick intents during a live session.
type Recorder struct {
	trace Trace
}

func NewRecorder(cfg Config) *Recorder {
	return &Recorder{trace: Trace{
		Archetype: cfg.PlayerArch,
		TickRate:  cfg.TickRate,
	}}
}

// Record appends the intents applied for one fixed tick.
func (r *Recorder) Record(in Intents) {
	r.trace.Ticks = append(r.trace.Ticks, in)
}

func (r *Recorder) Trace() Trace {
	return r.trace
}

// Encode serialises the trace with msgpack.
func (t Trace) Encode() ([]byte, error) {
	b, err := msgpack.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encoding trace: %w", err)
	}
	return b, nil
}

// DecodeTrace parses a msgpack trace.
func DecodeTrace(b []byte) (Trace, error) {
	var t Trace
	if err := msgpack.Unmarshal(b, &t); err != nil {
		return Trace{}, fmt.Errorf("decoding trace: %w", err)
	}
	return t, nil
}

// Play feeds the trace tick by tick into the session, stopping early if
// the session terminates. It returns the number of ticks applied.
func Play(s *Session, t Trace) int {
	for i, in := range t.Ticks {
		if s.Over() {
			return i
		}
		s.Step(in)
	}
	return len(t.Ticks)
}
