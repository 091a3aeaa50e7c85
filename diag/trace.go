package diag

import (
	"errors"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"
)

// TraceWriter streams snapshots to w as consecutive msgpack values
type TraceWriter struct {
	mu  sync.Mutex
	enc *msgpack.Encoder
	log logrus.FieldLogger
	n   int
}

// NewTraceWriter creates a trace writer. Encoding errors are logged and the
// snapshot dropped; the simulation never blocks on a failing trace.
func NewTraceWriter(w io.Writer, log logrus.FieldLogger) *TraceWriter {
	return &TraceWriter{
		enc: msgpack.NewEncoder(w),
		log: log.WithField("component", "trace"),
	}
}

// Report implements Sink
func (t *TraceWriter) Report(s Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.enc.Encode(&s); err != nil {
		t.log.WithError(err).Warn("dropping snapshot")
		return
	}
	t.n++
}

// Written returns how many snapshots were encoded
func (t *TraceWriter) Written() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.n
}

// ReadTrace decodes every snapshot from a stream written by TraceWriter
func ReadTrace(r io.Reader) ([]Snapshot, error) {
	dec := msgpack.NewDecoder(r)
	var out []Snapshot
	for {
		var s Snapshot
		if err := dec.Decode(&s); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, err
		}
		out = append(out, s)
	}
}
