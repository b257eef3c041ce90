// Package observability configures structured logging for the service.
// Sinks receive every emitted entry, so tests and exporters can observe
// the log stream without parsing formatter output.
package observability

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Entry is the sink-facing projection of a log record.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Fields  map[string]any
}

// Sink consumes log entries. Close flushes anything buffered.
type Sink interface {
	Emit(entry Entry)
	Close() error
}

// New builds a logger writing to stdout. Unknown levels fall back to info,
// any format other than "json" selects the text formatter.
func New(level, format string, sinks ...Sink) *logrus.Logger {
	log := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(os.Stdout)

	if len(sinks) > 0 {
		log.AddHook(sinkHook{sinks: sinks})
	}
	return log
}

type sinkHook struct {
	sinks []Sink
}

func (sinkHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h sinkHook) Fire(e *logrus.Entry) error {
	entry := Entry{
		Time:    e.Time,
		Level:   e.Level.String(),
		Message: e.Message,
		Fields:  make(map[string]any, len(e.Data)),
	}
	for k, v := range e.Data {
		entry.Fields[k] = v
	}
	for _, sink := range h.sinks {
		sink.Emit(entry)
	}
	return nil
}

// MemorySink keeps entries in order of arrival.
type MemorySink struct {
	mu      sync.Mutex
	entries []Entry
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Emit(entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

func (s *MemorySink) Close() error { return nil }

func (s *MemorySink) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
