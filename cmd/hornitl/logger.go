package main

import (
	"log"
	"sync"
)

// mutexLogger serializes diagnostic output behind a single process-wide
// mutex, grounded on the original CLI's stdout_mutex: spec.md §5 requires
// that any diagnostic output be serialized this way, while the core itself
// emits none in production mode.
type mutexLogger struct {
	mu  sync.Mutex
	log *log.Logger
}

func newMutexLogger(l *log.Logger) *mutexLogger {
	return &mutexLogger{log: l}
}

// Logf implements tableau's (core's) Logger interface.
func (m *mutexLogger) Logf(format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log.Printf(format, args...)
}
