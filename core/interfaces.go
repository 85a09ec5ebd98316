package core

// Logger is the single diagnostic sink the core is allowed to talk to. It
// is deliberately narrow (one method, string message) rather than a
// leveled logging interface: the core itself emits no diagnostics in
// production use (spec.md §5), and collaborators that do (the search
// driver's progress messages, the CLI) hold their own mutex-guarded
// implementation around it instead of relying on any synchronization here.
type Logger interface {
	Logf(format string, args ...interface{})
}

// NopLogger discards every message. It is the Logger that the search
// driver's default configuration installs; the saturation engine takes no
// Logger at all.
type NopLogger struct{}

// Logf implements Logger by doing nothing.
func (NopLogger) Logf(format string, args ...interface{}) {}
