package calculation

// Logger receives progress messages from the engine: one debug line per
// simulated year and an info line when the run completes.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
}

// NopLogger discards every message. It is the engine default.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
