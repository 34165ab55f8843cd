package descriptor

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/andriiyaremenko/typeinspect/internal/logging"
)

// Loader reads manifests from disk.
type Loader struct {
	logger *slog.Logger
}

// Option configures the Loader.
type Option func(*Loader)

// WithLogger configures a logger for the Loader.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a Loader. Logging is disabled by default.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and resolves the manifest at path.
func (l *Loader) Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	l.logger.Debug("manifest read", "path", path, "bytes", len(data))

	m, err := Parse(data)
	if err != nil {
		l.logger.Error("manifest rejected", "path", path, "error", err)
		return nil, err
	}

	entries, err := m.Entries()
	if err != nil {
		l.logger.Error("manifest rejected", "path", path, "error", err)
		return nil, err
	}

	l.logger.Debug("manifest resolved", "path", path, "types", len(entries))

	return entries, nil
}
