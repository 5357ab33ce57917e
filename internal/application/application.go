package application

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/search"
	"github.com/eugenenazirov/minigrep/internal/storage"
)

// App encapsulates the dependencies of a single search run.
type App struct {
	cfg     config.Config
	storage storage.Storage
	search  search.Func
	out     io.Writer
	logger  *zap.Logger
}

// Option configures App behaviour.
type Option func(*App)

// WithStorage overrides the content source, primarily for tests.
func WithStorage(store storage.Storage) Option {
	return func(a *App) {
		a.storage = store
	}
}

// WithOutput overrides where matching lines are written.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// New initializes the application from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	app := &App{
		cfg:     cfg,
		storage: storage.NewFileStorage(),
		search:  search.ForMode(cfg.CaseSensitive),
		out:     os.Stdout,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// Run loads the configured file, searches it and prints every matching line.
// Nothing is printed when loading fails.
func (a *App) Run() error {
	a.logger.Debug("starting search",
		zap.String("query", a.cfg.Query),
		zap.String("filename", a.cfg.Filename),
		zap.Bool("case_sensitive", a.cfg.CaseSensitive),
	)

	content, err := a.storage.Load(a.cfg.Filename)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	a.logger.Debug("content loaded", zap.Int("bytes", len(content)))

	matches := a.search(a.cfg.Query, content)
	a.logger.Debug("search finished", zap.Int("matches", len(matches)))

	return writeLines(a.out, matches)
}

func writeLines(w io.Writer, lines []string) error {
	buf := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := buf.WriteString(line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if err := buf.WriteByte('\n'); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
