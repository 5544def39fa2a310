package cli

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/roach88/docreduce/internal/config"
	"github.com/roach88/docreduce/internal/document"
	"github.com/roach88/docreduce/internal/engine"
	"github.com/roach88/docreduce/internal/journal"
	"github.com/roach88/docreduce/internal/models"
	"github.com/roach88/docreduce/internal/oplog"
	"github.com/roach88/docreduce/internal/store"
)

// session is an engine opened for one command.
type session struct {
	*engine.Engine
	metrics     *prometheus.Registry
	metricsFile string
}

// openLog opens the configured operation log backend.
func openLog(cfg config.Config, opts *RootOptions) (oplog.Log, error) {
	switch cfg.Backend {
	case config.BackendBadger:
		return journal.Open(journal.Config{
			Path:       cfg.Database,
			SyncWrites: true,
			Logger:     opts.Logger,
		})
	case config.BackendSQLite:
		return store.Open(cfg.Database)
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

// openSession opens the log and builds an engine over every document type.
// Callers must call finish.
func openSession(opts *RootOptions) (*session, error) {
	registry, err := models.NewRegistry(document.SystemClock{})
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load models", err)
	}
	log, err := openLog(opts.Config, opts)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	reg := prometheus.NewRegistry()
	eng := engine.New(registry, log,
		engine.WithLogger(opts.Logger),
		engine.WithMetrics(engine.NewMetrics(reg)),
		engine.WithMaxRecords(opts.Config.MaxRecords),
	)
	return &session{Engine: eng, metrics: reg, metricsFile: opts.Config.MetricsFile}, nil
}

// finish closes the log and writes the metrics textfile when configured.
func (s *session) finish() error {
	err := s.Close()
	if s.metricsFile != "" {
		if werr := prometheus.WriteToTextfile(s.metricsFile, s.metrics); werr != nil && err == nil {
			err = fmt.Errorf("write metrics: %w", werr)
		}
	}
	return err
}

// closeInto finishes the session and reports a failure through errp unless
// the command already failed.
func (s *session) closeInto(errp *error) {
	if ferr := s.finish(); ferr != nil && *errp == nil {
		*errp = WrapExitError(ExitCommandError, "failed to close session", ferr)
	}
}

// registry builds a model registry for commands that need no storage.
func registry() (*document.Registry, error) {
	r, err := models.NewRegistry(document.SystemClock{})
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load models", err)
	}
	return r, nil
}
