package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/druarnfield/careerpath/internal/career"
	"github.com/druarnfield/careerpath/internal/chart"
	"github.com/druarnfield/careerpath/internal/config"
	"github.com/druarnfield/careerpath/internal/logging"
	"github.com/druarnfield/careerpath/internal/state"
)

// Overridden in tests.
var (
	stderr        io.Writer = os.Stderr
	logFilePath             = config.LogFilePath
	stateFilePath           = config.StateFilePath
)

// env is the wiring shared by every command: config, logger, persisted state
// and the rate-limited recommendation source.
type env struct {
	cfg     *config.Config
	logger  *slog.Logger
	closer  io.Closer
	limiter *career.RateLimiter
	source  career.Source
	theme   chart.Theme
	delay   time.Duration

	statePath string
	version   string

	mu sync.Mutex
	st *state.State
}

// loadEnv reads the config (explicit --config must exist, the default path
// may not), opens the log and restores the quota counter from state.
func loadEnv(version string) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	delay, err := cfg.AnalysisDelay()
	if err != nil {
		return nil, err
	}
	if flagDelay > 0 {
		delay = flagDelay
	}

	logPath := logFilePath()
	logger, closer, err := logging.Setup(logging.Options{
		Path:    logPath,
		Verbose: flagVerbose,
		Session: logging.NewSession(),
	})
	if err != nil {
		fmt.Fprintf(stderr, "careerpath: logging disabled, cannot open %s: %v\n", logPath, err)
		logger = slog.New(logging.NopHandler{})
		closer = io.NopCloser(nil)
	}

	statePath := stateFilePath()
	st, err := state.Load(statePath)
	if err != nil {
		logger.Warn("state unreadable, starting fresh", slog.String("error", err.Error()))
		st = &state.State{}
	}

	limiter := career.NewRateLimiter(cfg.Limits.PerMinute, cfg.Limits.PerDay)
	limiter.Seed(st.DailyAnalyses, st.QuotaResetAt)

	var src career.Source = career.MockSource{}
	if cfg.Source.File != "" {
		src = career.FileSource{Path: cfg.Source.File}
	}

	logger.Info("careerpath started",
		slog.String("version", version),
		slog.Duration("delay", delay),
		slog.String("source", sourceName(cfg)),
	)

	return &env{
		cfg:       cfg,
		logger:    logger,
		closer:    closer,
		limiter:   limiter,
		source:    career.Limited{Source: src, Limiter: limiter},
		theme:     cfg.ChartTheme(),
		delay:     delay,
		statePath: statePath,
		version:   version,
		st:        st,
	}, nil
}

func loadConfig() (*config.Config, error) {
	if flagConfig != "" {
		cfg, err := config.LoadFromFile(flagConfig)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadFromFile(config.ConfigFilePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Defaults(), nil
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func sourceName(cfg *config.Config) string {
	if cfg.Source.File != "" {
		return cfg.Source.File
	}
	return "mock"
}

// exportPath resolves an export destination; out overrides the config.
func (e *env) exportPath(out string) string {
	if out != "" {
		return out
	}
	return config.ExportPath(e.cfg.Export.Dir, e.cfg.Export.Filename)
}

// recordExport notes a written file in state.
func (e *env) recordExport(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.st.AddExport(path)
}

// close saves the quota counter and run bookkeeping, then closes the log.
func (e *env) close() {
	e.mu.Lock()
	daily, reset := e.limiter.Daily()
	e.st.SetQuota(daily, reset)
	e.st.LastRun = time.Now()
	e.st.CareerPathVersion = e.version
	err := state.Save(e.statePath, e.st)
	e.mu.Unlock()

	if err != nil {
		e.logger.Warn("saving state failed", slog.String("error", err.Error()))
	}
	e.closer.Close()
}
