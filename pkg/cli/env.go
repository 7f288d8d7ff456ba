package cli

import (
	"fmt"
	"strconv"
	"strings"

	"go.seanlatimer.dev/amhub/internal/catalog"
	"go.seanlatimer.dev/amhub/internal/config"
	"go.seanlatimer.dev/amhub/internal/logging"
	"go.uber.org/zap"
)

// session is what every command needs: config, catalog and a logger.
type session struct {
	cfg     config.Config
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func loadConfig(opts *Options) (config.Config, error) {
	if strings.TrimSpace(opts.ConfigPath) != "" {
		return config.LoadConfigFrom(opts.ConfigPath)
	}
	return config.LoadConfig()
}

// loadCatalog picks --catalog, then the configured path, then the built-in set.
func loadCatalog(opts *Options, cfg config.Config) (*catalog.Catalog, error) {
	path := strings.TrimSpace(opts.CatalogPath)
	if path == "" {
		path = strings.TrimSpace(cfg.CatalogPath)
	}
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

// openSession loads everything a command needs. logFile empty means stderr.
func openSession(opts *Options, logFile string) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
		File:    logFile,
	})
	if err != nil {
		return nil, err
	}

	c, err := loadCatalog(opts, cfg)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	logger.Debug("catalog loaded", zap.Int("presets", c.Len()))

	return &session{cfg: cfg, catalog: c, logger: logger}, nil
}

func (s *session) Close() {
	_ = s.logger.Sync()
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid preset id %q", arg)
	}
	return id, nil
}

func findPreset(c *catalog.Catalog, arg string) (catalog.Preset, error) {
	id, err := parseID(arg)
	if err != nil {
		return catalog.Preset{}, err
	}
	p, ok := c.Find(id)
	if !ok {
		return catalog.Preset{}, fmt.Errorf("%w: %d", catalog.ErrNotFound, id)
	}
	return p, nil
}
