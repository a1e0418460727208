// Package config loads the YAML settings that shape the delegate registry: how it logs
// and whether it exports metrics.
//
// Example:
//
//	log_level: debug
//	log_format: console
//	metrics:
//	  enabled: true
//	  namespace: immutable
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/immutable_ive_go/delegate"
	"github.com/on-the-ground/immutable_ive_go/metrics"
	"github.com/on-the-ground/immutable_ive_go/shared/logging"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// LogLevel is the minimum severity written by the registry logger.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// LogFormat selects the log encoder.
type LogFormat string

const (
	FormatConsole LogFormat = "console"
	FormatJSON    LogFormat = "json"
)

// Config holds the registry settings.
type Config struct {
	LogLevel  LogLevel  `yaml:"log_level"`
	LogFormat LogFormat `yaml:"log_format"`
	Metrics   Metrics   `yaml:"metrics"`
}

// Metrics controls the Prometheus observer.
type Metrics struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// DefaultConfig logs warnings to the console and leaves metrics off.
func DefaultConfig() Config {
	return Config{
		LogLevel:  LogWarn,
		LogFormat: FormatConsole,
		Metrics: Metrics{
			Namespace: "immutable",
		},
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes data over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs error
	if _, err := c.level(); err != nil {
		errs = multierr.Append(errs, err)
	}
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		errs = multierr.Append(errs, fmt.Errorf("%w: %s %q", ErrInvalid, KeyLogFormat, c.LogFormat))
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s is required when %s is set",
			ErrInvalid, KeyMetricsNamespace, KeyMetricsEnabled))
	}
	return errs
}

func (c Config) level() (zapcore.Level, error) {
	switch c.LogLevel {
	case LogDebug:
		return zap.DebugLevel, nil
	case LogInfo:
		return zap.InfoLevel, nil
	case LogWarn:
		return zap.WarnLevel, nil
	case LogError:
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("%w: %s %q", ErrInvalid, KeyLogLevel, c.LogLevel)
	}
}

// NewLogger builds the configured logger on stdout.
func (c Config) NewLogger() (*zap.Logger, error) {
	return c.NewLoggerTo(zapcore.Lock(os.Stdout))
}

// NewLoggerTo builds the configured logger on ws.
func (c Config) NewLoggerTo(ws zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}
	if c.LogFormat == FormatJSON {
		return logging.NewJSON(ws, level), nil
	}
	return logging.NewConsole(ws, level), nil
}

// NewRegistry builds a delegate registry wired with the configured logger and, when
// enabled, a metrics observer registered with reg.
func (c Config) NewRegistry(reg prometheus.Registerer) (*delegate.Registry, error) {
	logger, err := c.NewLogger()
	if err != nil {
		return nil, err
	}
	return c.NewRegistryWith(logger, reg)
}

// NewRegistryWith is NewRegistry with an explicit logger.
func (c Config) NewRegistryWith(logger *zap.Logger, reg prometheus.Registerer) (*delegate.Registry, error) {
	opts := []delegate.RegistryOption{delegate.WithLogger(logger)}
	if c.Metrics.Enabled {
		observer, err := metrics.NewObserver(c.Metrics.Namespace, reg)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		opts = append(opts, delegate.WithObserver(observer))
	}
	return delegate.NewRegistry(opts...), nil
}
