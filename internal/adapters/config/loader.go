// Package config provides the configuration loader for semverver.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/rust-dev-tools/rust-semverver/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// PathEnv names the environment variable overriding the config file location.
const PathEnv = "SEMVERVER_CONFIG"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	// Path is the config file to read; empty means the file is located via
	// PathEnv or the user config directory.
	Path   string
	logger ports.Logger
}

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// NewLoader creates a loader using the default config file location.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{logger: logger}
}

// Load reads the settings. A missing config file yields the defaults.
func (l *FileConfigLoader) Load() (*domain.Settings, error) {
	path := l.resolvePath()
	if path == "" {
		return domain.DefaultSettings(), nil
	}

	settings, err := Load(path)
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(path); statErr == nil && l.logger != nil {
		l.logger.Info("loaded config from " + path)
	}
	return settings, nil
}

func (l *FileConfigLoader) resolvePath() string {
	if l.Path != "" {
		return l.Path
	}
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return domain.DefaultConfigPath()
}

// Load reads a configuration file from the given path and overlays it on the defaults.
// A file that does not exist is not an error.
func Load(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return nil, zerr.With(fmt.Errorf("%w %s: %w", domain.ErrConfigReadFailed, path, err), "path", path)
	}

	var file Configfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(fmt.Errorf("%w %s: %w", domain.ErrConfigParseFailed, path, err), "path", path)
	}

	return apply(domain.DefaultSettings(), &file, filepath.Dir(path))
}

// apply overlays the non-empty fields of file on settings. A relative
// cache_dir is taken relative to the config file's directory.
func apply(settings *domain.Settings, file *Configfile, baseDir string) (*domain.Settings, error) {
	setIf(&settings.RegistryAPI, file.Registry.API)
	setIf(&settings.RegistryIndex, file.Registry.Index)
	setIf(&settings.RegistryDownload, file.Registry.Download)
	setIf(&settings.Cargo, file.Cargo)
	setIf(&settings.Driver, file.Driver)
	setIf(&settings.PublicDriver, file.PublicDriver)

	if file.CacheDir != "" {
		dir := file.CacheDir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(baseDir, dir)
		}
		settings.CacheDir = filepath.Clean(dir)
	}

	if file.HTTPTimeout != "" {
		timeout, err := time.ParseDuration(file.HTTPTimeout)
		if err != nil || timeout <= 0 {
			parseErr := fmt.Errorf("%w: invalid http_timeout %q", domain.ErrConfigParseFailed, file.HTTPTimeout)
			return nil, zerr.With(zerr.With(parseErr, "field", "http_timeout"), "value", file.HTTPTimeout)
		}
		settings.HTTPTimeout = timeout
	}

	return settings, nil
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
