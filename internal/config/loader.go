package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// ErrNoConfigFiles is returned when the settings directory holds no
// configuration file.
var ErrNoConfigFiles = errors.New("no configuration files found")

//go:embed defaults.yaml
var defaultSettings []byte

// DefaultDirectory is the settings directory relative to the working
// directory.
const DefaultDirectory = "config"

// Loader collects configuration files and decodes them into a Config.
//
//	cfg, err := config.NewLoader(dir, env).DisableOverwrites().Deserialize()
type Loader struct {
	directory   SettingsDirectory
	environment Environment
	reader      DirectoryReader
	filter      FileFilter
	overwrites  bool
	files       []string
}

// Option customizes a Loader.
type Option func(*Loader)

// WithDirectoryReader replaces the filesystem reader.
func WithDirectoryReader(r DirectoryReader) Option {
	return func(l *Loader) { l.reader = r }
}

// WithFileFilter replaces the ".config.yaml" filter.
func WithFileFilter(f FileFilter) Option {
	return func(l *Loader) { l.filter = f }
}

// NewLoader returns a loader with environment overrides enabled.
func NewLoader(dir SettingsDirectory, env Environment, opts ...Option) *Loader {
	l := &Loader{
		directory:   dir,
		environment: env,
		reader:      OSDirectoryReader{},
		filter:      YAMLFileFilter{},
		overwrites:  true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Directory returns the current settings directory.
func (l *Loader) Directory() SettingsDirectory { return l.directory }

// ChangeDirectory points the loader at dir and forgets collected files.
func (l *Loader) ChangeDirectory(dir SettingsDirectory) *Loader {
	l.directory = dir
	l.files = nil
	return l
}

// DisableOverwrites skips the per-environment directory.
func (l *Loader) DisableOverwrites() *Loader {
	l.overwrites = false
	return l
}

// LoadFiles collects the base files, then the files of the environment
// directory when overwrites are enabled. Each group is sorted by path.
func (l *Loader) LoadFiles() error {
	base, err := l.configFiles(l.directory.Path())
	if err != nil {
		return err
	}
	if len(base) == 0 {
		return fmt.Errorf("%w in %s", ErrNoConfigFiles, l.directory)
	}
	files := base

	if l.overwrites {
		overrides, err := l.configFiles(l.directory.Join(l.environment.String()))
		if err != nil {
			return err
		}
		files = append(files, overrides...)
	}

	l.files = files
	return nil
}

func (l *Loader) configFiles(dir string) ([]string, error) {
	entries, err := l.reader.ReadDirectory(dir)
	if err != nil {
		return nil, fmt.Errorf("read settings directory %s: %w", dir, err)
	}
	files := filterConfigFiles(l.filter, entries)
	sort.Strings(files)
	return files, nil
}

// Files returns the collected files in merge order.
func (l *Loader) Files() []string {
	out := make([]string, len(l.files))
	copy(out, l.files)
	return out
}

// Deserialize merges the built-in defaults and the collected files, later
// files winning key by key, applies the environment variables that are set,
// and validates the result. LoadFiles is called first when no files have
// been collected.
func (l *Loader) Deserialize() (*Config, error) {
	if l.files == nil {
		if err := l.LoadFiles(); err != nil {
			return nil, err
		}
	}

	merged := map[string]any{}
	if err := yaml.Unmarshal(defaultSettings, &merged); err != nil {
		return nil, fmt.Errorf("parse default settings: %w", err)
	}
	for _, path := range l.files {
		doc, err := readYAML(path)
		if err != nil {
			return nil, err
		}
		mergeMaps(merged, doc)
	}

	raw, err := yaml.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encode merged settings: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to deserialize the configuration: %w", err)
	}

	// No env-default tags: ReadEnv only touches fields whose variable is set.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment overrides: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readYAML(path string) (map[string]any, error) {
	// #nosec G304 -- path comes from the settings directory listing
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc := map[string]any{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// mergeMaps copies src into dst. Nested maps merge recursively; any other
// value in src replaces the one in dst.
func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeMaps(dstMap, srcMap)
			continue
		}
		dst[k] = v
	}
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

func validate(cfg *Config) error {
	if err := configValidator.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			errs := make([]error, 0, len(verrs))
			for _, fe := range verrs {
				errs = append(errs, fmt.Errorf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Load reads the settings from dir (DefaultDirectory when empty) for the
// environment named by APP__ENVIRONMENT.
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = DefaultDirectory
	}
	env, err := EnvironmentFromEnv()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	sd, err := NewSettingsDirectory(dir)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := NewLoader(sd, env).Deserialize()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
