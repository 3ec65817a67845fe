package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/gregLibert/hotp-verification/pkg/secrets"
)

// ErrUnsupportedFormat is returned for a configuration file that is neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

var validDigits = []int{6, 8}

// Config holds the settings of one invocation.
type Config struct {
	// Reader selects the PC/SC reader whose name contains it. Empty means the first reader.
	Reader     string
	Credential secrets.Credential
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Credential: secrets.DefaultCredential()}
}

type fileConfig struct {
	Reader     string `toml:"reader" yaml:"reader"`
	Credential string `toml:"credential" yaml:"credential"`
	Digits     int    `toml:"digits" yaml:"digits"`
	Algorithm  string `toml:"algorithm" yaml:"algorithm"`
	Touch      bool   `toml:"touch" yaml:"touch"`
}

// Load reads path on top of Default. An empty path yields Default.
// Keys absent from the file keep their default value.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	var (
		raw     fileConfig
		defined func(key string) bool
		err     error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		raw, defined, err = decodeTOML(path)
	case ".yaml", ".yml":
		raw, defined, err = decodeYAML(path)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	cfg, err := apply(Default(), raw, defined)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeTOML(path string) (fileConfig, func(string) bool, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fileConfig{}, nil, err
	}
	return raw, func(key string) bool { return meta.IsDefined(key) }, nil
}

func decodeYAML(path string) (fileConfig, func(string) bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fileConfig{}, nil, err
	}

	var raw fileConfig
	if len(doc.Content) == 0 {
		return raw, func(string) bool { return false }, nil
	}
	root := doc.Content[0]
	if err := root.Decode(&raw); err != nil {
		return fileConfig{}, nil, err
	}

	// Mapping nodes alternate key and value.
	keys := lo.FilterMap(root.Content, func(n *yaml.Node, i int) (string, bool) {
		return n.Value, i%2 == 0
	})
	return raw, func(key string) bool { return lo.Contains(keys, key) }, nil
}

func apply(cfg Config, raw fileConfig, defined func(string) bool) (Config, error) {
	if defined("reader") {
		cfg.Reader = strings.TrimSpace(raw.Reader)
	}

	if defined("credential") {
		cfg.Credential.ID = strings.TrimSpace(raw.Credential)
	}

	if defined("digits") {
		if !lo.Contains(validDigits, raw.Digits) {
			return Config{}, fmt.Errorf("digits must be one of %v, got %d", validDigits, raw.Digits)
		}
		cfg.Credential.Digits = raw.Digits
	}

	if defined("algorithm") {
		alg, err := secrets.ParseAlgorithm(raw.Algorithm)
		if err != nil {
			return Config{}, err
		}
		cfg.Credential.Algorithm = alg
	}

	if defined("touch") {
		cfg.Credential.TouchRequired = raw.Touch
	}

	if err := cfg.Credential.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
