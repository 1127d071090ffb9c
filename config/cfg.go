package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"stylec/style"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	GenerateConfig struct {
		ClassFormat string `yaml:"class_format" validate:"required,oneof=hash sequential"`
		Strict      bool   `yaml:"strict"`
		CacheSize   int    `yaml:"cache_size" validate:"gte=0"`
		GoPackage   string `yaml:"go_package,omitempty" validate:"omitempty,alphanum"`
		Template    string `yaml:"template,omitempty" sanitize:"path_clean" validate:"omitempty,filepath"`
	}

	Config struct {
		Version  int            `yaml:"version" validate:"eq=1"`
		Generate GenerateConfig `yaml:"generate"`
		Logging  LoggingConfig  `yaml:"logging"`
	}
)

// Namer returns the class-name strategy selected by the configuration.
// "hash" is stable across runs; "sequential" is collision-free within a run.
func (c GenerateConfig) Namer() style.Namer {
	if c.ClassFormat == "sequential" {
		return style.NewSeqNamer()
	}
	return style.HashNamer{}
}

// CompileOptions translates the configuration into compiler options.
func (c GenerateConfig) CompileOptions() []style.Option {
	opts := []style.Option{style.WithNamer(c.Namer())}
	if c.Strict {
		opts = append(opts, style.WithStrict())
	}
	return opts
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of the expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a
// byte slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

// Dump serializes active configuration back to YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
