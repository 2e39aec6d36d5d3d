// Package config resolves runtime settings from the environment.
//
// There is no configuration file. Every setting has a default and an
// environment variable, bound through kong struct tags.
package config

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/fileencoder/core/compress"
	"github.com/FocuswithJustin/fileencoder/core/pipeline"
	"github.com/FocuswithJustin/fileencoder/internal/logging"
)

// Config holds the settings that are not part of the command line grammar.
type Config struct {
	Compress    bool   `name:"compress" env:"FILEENCODER_COMPRESS" help:"Compress the base64 text and encode it again"`
	Algorithm   string `name:"algorithm" env:"FILEENCODER_ALGORITHM" enum:"gzip,xz" default:"gzip" help:"Compression algorithm (gzip, xz)"`
	TagFilename bool   `name:"tag-filename" env:"FILEENCODER_TAG_FILENAME" default:"true" negatable:"" help:"Prefix clipboard payloads with the original file name"`
	LogLevel    string `name:"log-level" env:"FILEENCODER_LOG_LEVEL" enum:"debug,info,warn,error" default:"warn" help:"Log level"`
	LogFormat   string `name:"log-format" env:"FILEENCODER_LOG_FORMAT" enum:"text,json" default:"text" help:"Log format"`
}

// Injectable for testing
var kongNew = kong.New

// Load resolves a Config from defaults and FILEENCODER_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	parser, err := kongNew(&cfg, kong.Name("fileencoder"))
	if err != nil {
		return nil, fmt.Errorf("failed to build config parser: %w", err)
	}
	if _, err := parser.Parse(nil); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if _, err := compress.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("invalid FILEENCODER_ALGORITHM: %w", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid FILEENCODER_LOG_LEVEL: %w", err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("invalid FILEENCODER_LOG_FORMAT: %w", err)
	}
	return nil
}

// PipelineOptions maps the config onto pipeline options.
func (c *Config) PipelineOptions() pipeline.Options {
	alg, _ := compress.ParseAlgorithm(c.Algorithm)
	return pipeline.Options{
		Compress:    c.Compress,
		Algorithm:   alg,
		TagFilename: c.TagFilename,
	}
}

// Logging returns the logger level and format.
func (c *Config) Logging() (logging.Level, logging.Format) {
	level, _ := logging.ParseLevel(c.LogLevel)
	format, _ := logging.ParseFormat(c.LogFormat)
	return level, format
}
