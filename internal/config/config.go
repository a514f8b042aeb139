// Package config holds the runtime configuration of goxor.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/goxor/internal/keystream"
)

// Default directories when none are given.
const (
	DefaultRawDir       = "raw"
	DefaultObfuscateDir = "encrypted"
	DefaultRevealDir    = "decrypted"
)

// Config holds all settings for one run.
type Config struct {
	// Key is the decimal key. Mutually exclusive with KeyFile.
	Key string `label:"--key" mapstructure:"key" validate:"keysource" yaml:"key"`
	// KeyFile is a path to a file containing the decimal key.
	KeyFile string `label:"--key-file" mapstructure:"key-file" yaml:"key-file"`

	// Direction is set by the command, not by flags.
	Direction keystream.Direction `mapstructure:"-" yaml:"direction"`

	Input  string `label:"--input"  mapstructure:"input"  validate:"required" yaml:"input"`
	Output string `label:"--output" mapstructure:"output" validate:"required" yaml:"output"`

	// Suffix is appended when obfuscating and stripped when revealing.
	Suffix    string `label:"--suffix"     mapstructure:"suffix"     validate:"required" yaml:"suffix"`
	ChunkSize int    `label:"--chunk-size" mapstructure:"chunk-size" validate:"min=1"    yaml:"chunk-size"`

	Include     []string `mapstructure:"include"      yaml:"include,omitempty"`
	Exclude     []string `mapstructure:"exclude"      yaml:"exclude,omitempty"`
	ExcludeFrom string   `mapstructure:"exclude-from" yaml:"exclude-from,omitempty"`

	Delete             bool `mapstructure:"delete"              yaml:"delete"`
	Dry                bool `mapstructure:"dry"                 yaml:"dry"`
	Quiet              bool `mapstructure:"quiet"               yaml:"quiet"`
	Stats              bool `mapstructure:"stats"               yaml:"stats"`
	Show               bool `mapstructure:"show"                yaml:"-"`
	PreserveTimestamps bool `mapstructure:"preserve-timestamps" yaml:"preserve-timestamps"`

	LogLevel  string `label:"--log-level"  mapstructure:"log-level"  validate:"oneof=debug info warn error" yaml:"log-level"`
	LogFormat string `label:"--log-format" mapstructure:"log-format" validate:"oneof=console json"          yaml:"log-format"`
}

// ApplyDefaults fills in the input and output directories the direction implies when unset.
func (c *Config) ApplyDefaults() {
	if c.Input == "" {
		c.Input = DefaultRawDir

		if c.Direction == keystream.Inverse {
			c.Input = DefaultObfuscateDir
		}
	}

	if c.Output == "" {
		c.Output = DefaultObfuscateDir

		if c.Direction == keystream.Inverse {
			c.Output = DefaultRevealDir
		}
	}

	if c.ChunkSize == 0 {
		c.ChunkSize = keystream.DefaultChunkSize
	}
}

// Validate validates the given configuration against its struct tags.
func (c *Config) Validate(config any) error {
	v := validator.NewValidator()

	if err := registerKeySource(v); err != nil {
		return err
	}

	if errs := v.Validate(config); len(errs) > 0 {
		return fmt.Errorf("validating configuration: %w", errors.Join(errs...))
	}

	return nil
}
