// Package config provides configuration for the chess rules engine commands.
package config

import (
	"fmt"
	"io"
	"os"
)

// Config holds all program configuration.
// Sub-configs group the settings of each component.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	Analysis *AnalysisConfig
	Output   *OutputConfig
	Server   *ServerConfig
	Storage  *StorageConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Analysis:   NewAnalysisConfig(),
		Output:     NewOutputConfig(),
		Server:     NewServerConfig(),
		Storage:    NewStorageConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...any) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if err := c.Analysis.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.Storage.Validate()
}
