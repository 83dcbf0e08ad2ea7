package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithWorkers sets the number of analysis workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Analysis.Workers = n
	return b
}

// WithUnicode enables chess symbols in board output.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Output.Unicode = enabled
	return b
}

// WithShading controls the '#' marking of empty dark squares.
func (b *ConfigBuilder) WithShading(enabled bool) *ConfigBuilder {
	b.cfg.Output.Shading = enabled
	return b
}

// WithAddr sets the HTTP listen address.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithAllowOrigins sets the CORS origins of the HTTP API.
func (b *ConfigBuilder) WithAllowOrigins(origins string) *ConfigBuilder {
	b.cfg.Server.AllowOrigins = origins
	return b
}

// WithStorageDir persists games under dir.
func (b *ConfigBuilder) WithStorageDir(dir string) *ConfigBuilder {
	b.cfg.Storage.Dir = dir
	return b
}

// WithInMemoryStorage keeps games in an in-memory store.
func (b *ConfigBuilder) WithInMemoryStorage(enabled bool) *ConfigBuilder {
	b.cfg.Storage.InMemory = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
