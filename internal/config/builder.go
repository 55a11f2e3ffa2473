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

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithFields includes raw sub-fields in decoded output.
func (b *ConfigBuilder) WithFields(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowFields = enabled
	return b
}

// WithRejected controls whether rejected inputs are listed.
func (b *ConfigBuilder) WithRejected(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowRejected = enabled
	return b
}

// WithWorkers sets the number of census workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Census.Workers = n
	return b
}

// WithChunkSize sets the number of raw integers per census work item.
func (b *ConfigBuilder) WithChunkSize(size uint64) *ConfigBuilder {
	b.cfg.Census.ChunkSize = size
	return b
}

// WithRange sets the census range [start, end).
func (b *ConfigBuilder) WithRange(start, end uint64) *ConfigBuilder {
	b.cfg.Census.Start = start
	b.cfg.Census.End = end
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
