package config

// Configfile represents the structure of the sassbundle.yaml configuration file.
type Configfile struct {
	Version     string      `yaml:"version"`
	Cache       CacheDTO    `yaml:"cache"`
	Compiler    CompilerDTO `yaml:"compiler"`
	Digest      string      `yaml:"digest"`
	Debug       DebugDTO    `yaml:"debug"`
	Export      ExportDTO   `yaml:"export"`
	Log         LogDTO      `yaml:"log"`
	Concurrency int         `yaml:"concurrency"`
}

// CacheDTO configures the durable compilation cache.
type CacheDTO struct {
	Dir      string `yaml:"dir"`
	Disabled bool   `yaml:"disabled"`
}

// CompilerDTO configures the external compiler.
type CompilerDTO struct {
	Path string   `yaml:"path"`
	Args []string `yaml:"args"`
}

// DebugDTO configures debug output.
type DebugDTO struct {
	DumpPrefix string `yaml:"dump_prefix"`
	Annotate   bool   `yaml:"annotate"`
}

// ExportDTO configures the custom-property export block.
type ExportDTO struct {
	CustomProperties *bool  `yaml:"custom_properties"`
	RecoveryFile     string `yaml:"recovery_file"`
}

// LogDTO configures log output.
type LogDTO struct {
	JSON bool `yaml:"json"`
}
