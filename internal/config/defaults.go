package config

import "github.com/Sumatoshi-tech/distpatch/pkg/patch"

// Default values applied before file and environment overrides.
const (
	// DefaultRoot is the conventional bundler output directory.
	DefaultRoot = patch.DefaultRoot
	// DefaultInclude matches JavaScript files at any depth.
	DefaultInclude = patch.DefaultInclude
	// DefaultDryRun controls whether files are written.
	DefaultDryRun = false
	// DefaultShowDiff controls per-file diff previews.
	DefaultShowDiff = false
	// DefaultQuiet controls progress output.
	DefaultQuiet = false
	// DefaultRulesFile is the extra rule file path; empty means builtin only.
	DefaultRulesFile = ""
)
