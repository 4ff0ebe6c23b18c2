// Package config defines the configuration record produced by the command
// line parser, the run modes it selects, and the preset files that supply
// defaults for options the command line left unset.
//
// The `config.Options` record is the single source of truth for the `app`
// and `engine` packages. Preset loaders for TOML and YAML live here; the HCL
// loader is provided by the separate `hcl` package.
package config
