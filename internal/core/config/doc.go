// Package config provides configuration loading for RBDB.
//
// Package: config
// Title: RBDB Configuration Management
// Description: Loads configuration from TOML or YAML files (auto-detected by
//              extension) with default-value merging and environment variable
//              overrides. Values are resolved by dot-notation keys; the
//              environment wins over file data. The config file is optional —
//              the interactive core runs on built-in defaults without one.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation
package config
