// Package config provides configuration structures and utilities for
// reportchain. It defines the options collected from the command line and
// the YAML preset file that names reusable decorator chains.
package config
