// Package config provides configuration structures and utilities for confreport.
// It defines the options that select which configurations are reported and
// how the report is written, and loads the optional .confreport file that
// holds per-project defaults.
package config
