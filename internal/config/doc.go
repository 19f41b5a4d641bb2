// Package config provides smartpush configuration backed by viper.
//
// Values come from, in order of precedence: command-line flags bound to
// viper, SMARTPUSH_* environment variables, a smartpush.yaml config file,
// and the defaults in Default().
package config
