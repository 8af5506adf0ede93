// Package config loads the YAML files of the command line tool: the
// engine configuration and session files holding display names, aliases,
// manual assignments, and a roster.
//
// The engine packages never read files; everything here produces plain
// values for them.
package config
