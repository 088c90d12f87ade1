// Package flagx contains helpers for layering command-line flags over
// values loaded from other sources.
package flagx

import "github.com/spf13/pflag"

// Override sets *dst to v when the flag name was given on the command line.
// Flags left at their defaults never clobber file or environment values.
func Override[T any](fs *pflag.FlagSet, name string, dst *T, v T) {
	if fs.Changed(name) {
		*dst = v
	}
}

// String returns the value of a string flag, or "" when it is not defined.
func String(fs *pflag.FlagSet, name string) string {
	if fs.Lookup(name) == nil {
		return ""
	}
	v, err := fs.GetString(name)
	if err != nil {
		return ""
	}
	return v
}
