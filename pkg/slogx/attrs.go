// Package slogx provides slog attribute constructors used across the module
// so log fields stay consistently named.
package slogx

import (
	"fmt"
	"log/slog"
)

// Error returns an attribute with key "error" carrying the error's message.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// Stringer returns a string attribute for any fmt.Stringer value.
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}
