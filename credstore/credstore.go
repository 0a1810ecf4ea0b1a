// Package credstore retrieves API credentials from the pass password store.
// The key lives outside the process and its configuration; all this package
// does is ask for it once at startup.
package credstore

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Error reports a failed credential lookup along with the store path that
// was asked for.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("credential lookup for %q failed: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Lookup runs `pass show <path>` and returns the trimmed secret. Validity of
// the secret itself is not checked here; an unusable key surfaces later as a
// provider failure.
func Lookup(ctx context.Context, path string) (string, error) {
	slog.Debug("retrieving api key", slog.String("path", path))

	out, err := exec.CommandContext(ctx, "pass", "show", path).Output()
	if err != nil {
		return "", &Error{Path: path, Err: err}
	}

	return strings.TrimSpace(string(out)), nil
}
