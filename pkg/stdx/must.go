// Package stdx carries tiny stdlib-adjacent helpers shared across the module.
package stdx

// Must0 panics if err is not nil. Reserve it for startup paths where an
// error means the process cannot meaningfully continue.
func Must0(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns v, panicking if err is not nil. It collapses the
// value-and-error return of a call that cannot fail given valid inputs.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Must2 returns t and v, panicking if err is not nil.
func Must2[T, V any](t T, v V, err error) (T, V) {
	if err != nil {
		panic(err)
	}
	return t, v
}
