// Package registry provides a small concurrency-safe keyed registry used to
// memoize shared handles for the lifetime of the process.
package registry

import "github.com/alphadose/haxmap"

// Registry is a keyed collection safe for concurrent use. GetOrAdd is the
// lookup-or-insert primitive the client cache is built on: the value function
// runs only when the key is absent, and every caller observes the entry that
// won the insert race.
type Registry[T any] interface {
	Get(name string) (T, bool)
	GetOrAdd(name string, value func() T) (T, bool)
	Del(name string)
}

type registry[T any] struct {
	values *haxmap.Map[string, T]
}

// New creates an empty registry.
func New[T any]() Registry[T] {
	return &registry[T]{
		values: haxmap.New[string, T](),
	}
}

func (r *registry[T]) Get(name string) (T, bool) {
	return r.values.Get(name)
}

func (r *registry[T]) GetOrAdd(name string, valueFn func() T) (T, bool) {
	return r.values.GetOrCompute(name, valueFn)
}

func (r *registry[T]) Del(name string) {
	r.values.Del(name)
}
