// Package fixture declares interfaces exercising every method shape the
// generator handles, and a few it rejects.
package fixture

import (
	"context"
	"io"
)

type Closer interface {
	Close() error
}

type Shapes interface {
	Closer

	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, body io.Reader) error
	Keys() []string
	Reset()
	Join(sep string, parts ...string) (string, error)
	Rename(c string, r string) error
	Unnamed(string, int) error
	Lookup(ctx context.Context, keys map[string][]byte) (*Entry, error)
	Watch(ctx context.Context) (<-chan Entry, error)
	Value(key any) any
}

type Entry struct {
	Key   string
	Value []byte
}

type TooMany interface {
	Pair() (int, string, error)
}

type WithFunc interface {
	Each(fn func(string)) error
}

type NotAnInterface struct{}
