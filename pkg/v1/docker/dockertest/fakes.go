package dockertest

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker"
)

// ErrUnsupportedType is returned when no value of a type can be produced.
var ErrUnsupportedType = errors.New("no fake available for type")

// maxFakeDepth bounds the recursion through pointer, slice and map element
// types.
const maxFakeDepth = 8

// SynthesisError reports that a conformance case could not be set up
// because an argument or result value could not be produced.
type SynthesisError struct {
	Operation string
	// Param is the zero-based parameter index, or -1 for the result.
	Param int
	Type  reflect.Type
	Err   error
}

func (e *SynthesisError) Error() string {
	what := fmt.Sprintf("parameter %d", e.Param)
	if e.Param < 0 {
		what = "result"
	}
	return fmt.Sprintf("cannot synthesize %s of %s (%s): %v", what, e.Operation, e.Type, e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}

// FakeFactory produces distinguishable placeholder values by type.
//
// For a requested type it tries, in order:
//   - a registered enum, returning its middle value,
//   - a registered fake constructor,
//   - building a value from the type's kind. Structs get every exported
//     field built the same way, labelled "label.Field".
//
// Func types and interfaces other than any must be registered.
type FakeFactory struct {
	mu    sync.RWMutex
	enums map[reflect.Type]reflect.Value
	fakes map[reflect.Type]func(label string) reflect.Value
}

// NewFakeFactory returns an empty factory.
func NewFakeFactory() *FakeFactory {
	return &FakeFactory{
		enums: make(map[reflect.Type]reflect.Value),
		fakes: make(map[reflect.Type]func(label string) reflect.Value),
	}
}

// DefaultFactory returns a factory knowing the docker enums and the
// interfaces docker.Client uses.
func DefaultFactory() *FakeFactory {
	f := NewFakeFactory()

	RegisterEnum(f, docker.AllPruneTypes())
	RegisterEnum(f, docker.AllSignals())
	RegisterEnum(f, docker.AllWaitConditions())

	RegisterFake(f, func(label string) context.Context {
		return context.WithValue(context.Background(), labelKey{}, label)
	})
	RegisterFake(f, func(label string) io.Reader {
		return strings.NewReader(label)
	})
	RegisterFake(f, func(label string) io.ReadCloser {
		return NewReadCloser(label)
	})
	return f
}

// RegisterEnum registers the full value set of an enumerated type. Fakes
// of T use the middle value. Registering an empty set is a no-op.
func RegisterEnum[T any](f *FakeFactory, values []T) {
	if len(values) == 0 {
		return
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	v := reflect.ValueOf(&values[len(values)/2]).Elem()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.enums[t] = v
}

// RegisterFake registers a constructor for values of T. The constructor is
// called once per requested value.
func RegisterFake[T any](f *FakeFactory, fn func(label string) T) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.fakes[t] = func(label string) reflect.Value {
		v := fn(label)
		return reflect.ValueOf(&v).Elem()
	}
}

// Fake returns a value of type t identified by label.
func (f *FakeFactory) Fake(t reflect.Type, label string) (reflect.Value, error) {
	return f.fake(t, label, 0)
}

func (f *FakeFactory) fake(t reflect.Type, label string, depth int) (reflect.Value, error) {
	if depth > maxFakeDepth {
		return reflect.Value{}, fmt.Errorf("%w: %s nests too deeply", ErrUnsupportedType, t)
	}

	f.mu.RLock()
	enum, isEnum := f.enums[t]
	ctor, isFake := f.fakes[t]
	f.mu.RUnlock()

	switch {
	case isEnum:
		return enum, nil
	case isFake:
		v := ctor(label)
		if v.Kind() == reflect.Interface && v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: fake for %s returned nil", ErrUnsupportedType, t)
		}
		return v, nil
	}
	return f.construct(t, label, depth)
}

func (f *FakeFactory) construct(t reflect.Type, label string, depth int) (reflect.Value, error) {
	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.String:
		v.SetString(label)
	case reflect.Bool:
		v.SetBool(true)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(labelNumber(label)))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v.SetUint(uint64(labelNumber(label)))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(float64(labelNumber(label)) + 0.5)
	case reflect.Complex64, reflect.Complex128:
		v.SetComplex(complex(float64(labelNumber(label)), 1))
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			field := v.Field(i)
			if !field.CanSet() {
				continue
			}
			fv, err := f.fake(field.Type(), label+"."+t.Field(i).Name, depth+1)
			if err != nil {
				// Fields without a fake stay zero.
				continue
			}
			field.Set(fv)
		}
	case reflect.Pointer:
		elem, err := f.fake(t.Elem(), label, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(elem)
		return p, nil
	case reflect.Slice:
		elem, err := f.fake(t.Elem(), label, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		s := reflect.MakeSlice(t, 1, 1)
		s.Index(0).Set(elem)
		return s, nil
	case reflect.Array:
		for i := 0; i < t.Len(); i++ {
			elem, err := f.fake(t.Elem(), label, depth+1)
			if err != nil {
				return reflect.Value{}, err
			}
			v.Index(i).Set(elem)
		}
	case reflect.Map:
		key, err := f.fake(t.Key(), label, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		elem, err := f.fake(t.Elem(), label, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		m := reflect.MakeMapWithSize(t, 1)
		m.SetMapIndex(key, elem)
		return m, nil
	case reflect.Chan:
		ch := reflect.MakeChan(reflect.ChanOf(reflect.BothDir, t.Elem()), 0)
		return ch.Convert(t), nil
	case reflect.Interface:
		if t.NumMethod() != 0 {
			return reflect.Value{}, fmt.Errorf("%w: interface %s has no registered fake", ErrUnsupportedType, t)
		}
		v.Set(reflect.ValueOf(label))
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
	return v, nil
}

// labelNumber maps a label to a small positive number, so numeric fakes
// for different parameters usually differ and fit every integer kind.
func labelNumber(label string) uint8 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(label))
	return uint8(h.Sum32()%100) + 1
}

type labelKey struct{}

// Label returns the label a fake context was created with.
func Label(ctx context.Context) string {
	s, _ := ctx.Value(labelKey{}).(string)
	return s
}

// ReadCloser is an in-memory io.ReadCloser that remembers whether it was
// closed.
type ReadCloser struct {
	*strings.Reader
	Label  string
	closed atomic.Bool
}

// NewReadCloser returns a ReadCloser yielding label.
func NewReadCloser(label string) *ReadCloser {
	return &ReadCloser{Reader: strings.NewReader(label), Label: label}
}

// Close marks the reader closed. It never fails.
func (r *ReadCloser) Close() error {
	r.closed.Store(true)
	return nil
}

// Closed reports whether Close was called.
func (r *ReadCloser) Closed() bool {
	return r.closed.Load()
}
