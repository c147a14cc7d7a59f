package dockertest

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker"
)

// ErrUnsupportedShape is returned for methods with more than one non-error
// result. The hook protocol has a single answer per call.
var ErrUnsupportedShape = errors.New("unsupported operation shape")

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Operation is one method of an interface, as seen by reflection.
type Operation struct {
	Name   string
	Method reflect.Method

	// Params holds the parameter types in order. For variadic methods the
	// last entry is the slice type.
	Params   []reflect.Type
	Variadic bool

	// Result is the type of the single non-error result, nil for void
	// operations.
	Result reflect.Type

	// ReturnsErr reports whether the last result is an error.
	ReturnsErr bool
}

// Void reports whether the operation has no answer.
func (o Operation) Void() bool {
	return o.Result == nil
}

// CaseName formats the operation as "Name(Type1,Type2,...)" with
// unqualified type names, used as the subtest name.
func (o Operation) CaseName() string {
	names := make([]string, len(o.Params))
	for i, p := range o.Params {
		if o.Variadic && i == len(o.Params)-1 {
			names[i] = "..." + shortTypeName(p.Elem())
			continue
		}
		names[i] = shortTypeName(p)
	}
	return o.Name + "(" + strings.Join(names, ",") + ")"
}

// Operations lists every method of the interface type iface, sorted by
// CaseName.
func Operations(iface reflect.Type) ([]Operation, error) {
	if iface == nil || iface.Kind() != reflect.Interface {
		return nil, fmt.Errorf("dockertest: %v is not an interface type", iface)
	}

	ops := make([]Operation, 0, iface.NumMethod())
	for i := 0; i < iface.NumMethod(); i++ {
		op, err := operationFromMethod(iface.Method(i))
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	sort.Slice(ops, func(i, j int) bool {
		return ops[i].CaseName() < ops[j].CaseName()
	})
	return ops, nil
}

// ClientOperations lists the operations of docker.Client.
func ClientOperations() ([]Operation, error) {
	return Operations(reflect.TypeOf((*docker.Client)(nil)).Elem())
}

func operationFromMethod(m reflect.Method) (Operation, error) {
	ft := m.Type
	op := Operation{
		Name:     m.Name,
		Method:   m,
		Variadic: ft.IsVariadic(),
	}
	for i := 0; i < ft.NumIn(); i++ {
		op.Params = append(op.Params, ft.In(i))
	}

	var results []reflect.Type
	for i := 0; i < ft.NumOut(); i++ {
		results = append(results, ft.Out(i))
	}
	if n := len(results); n > 0 && results[n-1] == errorType {
		op.ReturnsErr = true
		results = results[:n-1]
	}

	switch len(results) {
	case 0:
	case 1:
		op.Result = results[0]
	default:
		return Operation{}, fmt.Errorf("%w: %s has %d non-error results", ErrUnsupportedShape, m.Name, len(results))
	}
	return op, nil
}

// shortTypeName renders t without package qualifiers, e.g. "*Duration"
// for *time.Duration.
func shortTypeName(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + shortTypeName(t.Elem())
	case reflect.Slice:
		return "[]" + shortTypeName(t.Elem())
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), shortTypeName(t.Elem()))
	case reflect.Map:
		return "map[" + shortTypeName(t.Key()) + "]" + shortTypeName(t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			return "<-chan " + shortTypeName(t.Elem())
		case reflect.SendDir:
			return "chan<- " + shortTypeName(t.Elem())
		default:
			return "chan " + shortTypeName(t.Elem())
		}
	default:
		return t.String()
	}
}
