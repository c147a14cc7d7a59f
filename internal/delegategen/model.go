// Package delegategen generates forwarding wrappers and testify mocks for
// interface types.
//
// The interface is loaded with golang.org/x/tools/go/packages and walked
// with go/types; code is rendered with github.com/dave/jennifer. Every
// method must have at most one non-error result, optionally followed by an
// error.
package delegategen

import (
	"errors"
	"go/types"
	"strings"
)

var (
	// ErrNotInterface is returned when the named type is not an interface.
	ErrNotInterface = errors.New("not an interface type")

	// ErrUnsupportedShape is returned for methods with more than one
	// non-error result.
	ErrUnsupportedShape = errors.New("unsupported method shape")

	// ErrUnsupportedType is returned for parameter or result types that
	// cannot be rendered, such as func types.
	ErrUnsupportedType = errors.New("unsupported type")
)

// Interface is the method set of a loaded interface type.
type Interface struct {
	ImportPath string
	PkgName    string
	Name       string
	Methods    []Method
}

// Method is one interface method split into parameters, the single answer
// and the trailing error.
type Method struct {
	Name     string
	Params   []Param
	Variadic bool

	// Result is nil for methods without an answer.
	Result *Param

	ReturnsErr bool
}

// Param is a named parameter or result.
type Param struct {
	Name string
	Type types.Type
}

// Void reports whether the method has no answer.
func (m Method) Void() bool {
	return m.Result == nil
}

// Shape classifies the method for listings.
func (m Method) Shape() string {
	switch {
	case m.Void() && m.ReturnsErr:
		return "void+error"
	case m.Void():
		return "void"
	case m.ReturnsErr:
		return "answer+error"
	default:
		return "answer"
	}
}

// Signature formats the method with types qualified by package name, e.g.
// "ContainerPause(ctx context.Context, containerID string) error".
func (m Method) Signature() string {
	qf := func(p *types.Package) string { return p.Name() }

	var b strings.Builder
	b.WriteString(m.Name)
	b.WriteByte('(')
	for i, p := range m.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteByte(' ')
		if m.Variadic && i == len(m.Params)-1 {
			b.WriteString("...")
			b.WriteString(types.TypeString(variadicElem(p.Type), qf))
			continue
		}
		b.WriteString(types.TypeString(p.Type, qf))
	}
	b.WriteByte(')')

	switch {
	case m.Result != nil && m.ReturnsErr:
		b.WriteString(" (" + types.TypeString(m.Result.Type, qf) + ", error)")
	case m.Result != nil:
		b.WriteString(" " + types.TypeString(m.Result.Type, qf))
	case m.ReturnsErr:
		b.WriteString(" error")
	}
	return b.String()
}
