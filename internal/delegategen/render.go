package delegategen

import (
	"fmt"
	"go/types"
	"io"
	"path"

	"github.com/dave/jennifer/jen"
)

const (
	header   = "Code generated by delegategen. DO NOT EDIT."
	mockPath = "github.com/stretchr/testify/mock"
)

// Output names the package and type generated code is written for.
type Output struct {
	// ImportPath of the package the file belongs to.
	ImportPath string
	// Package name; defaults to the last element of ImportPath.
	Package string
	// Type is the receiver type of the generated methods.
	Type string
}

func (o Output) packageName() string {
	if o.Package != "" {
		return o.Package
	}
	return path.Base(o.ImportPath)
}

// RenderWrapper writes forwarding methods for every method of iface on
// *out.Type. The receiver type must provide Delegate, InterceptVoid and the
// generic answer helper.
func RenderWrapper(w io.Writer, iface *Interface, out Output) error {
	f := jen.NewFilePathName(out.ImportPath, out.packageName())
	f.HeaderComment(header)

	for _, m := range iface.Methods {
		sig, err := signature(jen.Id("c").Op("*").Id(out.Type), m)
		if err != nil {
			return fmt.Errorf("%s: %w", m.Name, err)
		}
		f.Add(sig.Block(wrapperBody(m)...))
		f.Line()
	}
	return f.Render(w)
}

// RenderMock writes a testify mock type named out.Type implementing iface.
func RenderMock(w io.Writer, iface *Interface, out Output) error {
	f := jen.NewFilePathName(out.ImportPath, out.packageName())
	f.HeaderComment(header)

	f.Commentf("%s is a testify mock implementing %s.%s.", out.Type, iface.PkgName, iface.Name)
	f.Type().Id(out.Type).Struct(jen.Qual(mockPath, "Mock"))
	f.Line()
	f.Var().Id("_").Qual(iface.ImportPath, iface.Name).Op("=").Parens(jen.Op("*").Id(out.Type)).Parens(jen.Nil())
	f.Line()

	for _, m := range iface.Methods {
		sig, err := signature(jen.Id("m").Op("*").Id(out.Type), m)
		if err != nil {
			return fmt.Errorf("%s: %w", m.Name, err)
		}
		body, err := mockBody(m)
		if err != nil {
			return fmt.Errorf("%s: %w", m.Name, err)
		}
		f.Add(sig.Block(body...))
		f.Line()
	}
	return f.Render(w)
}

// signature renders "func (recv) Name(params) results" without a body.
func signature(recv *jen.Statement, m Method) (*jen.Statement, error) {
	params := make([]jen.Code, len(m.Params))
	for i, p := range m.Params {
		if m.Variadic && i == len(m.Params)-1 {
			elem, err := typeCode(variadicElem(p.Type))
			if err != nil {
				return nil, err
			}
			params[i] = jen.Id(p.Name).Op("...").Add(elem)
			continue
		}
		code, err := typeCode(p.Type)
		if err != nil {
			return nil, err
		}
		params[i] = jen.Id(p.Name).Add(code)
	}

	stmt := jen.Func().Params(recv).Id(m.Name).Params(params...)
	switch {
	case m.Result != nil && m.ReturnsErr:
		code, err := typeCode(m.Result.Type)
		if err != nil {
			return nil, err
		}
		stmt = stmt.Params(code, jen.Error())
	case m.Result != nil:
		code, err := typeCode(m.Result.Type)
		if err != nil {
			return nil, err
		}
		stmt = stmt.Add(code)
	case m.ReturnsErr:
		stmt = stmt.Error()
	}
	return stmt, nil
}

// callArgs renders the arguments forwarded to the delegate. spread expands
// a variadic last argument.
func callArgs(m Method, spread bool) []jen.Code {
	args := make([]jen.Code, len(m.Params))
	for i, p := range m.Params {
		if spread && m.Variadic && i == len(m.Params)-1 {
			args[i] = jen.Id(p.Name).Op("...")
			continue
		}
		args[i] = jen.Id(p.Name)
	}
	return args
}

func wrapperBody(m Method) []jen.Code {
	call := jen.Id("c").Dot("Delegate").Call().Dot(m.Name).Call(callArgs(m, true)...)

	switch {
	case m.Result != nil && m.ReturnsErr:
		return []jen.Code{
			jen.List(jen.Id("r"), jen.Err()).Op(":=").Add(call),
			jen.If(jen.Err().Op("!=").Nil()).Block(
				jen.Return(jen.Id("r"), jen.Err()),
			),
			jen.Return(jen.Id("answer").Call(jen.Id("c"), jen.Id("r")), jen.Nil()),
		}
	case m.Result != nil:
		return []jen.Code{
			jen.Return(jen.Id("answer").Call(jen.Id("c"), call)),
		}
	case m.ReturnsErr:
		return []jen.Code{
			jen.If(jen.Err().Op(":=").Add(call), jen.Err().Op("!=").Nil()).Block(
				jen.Return(jen.Err()),
			),
			jen.Id("c").Dot("InterceptVoid").Call(),
			jen.Return(jen.Nil()),
		}
	default:
		return []jen.Code{
			call,
			jen.Id("c").Dot("InterceptVoid").Call(),
		}
	}
}

func mockBody(m Method) ([]jen.Code, error) {
	called := jen.Id("m").Dot("Called").Call(callArgs(m, false)...)
	if m.Void() && !m.ReturnsErr {
		return []jen.Code{called}, nil
	}

	body := []jen.Code{jen.Id("ret").Op(":=").Add(called)}
	errIndex := 0
	if m.Result != nil {
		code, err := typeCode(m.Result.Type)
		if err != nil {
			return nil, err
		}
		body = append(body,
			jen.List(jen.Id("r0"), jen.Id("_")).Op(":=").Id("ret").Dot("Get").Call(jen.Lit(0)).Assert(code),
		)
		errIndex = 1
	}

	switch {
	case m.Result != nil && m.ReturnsErr:
		body = append(body, jen.Return(jen.Id("r0"), jen.Id("ret").Dot("Error").Call(jen.Lit(errIndex))))
	case m.Result != nil:
		body = append(body, jen.Return(jen.Id("r0")))
	default:
		body = append(body, jen.Return(jen.Id("ret").Dot("Error").Call(jen.Lit(errIndex))))
	}
	return body, nil
}

// variadicElem returns the element type of a variadic parameter's slice.
func variadicElem(t types.Type) types.Type {
	if s, ok := t.Underlying().(*types.Slice); ok {
		return s.Elem()
	}
	return t
}
