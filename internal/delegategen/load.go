package delegategen

import (
	"context"
	"fmt"
	"go/types"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/tools/go/packages"
)

// reservedNames are used by generated method bodies and cannot be parameter
// names.
var reservedNames = map[string]bool{
	"":    true,
	"_":   true,
	"c":   true,
	"err": true,
	"m":   true,
	"r":   true,
	"r0":  true,
	"ret": true,
}

// Load loads the package matching pattern, resolved relative to dir, and
// returns the interface called name.
func Load(ctx context.Context, dir, pattern, name string) (iface *Interface, err error) {
	ctx, span := startSpan(ctx, "delegategen.Load",
		attribute.String("delegategen.pattern", pattern),
		attribute.String("delegategen.interface", name),
	)
	defer func() { endSpan(span, err) }()

	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedTypes,
		Dir:     dir,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", pattern, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %s matched %d packages, want 1", pattern, len(pkgs))
	}
	if len(pkgs[0].Errors) > 0 {
		return nil, fmt.Errorf("package errors: %v", pkgs[0].Errors)
	}

	pkg := pkgs[0]
	if pkg.Types == nil {
		return nil, fmt.Errorf("type information not available for %s", pattern)
	}
	iface, err = FromPackage(pkg.Types, name)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("delegategen.methods", len(iface.Methods)))
	return iface, nil
}

// FromPackage extracts the interface called name from a type-checked
// package. Methods are sorted by name, embedded interfaces included.
func FromPackage(pkg *types.Package, name string) (*Interface, error) {
	obj := pkg.Scope().Lookup(name)
	if obj == nil {
		return nil, fmt.Errorf("%s.%s not found", pkg.Path(), name)
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", pkg.Path(), name, ErrNotInterface)
	}
	iface, ok := tn.Type().Underlying().(*types.Interface)
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", pkg.Path(), name, ErrNotInterface)
	}

	model := &Interface{
		ImportPath: pkg.Path(),
		PkgName:    pkg.Name(),
		Name:       name,
	}
	for i := 0; i < iface.NumMethods(); i++ {
		fn := iface.Method(i)
		m, err := methodFromSignature(fn.Name(), fn.Type().(*types.Signature))
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, fn.Name(), err)
		}
		model.Methods = append(model.Methods, m)
	}
	return model, nil
}

func methodFromSignature(name string, sig *types.Signature) (Method, error) {
	m := Method{
		Name:     name,
		Variadic: sig.Variadic(),
	}

	params := sig.Params()
	used := make(map[string]bool, params.Len())
	for i := 0; i < params.Len(); i++ {
		p := params.At(i)
		if err := checkType(p.Type()); err != nil {
			return Method{}, fmt.Errorf("parameter %d: %w", i, err)
		}
		pn := p.Name()
		if reservedNames[pn] || used[pn] {
			pn = fmt.Sprintf("arg%d", i)
		}
		used[pn] = true
		m.Params = append(m.Params, Param{Name: pn, Type: p.Type()})
	}

	results := sig.Results()
	n := results.Len()
	if n > 0 && isErrorType(results.At(n-1).Type()) {
		m.ReturnsErr = true
		n--
	}
	switch n {
	case 0:
	case 1:
		r := results.At(0)
		if err := checkType(r.Type()); err != nil {
			return Method{}, fmt.Errorf("result: %w", err)
		}
		m.Result = &Param{Name: r.Name(), Type: r.Type()}
	default:
		return Method{}, fmt.Errorf("%w: %d non-error results", ErrUnsupportedShape, n)
	}
	return m, nil
}

func isErrorType(t types.Type) bool {
	return types.Identical(t, types.Universe.Lookup("error").Type())
}

// checkType reports types typeCode cannot render.
func checkType(t types.Type) error {
	_, err := typeCode(t)
	return err
}
