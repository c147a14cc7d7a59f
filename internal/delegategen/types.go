package delegategen

import (
	"fmt"
	"go/types"

	"github.com/dave/jennifer/jen"
)

// typeCode renders t as a jennifer type expression with imports qualified
// by path.
func typeCode(t types.Type) (*jen.Statement, error) {
	switch t := t.(type) {
	case *types.Alias:
		return typeCode(types.Unalias(t))

	case *types.Basic:
		if t.Kind() == types.UnsafePointer || t.Info()&types.IsUntyped != 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
		}
		return jen.Id(t.Name()), nil

	case *types.Named:
		obj := t.Obj()
		var code *jen.Statement
		if obj.Pkg() == nil {
			code = jen.Id(obj.Name())
		} else {
			code = jen.Qual(obj.Pkg().Path(), obj.Name())
		}
		if args := t.TypeArgs(); args != nil && args.Len() > 0 {
			list := make([]jen.Code, args.Len())
			for i := 0; i < args.Len(); i++ {
				arg, err := typeCode(args.At(i))
				if err != nil {
					return nil, err
				}
				list[i] = arg
			}
			code = code.Types(list...)
		}
		return code, nil

	case *types.Pointer:
		elem, err := typeCode(t.Elem())
		if err != nil {
			return nil, err
		}
		return jen.Op("*").Add(elem), nil

	case *types.Slice:
		elem, err := typeCode(t.Elem())
		if err != nil {
			return nil, err
		}
		return jen.Index().Add(elem), nil

	case *types.Array:
		elem, err := typeCode(t.Elem())
		if err != nil {
			return nil, err
		}
		return jen.Index(jen.Lit(int(t.Len()))).Add(elem), nil

	case *types.Map:
		key, err := typeCode(t.Key())
		if err != nil {
			return nil, err
		}
		elem, err := typeCode(t.Elem())
		if err != nil {
			return nil, err
		}
		return jen.Map(key).Add(elem), nil

	case *types.Chan:
		elem, err := typeCode(t.Elem())
		if err != nil {
			return nil, err
		}
		switch t.Dir() {
		case types.SendOnly:
			return jen.Chan().Op("<-").Add(elem), nil
		case types.RecvOnly:
			return jen.Op("<-").Chan().Add(elem), nil
		default:
			return jen.Chan().Add(elem), nil
		}

	case *types.Interface:
		if t.Empty() {
			return jen.Interface(), nil
		}
		return nil, fmt.Errorf("%w: anonymous interface %s", ErrUnsupportedType, t)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}
