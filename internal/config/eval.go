package config

import (
	"bazil.org/intmath/intmath"
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

// evalCtx is available to expressions in config files, so sizes can
// be written as `64 * KiB` or `pow2(16)`.
var evalCtx = &hcl.EvalContext{
	Variables: map[string]cty.Value{
		"KiB": cty.NumberIntVal(1 << 10),
		"MiB": cty.NumberIntVal(1 << 20),
		"GiB": cty.NumberIntVal(1 << 30),
	},
	Functions: map[string]function.Function{
		"pow2":    pow2Func,
		"log2":    int64Func(intmath.Log2[int64]),
		"log2_ri": int64Func(intmath.Log2RoundUp[int64]),
		"clz":     int64Func(intmath.CountLeadingZeros[int64]),
	},
}

func int64Arg(args []cty.Value) (int64, error) {
	var n int64
	if err := gocty.FromCtyValue(args[0], &n); err != nil {
		return 0, function.NewArgError(0, err)
	}
	return n, nil
}

func int64Func(fn func(int64) int64) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "n", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			n, err := int64Arg(args)
			if err != nil {
				return cty.UnknownVal(cty.Number), err
			}
			return cty.NumberIntVal(fn(n)), nil
		},
	})
}

var pow2Func = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "exponent", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		n, err := int64Arg(args)
		if err != nil {
			return cty.UnknownVal(cty.Number), err
		}
		if n < 0 || n > 62 {
			return cty.UnknownVal(cty.Number), function.NewArgErrorf(0, "exponent must be between 0 and 62, got %d", n)
		}
		return cty.NumberIntVal(1 << n), nil
	},
})
