// Package capcheck reports constants that cannot fit the capacity of the
// fixedstring.String they are stored in.
//
// The compiler rejects an array literal with more than Capacity+1 elements
// passed to From, Set or AssignArray. It accepts one that fills all
// Capacity+1 elements, and the last element, the terminator slot, is then
// dropped. Go strings carry no length in their type, so FromString and
// UnsafeAssign with an oversized constant compile fine and lose data or fail
// at run time. This analyzer reports both cases at vet time.
package capcheck

import (
	"go/ast"
	"go/constant"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const PkgPath = "github.com/rawbytedev/fixedstring"

var Analyzer = &analysis.Analyzer{
	Name:     "capcheck",
	Doc:      "report constant strings longer than the capacity of the fixedstring.String they initialize",
	URL:      "https://pkg.go.dev/github.com/rawbytedev/fixedstring/analysis/capcheck",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
		if !ok || fn.Pkg() == nil || fn.Pkg().Path() != PkgPath {
			return
		}
		recv := fn.Type().(*types.Signature).Recv()
		switch {
		case recv == nil && fn.Name() == "FromString" && len(call.Args) == 2:
			c, ok := capacity(pass.TypesInfo.TypeOf(call))
			if !ok {
				return
			}
			if size, ok := constLen(pass, call.Args[1]); ok && size > c {
				pass.Reportf(call.Args[1].Pos(), "constant of %d bytes is truncated to capacity %d", size, c)
			}
		case recv != nil && fn.Name() == "UnsafeAssign" && len(call.Args) == 1:
			sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
			if !ok {
				return
			}
			c, ok := capacity(pass.TypesInfo.TypeOf(sel.X))
			if !ok {
				return
			}
			if size, ok := constLen(pass, call.Args[0]); ok && size > c {
				pass.Reportf(call.Args[0].Pos(), "constant of %d bytes never fits capacity %d; assignment always fails", size, c)
			}
		case recv == nil && fn.Name() == "From" && len(call.Args) == 1,
			recv != nil && (fn.Name() == "Set" || fn.Name() == "AssignArray") && len(call.Args) == 1:
			checkTerminatorSlot(pass, call.Args[0])
		}
	})
	return nil, nil
}

// checkTerminatorSlot reports an array literal whose last element is a
// non-zero constant.
func checkTerminatorSlot(pass *analysis.Pass, arg ast.Expr) {
	lit, ok := ast.Unparen(arg).(*ast.CompositeLit)
	if !ok {
		return
	}
	arr, ok := pass.TypesInfo.TypeOf(lit).Underlying().(*types.Array)
	if !ok || arr.Len() < 1 {
		return
	}
	last := arr.Len() - 1
	idx := int64(-1)
	for _, elt := range lit.Elts {
		val := elt
		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			k, ok := constInt(pass, kv.Key)
			if !ok {
				return
			}
			idx, val = k, kv.Value
		} else {
			idx++
		}
		if idx != last {
			continue
		}
		if v, ok := constInt(pass, val); ok && v != 0 {
			pass.Reportf(val.Pos(), "array literal fills the terminator slot of capacity %d; element %d is dropped", last, last)
		}
		return
	}
}

func constInt(pass *analysis.Pass, e ast.Expr) (int64, bool) {
	tv, ok := pass.TypesInfo.Types[e]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.Int {
		return 0, false
	}
	return constant.Int64Val(tv.Value)
}

// capacity extracts the capacity from String[B] or *String[B].
func capacity(t types.Type) (int64, bool) {
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		t = p.Elem()
	}
	named, ok := types.Unalias(t).(*types.Named)
	if !ok || named.Obj().Name() != "String" || named.TypeArgs().Len() != 1 {
		return 0, false
	}
	arr, ok := named.TypeArgs().At(0).Underlying().(*types.Array)
	if !ok || arr.Len() < 1 {
		return 0, false
	}
	return arr.Len() - 1, true
}

func constLen(pass *analysis.Pass, e ast.Expr) (int64, bool) {
	tv, ok := pass.TypesInfo.Types[e]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return 0, false
	}
	return int64(len(constant.StringVal(tv.Value))), true
}
