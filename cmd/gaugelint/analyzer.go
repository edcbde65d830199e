// Implements a static analysis tool for the exporter that checks for:
// 1. Gauge descriptors (GaugeDesc, prometheus.GaugeOpts) whose Name is not snake_case or whose Help is empty
// 2. Usage of built-in panic() function anywhere in the code
// 3. Usage of log.Fatal()/log.Fatalf()/log.Fatalln() or os.Exit() outside of main function in main package
package main

import (
	"go/ast"
	"go/constant"
	"go/types"
	"regexp"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer is the main analyzer for gauge descriptors and process exits
var Analyzer = &analysis.Analyzer{
	Name: "gaugelint",
	Doc:  "reports malformed gauge descriptors and usage of panic and log.Fatal/os.Exit outside of main function in main package",
	Run:  run,
	Requires: []*analysis.Analyzer{
		inspect.Analyzer,
	},
}

var snakeCase = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// gaugeTypes are the descriptor struct types whose literals are checked
var gaugeTypes = map[string]bool{
	"GaugeDesc": true,
	"GaugeOpts": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
		(*ast.FuncDecl)(nil),
		(*ast.CompositeLit)(nil),
	}

	// whether we are inside the main function of main package
	inMain := false

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		switch node := n.(type) {
		case *ast.FuncDecl:
			inMain = pass.Pkg.Name() == "main" && node.Recv == nil && node.Name.Name == "main"
		case *ast.CallExpr:
			checkCall(pass, node, inMain)
		case *ast.CompositeLit:
			if isGaugeDescriptor(pass.TypesInfo.TypeOf(node)) {
				checkGaugeDescriptor(pass, node)
			}
		}
	})

	return nil, nil
}

func checkCall(pass *analysis.Pass, node *ast.CallExpr, inMain bool) {
	if ident, ok := node.Fun.(*ast.Ident); ok && ident.Name == "panic" {
		if _, builtin := pass.TypesInfo.Uses[ident].(*types.Builtin); builtin {
			pass.Reportf(ident.Pos(), "found usage of panic")
		}
		return
	}
	if inMain {
		return
	}
	sel, ok := node.Fun.(*ast.SelectorExpr)
	if !ok {
		return
	}
	ident, ok := sel.X.(*ast.Ident)
	if !ok {
		return
	}
	pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
	if !ok {
		return
	}
	switch pkgName.Imported().Path() + "." + sel.Sel.Name {
	case "log.Fatal", "log.Fatalf", "log.Fatalln", "os.Exit":
		pass.Reportf(node.Pos(), "found usage of %s outside of main function", ident.Name+"."+sel.Sel.Name)
	}
}

func isGaugeDescriptor(t types.Type) bool {
	if t == nil {
		return false
	}
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	return gaugeTypes[named.Obj().Name()]
}

func checkGaugeDescriptor(pass *analysis.Pass, lit *ast.CompositeLit) {
	var name, help ast.Expr
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		key, ok := kv.Key.(*ast.Ident)
		if !ok {
			continue
		}
		switch key.Name {
		case "Name":
			name = kv.Value
		case "Help":
			help = kv.Value
		}
	}

	if name == nil {
		pass.Reportf(lit.Pos(), "gauge descriptor has no name")
		return
	}
	nameValue, known := stringConstant(pass, name)
	if known && !snakeCase.MatchString(nameValue) {
		pass.Reportf(name.Pos(), "gauge name %q is not snake_case", nameValue)
	}

	if help == nil {
		pass.Reportf(lit.Pos(), "gauge %s has no help text", describe(nameValue, known))
		return
	}
	if helpValue, ok := stringConstant(pass, help); ok && helpValue == "" {
		pass.Reportf(help.Pos(), "gauge %s has no help text", describe(nameValue, known))
	}
}

// stringConstant resolves literals and named string constants
func stringConstant(pass *analysis.Pass, expr ast.Expr) (string, bool) {
	tv, ok := pass.TypesInfo.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}
	return constant.StringVal(tv.Value), true
}

func describe(name string, known bool) string {
	if !known {
		return "descriptor"
	}
	return `"` + name + `"`
}
