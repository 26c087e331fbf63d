package resolver

import (
	"testing"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/diagnostics"
	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/parser"
	"github.com/stretchr/testify/require"
)

func resolveSource(t *testing.T, source string) (*Resolver, *diagnostics.Sink) {
	t.Helper()
	errs := diagnostics.NewSink()
	toks := lexer.New(source, errs).ScanTokens()
	stmts := parser.New(toks, errs).Parse()
	require.False(t, errs.HadError(), "unexpected parse error: %v", errs.Reports())

	r := New(errs)
	r.Resolve(stmts)
	return r, errs
}

func TestReadLocalInOwnInitializerIsAnError(t *testing.T) {
	_, errs := resolveSource(t, `{ var a = a; }`)
	require.True(t, errs.HadError())
	require.Contains(t, errs.Reports()[0].Message, "Cannot read local variable in its own initializer.")
}

func TestReturnAtTopLevelIsAnError(t *testing.T) {
	_, errs := resolveSource(t, `return 1;`)
	require.True(t, errs.HadError())
	require.Contains(t, errs.Reports()[0].Message, "Cannot return from top-level code.")
}

func TestReturnValueFromInitializerIsAnError(t *testing.T) {
	_, errs := resolveSource(t, `class A { init() { return 1; } }`)
	require.True(t, errs.HadError())
	require.Contains(t, errs.Reports()[0].Message, "Cannot return a value from an initializer.")
}

func TestBareReturnFromInitializerIsFine(t *testing.T) {
	_, errs := resolveSource(t, `class A { init() { return; } }`)
	require.False(t, errs.HadError())
}

func TestSelfInheritanceIsAnError(t *testing.T) {
	_, errs := resolveSource(t, `class X < X {}`)
	require.True(t, errs.HadError())
	require.Contains(t, errs.Reports()[0].Message, "A class cannot inherit from itself.")
}

func TestDuplicateLocalDeclarationIsAnError(t *testing.T) {
	_, errs := resolveSource(t, `{ var a = 1; var a = 2; }`)
	require.True(t, errs.HadError())
	require.Contains(t, errs.Reports()[0].Message, "Variable with this name already declared in this scope.")
}

func TestGlobalRedeclarationIsNotAnError(t *testing.T) {
	_, errs := resolveSource(t, `var a = 1; var a = 2;`)
	require.False(t, errs.HadError())
}

func TestThisOutsideClassIsAnError(t *testing.T) {
	_, errs := resolveSource(t, `print this;`)
	require.True(t, errs.HadError())
	require.Contains(t, errs.Reports()[0].Message, "Cannot use 'this' outside of a class.")
}

func TestSuperOutsideClassIsAnError(t *testing.T) {
	_, errs := resolveSource(t, `fun f() { return super.bar; } `)
	require.True(t, errs.HadError())
	require.Contains(t, errs.Reports()[0].Message, "Cannot use 'super' outside of a class.")
}

func TestSuperInClassWithNoSuperclassIsAnError(t *testing.T) {
	_, errs := resolveSource(t, `class A { method() { super.thing(); } }`)
	require.True(t, errs.HadError())
	require.Contains(t, errs.Reports()[0].Message, "Cannot use 'super' in a class with no superclass.")
}

func TestResolvedLocalDistanceMatchesNesting(t *testing.T) {
	stmts := mustProgram(t, `
		var a = 1;
		{
			var b = 2;
			{
				print b;
			}
		}
	`)

	errs := diagnostics.NewSink()
	r := New(errs)
	r.Resolve(stmts)
	require.False(t, errs.HadError())

	block1 := stmts[1].(*ast.BlockStmt)
	block2 := block1.Statements[1].(*ast.BlockStmt)
	printStmt := block2.Statements[0].(*ast.PrintStmt)
	printVar := printStmt.Expression.(*ast.Variable)

	// "b" is declared one scope out from where it's printed: distance 1.
	dist, ok := r.Locals()[printVar]
	require.True(t, ok)
	require.Equal(t, 1, dist)
}

func mustProgram(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	errs := diagnostics.NewSink()
	toks := lexer.New(source, errs).ScanTokens()
	stmts := parser.New(toks, errs).Parse()
	require.False(t, errs.HadError())
	return stmts
}
