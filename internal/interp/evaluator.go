package interp

import (
	"fmt"
	"io"

	"github.com/oxlang/oxc/internal/ast"
	"github.com/oxlang/oxc/internal/token"
)

// RuntimeError is a located interpreter error's
// "Runtime error (interpreter only)" taxonomy entry.
type RuntimeError struct {
	Message string
	Pos     token.Position
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s (at line %d, column %d)", e.Message, e.Pos.Line, e.Pos.Column)
}

func runtimeErrorf(node ast.Node, format string, args ...any) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...), Pos: node.Pos()}
}

// Evaluator is the tree-walking evaluator It resolves
// classes and method bodies directly from the Program's
// ClassDeclaration nodes: the type checker's class table (internal/
// semantic) carries only declaration-level signatures, not bodies, so
// it has no role at evaluation time beyond the validation already
// performed before Run is called.
type Evaluator struct {
	globals *Environment
	classes map[string]*ast.ClassDeclaration
	output  io.Writer
}

// New creates an Evaluator that writes `print` output to output.
func New(output io.Writer) *Evaluator {
	return &Evaluator{
		globals: NewEnvironment(),
		classes: make(map[string]*ast.ClassDeclaration),
		output:  output,
	}
}

// Run executes program's top-level statements in source order. The
// globals environment is first seeded with a ClassRef for every
// declared class, so a bare class name used as a value
// evaluates to a class handle.
func (e *Evaluator) Run(program *ast.Program) error {
	for _, stmt := range program.Statements {
		if decl, ok := stmt.(*ast.ClassDeclaration); ok {
			e.classes[decl.Name] = decl
			e.globals.Set(decl.Name, ClassRef{Name: decl.Name})
		}
	}

	for _, stmt := range program.Statements {
		if _, returned, err := e.execStmt(e.globals, stmt); err != nil {
			return err
		} else if returned {
			// A top-level return has no enclosing frame to return from;
			// the grammar never produces one (ReturnStatement is not a
			// TopLevel production), so this cannot occur in a parsed
			// Program. Treat it as a no-op defensively.
			_ = returned
		}
	}
	return nil
}

// execStmt executes a single statement in env and reports whether it
// transitioned the enclosing frame to Returned.
func (e *Evaluator) execStmt(env *Environment, stmt ast.Statement) (Value, bool, error) {
	switch s := stmt.(type) {
	case *ast.ImportStatement:
		return Null, false, nil

	case *ast.ClassDeclaration:
		return Null, false, nil

	case *ast.VariableDeclaration:
		val := Value(Null)
		if s.Initializer != nil {
			v, err := e.eval(env, s.Initializer)
			if err != nil {
				return Null, false, err
			}
			val = v
		}
		env.Set(s.Name, val)
		return Null, false, nil

	case *ast.ExpressionStatement:
		if _, err := e.eval(env, s.Expr); err != nil {
			return Null, false, err
		}
		return Null, false, nil

	case *ast.ReturnStatement:
		val := Value(Null)
		if s.Expr != nil {
			v, err := e.eval(env, s.Expr)
			if err != nil {
				return Null, false, err
			}
			val = v
		}
		return val, true, nil

	case *ast.IfStatement:
		cond, err := e.eval(env, s.Condition)
		if err != nil {
			return Null, false, err
		}
		truth, ok := Truthy(cond)
		if !ok {
			return Null, false, runtimeErrorf(s.Condition, "condition is not a boolean or integer value")
		}
		if truth {
			return e.execBlock(env, s.ThenBody)
		} else if s.ElseBody != nil {
			return e.execBlock(env, s.ElseBody)
		}
		return Null, false, nil

	default:
		return Null, false, runtimeErrorf(stmt, "unsupported statement")
	}
}

// execBlock executes every statement in block in order, stopping (and
// propagating) as soon as one transitions to Returned.
func (e *Evaluator) execBlock(env *Environment, block *ast.Block) (Value, bool, error) {
	for _, stmt := range block.Statements {
		val, returned, err := e.execStmt(env, stmt)
		if err != nil {
			return Null, false, err
		}
		if returned {
			return val, true, nil
		}
	}
	return Null, false, nil
}
