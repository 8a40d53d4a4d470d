package interp

import (
	"github.com/oxlang/oxc/internal/ast"
)

// eval evaluates expr in env and returns its Value
func (e *Evaluator) eval(env *Environment, expr ast.Expression) (Value, error) {
	switch ex := expr.(type) {
	case *ast.IntegerLiteral:
		return Integer(ex.Value), nil

	case *ast.StringLiteral:
		return StringValue(ex.Value), nil

	case *ast.BooleanLiteral:
		return BooleanValue(ex.Value), nil

	case *ast.Identifier:
		if v, ok := env.Get(ex.Name); ok {
			return v, nil
		}
		if v, ok := e.globals.Get(ex.Name); ok {
			return v, nil
		}
		return Null, runtimeErrorf(ex, "undefined identifier %s", ex.Name)

	case *ast.This:
		v, ok := env.Get("this")
		if !ok {
			return Null, runtimeErrorf(ex, "this is not bound here")
		}
		return v, nil

	case *ast.Super:
		return Null, runtimeErrorf(ex, "super is not a value")

	case *ast.UnaryOp:
		return e.evalUnary(env, ex)

	case *ast.BinaryOp:
		return e.evalBinary(env, ex)

	case *ast.Assignment:
		return e.evalAssignment(env, ex)

	case *ast.New:
		return e.evalNew(env, ex)

	case *ast.FieldAccess:
		return e.evalFieldAccess(env, ex)

	case *ast.Call:
		return e.evalCall(env, ex)

	default:
		return Null, runtimeErrorf(expr, "unsupported expression")
	}
}

func (e *Evaluator) evalUnary(env *Environment, ex *ast.UnaryOp) (Value, error) {
	v, err := e.eval(env, ex.Expr)
	if err != nil {
		return Null, err
	}
	n, ok := v.(Integer)
	if !ok {
		return Null, runtimeErrorf(ex, "unary %s requires an Integer operand", ex.Op)
	}
	switch ex.Op {
	case "-":
		return -n, nil
	case "+":
		return n, nil
	default:
		return Null, runtimeErrorf(ex, "unknown unary operator %s", ex.Op)
	}
}

func (e *Evaluator) evalBinary(env *Environment, ex *ast.BinaryOp) (Value, error) {
	left, err := e.eval(env, ex.Left)
	if err != nil {
		return Null, err
	}
	right, err := e.eval(env, ex.Right)
	if err != nil {
		return Null, err
	}

	switch ex.Op {
	case "+":
		_, leftStr := left.(StringValue)
		_, rightStr := right.(StringValue)
		if leftStr || rightStr {
			return StringValue(Stringify(left) + Stringify(right)), nil
		}
		li, lok := left.(Integer)
		ri, rok := right.(Integer)
		if !lok || !rok {
			return Null, runtimeErrorf(ex, "operator + requires Integer or String operands")
		}
		return li + ri, nil

	case "-", "*", "/":
		li, lok := left.(Integer)
		ri, rok := right.(Integer)
		if !lok || !rok {
			return Null, runtimeErrorf(ex, "operator %s requires Integer operands", ex.Op)
		}
		switch ex.Op {
		case "-":
			return li - ri, nil
		case "*":
			return li * ri, nil
		default: // "/"
			if ri == 0 {
				return Null, runtimeErrorf(ex, "division by zero")
			}
			q := li / ri
			if li%ri != 0 && (li < 0) != (ri < 0) {
				q--
			}
			return q, nil
		}

	case "==", "!=", "<", ">", "<=", ">=":
		// Comparisons produce an Integer 1/0 encoding the boolean, and
		// are defined only over two Integer operands.
		li, lok := left.(Integer)
		ri, rok := right.(Integer)
		if !lok || !rok {
			return Null, runtimeErrorf(ex, "operator %s requires Integer operands", ex.Op)
		}
		var result bool
		switch ex.Op {
		case "==":
			result = li == ri
		case "!=":
			result = li != ri
		case "<":
			result = li < ri
		case ">":
			result = li > ri
		case "<=":
			result = li <= ri
		default: // ">="
			result = li >= ri
		}
		if result {
			return Integer(1), nil
		}
		return Integer(0), nil

	default:
		return Null, runtimeErrorf(ex, "unknown binary operator %s", ex.Op)
	}
}

func (e *Evaluator) evalAssignment(env *Environment, ex *ast.Assignment) (Value, error) {
	val, err := e.eval(env, ex.Value)
	if err != nil {
		return Null, err
	}

	switch target := ex.Target.(type) {
	case *ast.Identifier:
		if _, ok := env.Get(target.Name); ok {
			env.Set(target.Name, val)
			return val, nil
		}
		if _, ok := e.globals.Get(target.Name); ok {
			e.globals.Set(target.Name, val)
			return val, nil
		}
		env.Set(target.Name, val)
		return val, nil

	case *ast.FieldAccess:
		obj, err := e.fieldAccessReceiver(env, target)
		if err != nil {
			return Null, err
		}
		obj.Fields[target.Field] = val
		return val, nil

	default:
		return Null, runtimeErrorf(ex, "invalid assignment target")
	}
}

// fieldAccessReceiver evaluates fa.Object and requires it to resolve
// to an instance whose Fields map can be written through — used by
// field-write assignment and by `super.field` reads (fields are not
// shadowed along the inheritance chain, so `super.field` reads the
// same Fields map as `this.field`).
func (e *Evaluator) fieldAccessReceiver(env *Environment, fa *ast.FieldAccess) (*Object, error) {
	if _, ok := fa.Object.(*ast.Super); ok {
		v, ok := env.Get("this")
		if !ok {
			return nil, runtimeErrorf(fa, "super used outside an instance context")
		}
		obj, ok := v.(*Object)
		if !ok {
			return nil, runtimeErrorf(fa, "super used outside an instance context")
		}
		return obj, nil
	}
	v, err := e.eval(env, fa.Object)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(*Object)
	if !ok {
		return nil, runtimeErrorf(fa, "field access requires an object receiver")
	}
	return obj, nil
}

func (e *Evaluator) evalFieldAccess(env *Environment, ex *ast.FieldAccess) (Value, error) {
	if _, ok := ex.Object.(*ast.Super); ok {
		obj, err := e.fieldAccessReceiver(env, ex)
		if err != nil {
			return Null, err
		}
		v, ok := obj.Fields[ex.Field]
		if !ok {
			return Null, nil
		}
		return v, nil
	}

	recv, err := e.eval(env, ex.Object)
	if err != nil {
		return Null, err
	}
	switch r := recv.(type) {
	case *Object:
		v, ok := r.Fields[ex.Field]
		if !ok {
			return Null, runtimeErrorf(ex, "class %s has no field %s", r.ClassName, ex.Field)
		}
		return v, nil
	case ClassRef:
		return ClassRef{Name: ex.Field}, nil
	default:
		return Null, runtimeErrorf(ex, "field access requires an object or class receiver")
	}
}

func (e *Evaluator) evalNew(env *Environment, ex *ast.New) (Value, error) {
	decl, ok := e.classes[ex.ClassName]
	if !ok {
		return Null, runtimeErrorf(ex, "unknown class %s", ex.ClassName)
	}

	obj := &Object{ClassName: ex.ClassName, Fields: make(map[string]Value)}
	for cur := decl; cur != nil; {
		for _, m := range cur.Members {
			if fd, ok := m.(*ast.FieldDeclaration); ok {
				if _, exists := obj.Fields[fd.Name]; !exists {
					obj.Fields[fd.Name] = Null
				}
			}
		}
		if cur.SuperName == "" {
			break
		}
		cur = e.classes[cur.SuperName]
	}

	// The constructor is the nearest one found walking up the SuperName
	// chain, so a subclass without its own constructor inherits one.
	var ctor *ast.ConstructorDeclaration
	ctorOwner := ex.ClassName
	for cur := decl; cur != nil && ctor == nil; {
		for _, m := range cur.Members {
			if c, ok := m.(*ast.ConstructorDeclaration); ok {
				ctor = c
				ctorOwner = cur.Name
				break
			}
		}
		if cur.SuperName == "" {
			break
		}
		cur = e.classes[cur.SuperName]
	}
	if ctor == nil {
		if len(ex.Args) > 0 {
			return Null, runtimeErrorf(ex, "class %s has no constructor", ex.ClassName)
		}
		return obj, nil
	}
	if len(ex.Args) != len(ctor.Params) {
		return Null, runtimeErrorf(ex, "constructor of %s expects %d arguments, got %d", ex.ClassName, len(ctor.Params), len(ex.Args))
	}

	args := make([]Value, len(ex.Args))
	for i, a := range ex.Args {
		v, err := e.eval(env, a)
		if err != nil {
			return Null, err
		}
		args[i] = v
	}

	frame := NewEnvironment()
	frame.Set("this", obj)
	frame.Set("__class__", StringValue(ctorOwner))
	for i, p := range ctor.Params {
		frame.Set(p.Name, args[i])
	}
	if _, _, err := e.execBlock(frame, ctor.Body); err != nil {
		return Null, err
	}
	return obj, nil
}

func (e *Evaluator) evalCall(env *Environment, ex *ast.Call) (Value, error) {
	if id, ok := ex.Callee.(*ast.Identifier); ok && id.Name == "print" {
		return e.evalPrint(env, ex)
	}

	fa, ok := ex.Callee.(*ast.FieldAccess)
	if !ok {
		return Null, runtimeErrorf(ex, "expression is not callable")
	}

	if _, ok := fa.Object.(*ast.Super); ok {
		return e.evalSuperCall(env, ex, fa)
	}

	recv, err := e.eval(env, fa.Object)
	if err != nil {
		return Null, err
	}

	args, err := e.evalArgs(env, ex.Args)
	if err != nil {
		return Null, err
	}

	switch r := recv.(type) {
	case *Object:
		owner, method, ok := e.resolveMethod(r.ClassName, fa.Field)
		if !ok {
			return Null, runtimeErrorf(ex, "class %s has no method %s", r.ClassName, fa.Field)
		}
		return e.invokeMethod(r, owner, method, args)
	case ClassRef:
		// Static-like call: resolved the same way as an instance call,
		// but the frame gets no `this` binding.
		owner, method, ok := e.resolveMethod(r.Name, fa.Field)
		if !ok {
			return Null, runtimeErrorf(ex, "class %s has no method %s", r.Name, fa.Field)
		}
		return e.invokeMethod(nil, owner, method, args)
	default:
		return Null, runtimeErrorf(ex, "invalid call receiver")
	}
}

func (e *Evaluator) evalSuperCall(env *Environment, call *ast.Call, fa *ast.FieldAccess) (Value, error) {
	thisVal, ok := env.Get("this")
	if !ok {
		return Null, runtimeErrorf(call, "super used outside an instance context")
	}
	obj, ok := thisVal.(*Object)
	if !ok {
		return Null, runtimeErrorf(call, "super used outside an instance context")
	}
	curClassVal, ok := env.Get("__class__")
	if !ok {
		return Null, runtimeErrorf(call, "super used outside a method body")
	}
	curClass := string(curClassVal.(StringValue))
	curDecl, ok := e.classes[curClass]
	if !ok || curDecl.SuperName == "" {
		return Null, runtimeErrorf(call, "class %s has no superclass", curClass)
	}

	args, err := e.evalArgs(env, call.Args)
	if err != nil {
		return Null, err
	}

	owner, method, ok := e.resolveMethod(curDecl.SuperName, fa.Field)
	if !ok {
		return Null, runtimeErrorf(call, "no superclass method %s found above %s", fa.Field, curClass)
	}
	return e.invokeMethod(obj, owner, method, args)
}

func (e *Evaluator) evalPrint(env *Environment, ex *ast.Call) (Value, error) {
	args, err := e.evalArgs(env, ex.Args)
	if err != nil {
		return Null, err
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = Stringify(a)
	}
	for i, p := range parts {
		if i > 0 {
			_, _ = e.output.Write([]byte(" "))
		}
		_, _ = e.output.Write([]byte(p))
	}
	_, _ = e.output.Write([]byte("\n"))
	return Null, nil
}

func (e *Evaluator) evalArgs(env *Environment, exprs []ast.Expression) ([]Value, error) {
	args := make([]Value, len(exprs))
	for i, a := range exprs {
		v, err := e.eval(env, a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// resolveMethod walks the SuperName chain starting at className for a
// method named methodName, returning the class that defines it.
func (e *Evaluator) resolveMethod(className, methodName string) (owner string, method *ast.MethodDeclaration, ok bool) {
	for cur := e.classes[className]; cur != nil; {
		for _, m := range cur.Members {
			if md, mok := m.(*ast.MethodDeclaration); mok && md.Name == methodName {
				return cur.Name, md, true
			}
		}
		if cur.SuperName == "" {
			break
		}
		cur = e.classes[cur.SuperName]
	}
	return "", nil, false
}

// invokeMethod runs method's body in a fresh frame with `__class__`
// bound to owner, the class lexically defining method (used to
// resolve `super` inside its body). receiver is bound as `this`
// unless nil, which is how static-like ClassRef calls omit it
//.
func (e *Evaluator) invokeMethod(receiver *Object, owner string, method *ast.MethodDeclaration, args []Value) (Value, error) {
	if len(args) != len(method.Params) {
		return Null, runtimeErrorf(method, "method %s expects %d arguments, got %d", method.Name, len(method.Params), len(args))
	}
	frame := NewEnvironment()
	if receiver != nil {
		frame.Set("this", receiver)
	}
	frame.Set("__class__", StringValue(owner))
	for i, p := range method.Params {
		frame.Set(p.Name, args[i])
	}
	val, _, err := e.execBlock(frame, method.Body)
	if err != nil {
		return Null, err
	}
	return val, nil
}
