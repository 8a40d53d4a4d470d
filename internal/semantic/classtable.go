// Package semantic implements the declaration-level type checker from
// : a three-pass walk over the Program that validates
// class/type declarations and builds a read-only class table. The
// interpreter and the C emitter do not read this table; both work
// from the Program's ClassDeclaration nodes directly.
package semantic

import "strings"

// builtins is the set of built-in type names recognized
// case-insensitively
var builtins = map[string]bool{
	"int": true, "string": true, "bool": true, "void": true,
}

// MethodInfo is the resolved signature of a method or constructor.
type MethodInfo struct {
	ParamTypes []string
	ReturnType string // "" for constructors, which have no return type
}

// ClassInfo is the type checker's resolved view of one class: its
// super class name (if any), its ordered field list, its methods, and
// its constructor signature.
type ClassInfo struct {
	Name        string
	SuperName   string // "" when there is no `extends` clause
	FieldNames  []string
	FieldTypes  map[string]string
	Methods     map[string]MethodInfo
	Constructor *MethodInfo // nil when the class has no constructor
}

// ClassTable is the read-only mapping from class name to ClassInfo
// built by the type checker Class names are looked up
// case-sensitively: the source language's own identifiers are
// case-sensitive; only built-in type names are compared
// case-insensitively.
type ClassTable struct {
	classes map[string]*ClassInfo
	order   []string // declaration order, for deterministic iteration in Classes
}

func newClassTable() *ClassTable {
	return &ClassTable{classes: make(map[string]*ClassInfo)}
}

// Lookup returns the ClassInfo for name, or nil if name is not a
// declared class.
func (t *ClassTable) Lookup(name string) *ClassInfo {
	return t.classes[name]
}

// Classes returns every declared class in declaration order.
func (t *ClassTable) Classes() []*ClassInfo {
	result := make([]*ClassInfo, len(t.order))
	for i, name := range t.order {
		result[i] = t.classes[name]
	}
	return result
}

func (t *ClassTable) add(info *ClassInfo) {
	t.classes[info.Name] = info
	t.order = append(t.order, info.Name)
}

// TypeExists reports whether typeName resolves to a built-in (checked
// case-insensitively) or to a declared class
func (t *ClassTable) TypeExists(typeName string) bool {
	if builtins[strings.ToLower(typeName)] {
		return true
	}
	_, ok := t.classes[typeName]
	return ok
}

// IsSubtype implements the reflexive subtype relation:
// false whenever either side is "void" (compared case-insensitively),
// true when a == b, and otherwise true iff following SuperName links
// from a eventually reaches b.
func (t *ClassTable) IsSubtype(a, b string) bool {
	if strings.EqualFold(a, "void") || strings.EqualFold(b, "void") {
		return false
	}
	if a == b {
		return true
	}
	cur := t.classes[a]
	for cur != nil && cur.SuperName != "" {
		if cur.SuperName == b {
			return true
		}
		cur = t.classes[cur.SuperName]
	}
	return false
}

// ResolveMethod walks the SuperName chain starting at className
// looking for a method named methodName, the same inheritance walk the
// interpreter uses for method dispatch (the C emitter does no
// inheritance dispatch).
// Returns the owning class name and its MethodInfo, or ("", nil, false).
func (t *ClassTable) ResolveMethod(className, methodName string) (string, *MethodInfo, bool) {
	cur := t.classes[className]
	for cur != nil {
		if m, ok := cur.Methods[methodName]; ok {
			return cur.Name, &m, true
		}
		if cur.SuperName == "" {
			break
		}
		cur = t.classes[cur.SuperName]
	}
	return "", nil, false
}
